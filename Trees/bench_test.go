package Trees

import (
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkAdd0(b *testing.B) {
	for range b.N {
		tree := New[int](uint32(0))
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func BenchmarkAdd1(b *testing.B) {
	for range b.N {
		tree := New[int](bAddN)
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func create(b *testing.B) (*RBTree[int, uint32], []int) {
	b.Helper()
	tree := New[int](bAddN)
	all := make([]int, 0, bAddN)
	for range bAddN {
		if k := rg.Int(); tree.Insert(k) {
			all = append(all, k)
		}
	}
	return tree, all
}

func BenchmarkDel(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Erase(v)
		}
	}
}

var sideEff bool

func BenchmarkQry(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all[:bQryN] {
			sideEff = tree.Contains(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Contains(rg.Int())
		}
	}
}

func BenchmarkTraverse(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		for e := range tree.Traverse(LevelOrder) {
			sideEff = e.HasLeft
		}
	}
}
