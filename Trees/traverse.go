package Trees

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/g-m-twostay/rb-tree/Queues"
)

// entry snapshots the node at i.
func (u *base[K, S]) entry(i S) Entry[K] {
	f := &u.ifs[i]
	e := Entry[K]{Key: *u.getK(i), Color: f.c}
	if l := f.ch[left]; l != 0 {
		e.Left, e.HasLeft = *u.getK(l), true
	}
	if r := f.ch[right]; r != 0 {
		e.Right, e.HasRight = *u.getK(r), true
	}
	return e
}

// Traverse [Tree.Traverse]. Each call of the returned sequence walks the tree afresh.
// Panics if o isn't one of the declared orders.
// Time: O(n) for a full walk; Space: O(log n), O(n) for LevelOrder.
func (u *base[K, S]) Traverse(o Order) iter.Seq[Entry[K]] {
	var walk func(func(S) bool)
	switch o {
	case InOrder:
		walk = func(f func(S) bool) { u.inOrder(left, f) }
	case ReverseInOrder:
		walk = func(f func(S) bool) { u.inOrder(right, f) }
	case PreOrder:
		walk = u.preOrder
	case PostOrder:
		walk = func(f func(S) bool) { u.postOrder(left, f) }
	case ReversePostOrder:
		walk = func(f func(S) bool) { u.postOrder(right, f) }
	case LevelOrder:
		walk = u.levelOrder
	default:
		panic(fmt.Sprintf("Trees: unknown order %v", o))
	}
	return func(yield func(Entry[K]) bool) {
		walk(func(i S) bool {
			return yield(u.entry(i))
		})
	}
}

// stack returns an empty stack big enough for any root to leaf path of a valid tree.
func (u *base[K, S]) stack() []S {
	return make([]S, 0, 2*bits.Len64(uint64(u.sz)+1))
}

// inOrder visits nodes starting from the d side. d==left gives increasing order.
func (u *base[K, S]) inOrder(d dir, f func(S) bool) {
	st := u.stack()
	for cur := u.root; cur != 0; cur = u.ifs[cur].ch[d] {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		for cur = u.ifs[cur].ch[d^1]; cur != 0; cur = u.ifs[cur].ch[d] {
			st = append(st, cur)
		}
	}
}

func (u *base[K, S]) preOrder(f func(S) bool) {
	if u.root == 0 {
		return
	}
	for st := append(u.stack(), u.root); len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			return
		}
		if r := u.ifs[cur].ch[right]; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[cur].ch[left]; l != 0 {
			st = append(st, l)
		}
	}
}

// postOrder visits both subtrees, the d side first, before the node itself.
func (u *base[K, S]) postOrder(d dir, f func(S) bool) {
	st := u.stack()
	var last S
	for cur := u.root; cur != 0 || len(st) > 0; {
		if cur != 0 {
			st = append(st, cur)
			cur = u.ifs[cur].ch[d]
			continue
		}
		top := st[len(st)-1]
		if o := u.ifs[top].ch[d^1]; o != 0 && o != last {
			cur = o
			continue
		}
		if !f(top) {
			return
		}
		last = top
		st = st[:len(st)-1]
	}
}

func (u *base[K, S]) levelOrder(f func(S) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur) {
			return
		}
		for _, c := range u.ifs[cur].ch {
			if c != 0 {
				q.Push(c)
			}
		}
	}
}
