package Trees

import (
	"fmt"

	Go_Utils "github.com/g-m-twostay/rb-tree"
)

// Check [Tree.Check]. It walks the whole arena and verifies, independently of the fix-up code:
// parent links mirror child links, the root is black with no parent, no red node has a red child,
// all paths from a node to its absent children hold the same number of black nodes, keys are
// strictly increasing in order, the size matches the reachable nodes, and every slot is either
// reachable or on the free list, but not both.
// Time: O(n); Space: O(n) bits.
func (u *RBTree[K, S]) Check() error {
	seen := Go_Utils.NewBitArray(len(u.ifs))
	seen.Up(0)
	if u.ifs[0] != (info[S]{}) {
		return &CorruptError{Reason: "phantom nil slot was written"}
	}
	if u.root != 0 {
		if u.ifs[u.root].p != 0 {
			return u.corrupt(u.root, "root has a parent")
		}
		if u.isRed(u.root) {
			return u.corrupt(u.root, "root is red")
		}
	}
	var count S
	st := u.stack()
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if int(cur) >= len(u.ifs) {
			return &CorruptError{Reason: fmt.Sprintf("link to slot %d past the arena", cur)}
		}
		if seen.Get(int(cur)) {
			return u.corrupt(cur, "reachable twice")
		}
		seen.Up(int(cur))
		count++
		for _, c := range u.ifs[cur].ch {
			if c == 0 {
				continue
			}
			if int(c) < len(u.ifs) && u.ifs[c].p != cur {
				return u.corrupt(c, "parent link doesn't match child link")
			}
			if u.isRed(cur) && int(c) < len(u.ifs) && u.isRed(c) {
				return u.corrupt(c, "red node with red parent")
			}
			st = append(st, c)
		}
	}
	if count != u.sz {
		return &CorruptError{Reason: fmt.Sprintf("size is %d, %d nodes reachable", u.sz, count)}
	}
	for i := u.free; i != 0; i = u.ifs[i].ch[left] {
		if int(i) >= len(u.ifs) {
			return &CorruptError{Reason: fmt.Sprintf("free slot %d past the arena", i)}
		}
		if seen.Get(int(i)) {
			return &CorruptError{Reason: fmt.Sprintf("slot %d is free and in use", i)}
		}
		seen.Up(int(i))
	}
	if n := seen.Count(); n != len(u.ifs) {
		return &CorruptError{Reason: fmt.Sprintf("%d slots leaked", len(u.ifs)-n)}
	}
	if _, err := u.blackHeight(u.root); err != nil {
		return err
	}
	var prev S
	var err error
	u.inOrder(left, func(i S) bool {
		if prev != 0 && u.cmp(*u.getK(prev), *u.getK(i)) >= 0 {
			err = u.corrupt(i, fmt.Sprintf("not greater than predecessor %v", *u.getK(prev)))
			return false
		}
		prev = i
		return true
	})
	return err
}

// blackHeight of the subtree at i, counting the phantom leaves but not i. Only call on acyclic trees.
func (u *RBTree[K, S]) blackHeight(i S) (int, error) {
	if i == 0 {
		return 0, nil
	}
	var h [2]int
	for d, c := range u.ifs[i].ch {
		var err error
		if h[d], err = u.blackHeight(c); err != nil {
			return 0, err
		}
		if !u.isRed(c) {
			h[d]++
		}
	}
	if h[left] != h[right] {
		return 0, u.corrupt(i, fmt.Sprintf("black-height %d on the left, %d on the right", h[left], h[right]))
	}
	return h[left], nil
}

func (u *RBTree[K, S]) corrupt(i S, reason string) *CorruptError {
	return &CorruptError{Key: *u.getK(i), Reason: reason}
}

// Corrupt reports whether Check finds a problem.
func (u *RBTree[K, S]) Corrupt() bool {
	return u.Check() != nil
}
