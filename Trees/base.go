package Trees

import (
	"golang.org/x/exp/constraints"
)

// Color of a node. The zero value is Black, so the phantom nil slot is Black without being written.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// dir indexes info.ch. d^1 is the opposite side.
type dir byte

const (
	left  dir = 0
	right dir = 1
)

func (d dir) String() string {
	if d == left {
		return "left"
	}
	return "right"
}

// A node in the arena.
// The zero value is a black leaf with no parent. ch[left] is also the next index when the slot is on the free list.
type info[S constraints.Unsigned] struct {
	ch [2]S
	p  S // parent; not an ownership edge.
	c  Color
}

// base is the index arena shared by all tree operations. Every link is an index into ifs; 0 is the
// phantom nil node, which is never written.
type base[K any, S constraints.Unsigned] struct {
	root, free, sz S         // free is the beginning of the linked list that contains all the free indexes.
	ifs            []info[S] // ifs[0] is the phantom nil node. len(ifs)=len(ks)+1
	ks             []K       // ks[i] corresponds to ifs[i+1].
}

func (u *base[K, S]) getK(i S) *K {
	return &u.ks[i-1]
}

func (u *base[K, S]) isRed(i S) bool {
	return u.ifs[i].c == Red
}

// sideOf returns which child of p the index i is. i may be 0 as long as p has exactly one absent child.
func (u *base[K, S]) sideOf(p, i S) dir {
	if u.ifs[p].ch[left] == i {
		return left
	}
	return right
}

// extreme returns the last node reached by following d links from i.
func (u *base[K, S]) extreme(i S, d dir) S {
	for u.ifs[i].ch[d] != 0 {
		i = u.ifs[i].ch[d]
	}
	return i
}

// rotate the subtree at xi toward d and return the new subtree root. For d==left the right child of
// xi takes its place, and the mirror for d==right. The parent's link, or root, is updated.
// Time: O(1); Space: O(1)
func (u *base[K, S]) rotate(xi S, d dir) S {
	x := &u.ifs[xi]
	yi := x.ch[d^1]
	if yi == 0 {
		panic(&RotationError{Slot: uint64(xi), Dir: d.String()})
	}
	y := &u.ifs[yi]

	x.ch[d^1] = y.ch[d]
	if b := y.ch[d]; b != 0 {
		u.ifs[b].p = xi
	}
	if pi := x.p; pi == 0 {
		u.root = yi
	} else {
		u.ifs[pi].ch[u.sideOf(pi, xi)] = yi
	}
	y.p = x.p
	y.ch[d] = xi
	x.p = yi
	return yi
}

func (u *base[K, S]) rotateLeft(xi S) S {
	return u.rotate(xi, left)
}

func (u *base[K, S]) rotateRight(xi S) S {
	return u.rotate(xi, right)
}

// alloc a red leaf holding k. Free slots are reused before the arena grows.
func (u *base[K, S]) alloc(k K) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{c: Red}
		*u.getK(i) = k
		return i
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(&CapacityError{Cap: uint64(^S(0))})
	}
	u.ifs = append(u.ifs, info[S]{c: Red})
	u.ks = append(u.ks, k)
	return S(len(u.ifs) - 1)
}

// addFree index once. The key is zeroed so the slot holds no references.
func (u *base[K, S]) addFree(a S) {
	*u.getK(a) = *new(K)
	u.ifs[a] = info[S]{ch: [2]S{u.free, 0}}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].ch[left]
	return b
}

// Clear the tree. O(1) apart from zeroing the stored keys; the arena keeps its capacity.
func (u *base[K, S]) Clear() {
	clear(u.ks)
	u.ks, u.ifs = u.ks[:0], u.ifs[:1]
	u.root, u.free, u.sz = 0, 0, 0
}

func (u *base[K, S]) Size() uint {
	return uint(u.sz)
}

func (u *base[K, S]) IsEmpty() bool {
	return u.sz == 0
}
