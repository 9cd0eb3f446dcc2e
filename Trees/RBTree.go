package Trees

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree holding a set of keys. Its nodes live in an
// arena addressed by indices of type S, so S bounds the number of keys the
// tree can hold: a tree with S=uint16 holds at most 65535 keys. Insert
// panics with *CapacityError beyond that.
// Every path from a node to an absent child has the same number of black
// nodes and no red node has a red child, so the height is at most
// 2*log2(n+1).
// RBTree shouldn't be created directly using struct literal; use New or NewFunc.
type RBTree[K any, S constraints.Unsigned] struct {
	base[K, S]
	cmp func(a, b K) int
}

// New returns an empty tree ordering keys with cmp.Compare. hint is the number of keys to reserve
// room for.
func New[K cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[K, S] {
	return NewFunc[K, S](hint, cmp.Compare[K])
}

// NewFunc returns an empty tree ordering keys with compare, which returns a negative number when
// a<b, a positive number when a>b and 0 when they're equal. compare must be a total order.
func NewFunc[K any, S constraints.Unsigned](hint S, compare func(a, b K) int) *RBTree[K, S] {
	return &RBTree[K, S]{base[K, S]{ifs: make([]info[S], 1, uint(hint)+1), ks: make([]K, 0, hint)}, compare}
}

// find the slot holding k, or 0.
// Time: O(D); Space: O(1)
func (u *RBTree[K, S]) find(k K) S {
	for cur := u.root; cur != 0; {
		if c := u.cmp(k, *u.getK(cur)); c < 0 {
			cur = u.ifs[cur].ch[left]
		} else if c > 0 {
			cur = u.ifs[cur].ch[right]
		} else {
			return cur
		}
	}
	return 0
}

// Contains reports whether k is in the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, S]) Contains(k K) bool {
	return u.find(k) != 0
}

// Insert k as a red leaf and rebalance. Returns false, leaving the tree untouched, if k is already present.
// Time: O(log n); Space: amortized O(1)
func (u *RBTree[K, S]) Insert(k K) bool {
	pi, d := S(0), left
	for cur := u.root; cur != 0; cur = u.ifs[cur].ch[d] {
		c := u.cmp(k, *u.getK(cur))
		if c == 0 {
			return false
		} else if c < 0 {
			d = left
		} else {
			d = right
		}
		pi = cur
	}
	z := u.alloc(k)
	if u.ifs[z].p = pi; pi == 0 {
		u.root = z
	} else {
		u.ifs[pi].ch[d] = z
	}
	u.sz++
	u.insertFixup(z)
	return true
}

// Erase k and rebalance. Returns false if k isn't present.
// A node with two children takes its in-order successor's key and the successor is removed instead.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, S]) Erase(k K) bool {
	z := u.find(k)
	if z == 0 {
		return false
	}
	u.remove(z)
	return true
}

// remove the node z from the tree.
func (u *base[K, S]) remove(z S) {
	y := z
	if zf := &u.ifs[z]; zf.ch[left] != 0 && zf.ch[right] != 0 {
		y = u.extreme(zf.ch[right], left)
		*u.getK(z) = *u.getK(y)
	}
	yf := u.ifs[y] // y has at most one child.
	c := yf.ch[left]
	if c == 0 {
		c = yf.ch[right]
	}
	pi, d := yf.p, left
	if pi == 0 {
		u.root = c
	} else {
		d = u.sideOf(pi, y)
		u.ifs[pi].ch[d] = c
	}
	if c != 0 {
		u.ifs[c].p = pi
	}
	if yf.c == Black {
		u.eraseFixup(c, pi, d)
	}
	u.sz--
	u.addFree(y)
}

// Minimum [Tree.Minimum]
// Time: O(log n); Space: O(1)
func (u *RBTree[K, S]) Minimum() (K, bool) {
	if u.root == 0 {
		return *new(K), false
	}
	return *u.getK(u.extreme(u.root, left)), true
}

// Maximum [Tree.Maximum]
// Time: O(log n); Space: O(1)
func (u *RBTree[K, S]) Maximum() (K, bool) {
	if u.root == 0 {
		return *new(K), false
	}
	return *u.getK(u.extreme(u.root, right)), true
}

// Keys in increasing order.
func (u *RBTree[K, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.inOrder(left, func(i S) bool {
			return yield(*u.getK(i))
		})
	}
}

// Range calls f on every key in increasing order until f returns false.
func (u *RBTree[K, S]) Range(f func(K) bool) {
	u.inOrder(left, func(i S) bool {
		return f(*u.getK(i))
	})
}
