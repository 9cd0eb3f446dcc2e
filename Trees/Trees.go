package Trees

import (
	"fmt"
	"iter"

	"github.com/g-m-twostay/rb-tree/Sets"
)

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x K, false). In this case the
// value of x is the zero value and shouldn't be used.
// Inserting a key that is present, or erasing one that is absent, is a
// no-op reported by a false return, never an error.
// Implementations are not safe for concurrent use; callers serialize access.
type Tree[K any] interface {
	Sets.Set[K]
	//Minimum element of the tree.
	Minimum() (K, bool)
	//Maximum element of the tree.
	Maximum() (K, bool)
	//Traverse returns a restartable sequence of the nodes in the given order.
	//The tree must not be modified while a sequence is being consumed.
	Traverse(o Order) iter.Seq[Entry[K]]
	//Check returns a non nil error if some structural property of the
	//implementation doesn't hold.
	Check() error
}

// Order of a traversal.
type Order byte

const (
	InOrder          Order = iota // left, node, right
	ReverseInOrder                // right, node, left
	PreOrder                      // node, left, right
	PostOrder                     // left, right, node
	ReversePostOrder              // right, left, node
	LevelOrder                    // breadth first, left to right
)

var orderNames = [...]string{"in", "rin", "pre", "post", "rpost", "level"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", byte(o))
}

// ParseOrder maps the names returned by Order.String back to orders.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("Trees: unknown order %q", s)
}

// Entry is a snapshot of one node: its key, its children's keys and its color.
// Left and Right are meaningful only when HasLeft and HasRight are true.
type Entry[K any] struct {
	Key, Left, Right  K
	HasLeft, HasRight bool
	Color             Color
}

// String formats e as "key left right color", with null for an absent child and B or R for the color.
func (e Entry[K]) String() string {
	l, r := "null", "null"
	if e.HasLeft {
		l = fmt.Sprint(e.Left)
	}
	if e.HasRight {
		r = fmt.Sprint(e.Right)
	}
	return fmt.Sprintf("%v %s %s %s", e.Key, l, r, e.Color)
}
