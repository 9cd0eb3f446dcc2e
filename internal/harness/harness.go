// Package harness drives a tree from a stream of numeric commands.
//
// The input is a count q followed by q pairs "command value":
//
//	0 v   insert v
//	1 v   print Yes if v is present, No otherwise
//	2 v   erase v
//	3 v   clear the tree, v is ignored
//
// Any other command is treated as a query. After the last command the size
// is printed, followed by one line per node ("key left right color") in the
// configured order.
package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/g-m-twostay/rb-tree/Trees"
)

type Command int

const (
	Insert Command = iota
	Query
	Erase
	Clear
)

// Config of a run.
type Config struct {
	Order Trees.Order // order of the final dump
	Hint  uint32      // number of keys to reserve room for
	Check bool        // validate the tree after every mutation
}

// DefaultConfig prints nodes right subtree first, then left subtree, then the node.
func DefaultConfig() Config {
	return Config{Order: Trees.ReversePostOrder}
}

// Run executes the commands in r on a new tree and writes the output to w.
func Run(r io.Reader, w io.Writer, cfg Config) error {
	return Exec(Trees.New[int, uint32](cfg.Hint), r, w, cfg)
}

// Exec is Run on a caller supplied tree.
func Exec(tree Trees.Tree[int], r io.Reader, w io.Writer, cfg Config) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}

	q, err := next()
	if err != nil {
		return fmt.Errorf("harness: reading command count: %w", err)
	}
	if q < 0 {
		return fmt.Errorf("harness: negative command count %d", q)
	}
	out := bufio.NewWriter(w)
	for i := 1; i <= q; i++ {
		c, err := next()
		if err != nil {
			return fmt.Errorf("harness: command %d: %w", i, err)
		}
		v, err := next()
		if err != nil {
			return fmt.Errorf("harness: command %d: value: %w", i, err)
		}
		switch Command(c) {
		case Insert:
			tree.Insert(v)
		case Erase:
			tree.Erase(v)
		case Clear:
			tree.Clear()
		default:
			if tree.Contains(v) {
				out.WriteString("Yes\n")
			} else {
				out.WriteString("No\n")
			}
			continue
		}
		if cfg.Check {
			if err := tree.Check(); err != nil {
				return errors.Join(fmt.Errorf("harness: after command %d", i), err, out.Flush())
			}
		}
	}
	fmt.Fprintln(out, tree.Size())
	for e := range tree.Traverse(cfg.Order) {
		fmt.Fprintln(out, e)
	}
	return out.Flush()
}
