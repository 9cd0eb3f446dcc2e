// Command rbtree reads insert/query/erase/clear commands from stdin, applies
// them to a red-black tree and prints the answers followed by the tree.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/g-m-twostay/rb-tree/Trees"
	"github.com/g-m-twostay/rb-tree/internal/harness"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rbtree: ")

	cfg := harness.DefaultConfig()
	order := flag.String("order", cfg.Order.String(), "traversal order of the final dump: in, rin, pre, post, rpost or level")
	hint := flag.Uint("hint", 0, "number of keys to reserve room for")
	flag.BoolVar(&cfg.Check, "check", false, "validate the tree after every mutation")
	flag.Parse()

	o, err := Trees.ParseOrder(*order)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Order, cfg.Hint = o, uint32(*hint)

	if err := harness.Run(os.Stdin, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}
