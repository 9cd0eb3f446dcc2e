package Trees

import "fmt"

// RotationError is the panic value when a rotation is asked to lift a child that doesn't exist.
// It means the tree itself is broken; it can't be caused through the public methods.
type RotationError struct {
	Slot uint64
	Dir  string
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("Trees: cannot rotate slot %d %s: missing child", e.Slot, e.Dir)
}

// CapacityError is the panic value when a tree holds as many nodes as its index type can address.
type CapacityError struct {
	Cap uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Trees: index type exhausted at %d nodes", e.Cap)
}

// CorruptError is returned by Check. Key is the key at the offending node, or nil when the problem
// isn't tied to a node.
type CorruptError struct {
	Key    any
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Key == nil {
		return "Trees: corrupt: " + e.Reason
	}
	return fmt.Sprintf("Trees: corrupt at key %v: %s", e.Key, e.Reason)
}
