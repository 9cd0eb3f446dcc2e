package Sets

// Set of distinct elements. Put-like operations report whether they changed the set; adding an
// element that is present or removing one that is absent is a no-op, not an error.
type Set[E any] interface {
	//Insert e. Returns false if e was already present.
	Insert(e E) bool
	//Erase e. Returns false if e wasn't present.
	Erase(e E) bool
	Contains(e E) bool
	Size() uint
	//IsEmpty is equivalent to Size()==0.
	IsEmpty() bool
	//Clear removes every element.
	Clear()
	//Range calls f on each element until f returns false. Ordered sets visit
	//elements in increasing order.
	Range(f func(E) bool)
}
