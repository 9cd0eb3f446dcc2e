package Trees

// insertCase classifies the state around a red node z that may violate the no-red-red rule.
type insertCase byte

const (
	insRoot        insertCase = iota // z is the root: paint it black.
	insBlackParent                   // nothing to do.
	insRedUncle                      // recolor parent, uncle and grandparent; continue at grandparent.
	insInner                         // black uncle, z is an inner grandchild: rotate at parent, then insOuter.
	insOuter                         // black uncle, z is an outer grandchild: rotate at grandparent. Terminal.
)

// classifyInsert decides the case for z. The uncle is always the sibling of z's parent under the
// grandparent, whichever side that is.
func (u *base[K, S]) classifyInsert(z S) insertCase {
	if z == u.root {
		return insRoot
	}
	pi := u.ifs[z].p
	if !u.isRed(pi) {
		return insBlackParent
	}
	gi := u.ifs[pi].p // a red parent is never the root, so gi!=0
	pd := u.sideOf(gi, pi)
	if u.isRed(u.ifs[gi].ch[pd^1]) {
		return insRedUncle
	}
	if u.sideOf(pi, z) != pd {
		return insInner
	}
	return insOuter
}

// insertFixup walks up from the freshly attached red leaf z until no red node has a red child and
// the root is black.
func (u *base[K, S]) insertFixup(z S) {
	for {
		switch u.classifyInsert(z) {
		case insRoot:
			u.ifs[z].c = Black
			return
		case insBlackParent:
			return
		case insRedUncle:
			pi := u.ifs[z].p
			gi := u.ifs[pi].p
			u.ifs[pi].c = Black
			u.ifs[u.ifs[gi].ch[u.sideOf(gi, pi)^1]].c = Black
			u.ifs[gi].c = Red
			z = gi
		case insInner:
			pi := u.ifs[z].p
			u.rotate(pi, u.sideOf(pi, z)^1)
			z = pi // the old parent is now the outer grandchild.
			fallthrough
		case insOuter:
			pi := u.ifs[z].p
			gi := u.ifs[pi].p
			u.rotate(gi, u.sideOf(pi, z)^1)
			u.ifs[pi].c = Black
			u.ifs[gi].c = Red
			return
		}
	}
}

// eraseCase classifies the state around x, a subtree one black node short of its sibling's.
// Near and far are relative to x: the near nephew is the sibling's child on x's side.
type eraseCase byte

const (
	eraRedX         eraseCase = iota // paint x black. This includes a red child promoted to root.
	eraRoot                          // x is a black root, or the tree became empty.
	eraRedSibling                    // rotate the red sibling above the parent, then reclassify.
	eraBlackNephews                  // paint sibling red; the shortage moves to the parent.
	eraNearRed                       // rotate the near red nephew above the sibling, then eraFarRed.
	eraFarRed                        // rotate at parent, recolor. Terminal.
)

// classifyErase decides the case for x, which sits on side d of pi. x may be 0, the phantom leaf.
func (u *base[K, S]) classifyErase(x, pi S, d dir) eraseCase {
	if u.isRed(x) {
		return eraRedX
	}
	if x == u.root {
		return eraRoot
	}
	w := u.ifs[pi].ch[d^1] // never 0: the other side has black-height at least 1.
	if u.isRed(w) {
		return eraRedSibling
	}
	if u.isRed(u.ifs[w].ch[d^1]) {
		return eraFarRed
	}
	if u.isRed(u.ifs[w].ch[d]) {
		return eraNearRed
	}
	return eraBlackNephews
}

// eraseFixup restores equal black-heights after a black node was spliced out above x. The parent
// and side are carried explicitly since x may be the phantom leaf, whose links are never written.
func (u *base[K, S]) eraseFixup(x, pi S, d dir) {
	for {
		switch u.classifyErase(x, pi, d) {
		case eraRedX:
			u.ifs[x].c = Black
			return
		case eraRoot:
			return
		case eraRedSibling:
			w := u.ifs[pi].ch[d^1]
			u.ifs[w].c = Black
			u.ifs[pi].c = Red
			u.rotate(pi, d)
		case eraBlackNephews:
			u.ifs[u.ifs[pi].ch[d^1]].c = Red
			if x, pi = pi, u.ifs[pi].p; pi != 0 {
				d = u.sideOf(pi, x)
			}
		case eraNearRed:
			w := u.ifs[pi].ch[d^1]
			n := u.ifs[w].ch[d]
			u.rotate(w, d^1)
			u.ifs[n].c = Black
			u.ifs[w].c = Red
			fallthrough
		case eraFarRed:
			w := u.ifs[pi].ch[d^1]
			u.ifs[w].c = u.ifs[pi].c
			u.ifs[pi].c = Black
			u.ifs[u.ifs[w].ch[d^1]].c = Black
			u.rotate(pi, d)
			return
		}
	}
}
