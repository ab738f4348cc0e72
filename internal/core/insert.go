package core

// AddEntry inserts key with the given payload value. Preconditions:
// key non-empty, automaton not yet built. A duplicate key overwrites the
// previously stored value for the terminal node; re-insertion does not
// create new nodes.
//
// A failed precondition leaves the automaton untouched: the terminal
// value write is always the last action taken.
func (a *Automaton) AddEntry(key string, value int32) error {
	if a.built {
		return ErrAlreadyBuilt
	}

	if key == "" {
		return ErrEmptyKey
	}

	cur := int32(0)

	for _, r := range key {
		for _, u := range a.normalizeRune(r) {
			cur = a.insertChild(cur, u)
		}
	}

	a.store.Value().SafeSet(int(cur), value)

	return nil
}

// insertChild ensures cur has a child for code unit u, resolving any
// collision along the way, and returns the child's index.
func (a *Automaton) insertChild(cur int32, u rune) int32 {
	uOffset := int32(u)

	if a.base(cur) == Reserved {
		slot := a.findSingle(uOffset)
		a.store.Base().SafeSet(int(cur), slot-uOffset)
	}

	c := a.base(cur) + uOffset
	p := a.parentOf(c)

	switch {
	case p == cur:
		return c

	case p == Reserved:
		a.insertNewChild(c, cur)
		return c

	default:
		newCur := a.resolveCollision(cur, p, uOffset)
		newC := a.base(newCur) + uOffset
		a.insertNewChild(newC, newCur)

		return newC
	}
}

// childOffsets enumerates the children of p as offsets from base[p],
// walking the circular sibling list starting at aux2[p]. dst is reused
// as scratch storage and returned (possibly grown).
func (a *Automaton) childOffsets(p int32, dst []int32) []int32 {
	dst = dst[:0]

	first := a.aux2(p)
	if first == Reserved {
		return dst
	}

	basep := a.base(p)
	offset := first

	for {
		dst = append(dst, offset)

		next := a.aux1(basep + offset)
		if next == first {
			break
		}

		offset = next
	}

	return dst
}

// insertNewChild adds a fresh child at free slot c under parent p,
// splicing it into p's circular sibling list immediately after the
// first child.
func (a *Automaton) insertNewChild(c, p int32) {
	a.nodeCount++

	first := a.aux2(p)
	u := c - a.base(p)

	var siblingOffset int32

	if first == Reserved {
		a.store.Aux2().SafeSet(int(p), u)
		siblingOffset = u // only child: points to itself
	} else {
		basep := a.base(p)
		firstChildIdx := basep + first
		afterFirst := a.aux1(firstChildIdx)

		a.store.Aux1().SafeSet(int(firstChildIdx), u)
		siblingOffset = afterFirst
	}

	a.store.WriteAll(int(c), Reserved, p, Reserved, siblingOffset, Reserved)
}

// findSingle returns a free slot usable as the absolute index of a
// single child reached via offset u.
func (a *Automaton) findSingle(u int32) int32 {
	if hit := a.free.PopFor(u); hit != 0 {
		return hit
	}

	if u-1 > a.singleCursor {
		a.singleCursor = u - 1
	}

	for {
		a.singleCursor++
		if !a.occupied(a.singleCursor) {
			return a.singleCursor
		}
	}
}

// findMulti returns a base offset b such that b+o is free for every
// offset o in offsets. Delegates to findSingle for the common
// single-child case.
func (a *Automaton) findMulti(offsets []int32) int32 {
	if len(offsets) == 1 {
		return a.findSingle(offsets[0]) - offsets[0] // findSingle yields the slot itself
	}

	if a.multiCursor < a.singleCursor {
		a.multiCursor = a.singleCursor
	}

	for {
		a.multiCursor++

		b := a.multiCursor
		ok := true

		for _, o := range offsets {
			if a.occupied(b + o) {
				ok = false
				break
			}
		}

		if ok {
			return b
		}
	}
}

// resolveCollision handles base[cur]+u = c already owned by a node whose
// parent is q != cur. It relocates whichever of q or cur has fewer
// children (ties favor cur, the encroaching parent) and returns the
// (possibly adjusted) index of cur: if q is relocated and cur was
// itself one of q's children, cur's own address shifts too.
func (a *Automaton) resolveCollision(cur, q, u int32) int32 {
	childrenQ := a.childOffsets(q, a.scratchA)
	a.scratchA = childrenQ

	childrenCur := a.childOffsets(cur, a.scratchB)
	childrenCur = append(childrenCur, u) // reserve room for the new child
	a.scratchB = childrenCur

	movedIsQ := len(childrenQ) < len(childrenCur)

	var moved int32

	var moveSet []int32

	if movedIsQ {
		moved = q
		moveSet = childrenQ
	} else {
		moved = cur
		moveSet = childrenCur // includes u, so the new child's own slot is reserved too
	}

	oldBase := a.base(moved)
	newBase := a.findMulti(moveSet)

	relocate := moveSet
	if !movedIsQ {
		relocate = moveSet[:len(moveSet)-1] // exclude u; no node exists for it yet
	}

	newCur := cur

	for _, o := range relocate {
		oldChild := oldBase + o
		newChild := newBase + o

		grandchildren := a.childOffsets(oldChild, a.scratchC)
		a.scratchC = grandchildren

		oldChildBase := a.base(oldChild)
		for _, co := range grandchildren {
			a.store.Parent().SafeSet(int(oldChildBase+co), newChild)
		}

		a.store.WriteAll(int(newChild),
			a.base(oldChild), a.parentOf(oldChild), a.value(oldChild), a.aux1(oldChild), a.aux2(oldChild))

		a.store.Parent().SafeSet(int(oldChild), Reserved)

		if oldChild < a.singleCursor {
			a.free.Add(oldChild)
		}

		if movedIsQ && oldChild == cur {
			newCur = newChild
		}
	}

	a.store.Base().SafeSet(int(moved), newBase)

	return newCur
}
