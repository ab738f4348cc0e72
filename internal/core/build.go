package core

// Build freezes the node store and constructs failure and prefix links.
// It is a precondition violation (ErrAlreadyBuilt) to call Build twice.
func (a *Automaton) Build() error {
	if a.built {
		return ErrAlreadyBuilt
	}

	a.store.Freeze()

	if a.nodeCount == 1 {
		a.built = true
		return nil
	}

	a.buildLinks()
	a.built = true

	return nil
}

// buildLinks is a BFS over the trie that reuses aux1 as a transient
// "next node to process" queue pointer (on top of its insertion-time
// meaning of "sibling offset", and ahead of its final meaning of
// "failure link"). No extra memory is allocated for the queue itself;
// only the reusable scratch buffers are touched.
//
// Root's children seed the queue and get their failure/prefix links
// assigned trivially (failure always points to root, no keyed proper
// suffix exists). Every other node computes its failure link by
// chasing its parent's already-finalized failure chain, which is sound
// because a node's parent is always dequeued - and so has its failure
// link finalized - strictly before the node itself.
func (a *Automaton) buildLinks() {
	var head, tail int32 = Reserved, Reserved

	rootOffsets := a.childOffsets(0, a.scratchA)
	a.scratchA = rootOffsets
	rootBase := a.base(0)

	for _, o := range rootOffsets {
		c := rootBase + o
		if a.base(c) == Reserved {
			a.store.Base().SafeSet(int(c), 0)
		}

		if head == Reserved {
			head = c
		} else {
			a.store.Aux1().SafeSet(int(tail), c)
		}

		tail = c
	}

	if tail != Reserved {
		a.store.Aux1().SafeSet(int(tail), Reserved)
	}

	a.store.Aux1().SafeSet(0, head) // root's aux1 doubles as the queue head; never read again after this function

	// Root's children are already enumerated, so its first-child offset is
	// no longer needed; root has no keyed proper suffix, and every node
	// whose failure link is root reads its prefix link from here.
	a.store.Aux2().SafeSet(0, Reserved)

	for n := head; n != Reserved; {
		parent := a.parentOf(n)
		baseN := a.base(n)

		children := a.childOffsets(n, a.scratchB)
		a.scratchB = children

		for _, co := range children {
			c := baseN + co
			if a.base(c) == Reserved {
				a.store.Base().SafeSet(int(c), 0)
			}

			a.store.Aux1().SafeSet(int(tail), c)
			tail = c
		}

		if len(children) > 0 {
			a.store.Aux1().SafeSet(int(tail), Reserved)
		}

		// Must read after the enqueue loop above: when n is still the
		// queue tail, that loop is what overwrites aux1(n) from the
		// Reserved terminator to n's first enqueued child.
		next := a.aux1(n)

		var failure, prefix int32

		if parent == 0 {
			failure = 0
			prefix = Reserved
		} else {
			u := n - a.base(parent)
			g := a.aux1(parent) // parent's failure link, already finalized

			for g != 0 && a.parentOf(a.base(g)+u) != g {
				g = a.aux1(g)
			}

			if a.parentOf(a.base(g)+u) == g {
				failure = a.base(g) + u
			} else {
				failure = 0
			}

			if a.value(failure) != Reserved {
				prefix = failure
			} else {
				prefix = a.aux2(failure)
			}
		}

		a.store.Aux1().SafeSet(int(n), failure)
		a.store.Aux2().SafeSet(int(n), prefix)

		n = next
	}
}
