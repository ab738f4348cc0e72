package core

// walk follows the exact path for key, without failure-link recovery,
// and returns the terminal node's index. ok is false if no such path
// exists in the trie.
func (a *Automaton) walk(key string) (node int32, ok bool) {
	cur := int32(0)

	for _, r := range key {
		for _, u := range a.normalizeRune(r) {
			t := a.base(cur) + int32(u)
			if a.parentOf(t) != cur {
				return 0, false
			}

			cur = t
		}
	}

	return cur, true
}

// Contains reports whether key was inserted (and, if built, survived
// into the frozen automaton as a terminal node with a stored value).
func (a *Automaton) Contains(key string) bool {
	_, ok := a.ValueOf(key)
	return ok
}

// ValueOf returns the payload stored for key and true, or (0, false) if
// key was never inserted.
func (a *Automaton) ValueOf(key string) (int32, bool) {
	n, ok := a.walk(key)
	if !ok {
		return 0, false
	}

	v := a.value(n)
	if v == Reserved {
		return 0, false
	}

	return v, true
}
