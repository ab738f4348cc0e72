package ahocorasick

// Options configures matching behavior shared by both façades. The
// zero value is case-sensitive, whole-words-off — the cheapest and
// most permissive mode.
type Options struct {
	// CaseInsensitive folds both keys and input per code unit before
	// they reach the trie.
	CaseInsensitive bool

	// WholeWordsOnly rejects any match whose start or end is adjacent
	// to a non-whitespace rune.
	WholeWordsOnly bool
}

// Stats is a read-only snapshot of an automaton's memory footprint,
// exposed for tooling that wants to report node counts and storage
// mode without reaching into internal packages.
type Stats struct {
	// NodeCount is the total number of trie nodes, root included.
	NodeCount int

	// Built reports whether Build has completed; before that the
	// store is still chunked and growing, after it is frozen and flat.
	Built bool
}
