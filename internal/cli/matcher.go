package cli

import (
	"fmt"

	"github.com/matchkit/ahocorasick/ahocorasick"
)

// buildMatcher loads the dictionary at path and builds a ValueMatcher
// over its entries. A dictionary entry with an empty value falls back
// to using its own key as the value, the common case where keys are
// their own payload. Duplicate keys are reported through o as
// warnings, not errors: the last entry wins, matching the generic
// façade's documented duplicate-key trade-off.
func buildMatcher(o *IO, path string) (*ahocorasick.ValueMatcher[string], Dictionary, error) {
	dict, err := LoadDictionary(path)
	if err != nil {
		return nil, Dictionary{}, err
	}

	m := ahocorasick.NewValueMatcher[string](ahocorasick.Options{
		CaseInsensitive: dict.CaseInsensitive,
		WholeWordsOnly:  dict.WholeWordsOnly,
	})

	seen := make(map[string]bool, len(dict.Entries))

	for _, e := range dict.Entries {
		value := e.Value
		if value == "" {
			value = e.Key
		}

		if seen[e.Key] {
			o.Warn("duplicate dictionary key %q, earlier value discarded", e.Key)
		}

		seen[e.Key] = true

		if err := m.Add(e.Key, value); err != nil {
			return nil, Dictionary{}, fmt.Errorf("adding key %q: %w", e.Key, err)
		}
	}

	if err := m.Build(); err != nil {
		return nil, Dictionary{}, fmt.Errorf("building automaton: %w", err)
	}

	return m, dict, nil
}
