package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// DictEntry is one key/value pair of a dictionary file.
type DictEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Dictionary is the on-disk shape of a dictionary file: JSONC (JSON
// with comments and trailing commas), standardized with hujson before
// being unmarshaled the same way config.go parses .tk.json.
type Dictionary struct {
	CaseInsensitive bool        `json:"case_insensitive"`
	WholeWordsOnly  bool        `json:"whole_words_only"`
	Entries         []DictEntry `json:"entries"`
}

// LoadDictionary reads and parses a dictionary file at path.
func LoadDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Dictionary{}, fmt.Errorf("reading dictionary %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Dictionary{}, fmt.Errorf("invalid JSONC in %s: %w", path, err)
	}

	var dict Dictionary

	if err := json.Unmarshal(standardized, &dict); err != nil {
		return Dictionary{}, fmt.Errorf("invalid dictionary JSON in %s: %w", path, err)
	}

	return dict, nil
}
