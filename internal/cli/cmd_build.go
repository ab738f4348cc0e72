package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"
)

// BuildCmd loads a dictionary and reports the resulting automaton's
// memory footprint: node count is the headline number, since each
// node costs roughly five 32-bit integers.
func BuildCmd() *Command {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "build <dict>",
		Short: "Load a dictionary and report automaton stats",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errors.New("missing dictionary file path")
			}

			m, dict, err := buildMatcher(o, args[0])
			if err != nil {
				return err
			}

			stats := m.Stats()

			o.Printf("dictionary:        %s\n", args[0])
			o.Printf("keys:              %d\n", len(dict.Entries))
			o.Printf("nodes:             %d\n", stats.NodeCount)
			o.Printf("built:             %v\n", stats.Built)
			o.Printf("case_insensitive:  %v\n", dict.CaseInsensitive)
			o.Printf("whole_words_only:  %v\n", dict.WholeWordsOnly)

			return nil
		},
	}
}
