package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	atomicfile "github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
)

// exportedMatch is the JSON shape of one row in an export report.
type exportedMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value"`
}

// ExportCmd scans text and atomically writes the full match report to
// a file, so a reader never observes a half-written report even if the
// process is interrupted mid-write.
func ExportCmd() *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "export <dict> <text> <out-file>",
		Short: "Write a JSON match report atomically",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 3 {
				return errors.New("usage: export <dict> <text> <out-file>")
			}

			m, _, err := buildMatcher(o, args[0])
			if err != nil {
				return err
			}

			seq, err := m.Parse(args[1])
			if err != nil {
				return err
			}

			var rows []exportedMatch

			for match := range seq {
				rows = append(rows, exportedMatch{Start: match.Start, End: match.End, Value: match.Value})
			}

			report, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}

			if err := atomicfile.WriteFile(args[2], bytes.NewReader(report)); err != nil {
				return fmt.Errorf("writing report to %s: %w", args[2], err)
			}

			o.Printf("wrote %d matches to %s\n", len(rows), args[2])

			return nil
		},
	}
}
