package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/mattn/go-runewidth"
)

// MatchCmd runs a one-shot scan of a dictionary against text: either
// an argument, or stdin if none is given.
func MatchCmd() *Command {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "match <dict> [text]",
		Short: "Scan text for every dictionary match",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errors.New("missing dictionary file path")
			}

			text, err := matchInputText(args)
			if err != nil {
				return err
			}

			m, _, err := buildMatcher(o, args[0])
			if err != nil {
				return err
			}

			seq, err := m.Parse(text)
			if err != nil {
				return err
			}

			found := false

			for match := range seq {
				found = true
				o.Println(formatMatchRow(match.Start, match.End, match.Value))
			}

			if !found {
				o.Println("(no matches)")
			}

			return nil
		},
	}
}

func matchInputText(args []string) (string, error) {
	if len(args) >= 2 {
		return args[1], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return string(data), nil
}

// formatMatchRow pads the value column to a fixed display width using
// go-runewidth's display-width calculation (not rune count), so tables
// of matches with wide (e.g. CJK) characters still line up in a
// monospace terminal.
func formatMatchRow(start, end int, value string) string {
	const valueColumnWidth = 20

	padding := valueColumnWidth - runewidth.StringWidth(value)
	if padding < 0 {
		padding = 0
	}

	return fmt.Sprintf("%6d %6d  %s%s", start, end, value, spaces(padding))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}
