package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/matchkit/ahocorasick/ahocorasick"
)

// ReplCmd starts an interactive prompt over a single loaded
// dictionary, grounded on sloty's liner-based command loop: readline
// history, tab completion over the REPL's command names, and Ctrl-C or
// EOF ending the session.
func ReplCmd() *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	replConfigPath := fs.String("repl-config", "", "YAML file with REPL preferences")

	return &Command{
		Flags: fs,
		Usage: "repl <dict> [--repl-config file]",
		Short: "Interactive prompt for matching text against a dictionary",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errors.New("missing dictionary file path")
			}

			m, dict, err := buildMatcher(o, args[0])
			if err != nil {
				return err
			}

			cfg, err := LoadReplConfig(*replConfigPath)
			if err != nil {
				return err
			}

			repl := &matchREPL{matcher: m, keyCount: len(dict.Entries), cfg: cfg}

			return repl.run(o)
		},
	}
}

type matchREPL struct {
	matcher  *ahocorasick.ValueMatcher[string]
	keyCount int
	cfg      ReplConfig
	liner    *liner.State
}

func (r *matchREPL) run(o *IO) error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(r.cfg.HistoryFile); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}

	o.Println(fmt.Sprintf("acmatch repl - %d keys loaded", r.keyCount))
	o.Println("Type 'help' for available commands.")

	for {
		line, err := r.liner.Prompt(r.cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				o.Println("Bye!")
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		cmd, rest, _ := strings.Cut(line, " ")

		switch strings.ToLower(cmd) {
		case "exit", "quit", "q":
			o.Println("Bye!")
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp(o)
		case "match":
			r.cmdMatch(o, rest)
		default:
			o.Println(fmt.Sprintf("unknown command: %s (type 'help' for commands)", cmd))
		}
	}

	r.saveHistory()

	return nil
}

func (r *matchREPL) cmdMatch(o *IO, text string) {
	if text == "" {
		o.Println("usage: match <text>")
		return
	}

	seq, err := r.matcher.Parse(text)
	if err != nil {
		o.Println("error:", err.Error())
		return
	}

	found := false

	for row := range seq {
		found = true
		o.Println(formatMatchRow(row.Start, row.End, row.Value))
	}

	if !found {
		o.Println("(no matches)")
	}
}

func (r *matchREPL) printHelp(o *IO) {
	o.Println("Commands:")
	o.Println("  match <text>   Scan text for dictionary matches")
	o.Println("  help           Show this help")
	o.Println("  exit / quit / q  Exit")
}

func (r *matchREPL) saveHistory() {
	if r.cfg.HistoryFile == "" {
		return
	}

	if f, err := os.Create(r.cfg.HistoryFile); err == nil {
		_, _ = r.liner.WriteHistory(f)
		_ = f.Close()
	}
}

func (r *matchREPL) completer(line string) []string {
	commands := []string{"match", "help", "exit", "quit", "q"}

	var completions []string

	lower := strings.ToLower(line)
	for _, c := range commands {
		if strings.HasPrefix(c, lower) {
			completions = append(completions, c)
		}
	}

	return completions
}
