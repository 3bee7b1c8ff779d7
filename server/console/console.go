// Package console provides an operator REPL over a running world.World,
// reading lines from stdin (or any io.Reader for tests) and dispatching
// them through package cmd.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/beta173/core/server/cmd"
	"github.com/beta173/core/server/world"
)

const (
	defaultPromptPrefix = "> "
	maxHistoryEntries   = 128
)

// Console reads commands from an io.Reader (defaulting to os.Stdin) and
// executes them against a World.
type Console struct {
	w       *world.World
	log     *slog.Logger
	reader  io.Reader
	history []string
}

// New returns a Console bound to w, writing command output through log.
func New(w *world.World, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{w: w, log: log, reader: os.Stdin}
}

// WithReader sets a custom reader, enabling non-interactive tests.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run consumes commands until ctx is cancelled or the reader hits EOF.
func (c *Console) Run(ctx context.Context) {
	if c.reader != os.Stdin {
		c.runScanner(ctx)
		return
	}
	c.runInteractive(ctx)
}

func (c *Console) runScanner(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		c.execute(strings.TrimSpace(scanner.Text()))
	}
}

func (c *Console) runInteractive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(defaultPromptPrefix, c.complete,
			prompt.OptionTitle("server console"),
			prompt.OptionHistory(c.history),
			prompt.OptionPrefix(defaultPromptPrefix),
			prompt.OptionCompletionOnDown(),
			prompt.OptionMaxSuggestion(12),
		)
		c.execute(strings.TrimSpace(line))
	}
}

func (c *Console) execute(line string) {
	if line == "" {
		return
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}
	if out := cmd.Execute(c.w, line); out != "" {
		c.log.Info(out)
	}
}

func (c *Console) complete(doc prompt.Document) []prompt.Suggest {
	word := strings.TrimSpace(doc.GetWordBeforeCursor())
	suggestions := make([]prompt.Suggest, 0, len(cmd.Names()))
	for _, name := range cmd.Names() {
		suggestions = append(suggestions, prompt.Suggest{Text: name})
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}
