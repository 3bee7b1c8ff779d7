// Package cmd is the minimal console-command seam: the world-simulation
// core needs no in-game chat/permission command system (that belongs to
// the network/player layer this module does not implement), but an
// operator still needs a handful of administrative verbs against a
// running World from the console.
package cmd

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/beta173/core/server/world"
)

// Command is a single console-invokable verb.
type Command interface {
	Name() string
	Run(w *world.World, args []string) string
}

var (
	mu       sync.RWMutex
	registry = map[string]Command{}
)

// Register installs a command under its own Name.
func Register(c Command) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(c.Name())] = c
}

// ByName looks up a registered command.
func ByName(name string) (Command, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// Names returns every registered command name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute parses and runs a command line (without a leading slash) against
// w, returning the text to display back to the operator.
func Execute(w *world.World, line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	fields := strings.Fields(line)
	cmd, ok := ByName(fields[0])
	if !ok {
		return fmt.Sprintf("unknown command: %s", fields[0])
	}
	return cmd.Run(w, fields[1:])
}
