// Package builtin registers the administrative console commands available
// against a running world.World: stop, time, gc and about. Player-facing
// commands (chat, gamemode, teleport, ...) belong to a network/player
// layer this module does not implement.
package builtin

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/beta173/core/server/cmd"
	"github.com/beta173/core/server/world"
)

func init() {
	cmd.Register(stopCommand{})
	cmd.Register(timeCommand{})
	cmd.Register(gcCommand{})
	cmd.Register(aboutCommand{})
}

type stopCommand struct{}

func (stopCommand) Name() string { return "stop" }
func (stopCommand) Run(w *world.World, args []string) string {
	return "stop requested; shutdown is driven by the process host, not by world.World itself"
}

type timeCommand struct{}

func (timeCommand) Name() string { return "time" }
func (timeCommand) Run(w *world.World, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf("tick %d", w.CurrentTick())
	}
	return "usage: time"
}

type gcCommand struct{}

func (gcCommand) Name() string { return "gc" }
func (gcCommand) Run(w *world.World, args []string) string {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	debug.FreeOSMemory()
	runtime.ReadMemStats(&after)
	return fmt.Sprintf("heap %d -> %d bytes", before.HeapAlloc, after.HeapAlloc)
}

type aboutCommand struct{}

func (aboutCommand) Name() string { return "about" }
func (aboutCommand) Run(w *world.World, args []string) string {
	return fmt.Sprintf("world dimension=%v tick=%d", w.Dimension(), w.CurrentTick())
}
