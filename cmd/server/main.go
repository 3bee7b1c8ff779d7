// Command server runs a standalone world.World, ticking it at a fixed
// rate and exposing an operator console. The network layer that would
// accept player connections is out of scope for this module; main wires
// only the simulation core and its ambient config/logging/persistence.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pelletier/go-toml"

	"github.com/beta173/core/server/block/cube"
	_ "github.com/beta173/core/server/block"
	_ "github.com/beta173/core/server/cmd/builtin"
	_ "github.com/beta173/core/server/entity"
	"github.com/beta173/core/server/console"
	"github.com/beta173/core/server/persist"
	"github.com/beta173/core/server/world"
)

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	WorldDir        string `toml:"world_dir"`
	Seed            int64  `toml:"seed"`
	RandomTickSpeed int    `toml:"random_tick_speed"`
	Nether          bool   `toml:"nether"`
}

func loadConfig(path string) fileConfig {
	conf := fileConfig{WorldDir: "world", RandomTickSpeed: 3}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		slog.Warn("malformed config.toml, using defaults", "err", err)
	}
	return conf
}

func main() {
	log := slog.New(slog.NewTextHandler(colorable.NewColorableStdout(), nil))
	slog.SetDefault(log)

	conf := loadConfig("config.toml")

	src, err := persist.Open(conf.WorldDir)
	if err != nil {
		log.Error("failed to open world storage", "err", err)
		os.Exit(1)
	}
	defer src.Close()

	dim := world.Overworld
	if conf.Nether {
		dim = world.Nether
	}
	w := world.Config{
		Log:             log,
		Dim:             dim,
		RandomTickSpeed: conf.RandomTickSpeed,
		Source:          src,
		Seed:            conf.Seed,
	}.New()

	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			pos := cube.ChunkPos{x, z}
			snap, err := src.Load(pos)
			if err != nil {
				log.Error("failed to load chunk", "pos", pos, "err", err)
				continue
			}
			w.InsertChunk(pos, snap.Chunk)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go console.New(w, log).Run(ctx)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case <-ticker.C:
			w.Tick()
			for _, ev := range w.DrainEvents() {
				_ = ev
			}
		}
	}
}
