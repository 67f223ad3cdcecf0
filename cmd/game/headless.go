package main

import (
	"fmt"
	"io"
	"log"

	"github.com/younwookim/starfall/internal/application/replay"
	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// runHeadless plays an autopilot round, replays its recorded input with the
// same seed and fails if the two runs end differently
func runHeadless(w io.Writer, cfg *config.GameConfig, catalog *assets.Catalog, seed int64, frames int, dump bool) error {
	rules := system.NewRules(cfg)
	dt := 1.0 / float64(cfg.Game.Display.Framerate)

	data, played := replay.Play(rules, catalog, replay.DefaultAutopilot(), seed, frames, dt)
	log.Printf("Autopilot round: score %d after %d frames, ended=%v (seed: %d)",
		played.Score, played.Frames, played.Ended, seed)

	replayed := replay.Simulate(rules, catalog, data, dt)
	if replayed != played {
		return fmt.Errorf("replay diverged: played %+v, replayed %+v", played, replayed)
	}
	log.Printf("Replay matched: %d frames, score %d", replayed.Frames, replayed.Score)

	if dump {
		if err := data.Encode(w); err != nil {
			return fmt.Errorf("failed to write replay: %w", err)
		}
	}
	return nil
}
