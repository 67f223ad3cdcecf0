package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/starfall/internal/application/game"
	"github.com/younwookim/starfall/internal/application/scene"
	"github.com/younwookim/starfall/internal/application/scene/playing"
	"github.com/younwookim/starfall/internal/application/scene/title"
	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
	"github.com/younwookim/starfall/internal/infrastructure/config"
	"github.com/younwookim/starfall/internal/infrastructure/sound"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	headless := flag.Bool("headless", false, "Run an autopilot round without a window and verify its replay")
	frames := flag.Int("frames", 3600, "Frame limit for -headless")
	seedFlag := flag.Int64("seed", 0, "Gameplay RNG seed (0 = time based)")
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	dump := flag.Bool("dump", false, "With -headless, print the recorded replay as JSON to stdout")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := assets.NewCatalog(cfg.Entities.Templates)
	if err != nil {
		log.Fatalf("Failed to build templates: %v", err)
	}
	if missing := catalog.Missing(
		assets.TemplatePlayer, assets.TemplateLaser, assets.TemplateEnemy,
		assets.TemplatePowerUp, assets.TemplateExplosion, assets.TemplateStartScene,
	); len(missing) > 0 {
		log.Printf("Missing templates, their spawns are skipped: %v", missing)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if *headless {
		if err := runHeadless(os.Stdout, cfg, catalog, seed, *frames, *dump); err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		return
	}

	display := cfg.Game.Display

	audioCtx := audio.NewContext(cfg.Game.Audio.SampleRate)
	sounds, err := sound.NewBank(audioCtx, cfg.Game.Audio)
	if err != nil {
		log.Fatalf("Failed to build sounds: %v", err)
	}

	font, err := assets.NewFontSource()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	input := system.NewInputSystem(float64(display.SceneWidth), float64(display.SceneHeight))
	env, err := scene.NewEnv(cfg, catalog, font, input, sounds)
	if err != nil {
		log.Fatalf("Failed to prepare scenes: %v", err)
	}

	// Each round gets the next seed so a fixed -seed reproduces a whole session
	var newTitle func() scene.Scene
	newRound := func() scene.Scene {
		round := playing.New(env, seed, newTitle)
		seed++
		return round
	}
	newTitle = func() scene.Scene {
		return title.New(env, newRound)
	}

	g := game.New(newTitle(), display.SceneWidth, display.SceneHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(display.SceneWidth)*display.WindowScale),
		int(float64(display.SceneHeight)*display.WindowScale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads configs from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}
