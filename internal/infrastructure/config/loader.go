package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game     *GameFile
	Entities *EntitiesFile
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameFile, error) {
	var cfg GameFile
	if err := l.decode("game.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesFile, error) {
	var cfg EntitiesFile
	if err := l.decode("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// LoadAll loads and validates all configurations (game, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Game:     game,
		Entities: entities,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}

	return cfg, nil
}
