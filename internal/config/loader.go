package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "kokaton.yaml"

// LoadKokaton returns the game configuration. An explicit customPath
// must exist and parse. Otherwise the first readable and valid file of
// ~/.arcade/configs/kokaton.yaml and ./configs/kokaton.yaml wins, and
// the embedded defaults back everything. Files decode over the defaults,
// so a partial file only overrides the keys it names.
func LoadKokaton(customPath string) (KokatonConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KokatonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return KokatonConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// A broken file falls through to the next candidate.
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultKokatonYAML); err == nil {
		return cfg, nil
	}
	return DefaultKokatonConfig(), nil
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (KokatonConfig, error) {
	cfg := DefaultKokatonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KokatonConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KokatonConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the game loop cannot run with.
func (c KokatonConfig) Validate() error {
	var errs []error
	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		errs = append(errs, fmt.Errorf("play_area must be positive, got %dx%d", c.PlayArea.Width, c.PlayArea.Height))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate))
	}
	if c.Bombs.Count < 1 {
		errs = append(errs, fmt.Errorf("bombs.count must be at least 1, got %d", c.Bombs.Count))
	}
	if c.Bombs.Radius < 1 {
		errs = append(errs, fmt.Errorf("bombs.radius must be at least 1, got %d", c.Bombs.Radius))
	}
	if c.Bombs.Speed < 1 {
		errs = append(errs, fmt.Errorf("bombs.speed must be at least 1, got %d", c.Bombs.Speed))
	}
	if c.Player.Step < 1 {
		errs = append(errs, fmt.Errorf("player.step must be at least 1, got %d", c.Player.Step))
	}
	if c.Explosion.Life < 1 || c.Explosion.Flicker < 1 {
		errs = append(errs, fmt.Errorf("explosion life and flicker must be at least 1"))
	}
	if c.Holds.Loss < 0 || c.Holds.Win < 0 {
		errs = append(errs, fmt.Errorf("holds must not be negative"))
	}
	return errors.Join(errs...)
}

// ApplyPreset tunes cfg for a named difficulty. Fixed turns the speed
// ramp off; the others set where it starts, and easy and hard also
// change the bomb count and base speed.
func ApplyPreset(cfg *KokatonConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.Count, cfg.Bombs.Speed = 3, 4
	case DifficultyHard:
		cfg.Bombs.Count, cfg.Bombs.Speed = 8, 6
	}
}
