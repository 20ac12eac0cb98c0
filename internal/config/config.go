// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"time"

	"github.com/vovakirdan/kokaton/internal/core"
)

// KokatonConfig contains all configuration for the bomb-dodging game.
// The defaults are the fixed constants of the classic game.
type KokatonConfig struct {
	PlayArea   PlayArea         `yaml:"play_area"`
	FrameRate  int              `yaml:"frame_rate"`
	Bombs      Bombs            `yaml:"bombs"`
	Player     Player           `yaml:"player"`
	Explosion  Explosion        `yaml:"explosion"`
	Holds      Holds            `yaml:"holds"`
	Score      ScoreHUD         `yaml:"score"`
	Endless    Endless          `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayArea is the fixed region all entities must stay within.
type PlayArea struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Size returns the play area as a core.Size.
func (p PlayArea) Size() core.Size {
	return core.Size{W: p.Width, H: p.Height}
}

// Bombs defines the hazards spawned at game start.
type Bombs struct {
	Count  int    `yaml:"count"`
	Radius int    `yaml:"radius"`
	Color  string `yaml:"color"`
	Speed  int    `yaml:"speed"` // Magnitude of each velocity component
}

// Player defines the spawn point and per-key step of the player.
type Player struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Step   int `yaml:"step"`
}

// Explosion defines the lifetime and flicker period of explosion effects.
type Explosion struct {
	Life    int `yaml:"life"`    // Frames
	Flicker int `yaml:"flicker"` // Frames per animation frame
}

// Holds defines how long terminal banners stay on screen.
type Holds struct {
	Loss time.Duration `yaml:"loss"`
	Win  time.Duration `yaml:"win"`
}

// ScoreHUD defines where and how the score is drawn.
type ScoreHUD struct {
	Label       string `yaml:"label"`
	X           int    `yaml:"x"`             // Center x
	YFromBottom int    `yaml:"y_from_bottom"` // Center y, measured from the bottom edge
}

// Endless defines wave growth for endless mode.
type Endless struct {
	WaveGrowth int `yaml:"wave_growth"` // Extra bombs per cleared wave
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to bomb speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
