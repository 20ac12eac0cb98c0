package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default game configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		PlayArea:  PlayArea{Width: 1100, Height: 650},
		FrameRate: 50,
		Bombs: Bombs{
			Count:  5,
			Radius: 10,
			Color:  "red",
			Speed:  5,
		},
		Player: Player{
			StartX: 300,
			StartY: 200,
			Step:   5,
		},
		Explosion: Explosion{
			Life:    30,
			Flicker: 4,
		},
		Holds: Holds{
			Loss: 1 * time.Second,
			Win:  3 * time.Second,
		},
		Score: ScoreHUD{
			Label:       "Score",
			X:           100,
			YFromBottom: 50,
		},
		Endless: Endless{WaveGrowth: 1},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByScore,
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKokatonYAML
}
