package config

import "math"

// Progression kinds accepted in DifficultyConfig.Progression.Type.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// SpeedRamp scales endless-wave bomb speed with player progress.
// The ramp starts at the configured initial level and reaches full
// strength once the score (or frame count) hits Progression.MaxAt.
type SpeedRamp struct {
	kind  string
	span  int
	floor float64
	boost float64
}

func NewSpeedRamp(cfg DifficultyConfig) SpeedRamp {
	r := SpeedRamp{
		kind:  cfg.Progression.Type,
		span:  max(cfg.Progression.MaxAt, 1),
		floor: min(max(cfg.InitialLevel, 0), 1),
		boost: cfg.Scaling.SpeedMultiplier,
	}
	if !cfg.Enabled {
		r.kind = ProgressNone
	}
	return r
}

// Active reports whether speeds ever change.
func (r SpeedRamp) Active() bool {
	return r.kind == ProgressByScore || r.kind == ProgressByTime
}

// Level is the ramp position in [0, 1] after score points or frames.
func (r SpeedRamp) Level(score, frames int) float64 {
	var done int
	switch r.kind {
	case ProgressByScore:
		done = score
	case ProgressByTime:
		done = frames
	default:
		return r.floor
	}
	t := min(max(float64(done)/float64(r.span), 0), 1)
	return r.floor + t*(1-r.floor)
}

// BombSpeed returns base grown by up to base*SpeedMultiplier.
// The result is never slower than base.
func (r SpeedRamp) BombSpeed(base, score, frames int) int {
	if !r.Active() {
		return base
	}
	grown := int(math.Round(float64(base) * (1 + r.Level(score, frames)*r.boost)))
	return max(grown, base)
}
