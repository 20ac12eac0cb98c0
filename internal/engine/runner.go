package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
)

// Result summarizes a finished run.
type Result struct {
	GameID  string
	Outcome core.Outcome
	Score   int
	Frames  int  // Frames the game completed
	Steps   int  // Calls to Step, including paused and terminal frames
	Quit    bool // Ended by a quit request rather than an outcome
	Elapsed time.Duration
}

// Runner drives a game loop.
type Runner struct {
	Game    registry.Game
	Surface core.Surface
	Input   InputSource
	Clock   Clock
	Logger  *log.Logger

	// MaxFrames stops the run after that many steps. Zero means no limit.
	MaxFrames int
}

// Run steps the game until it reaches a terminal outcome, a quit is
// requested, ctx is done, or MaxFrames is reached. The game must already
// be Reset. Quit is observed at the top of each frame, before the game
// sees that frame's input.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Game == nil {
		return Result{}, errors.New("engine: no game")
	}
	clock := r.Clock
	if clock == nil {
		clock = RealClock{}
	}
	dst := r.Surface
	if dst == nil {
		dst = &core.NopSurface{}
	}
	input := r.Input
	if input == nil {
		input = InputFunc(core.NewInputFrame)
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rate := r.Game.FrameRate()
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	frame := time.Second / time.Duration(rate)

	res := Result{GameID: r.Game.ID()}
	started := clock.Now()
	finish := func() Result {
		st := r.Game.State()
		res.Outcome = st.Outcome
		res.Score = st.Score
		res.Frames = st.Frame
		res.Elapsed = clock.Now().Sub(started)
		return res
	}

	logger.Debug("run started", "game", res.GameID, "fps", rate, "max_frames", r.MaxFrames)

	for {
		if ctx.Err() != nil {
			res.Quit = true
			return finish(), nil
		}
		in := input.Poll()
		if in.Has(core.ActionQuit) {
			res.Quit = true
			logger.Debug("quit requested", "game", res.GameID)
			return finish(), nil
		}

		start := clock.Now()
		step := r.Game.Step(in, dst)
		res.Steps++

		if step.Hold > 0 {
			if err := clock.Sleep(ctx, step.Hold); err != nil {
				res.Quit = true
				return finish(), nil
			}
		}
		if step.State.Outcome.Terminal() {
			out := finish()
			logger.Info("game over", "game", out.GameID, "outcome", out.Outcome, "score", out.Score, "frames", out.Frames)
			return out, nil
		}
		if r.MaxFrames > 0 && res.Steps >= r.MaxFrames {
			logger.Debug("frame limit reached", "game", res.GameID, "steps", res.Steps)
			return finish(), nil
		}

		// Throttle to the frame rate, measured from this frame's start
		if wait := frame - clock.Now().Sub(start); wait > 0 {
			if err := clock.Sleep(ctx, wait); err != nil {
				res.Quit = true
				return finish(), nil
			}
		}
	}
}
