package term

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Loop drives a game on a Display until it is won, lost or abandoned.
type Loop struct {
	game    *breakout.Game
	display Display
	logger  *log.Logger
	screen  *core.Screen
	sleep   func(time.Duration)
}

// NewLoop creates a loop. A nil logger discards everything.
func NewLoop(game *breakout.Game, display Display, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Config().ScreenSize()
	return &Loop{
		game:    game,
		display: display,
		logger:  logger,
		screen:  core.NewScreen(w, h),
		sleep:   time.Sleep,
	}
}

// Run plays until the game ends or the player quits, and returns the
// outcome. OutcomePlaying means the player quit. The display is left open.
func (l *Loop) Run() breakout.Outcome {
	interval := l.game.Config().Timing.FrameInterval

	for {
		l.game.Render(l.screen)
		Blit(l.display, l.screen)
		l.display.Show()

		l.sleep(interval)

		outcome := l.game.Advance()
		for _, b := range l.game.LastMove().Broken {
			l.logger.Debug("block broken", "row", b.Row, "col", b.Col,
				"remaining", l.game.Grid().Remaining(), "frame", l.game.Frames())
		}
		if outcome.Done() {
			l.logger.Info("game over", "outcome", outcome, "frame", l.game.Frames())
			return outcome
		}

		action := l.display.PollAction()
		if action == core.ActionQuit {
			l.logger.Info("quit", "frame", l.game.Frames())
			return breakout.OutcomePlaying
		}
		l.game.ApplyInput(action)
	}
}

// Run opens a tcell display, plays game on it and restores the terminal
// before returning, even if the game panics.
func Run(game *breakout.Game, logger *log.Logger) (outcome breakout.Outcome, err error) {
	w, h := game.Config().ScreenSize()
	display, err := NewTcellDisplay(w, h)
	if err != nil {
		return breakout.OutcomePlaying, fmt.Errorf("open display: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			display.Close()
			panic(r)
		}
		display.Close()
	}()

	return NewLoop(game, display, logger).Run(), nil
}
