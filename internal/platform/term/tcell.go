package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrTerminalTooSmall is returned when the arena does not fit the terminal.
var ErrTerminalTooSmall = errors.New("terminal too small")

var tcellColors = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBorder:  tcell.ColorGray,
	core.ColorBall:    tcell.ColorWhite,
	core.ColorPaddle:  tcell.ColorAqua,
	core.ColorBlockA:  tcell.ColorRed,
	core.ColorBlockB:  tcell.ColorYellow,
	core.ColorBlockC:  tcell.ColorGreen,
	core.ColorBlockD:  tcell.ColorBlue,
}

// TcellDisplay is a Display backed by a tcell screen.
type TcellDisplay struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewTcellDisplay takes over the terminal. It fails if the terminal is
// smaller than width x height, after restoring it.
func NewTcellDisplay(width, height int) (*TcellDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.HideCursor()
	screen.Clear()

	if w, h := screen.Size(); w < width || h < height {
		screen.Fini()
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, width, height, w, h)
	}

	d := &TcellDisplay{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}

	// PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case d.events <- ev:
			default:
			}
		}
	}()

	return d, nil
}

// SetCell implements Display.
func (d *TcellDisplay) SetCell(x, y int, r rune, c core.Color) {
	fg, ok := tcellColors[c]
	if !ok {
		fg = tcell.ColorDefault
	}
	d.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg))
}

// Show implements Display.
func (d *TcellDisplay) Show() {
	d.screen.Show()
}

// PollAction implements Display.
func (d *TcellDisplay) PollAction() core.Action {
	action := core.ActionNone
	for {
		select {
		case ev := <-d.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := mapKey(ev)
				if a == core.ActionQuit {
					return a
				}
				if a.IsDirectional() {
					action = a
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}
		default:
			return action
		}
	}
}

// Close implements Display.
func (d *TcellDisplay) Close() {
	d.screen.Fini()
}

func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return core.ActionLeft
		case 'd', 'D':
			return core.ActionRight
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
