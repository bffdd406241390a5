package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/freecam"
	"github.com/jacobkapitein/thps3-free-cam/hook"
)

// Game is the HUD overlay. It only displays session status; all game-memory
// work happens on the frame hook's goroutine.
type Game struct {
	session *freecam.Session
	hook    *hook.FrameHook
}

func NewGame(session *freecam.Session, h *hook.FrameHook) *Game {
	return &Game{session: session, hook: h}
}

func (g *Game) Update() error {
	select {
	case <-g.hook.Done():
		if err := g.hook.Err(); err != nil {
			return fmt.Errorf("frame loop stopped: %w", err)
		}
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
