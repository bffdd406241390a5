package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/freecam"
	"github.com/jacobkapitein/thps3-free-cam/ui"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBg)

	st := g.session.Status()

	// Status panel
	ui.Panel(screen, 10, 10, config.ScreenWidth-20, 70)
	ui.Label(screen, 20, 16, "THPS3 Free Cam")
	ui.StatusLight(screen, 20, 36, st.Mode == freecam.FreeCam,
		fmt.Sprintf("Free cam [%s]", st.Mode))
	ui.StatusLight(screen, 20, 54, st.PatchApplied, "Engine camera code disabled")

	// Camera panel
	ui.Panel(screen, 10, 90, config.ScreenWidth-20, 70)
	ui.Label(screen, 20, 96, fmt.Sprintf("Position  X %.1f  Y %.1f  Z %.1f",
		st.Position[0], st.Position[1], st.Position[2]))
	ui.Label(screen, 20, 114, fmt.Sprintf("Yaw %.2f  Pitch %.2f", st.Yaw, st.Pitch))
	ui.Label(screen, 20, 132, fmt.Sprintf("Speed %.1f", st.Speed))

	// Controls panel
	ui.Panel(screen, 10, 170, config.ScreenWidth-20, 88)
	ui.Label(screen, 20, 176, "P      toggle engine camera code")
	ui.Label(screen, 20, 192, "M      toggle free cam (mouse look)")
	ui.Label(screen, 20, 208, "I/K J/L U/O   move / strafe / up-down")
	ui.Label(screen, 20, 224, "PgUp/PgDn     speed up / down")

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("frames: %d", st.Frames), config.ScreenWidth-110, 10)
}
