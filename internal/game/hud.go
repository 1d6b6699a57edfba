package game

import (
	"fmt"
	"strings"

	"gitoffice/internal/grouping"
	"gitoffice/internal/player"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel = rl.NewColor(18, 18, 24, 230)
	colorText    = rl.NewColor(200, 200, 208, 255)
	colorAccent  = rl.NewColor(108, 99, 255, 255)
)

// initHUDStyle sets the dark raygui theme used by the HUD and terminal panel.
func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

func (g *Game) DrawHUD() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	gui.StatusBar(rl.Rectangle{X: 10, Y: 10, Width: 320, Height: 32}, g.TimerText())

	if g.Levels.GameOver() {
		text := "GAME OVER"
		size := int32(80)
		tw := rl.MeasureText(text, size)
		rl.DrawText(text, int32(w/2)-tw/2, int32(h/2)-size/2, size, rl.Red)
		return
	}

	if g.State.Is(player.Interacting) {
		g.drawTerminalPanel(w, h)
		return
	}

	// Crosshair
	rl.DrawCircle(int32(w/2), int32(h/2), 3, rl.RayWhite)

	if prompt := g.Prompt(); prompt != "" {
		for i, ln := range strings.Split(prompt, "\n") {
			rl.DrawText(ln, int32(w/2)+20, int32(h/2)+10+int32(i)*24, 20, rl.RayWhite)
		}
	}
	g.drawLookedAtCode(w, h)

	if g.DebugMode {
		rl.DrawFPS(10, 50)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 10, 75, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("State: %s  Held: %s", g.State.Current(), g.Held.Kind()), 10, 95, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Bodies: %d", g.Physics.DynamicObjectCount()), 10, 115, 16, rl.Green)
	}
}

// drawLookedAtCode lists the text of the line or bundle under the crosshair.
func (g *Game) drawLookedAtCode(w, h float32) {
	target := g.LookedAt.Object(g.Scene)
	if target == nil {
		return
	}
	lines := grouping.CodeLines(g.Scene, target)
	if len(lines) == 0 {
		return
	}
	y := h - float32(len(lines))*22 - 20
	gui.Panel(rl.Rectangle{X: 10, Y: y - 10, Width: w / 2, Height: float32(len(lines))*22 + 20}, "")
	for i, cl := range lines {
		rl.DrawText(cl.Line.Code, 20, int32(y)+int32(i)*22, 18, PaintColor(cl.Color))
	}
}

// drawTerminalPanel mirrors the terminal screen as a 2D panel while the player types.
func (g *Game) drawTerminalPanel(w, h float32) {
	bounds := rl.Rectangle{X: w * 0.15, Y: h * 0.12, Width: w * 0.7, Height: h * 0.76}
	gui.Panel(bounds, "git terminal")
	lines := g.Terminal.Lines()
	for i, ln := range lines {
		gui.Label(rl.Rectangle{X: bounds.X + 12, Y: bounds.Y + 32 + float32(i)*26, Width: bounds.Width - 24, Height: 24}, ln)
	}
}
