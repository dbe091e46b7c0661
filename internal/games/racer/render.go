package racer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Layout constants
const (
	hudWidth       = 22  // Sidebar with score and controls
	minFieldCols   = 10  // Narrowest playfield worth drawing beside a HUD
	cellAspect     = 2.0 // Terminal cells are roughly twice as tall as wide
	hitFlashFrames = 24  // Frames the car blinks after losing a life
)

// Visual characters for rendering
const (
	LaneChar  = '┊'
	HeartChar = '♥'
)

// layout maps playfield pixels onto screen cells.
type layout struct {
	field  CellRect // Inner playfield area, inside the border
	hud    bool     // Sidebar HUD (false = one status line on top)
	hudX   int
	sx, sy float64 // Cells per pixel
}

func computeLayout(screenW, screenH int, fieldW, fieldH float64) layout {
	l := layout{hud: screenW >= hudWidth+minFieldCols+3}

	availW := screenW - 2
	availH := screenH - 2
	top := 1
	if l.hud {
		availW -= hudWidth + 1
	} else {
		availH--
		top = 2
	}

	rows := availH
	cols := int(math.Round(float64(rows) * fieldW / fieldH * cellAspect))
	if cols > availW {
		cols = availW
		rows = int(math.Round(float64(cols) * fieldH / fieldW / cellAspect))
	}
	cols = core.Clamp(cols, 1, core.Max(availW, 1))
	rows = core.Clamp(rows, 1, core.Max(availH, 1))

	l.field = CellRect{X: 1, Y: top, W: cols, H: rows}
	l.hudX = cols + 4
	l.sx = float64(cols) / fieldW
	l.sy = float64(rows) / fieldH
	return l
}

// toCells converts a playfield rectangle to screen cells. Every entity
// covers at least one cell.
func (l layout) toCells(r core.Rect) CellRect {
	x0 := int(math.Floor(r.X * l.sx))
	x1 := int(math.Ceil(r.Right() * l.sx))
	y0 := int(math.Floor(r.Y * l.sy))
	y1 := int(math.Ceil(r.Bottom() * l.sy))
	return CellRect{
		X: l.field.X + x0,
		Y: l.field.Y + y0,
		W: core.Max(x1-x0, 1),
		H: core.Max(y1-y0, 1),
	}
}

// Render draws a snapshot into the screen buffer.
func Render(snap Snapshot, dst *core.Screen, skins Skins) {
	dst.Clear()
	if dst.Width() < 16 || dst.Height() < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	l := computeLayout(dst.Width(), dst.Height(), snap.FieldW, snap.FieldH)
	dst.DrawBox(l.field.X-1, l.field.Y-1, l.field.W+2, l.field.H+2, core.ColorGray)
	drawLane(dst, l, snap.Frame)

	for _, o := range snap.Obstacles {
		skins.Obstacle.Draw(dst, l.field, l.toCells(o))
	}
	for _, c := range snap.Coins {
		skins.Coin.Draw(dst, l.field, l.toCells(c))
	}

	player := skins.Player
	if snap.LastHit > 0 && snap.Frame-snap.LastHit < hitFlashFrames && snap.Frame%6 < 3 {
		player = FillSkin{Rune: '░', Color: core.ColorBrightRed}
	}
	player.Draw(dst, l.field, l.toCells(snap.Player))

	if l.hud {
		drawHUD(dst, l, snap)
	} else {
		drawStatusLine(dst, snap)
	}

	switch snap.State {
	case StateIdle:
		drawMessage(dst, l.field,
			"SPEED RACER",
			"",
			"Press Enter to start",
			fmt.Sprintf("< %s >", strings.ToUpper(string(snap.Difficulty))),
			fmt.Sprintf("Best: %d", snap.BestScore),
		)
	case StatePaused:
		drawMessage(dst, l.field, "PAUSED", "", "Press P to resume")
	case StateOver:
		best := fmt.Sprintf("Best: %d", snap.BestScore)
		if snap.Score > 0 && snap.Score == snap.BestScore {
			best = "New best score!"
		}
		drawMessage(dst, l.field,
			"GAME OVER",
			"",
			fmt.Sprintf("Your final score: %d", snap.Score),
			best,
			"Enter to restart",
		)
	}
}

// drawLane draws the dashed center line, scrolling with the frame count.
func drawLane(dst *core.Screen, l layout, frame int) {
	x := l.field.X + l.field.W/2
	offset := frame / 4
	for row := 0; row < l.field.H; row++ {
		if ((row-offset)%3+3)%3 == 2 {
			continue
		}
		dst.SetColored(x, l.field.Y+row, LaneChar, core.ColorGray)
	}
}

func drawHUD(dst *core.Screen, l layout, snap Snapshot) {
	x := l.hudX
	y := l.field.Y

	dst.DrawTextColored(x, y, "SPEED RACER", core.ColorBrightYellow)
	y += 2
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Best   %d", snap.BestScore))
	y++
	if snap.LivesMode {
		dst.DrawText(x, y, "Lives  ")
		dst.DrawTextColored(x+7, y, strings.Repeat(string(HeartChar), core.Max(snap.Lives, 0)), core.ColorBrightRed)
		y++
	}
	if snap.CoinsOn {
		dst.DrawText(x, y, "Coins  ")
		dst.DrawTextColored(x+7, y, fmt.Sprintf("%d", snap.CoinCount), core.ColorYellow)
		y++
	}
	dst.DrawText(x, y, fmt.Sprintf("Level  %s", snap.Difficulty))
	y += 2

	controls := []string{"←/→  steer"}
	if snap.Vertical {
		controls = append(controls, "↑/↓  move")
	}
	controls = append(controls, "P    pause", "Tab  scores", "Q    quit")
	for _, c := range controls {
		dst.DrawTextColored(x, y, c, core.ColorGray)
		y++
	}
}

func drawStatusLine(dst *core.Screen, snap Snapshot) {
	parts := []string{
		fmt.Sprintf("Score %d", snap.Score),
		fmt.Sprintf("Best %d", snap.BestScore),
	}
	if snap.LivesMode {
		parts = append(parts, fmt.Sprintf("Lives %d", snap.Lives))
	}
	if snap.CoinsOn {
		parts = append(parts, fmt.Sprintf("Coins %d", snap.CoinCount))
	}
	dst.DrawText(1, 0, strings.Join(parts, "  "))
}

// drawMessage draws a boxed message centered on the playfield.
func drawMessage(dst *core.Screen, field CellRect, lines ...string) {
	longest := 0
	for _, line := range lines {
		longest = core.Max(longest, len([]rune(line)))
	}

	boxW := core.Min(longest+4, dst.Width())
	boxH := len(lines) + 2
	boxX := core.Max(field.X+(field.W-boxW)/2, 0)
	boxY := core.Max(field.Y+(field.H-boxH)/2, 0)

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, boxY+1+i, line, c)
	}
}
