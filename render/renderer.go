package render

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// SoundState is the audio indicator shown in the status bar
type SoundState int

const (
	SoundUnavailable SoundState = iota
	SoundOn
	SoundMuted
)

func (s SoundState) String() string {
	switch s {
	case SoundOn:
		return "on"
	case SoundMuted:
		return "muted"
	default:
		return "n/a"
	}
}

// HUD carries display state that lives outside the game snapshot
type HUD struct {
	Sound SoundState
}

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen    tcell.Screen
	statusReg *status.Registry
	debug     bool
}

// NewTerminalRenderer creates a renderer; with debug the metric line is drawn under the board
func NewTerminalRenderer(screen tcell.Screen, statusReg *status.Registry, debug bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		statusReg: statusReg,
		debug:     debug,
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, hud HUD) {
	width, height := r.screen.Size()
	r.screen.Clear()

	bg := PaletteColor(snap.ColorIndex)
	outside := tcell.StyleDefault.Background(Tcell(bg)).Foreground(Tcell(RgbBoard))
	r.fill(0, 0, width, height, outside)

	layout := ComputeLayout(width, height, snap.TileCount)
	if !layout.Fits {
		r.drawCentered(width, height/2, constants.TooSmallText, outside)
		r.screen.Show()
		return
	}

	r.drawBoard(layout)
	r.drawSnake(layout, snap)
	r.drawFood(layout, snap)
	r.drawParticles(layout, snap)
	r.drawStatusBar(layout, snap, hud, outside)

	if snap.Phase == engine.PhaseGameOver {
		r.drawGameOver(layout, snap)
	}

	if r.debug && r.statusReg != nil {
		y := layout.OriginY + layout.Height + constants.BorderWidth
		if y < height {
			r.drawText(0, y, width, r.statusReg.String(), outside.Foreground(Tcell(RgbDim)))
		}
	}

	r.screen.Show()
}

// drawBoard draws the border frame and the dark interior
func (r *TerminalRenderer) drawBoard(l Layout) {
	interior := tcell.StyleDefault.Background(Tcell(RgbBoard))
	border := interior.Foreground(Tcell(RgbBorder))

	r.fill(l.OriginX, l.OriginY, l.Width, l.Height, interior)

	left, right := l.OriginX-1, l.OriginX+l.Width
	top, bottom := l.OriginY-1, l.OriginY+l.Height
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
}

func (r *TerminalRenderer) drawSnake(l Layout, snap engine.Snapshot) {
	body := tcell.StyleDefault.Background(Tcell(RgbBoard)).Foreground(Tcell(RgbSnake))
	head := body.Foreground(Tcell(RgbSnakeHead))

	// Tail first so the head wins on overlap
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if !seg.InBounds(l.TileCount) {
			continue
		}
		style := body
		if i == 0 {
			style = head
		}
		r.drawCell(l, seg.X, seg.Y, constants.SnakeGlyph, constants.SnakeGlyph, style)
	}
}

func (r *TerminalRenderer) drawFood(l Layout, snap engine.Snapshot) {
	food := snap.Food.Position
	if !food.InBounds(l.TileCount) {
		return
	}
	style := tcell.StyleDefault.Background(Tcell(RgbBoard)).Foreground(Tcell(RgbFood))
	r.drawCell(l, food.X, food.Y, constants.FoodGlyph, ' ', style)
}

// drawParticles maps each particle to the cell under it, later particles overwrite earlier ones
func (r *TerminalRenderer) drawParticles(l Layout, snap engine.Snapshot) {
	for _, p := range snap.Particles {
		cx, cy := int(math.Floor(p.X)), int(math.Floor(p.Y))
		if cx < 0 || cx >= l.TileCount || cy < 0 || cy >= l.TileCount {
			continue
		}

		// Left or right column by the fractional position
		sx, sy := l.CellToScreen(cx, cy)
		if p.X-float64(cx) >= 0.5 {
			sx++
		}

		style := tcell.StyleDefault.Background(Tcell(RgbBoard)).Foreground(Tcell(ParticleColor(p, RgbBoard)))
		r.screen.SetContent(sx, sy, ParticleGlyph(p.Radius), nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(l Layout, snap engine.Snapshot, hud HUD, base tcell.Style) {
	y := l.OriginY - constants.BorderWidth - constants.StatusBarHeight
	x := l.OriginX - constants.BorderWidth
	maxX := l.OriginX + l.Width + constants.BorderWidth

	score := fmt.Sprintf(" Score: %d ", snap.Score)
	x = r.drawText(x, y, maxX, score, base.Foreground(Tcell(RgbBoard)).Bold(true))

	info := fmt.Sprintf(" %dms  len %d  sound %s", snap.Speed/time.Millisecond, len(snap.Snake), hud.Sound)
	r.drawText(x, y, maxX, info, base.Foreground(Tcell(RgbBoard)))
}

// drawGameOver draws the centered panel with the final score
func (r *TerminalRenderer) drawGameOver(l Layout, snap engine.Snapshot) {
	lines := []string{
		constants.GameOverTitle,
		"",
		fmt.Sprintf("Final score: %d", snap.Score),
		causeText(snap.Cause),
		"",
		constants.GameOverHelp,
	}

	panelW := 0
	for _, line := range lines {
		panelW = max(panelW, utf8.RuneCountInString(line))
	}
	panelW = min(panelW+4, l.Width)
	panelH := len(lines) + 2

	px := l.OriginX + (l.Width-panelW)/2
	py := l.OriginY + (l.Height-panelH)/2

	panel := tcell.StyleDefault.Background(Tcell(RgbPanelBg)).Foreground(Tcell(RgbPanelText))
	r.fill(px, py, panelW, panelH, panel)

	for i, line := range lines {
		style := panel
		switch i {
		case 0:
			style = panel.Bold(true)
		case 2:
			style = panel.Foreground(Tcell(RgbScore)).Bold(true)
		case len(lines) - 1:
			style = panel.Foreground(Tcell(RgbDim))
		}
		lx := px + (panelW-utf8.RuneCountInString(line))/2
		r.drawText(lx, py+1+i, px+panelW, line, style)
	}
}

func causeText(c engine.DeathCause) string {
	switch c {
	case engine.CauseWall:
		return "Hit the wall"
	case engine.CauseSelf:
		return "Bit your own tail"
	case engine.CauseBoardFull:
		return "Board full"
	default:
		return ""
	}
}

// drawCell writes the two columns of a grid cell
func (r *TerminalRenderer) drawCell(l Layout, x, y int, left, right rune, style tcell.Style) {
	sx, sy := l.CellToScreen(x, y)
	r.screen.SetContent(sx, sy, left, nil, style)
	r.screen.SetContent(sx+1, sy, right, nil, style)
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawText writes s from x until maxX, returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawCentered(width, y int, s string, style tcell.Style) {
	x := max(0, (width-utf8.RuneCountInString(s))/2)
	r.drawText(x, y, width, s, style)
}
