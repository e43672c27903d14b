package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// MockScreen is a minimal mock for tcell.Screen recording drawn cells
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]cell)}
}

func (m *MockScreen) Size() (int, int) {
	return m.width, m.height
}

func (m *MockScreen) Clear() {
	m.cells = make(map[[2]int]cell)
}

func (m *MockScreen) Show() {
	m.shows++
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{mainc, style}
}

func (m *MockScreen) at(x, y int) cell {
	return m.cells[[2]int{x, y}]
}

// row returns the runes of screen row y
func (m *MockScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if c, ok := m.cells[[2]int{x, y}]; ok && c.ch != 0 {
			b.WriteRune(c.ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (m *MockScreen) contains(s string) bool {
	for y := 0; y < m.height; y++ {
		if strings.Contains(m.row(y), s) {
			return true
		}
	}
	return false
}

func testSnapshot() engine.Snapshot {
	gs := engine.NewGameState(engine.DefaultRules(), time.Time{})
	gs.Snake = []components.Point{{X: 3, Y: 4}, {X: 2, Y: 4}}
	return engine.Snapshot{
		Snake:     gs.Snake,
		Food:      gs.Food,
		Score:     20,
		Speed:     96 * time.Millisecond,
		Phase:     engine.PhaseRunning,
		TileCount: gs.TileCount,
	}
}

func TestComputeLayoutCenters(t *testing.T) {
	l := ComputeLayout(80, 30, 20)
	if !l.Fits {
		t.Fatal("Expected 20x20 board to fit 80x30")
	}
	if l.Width != 40 || l.Height != 20 {
		t.Errorf("Interior %dx%d, want 40x20", l.Width, l.Height)
	}
	// 42 wide total centered in 80, 23 high total centered in 30
	if l.OriginX != 20 || l.OriginY != 5 {
		t.Errorf("Origin (%d,%d), want (20,5)", l.OriginX, l.OriginY)
	}

	sx, sy := l.CellToScreen(3, 4)
	if sx != 26 || sy != 9 {
		t.Errorf("CellToScreen(3,4) = (%d,%d), want (26,9)", sx, sy)
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	if ComputeLayout(41, 30, 20).Fits {
		t.Error("Expected 41 columns to be too narrow")
	}
	if ComputeLayout(80, 22, 20).Fits {
		t.Error("Expected 22 rows to be too short")
	}
	if !ComputeLayout(42, 23, 20).Fits {
		t.Error("Expected exact fit")
	}
}

func TestRenderFrameDrawsEntities(t *testing.T) {
	screen := newMockScreen(80, 30)
	r := NewTerminalRenderer(screen, nil, false)
	snap := testSnapshot()

	r.RenderFrame(snap, HUD{Sound: SoundOn})

	l := ComputeLayout(80, 30, 20)

	hx, hy := l.CellToScreen(3, 4)
	if c := screen.at(hx, hy); c.ch != constants.SnakeGlyph {
		t.Errorf("Expected snake head glyph at (%d,%d), got %q", hx, hy, c.ch)
	}
	if c := screen.at(hx+1, hy); c.ch != constants.SnakeGlyph {
		t.Error("Expected snake cell to span two columns")
	}
	if fg, _, _ := screen.at(hx, hy).style.Decompose(); fg != Tcell(RgbSnakeHead) {
		t.Error("Expected highlighted head color")
	}
	tx, ty := l.CellToScreen(2, 4)
	if fg, _, _ := screen.at(tx, ty).style.Decompose(); fg != Tcell(RgbSnake) {
		t.Error("Expected body color on tail")
	}

	fx, fy := l.CellToScreen(15, 15)
	if c := screen.at(fx, fy); c.ch != constants.FoodGlyph {
		t.Errorf("Expected food glyph, got %q", c.ch)
	}

	if !screen.contains("Score: 20") {
		t.Error("Score not drawn")
	}
	if !screen.contains("96ms") || !screen.contains("sound on") {
		t.Error("Status bar incomplete")
	}
	if screen.contains(constants.GameOverTitle) {
		t.Error("Game over panel drawn while running")
	}
	if screen.shows != 1 {
		t.Errorf("Expected one Show, got %d", screen.shows)
	}
}

func TestRenderFrameBackgroundFollowsPalette(t *testing.T) {
	screen := newMockScreen(80, 30)
	r := NewTerminalRenderer(screen, nil, false)
	snap := testSnapshot()
	snap.ColorIndex = 3

	r.RenderFrame(snap, HUD{})

	_, bg, _ := screen.at(0, 0).style.Decompose()
	if bg != Tcell(PaletteColor(3)) {
		t.Errorf("Outside area not painted with palette color 3")
	}

	l := ComputeLayout(80, 30, 20)
	_, bg, _ = screen.at(l.OriginX, l.OriginY).style.Decompose()
	if bg != Tcell(RgbBoard) {
		t.Error("Board interior not painted with board color")
	}
}

func TestRenderFrameGameOverPanel(t *testing.T) {
	screen := newMockScreen(80, 30)
	r := NewTerminalRenderer(screen, nil, false)
	snap := testSnapshot()
	snap.Phase = engine.PhaseGameOver
	snap.Cause = engine.CauseWall
	snap.Score = 130

	r.RenderFrame(snap, HUD{})

	for _, s := range []string{constants.GameOverTitle, "Final score: 130", "Hit the wall", "r restart"} {
		if !screen.contains(s) {
			t.Errorf("Panel missing %q", s)
		}
	}
}

func TestRenderFrameTooSmall(t *testing.T) {
	screen := newMockScreen(30, 10)
	r := NewTerminalRenderer(screen, nil, false)

	r.RenderFrame(testSnapshot(), HUD{})

	if !screen.contains(constants.TooSmallText) {
		t.Error("Expected too-small message")
	}
	if screen.contains("Score") {
		t.Error("Status bar drawn on a too-small screen")
	}
}

func TestRenderFrameParticles(t *testing.T) {
	screen := newMockScreen(80, 30)
	r := NewTerminalRenderer(screen, nil, false)
	snap := testSnapshot()
	snap.Particles = []components.ParticleComponent{
		{X: 10.2, Y: 10.5, Alpha: 1, Radius: 0.2, Hue: 350},
		{X: 12.7, Y: 11.1, Alpha: 0.5, Radius: 0.05, Hue: 10},
		{X: -3, Y: 5, Alpha: 1, Radius: 0.2, Hue: 0},
	}

	r.RenderFrame(snap, HUD{})

	l := ComputeLayout(80, 30, 20)
	x, y := l.CellToScreen(10, 10)
	if c := screen.at(x, y); c.ch != constants.ParticleLarge {
		t.Errorf("Expected large particle in left column, got %q", c.ch)
	}
	x, y = l.CellToScreen(12, 11)
	if c := screen.at(x+1, y); c.ch != constants.ParticleSmall {
		t.Errorf("Expected small particle in right column, got %q", c.ch)
	}
}

func TestRenderFrameDebugLine(t *testing.T) {
	screen := newMockScreen(80, 30)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(12)
	r := NewTerminalRenderer(screen, reg, true)

	r.RenderFrame(testSnapshot(), HUD{})

	if !screen.contains("game.ticks=12") {
		t.Error("Debug metrics line not drawn")
	}
}

func TestPaletteColorWraps(t *testing.T) {
	n := len(constants.BackgroundPalette)
	if PaletteColor(n) != PaletteColor(0) || PaletteColor(n+4) != PaletteColor(4) {
		t.Error("Palette index does not wrap")
	}
	first, _ := colorful.Hex(constants.BackgroundPalette[0])
	if PaletteColor(0) != first {
		t.Error("Palette entry 0 mismatch")
	}
}

func TestParticleColorFades(t *testing.T) {
	p := components.ParticleComponent{Hue: 360, Alpha: 1}
	full := ParticleColor(p, RgbBoard)
	if !full.AlmostEqualRgb(colorful.Hsl(0, 1, 0.5)) {
		t.Errorf("Opaque particle should be pure hue, got %s", full.Hex())
	}

	p.Alpha = 0
	if !ParticleColor(p, RgbBoard).AlmostEqualRgb(RgbBoard) {
		t.Error("Transparent particle should match the background")
	}
}

func TestParticleGlyph(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{0.29, constants.ParticleLarge},
		{0.15, constants.ParticleLarge},
		{0.1, constants.ParticleMedium},
		{0.01, constants.ParticleSmall},
	}
	for _, tt := range tests {
		if got := ParticleGlyph(tt.radius); got != tt.want {
			t.Errorf("ParticleGlyph(%v) = %q, want %q", tt.radius, got, tt.want)
		}
	}
}
