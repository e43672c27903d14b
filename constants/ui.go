package constants

// BackgroundPalette is the ordered cycle of screen background colors advanced on every eat event
var BackgroundPalette = [...]string{
	"#f0f0f0", "#FFE6E6", "#E6FFE6", "#E6E6FF",
	"#FFFCE6", "#FFE6FC", "#E6FCFF", "#FFE6E6",
	"#E6FFE6", "#E6E6FF", "#FFEEE6",
}

// Board Colors
const (
	ColorBoard     = "#1a1b26" // Tokyo Night background
	ColorBorder    = "#565f89"
	ColorSnake     = "#4CAF50"
	ColorSnakeHead = "#81C784"
	ColorFood      = "#ff3b30"
	ColorStatus    = "#c0caf5"
	ColorPanelBg   = "#3b0d0d"
	ColorPanelText = "#ffffff"
	ColorScore     = "#ffd33d"
	ColorDim       = "#8b949e"
)

// Board Layout
const (
	// CellWidth is the number of terminal columns drawn per grid cell so cells appear square
	CellWidth = 2

	// BorderWidth is the frame thickness around the board in cells of the terminal
	BorderWidth = 1

	// StatusBarHeight is the number of rows reserved above the board
	StatusBarHeight = 1
)

// Glyphs
const (
	SnakeGlyph     = '█'
	FoodGlyph      = '●'
	ParticleLarge  = '●'
	ParticleMedium = '•'
	ParticleSmall  = '·'

	// ParticleLargeRadius and ParticleMediumRadius are cell radius thresholds for glyph selection
	ParticleLargeRadius  = 0.15
	ParticleMediumRadius = 0.08
)

// Panel Text
const (
	GameOverTitle = "GAME OVER"
	GameOverHelp  = "r restart · q quit"
	TooSmallText  = "terminal too small"
)
