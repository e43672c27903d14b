package render

import "github.com/lixenwraith/vi-snake/constants"

// Layout places the board on the screen
type Layout struct {
	// Top-left terminal cell of the board interior
	OriginX, OriginY int
	// Interior size in terminal cells
	Width, Height int
	TileCount     int
	// Fits is false when the screen cannot hold the board, border and status bar
	Fits bool
}

// ComputeLayout centers a tileCount board on a width × height screen
func ComputeLayout(width, height, tileCount int) Layout {
	l := Layout{
		Width:     tileCount * constants.CellWidth,
		Height:    tileCount,
		TileCount: tileCount,
	}

	totalW := l.Width + 2*constants.BorderWidth
	totalH := l.Height + 2*constants.BorderWidth + constants.StatusBarHeight
	if totalW > width || totalH > height {
		return l
	}

	l.Fits = true
	l.OriginX = (width-totalW)/2 + constants.BorderWidth
	l.OriginY = (height-totalH)/2 + constants.StatusBarHeight + constants.BorderWidth
	return l
}

// CellToScreen returns the terminal position of the left column of a grid cell
func (l Layout) CellToScreen(x, y int) (int, int) {
	return l.OriginX + x*constants.CellWidth, l.OriginY + y
}
