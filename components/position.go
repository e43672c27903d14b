package components

// Point is a grid cell
type Point struct {
	X int
	Y int
}

// Add returns the cell one step along h
func (p Point) Add(h Heading) Point {
	return Point{X: p.X + h.DX, Y: p.Y + h.DY}
}

// InBounds reports whether p lies inside a square grid of size tileCount
func (p Point) InBounds(tileCount int) bool {
	return p.X >= 0 && p.X < tileCount && p.Y >= 0 && p.Y < tileCount
}

// Contains reports whether any cell of body equals p
func Contains(body []Point, p Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
