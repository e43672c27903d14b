package components

// Heading is a unit step on the grid; the zero value means stationary
type Heading struct {
	DX int
	DY int
}

// Cardinal headings
var (
	HeadingNone  = Heading{}
	HeadingLeft  = Heading{DX: -1}
	HeadingRight = Heading{DX: 1}
	HeadingUp    = Heading{DY: -1}
	HeadingDown  = Heading{DY: 1}
)

// CardinalHeadings lists the four headings in random-pick order
var CardinalHeadings = [4]Heading{HeadingRight, HeadingLeft, HeadingDown, HeadingUp}

// Reverse returns the opposite heading
func (h Heading) Reverse() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsZero reports whether h is stationary
func (h Heading) IsZero() bool {
	return h.DX == 0 && h.DY == 0
}

// IsReverseOf reports whether h points exactly against other
// A stationary heading is never a reverse
func (h Heading) IsReverseOf(other Heading) bool {
	return !other.IsZero() && h == other.Reverse()
}

func (h Heading) String() string {
	switch h {
	case HeadingLeft:
		return "Left"
	case HeadingRight:
		return "Right"
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	case HeadingNone:
		return "None"
	default:
		return "Unknown"
	}
}
