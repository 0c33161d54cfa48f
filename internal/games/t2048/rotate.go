package t2048

// Angle is a quarter-turn rotation in degrees. Positive is clockwise.
type Angle int

const (
	Rotate0   Angle = 0
	RotateCW  Angle = 90
	RotateCCW Angle = -90
	Rotate180 Angle = 180
)

// Inverse returns the rotation that undoes a.
func (a Angle) Inverse() Angle {
	switch a {
	case RotateCW:
		return RotateCCW
	case RotateCCW:
		return RotateCW
	default:
		return a
	}
}

// Rotate returns a rotated copy of g. The input is never modified.
// Unknown angles return an unrotated copy.
func Rotate(g Grid, a Angle) Grid {
	n := g.Size()
	out := NewGrid(n)

	for y := range n {
		for x := range n {
			switch a {
			case RotateCW:
				out[x][n-1-y] = g[y][x]
			case RotateCCW:
				out[n-1-x][y] = g[y][x]
			case Rotate180:
				out[n-1-y][n-1-x] = g[y][x]
			default:
				out[y][x] = g[y][x]
			}
		}
	}
	return out
}
