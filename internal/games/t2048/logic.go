package t2048

import "strings"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Letter returns the one-letter code used in recorded move strings.
func (d Direction) Letter() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	case DirRight:
		return 'R'
	default:
		return '?'
	}
}

// ParseDirection accepts a direction name or its one-letter code.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, true
	case "d", "down":
		return DirDown, true
	case "l", "left":
		return DirLeft, true
	case "r", "right":
		return DirRight, true
	default:
		return 0, false
	}
}

// canonicalAngle is the rotation that turns dir into a left move.
func canonicalAngle(dir Direction) (Angle, bool) {
	switch dir {
	case DirLeft:
		return Rotate0, true
	case DirUp:
		return RotateCCW, true
	case DirDown:
		return RotateCW, true
	case DirRight:
		return Rotate180, true
	default:
		return 0, false
	}
}

// slideRow compacts and merges a single row to the left.
// Returns the new row and the score gained from merges.
func slideRow(row []int) ([]int, int) {
	n := len(row)
	line := make([]int, n)

	// Compact
	w := 0
	for _, v := range row {
		if v != 0 {
			line[w] = v
			w++
		}
	}

	// Merge: a tile produced by a merge is skipped, so it never merges again
	score := 0
	for i := 0; i < n-1; {
		if line[i] != 0 && line[i] == line[i+1] {
			line[i] *= 2
			score += line[i]
			line[i+1] = 0
			i += 2
		} else {
			i++
		}
	}

	// Re-compact
	out := make([]int, n)
	w = 0
	for _, v := range line {
		if v != 0 {
			out[w] = v
			w++
		}
	}

	return out, score
}

// SlideLeft slides all rows left and merges.
// Returns the new grid, score gained, and whether the grid changed.
func SlideLeft(g Grid) (Grid, int, bool) {
	out := make(Grid, g.Size())
	total := 0
	changed := false

	for y, row := range g {
		newRow, score := slideRow(row)
		out[y] = newRow
		total += score

		for x := range row {
			if row[x] != newRow[x] {
				changed = true
				break
			}
		}
	}

	return out, total, changed
}

// Slide performs a move in the given direction by rotating into the left
// orientation, sliding, and rotating back.
// Returns the new grid, score gained, and whether the grid changed.
// An unknown direction leaves a copy of the grid unchanged.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	angle, ok := canonicalAngle(dir)
	if !ok {
		return g.Clone(), 0, false
	}

	slid, score, changed := SlideLeft(Rotate(g, angle))
	return Rotate(slid, angle.Inverse()), score, changed
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
// Checking the right and lower neighbour of every cell covers all pairs.
func HasPossibleMerge(g Grid) bool {
	n := g.Size()
	for y := range n {
		for x := range n {
			val := g[y][x]
			if val == 0 {
				continue
			}
			if x < n-1 && g[y][x+1] == val {
				return true
			}
			if y < n-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if the grid is full and no merge is possible.
func IsGameOver(g Grid) bool {
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}
