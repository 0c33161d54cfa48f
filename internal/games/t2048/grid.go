package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Board size limits accepted by the engine.
const (
	DefaultSize = 4
	MinSize     = 3
	MaxSize     = 8
)

// Grid is a square matrix of tile values. Zero marks an empty cell.
// Grid[row][col], row 0 is the top.
type Grid [][]int

// NewGrid returns an empty size x size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]int, size)
	}
	return g
}

// GridFromRows copies rows into a new grid.
// The caller is responsible for passing a square matrix; use Validate to check.
func GridFromRows(rows [][]int) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = append([]int(nil), row...)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	return GridFromRows(g)
}

// Equal reports whether both grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// Validate checks that the grid is square with the given size and that
// every non-zero cell is a power of two >= 2.
func (g Grid) Validate(size int) error {
	if len(g) != size {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidGrid, len(g), size)
	}
	for y, row := range g {
		if len(row) != size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), size)
		}
		for x, v := range row {
			if v != 0 && !isTileValue(v) {
				return fmt.Errorf("%w: value %d at (%d,%d) is not a power of two", ErrInvalidGrid, v, y, x)
			}
		}
	}
	return nil
}

// isTileValue reports whether v is a power of two >= 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// String renders the grid as right-aligned columns, one row per line.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for _, row := range g {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
