package t2048

import (
	"math/rand/v2"
	"testing"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "no cascading into merged tile",
			input:    []int{4, 2, 2, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "five wide",
			input:    []int{8, 8, 8, 0, 8},
			expected: []int{16, 16, 0, 0, 0},
			score:    32,
		},
		{
			name:     "three wide pair then single",
			input:    []int{2, 2, 2},
			expected: []int{4, 2, 0},
			score:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]int(nil), tt.input...)
			result, score := slideRow(input)

			if !equalRow(result, tt.expected) {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !equalRow(input, tt.input) {
				t.Errorf("slideRow modified its input: %v", input)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	board := GridFromRows([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	tests := []struct {
		dir   Direction
		want  [][]int
		score int
	}{
		{
			dir: DirLeft,
			want: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirRight,
			want: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			dir: DirUp,
			want: [][]int{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 4,
		},
		{
			dir: DirDown,
			want: [][]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result, score, changed := Slide(board, tt.dir)
			want := GridFromRows(tt.want)

			if !result.Equal(want) {
				t.Errorf("Slide(%s): got\n%v\nwant\n%v", tt.dir, result, want)
			}
			if score != tt.score {
				t.Errorf("Slide(%s) score = %d, want %d", tt.dir, score, tt.score)
			}
			if !changed {
				t.Errorf("Slide(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	board := GridFromRows([][]int{
		{2, 2, 0},
		{0, 0, 0},
		{0, 0, 4},
	})

	result, score, changed := Slide(board, Direction(42))
	if changed || score != 0 || !result.Equal(board) {
		t.Errorf("Slide(unknown) = %v, %d, %v; want unchanged", result, score, changed)
	}
}

func TestSlideLeftIdempotent(t *testing.T) {
	board := GridFromRows([][]int{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{2, 4, 8, 0},
		{0, 0, 0, 0},
	})

	_, _, changed := SlideLeft(board)
	if changed {
		t.Error("SlideLeft should not change already compacted tiles")
	}

	once, _, _ := Slide(GridFromRows([][]int{{2, 2, 4, 4}, {0, 2, 0, 2}, {0, 0, 0, 0}, {8, 0, 8, 0}}), DirLeft)
	_, _, changed = Slide(once, DirLeft)
	if changed {
		t.Errorf("second Left move changed a settled board:\n%v", once)
	}
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "checkerboard",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "distinct values",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "horizontal pair",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 2, 8},
			},
			want: false,
		},
		{
			name: "vertical pair",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
			want: false,
		},
		{
			name: "empty cell",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "empty board",
			rows: [][]int{
				{0, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGameOver(GridFromRows(tt.rows)); got != tt.want {
				t.Errorf("IsGameOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

// referenceSlideRow is an independent write-position implementation used as
// an oracle for the rotation-based moves.
func referenceSlideRow(row []int) ([]int, int) {
	out := make([]int, len(row))
	score, w := 0, 0
	lastMerged := false
	for _, v := range row {
		if v == 0 {
			continue
		}
		if w > 0 && out[w-1] == v && !lastMerged {
			out[w-1] *= 2
			score += out[w-1]
			lastMerged = true
			continue
		}
		out[w] = v
		w++
		lastMerged = false
	}
	return out, score
}

// referenceSlide moves by reading lines in the direction of travel.
func referenceSlide(g Grid, dir Direction) (Grid, int) {
	n := g.Size()
	out := NewGrid(n)
	total := 0

	for line := range n {
		cells := make([][2]int, n)
		for i := range n {
			switch dir {
			case DirLeft:
				cells[i] = [2]int{line, i}
			case DirRight:
				cells[i] = [2]int{line, n - 1 - i}
			case DirUp:
				cells[i] = [2]int{i, line}
			case DirDown:
				cells[i] = [2]int{n - 1 - i, line}
			}
		}

		row := make([]int, n)
		for i, c := range cells {
			row[i] = g[c[0]][c[1]]
		}
		slid, score := referenceSlideRow(row)
		total += score
		for i, c := range cells {
			out[c[0]][c[1]] = slid[i]
		}
	}
	return out, total
}

func randomGrid(rng *rand.Rand, size int) Grid {
	g := NewGrid(size)
	for y := range size {
		for x := range size {
			if rng.IntN(3) == 0 {
				continue
			}
			g[y][x] = 1 << (1 + rng.IntN(4))
		}
	}
	return g
}

func TestSlideMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 500 {
		size := MinSize + i%3
		g := randomGrid(rng, size)
		before := g.Clone()

		for _, dir := range Directions {
			got, score, changed := Slide(g, dir)
			want, wantScore := referenceSlide(g, dir)

			if !got.Equal(want) || score != wantScore {
				t.Fatalf("Slide(%s) on\n%v got\n%v (score %d), want\n%v (score %d)", dir, g, got, score, want, wantScore)
			}
			if changed != !got.Equal(g) {
				t.Fatalf("Slide(%s) changed = %v, grids equal = %v", dir, changed, got.Equal(g))
			}
			if got.Sum() != g.Sum() {
				t.Fatalf("Slide(%s) changed tile mass: %d -> %d", dir, g.Sum(), got.Sum())
			}
		}

		if !g.Equal(before) {
			t.Fatal("Slide modified its input grid")
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, ok := ParseDirection(string(dir.Letter()))
		if !ok || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.Letter(), got, ok)
		}
		got, ok = ParseDirection(dir.String())
		if !ok || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), got, ok)
		}
	}

	if _, ok := ParseDirection("x"); ok {
		t.Error("ParseDirection(x) should fail")
	}
}

func equalRow(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
