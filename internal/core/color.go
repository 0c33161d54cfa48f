package core

// Color is a foreground color slot for a screen cell.
// The platform maps each slot to a concrete terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGrid          // board lines
	ColorDim           // secondary HUD text
	ColorAccent        // titles and overlays
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

// TileColor returns the color slot for a tile value.
func TileColor(value int) Color {
	switch {
	case value <= 0:
		return ColorDefault
	case value > 2048:
		return ColorTileSuper
	}

	c := ColorTile2
	for v := 2; v < value && c < ColorTile2048; v *= 2 {
		c++
	}
	return c
}
