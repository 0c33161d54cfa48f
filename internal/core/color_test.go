package core

import "testing"

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  Color
	}{
		{0, ColorDefault},
		{2, ColorTile2},
		{4, ColorTile4},
		{8, ColorTile8},
		{64, ColorTile64},
		{1024, ColorTile1024},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{131072, ColorTileSuper},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
