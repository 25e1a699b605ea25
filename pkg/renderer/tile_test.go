package renderer

import (
	"image"
	"testing"
)

func TestNewTileGridCoversImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"partial edge tiles", 100, 70, 64, 4},
		{"single tile", 10, 10, 64, 1},
		{"one pixel tiles", 3, 2, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make([][]int, tt.height)
			for y := range covered {
				covered[y] = make([]int, tt.width)
			}
			for id, tile := range tiles {
				if tile.ID != id {
					t.Errorf("Expected tile ID %d, got %d", id, tile.ID)
				}
				if !tile.Bounds.In(image.Rect(0, 0, tt.width, tt.height)) {
					t.Errorf("Tile %d bounds %v exceed the image", id, tile.Bounds)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y][x]++
					}
				}
			}

			for y := range covered {
				for x := range covered[y] {
					if covered[y][x] != 1 {
						t.Fatalf("Pixel (%d,%d) covered %d times", x, y, covered[y][x])
					}
				}
			}
		})
	}
}

func TestTileRandomIsDeterministic(t *testing.T) {
	a := NewTile(3, image.Rect(0, 0, 8, 8), 42)
	b := NewTile(3, image.Rect(0, 0, 8, 8), 42)
	for i := 0; i < 10; i++ {
		if a.Random.Float64() != b.Random.Float64() {
			t.Fatal("Expected equal tiles to produce equal jitter sequences")
		}
	}
}
