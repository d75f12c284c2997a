package core

import "math"

// HexLayout maps board coordinates to screen pixels for flat-top hexes laid
// out in offset columns.
type HexLayout struct {
	Radius  int // centre-to-vertex distance in pixels
	OriginX int // top-left of the board
	OriginY int
	W, H    int // board size in tiles
}

// TileWidth is the vertex-to-vertex width of a tile.
func (l HexLayout) TileWidth() int { return l.Radius * 2 }

// TileHeight is the flat-to-flat height of a tile.
func (l HexLayout) TileHeight() int { return int(float64(l.Radius) * math.Sqrt(3)) }

// TilePosition returns the top-left pixel of the tile's bounding box.
// Columns advance by three quarters of a tile width; even columns sit half a
// tile lower than odd ones.
func (l HexLayout) TilePosition(x, y int) (int, int) {
	w, h := l.TileWidth(), l.TileHeight()
	px := l.OriginX + w*3/4*x
	py := l.OriginY + y*h
	if x%2 == 0 {
		py += h / 2
	}
	return px, py
}

// TileCenter returns the centre pixel of the tile.
func (l HexLayout) TileCenter(x, y int) (int, int) {
	px, py := l.TilePosition(x, y)
	return px + l.TileWidth()/2, py + l.TileHeight()/2
}

// TileAt returns the board coordinate whose inscribed circle contains the
// pixel, scanning columns left to right.
func (l HexLayout) TileAt(px, py int) (Coordinate, bool) {
	limit := float64(l.TileHeight() / 2)
	for x := 0; x < l.W; x++ {
		for y := 0; y < l.H; y++ {
			cx, cy := l.TileCenter(x, y)
			if math.Hypot(float64(px-cx), float64(py-cy)) <= limit {
				return Coordinate{X: x, Y: y}, true
			}
		}
	}
	return Coordinate{}, false
}
