package core

import "fmt"

// Grid owns every tile of the board in a single row-major arena. Cells
// without a tile keep TerrainNone and are never handed out.
type Grid struct {
	W, H int
	T    []Tile // length = W*H (row-major)
}

// NewGrid creates a w x h grid with no tiles placed.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, T: make([]Tile, w*h)}
	for i := range g.T {
		g.T[i] = Tile{
			Kind:     TerrainNone,
			Coord:    FromIndex(i, w),
			grid:     g,
			spawnIdx: noTile,
		}
		for d := range g.T[i].adjacent {
			g.T[i].adjacent[d] = noTile
		}
	}
	return g
}

func (g *Grid) Idx(x, y int) int      { return y*g.W + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds checks if coordinates are within board boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// GetTile returns the tile at (x, y), or nil when out of bounds or when the
// cell holds no tile.
func (g *Grid) GetTile(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.tileAt(g.Idx(x, y))
}

func (g *Grid) tileAt(idx int) *Tile {
	if idx < 0 || idx >= len(g.T) || g.T[idx].Kind == TerrainNone {
		return nil
	}
	return &g.T[idx]
}

// Place sets the terrain of the cell at (x, y). It must be called before
// Link.
func (g *Grid) Place(x, y int, kind TerrainKind, owner Player) (*Tile, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("place %s at (%d,%d): %w", kind, x, y, ErrInvalidCoordinates)
	}
	t := &g.T[g.Idx(x, y)]
	t.Kind = kind
	t.BaseOwner = owner
	return t, nil
}

// Link fixes every tile's adjacency and resolves the spawn tile of each
// spawnable tile. It fails if a spawnable tile has no spawn neighbour.
func (g *Grid) Link() error {
	for i := range g.T {
		t := &g.T[i]
		if t.Kind == TerrainNone {
			continue
		}
		for d, n := range NeighborCoordinates(t.Coord, g.W, g.H) {
			t.adjacent[d] = noTile
			if !n.Valid {
				continue
			}
			if idx := n.ToIndex(g.W); g.T[idx].Kind != TerrainNone {
				t.adjacent[d] = idx
			}
		}
	}

	for i := range g.T {
		t := &g.T[i]
		if t.Kind != TerrainSpawnable {
			continue
		}
		t.spawnIdx = noTile
		for _, idx := range t.adjacent {
			if idx != noTile && g.T[idx].Kind == TerrainSpawn {
				t.spawnIdx = idx
				break
			}
		}
		if t.spawnIdx == noTile {
			return fmt.Errorf("spawnable tile at %s: %w", t.Coord, ErrNoSpawnNeighbor)
		}
	}
	return nil
}

// Tiles returns every placed tile in column-major order (x outer, y inner).
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, len(g.T))
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if t := g.GetTile(x, y); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// UnitCount returns the number of units p has on the board.
func (g *Grid) UnitCount(p Player) int {
	n := 0
	for i := range g.T {
		if u := g.T[i].unit; u != nil && u.Owner == p {
			n++
		}
	}
	return n
}
