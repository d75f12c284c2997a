package mapgen

import (
	"fmt"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// Board dimensions of the fixed map.
const (
	BoardWidth  = 13
	BoardHeight = 10
)

// DefaultLayout is the fixed Ground War map, one string per row.
//
//	T plain      M mountain   G gold
//	R red base   V red base holding the red flag
//	B blue base  W blue base holding the blue flag
//	S spawn      L spawnable  - no tile
var DefaultLayout = [BoardHeight]string{
	"----SLTTTBW--",
	"--TLLLTTTTTBB",
	"TTTTTTMTTTTTT",
	"TTTTMMTTTTTTT",
	"TTTTMTGTMMTTT",
	"TTTMTTTTMTTTT",
	"TTTTTTMMTTTTT",
	"RTTTTTTTLTTT-",
	"-RVTTTTLSL---",
	"---R-T-L-----",
}

type cellDef struct {
	kind     core.TerrainKind
	owner    core.Player
	withFlag bool
}

var cellDefs = map[byte]cellDef{
	'T': {kind: core.TerrainPlain},
	'M': {kind: core.TerrainMountain},
	'G': {kind: core.TerrainGold},
	'R': {kind: core.TerrainBase, owner: core.Red},
	'V': {kind: core.TerrainBase, owner: core.Red, withFlag: true},
	'B': {kind: core.TerrainBase, owner: core.Blue},
	'W': {kind: core.TerrainBase, owner: core.Blue, withFlag: true},
	'S': {kind: core.TerrainSpawn},
	'L': {kind: core.TerrainSpawnable},
	'-': {kind: core.TerrainNone},
}

// Generator builds a board from a row-per-string layout.
type Generator struct {
	rows []string
}

// NewGenerator creates a generator for the given layout rows.
func NewGenerator(rows []string) *Generator {
	return &Generator{rows: rows}
}

// NewDefaultGenerator creates a generator for the fixed map.
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultLayout[:])
}

// GenerateMap parses the layout, places pre-set flags and links adjacency.
// Each flag belongs to the owner of the base it starts on.
func (g *Generator) GenerateMap() (*core.Grid, error) {
	w, h, err := g.dimensions()
	if err != nil {
		return nil, err
	}

	grid := core.NewGrid(w, h)
	for y, row := range g.rows {
		for x := 0; x < w; x++ {
			c := row[x]
			def, ok := cellDefs[c]
			if !ok {
				return nil, core.WrapLayoutError(x, y, c, core.ErrUnknownTerrain)
			}
			if def.kind == core.TerrainNone {
				continue
			}
			tile, err := grid.Place(x, y, def.kind, def.owner)
			if err != nil {
				return nil, err
			}
			if def.withFlag {
				if err := tile.SpawnFlag(def.owner); err != nil {
					return nil, core.WrapLayoutError(x, y, c, err)
				}
			}
		}
	}

	if err := grid.Link(); err != nil {
		return nil, fmt.Errorf("link board: %w", err)
	}
	return grid, nil
}

func (g *Generator) dimensions() (int, int, error) {
	if len(g.rows) == 0 || len(g.rows[0]) == 0 {
		return 0, 0, fmt.Errorf("empty layout: %w", core.ErrInvalidLayout)
	}
	w := len(g.rows[0])
	for y, row := range g.rows {
		if len(row) != w {
			return 0, 0, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, core.ErrInvalidLayout)
		}
	}
	return w, len(g.rows), nil
}
