package core

import "image/color"

// Hex RGB values used as presentation hints by renderers.
const (
	colorPlainBackground    = 0x6aa84f
	colorDefaultOutline     = 0x434343
	colorRedBackground      = 0x8f7e3b
	colorBlueBackground     = 0x4f7e7b
	colorRedOutline         = 0xff0000
	colorBlueOutline        = 0x0000ff
	colorSpawnBackground    = 0xa26991
	colorSpawnOutline       = 0xff00ff
	colorMountainBackground = 0x7f7f7f
	colorGoldBackground     = 0xd4af37
)

// RGB converts a 0xRRGGBB value to an opaque colour.
func RGB(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// PlayerColor is the outline colour used for p's bases and text.
func PlayerColor(p Player) color.RGBA {
	if p == Blue {
		return RGB(colorBlueOutline)
	}
	return RGB(colorRedOutline)
}

func playerBackground(p Player) color.RGBA {
	if p == Blue {
		return RGB(colorBlueBackground)
	}
	return RGB(colorRedBackground)
}

// BackgroundColor returns the fill colour for the tile in its current state.
func (t *Tile) BackgroundColor() color.RGBA {
	switch t.Kind {
	case TerrainBase:
		return playerBackground(t.BaseOwner)
	case TerrainMountain:
		return RGB(colorMountainBackground)
	case TerrainGold:
		return RGB(colorGoldBackground)
	case TerrainSpawn:
		if t.unit != nil {
			return playerBackground(t.unit.Owner)
		}
		return RGB(colorSpawnBackground)
	default:
		return RGB(colorPlainBackground)
	}
}

// OutlineColor returns the border colour for the tile in its current state.
func (t *Tile) OutlineColor() color.RGBA {
	switch t.Kind {
	case TerrainBase:
		return PlayerColor(t.BaseOwner)
	case TerrainSpawn:
		if t.unit != nil {
			return PlayerColor(t.unit.Owner)
		}
		return RGB(colorSpawnOutline)
	case TerrainSpawnable:
		for _, p := range Players {
			if t.SpawnableFor(p) {
				return PlayerColor(p)
			}
		}
		return RGB(colorSpawnOutline)
	default:
		return RGB(colorDefaultOutline)
	}
}
