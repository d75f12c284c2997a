package renderer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/rules"
)

var (
	UnitTextColor   = color.White
	FlagPoleColor   = color.RGBA{40, 40, 40, 255}
	OutlineWidth    = float32(3)
	FlagCornerInset = float32(0.35) // fraction of the radius
)

// BoardRenderer draws the hex map, units, flags and highlight overlays.
type BoardRenderer struct {
	defaultFont font.Face

	whitePixel *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(f font.Face) *BoardRenderer {
	return &BoardRenderer{
		defaultFont: f,
		fillVs:      make([]ebiten.Vertex, 0, 18),
		fillIs:      make([]uint16, 0, 18),
		strokeVs:    make([]ebiten.Vertex, 0, 48),
		strokeIs:    make([]uint16, 0, 48),
	}
}

// Draw renders the board on the supplied Ebiten screen. hoverX/hoverY is the
// cursor position used for the hover overlay.
func (br *BoardRenderer) Draw(screen *ebiten.Image, b *game.Board, hoverX, hoverY int) {
	if b == nil {
		return
	}
	if br.whitePixel == nil {
		br.whitePixel = ebiten.NewImage(1, 1)
		br.whitePixel.Fill(color.White)
	}

	layout := b.Layout()
	radius := float32(layout.Radius)
	hovered := b.TileAt(hoverX, hoverY)

	tiles := b.Grid().Tiles()
	for _, t := range tiles {
		cx, cy := tileCenter(layout, t)
		br.fillHex(screen, cx, cy, radius, t.BackgroundColor())
		if c, ok := OverlayColor(b.Highlight(t)); ok {
			br.fillHex(screen, cx, cy, radius, c)
		}
		if t == hovered {
			br.fillHex(screen, cx, cy, radius, HoverColor)
		}
	}

	// Outlines go on top so neighbouring fills never cover them.
	for _, t := range tiles {
		cx, cy := tileCenter(layout, t)
		outline := t.OutlineColor()
		if b.Highlight(t) == rules.HighlightSelected {
			outline = SelectionColor
		}
		br.strokeHex(screen, cx, cy, radius-OutlineWidth/2, outline)
	}

	for _, t := range tiles {
		cx, cy := tileCenter(layout, t)
		if f := t.Flag(); f != nil {
			br.drawFlag(screen, cx, cy, radius, f)
		}
		if u := t.Unit(); u != nil {
			br.drawUnit(screen, cx, cy, radius, u)
		}
	}
}

// HexVertices returns the corners of a flat-top hexagon, clockwise from the
// rightmost vertex.
func HexVertices(cx, cy, r float32) [6][2]float32 {
	var out [6][2]float32
	for i := range out {
		angle := math.Pi / 3 * float64(i)
		out[i][0] = cx + r*float32(math.Cos(angle))
		out[i][1] = cy + r*float32(math.Sin(angle))
	}
	return out
}

// UnitLabel is the short text drawn on a unit's tile.
func UnitLabel(u *core.Unit) string {
	switch u.Kind {
	case core.Marines:
		return "M"
	case core.AntiTank:
		return "AT"
	case core.Tank:
		return "T"
	default:
		return "?"
	}
}

func tileCenter(l core.HexLayout, t *core.Tile) (float32, float32) {
	x, y := l.TileCenter(t.Coord.X, t.Coord.Y)
	return float32(x), float32(y)
}

func hexPath(cx, cy, r float32) *vector.Path {
	path := &vector.Path{}
	for i, v := range HexVertices(cx, cy, r) {
		if i == 0 {
			path.MoveTo(v[0], v[1])
		} else {
			path.LineTo(v[0], v[1])
		}
	}
	path.Close()
	return path
}

func (br *BoardRenderer) fillHex(target *ebiten.Image, cx, cy, r float32, c color.Color) {
	path := hexPath(cx, cy, r)
	br.fillVs, br.fillIs = path.AppendVerticesAndIndicesForFilling(br.fillVs[:0], br.fillIs[:0])
	tint(br.fillVs, c)
	target.DrawTriangles(br.fillVs, br.fillIs, br.whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (br *BoardRenderer) strokeHex(target *ebiten.Image, cx, cy, r float32, c color.Color) {
	path := hexPath(cx, cy, r)
	br.strokeVs, br.strokeIs = path.AppendVerticesAndIndicesForStroke(br.strokeVs[:0], br.strokeIs[:0], &vector.StrokeOptions{
		Width:    OutlineWidth,
		LineJoin: vector.LineJoinMiter,
	})
	tint(br.strokeVs, c)
	target.DrawTriangles(br.strokeVs, br.strokeIs, br.whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// tint copies c onto every vertex.
func tint(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

func (br *BoardRenderer) drawUnit(screen *ebiten.Image, cx, cy, r float32, u *core.Unit) {
	vector.DrawFilledCircle(screen, cx, cy, r/2, core.PlayerColor(u.Owner), true)
	if br.defaultFont == nil {
		return
	}
	label := UnitLabel(u)
	bounds := text.BoundString(br.defaultFont, label)
	w, h := bounds.Max.X-bounds.Min.X, bounds.Max.Y-bounds.Min.Y
	text.Draw(screen, label, br.defaultFont, int(cx)-w/2, int(cy)+h/2, UnitTextColor)
}

// drawFlag draws a small pennant in the upper-right of the tile, in the
// colour of the flag's owner.
func (br *BoardRenderer) drawFlag(screen *ebiten.Image, cx, cy, r float32, f *core.Flag) {
	inset := r * FlagCornerInset
	poleX, poleTop := cx+inset, cy-r*0.7
	poleBottom := poleTop + r*0.5
	vector.StrokeLine(screen, poleX, poleTop, poleX, poleBottom, 2, FlagPoleColor, true)
	vector.DrawFilledRect(screen, poleX, poleTop, r*0.3, r*0.2, core.PlayerColor(f.Owner), true)
}
