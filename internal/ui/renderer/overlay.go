package renderer

import (
	"image/color"

	"github.com/mitchelldurbincs/groundwar/internal/game/rules"
)

var (
	SelectionColor  = color.RGBA{255, 255, 100, 255} // Yellow outline
	MovableColor    = color.RGBA{60, 150, 60, 110}   // Semi-transparent green
	AttackableColor = color.RGBA{200, 40, 40, 110}   // Semi-transparent red
	HoverColor      = color.RGBA{255, 255, 255, 48}  // Semi-transparent white
)

// OverlayColor returns the fill drawn over a tile for the given highlight.
// Selection is shown as an outline instead, so it has no fill.
func OverlayColor(h rules.Highlight) (color.RGBA, bool) {
	switch h {
	case rules.HighlightMovable:
		return MovableColor, true
	case rules.HighlightAttackable:
		return AttackableColor, true
	default:
		return color.RGBA{}, false
	}
}
