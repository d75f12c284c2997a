package renderer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

const hudLineHeight = 18

var (
	HUDTextColor    = color.White
	HUDMutedColor   = color.Gray{Y: 200}
	BannerBackColor = color.RGBA{0, 0, 0, 180}
)

// HUDLine is one line of side-panel text.
type HUDLine struct {
	Text  string
	Color color.Color
}

// HUDLines describes the state panel: whose turn it is, their gold and
// movement points, and any pending spawn.
func HUDLines(b *game.Board) []HUDLine {
	p := b.CurrentPlayer()
	lines := []HUDLine{
		{Text: fmt.Sprintf("Turn %d", b.Turn()), Color: HUDTextColor},
		{Text: fmt.Sprintf("%s to move", p), Color: core.PlayerColor(p)},
		{Text: fmt.Sprintf("Gold: %d", b.Money(p)), Color: HUDTextColor},
		{Text: fmt.Sprintf("Movement points: %d", b.MovementPoints()), Color: HUDTextColor},
	}
	if kind, ok := b.PendingSpawn(); ok {
		lines = append(lines, HUDLine{Text: fmt.Sprintf("Spawning %s", kind), Color: HUDTextColor})
	}
	lines = append(lines, HUDLine{
		Text:  fmt.Sprintf("%s gold: %d", p.Other(), b.Money(p.Other())),
		Color: core.PlayerColor(p.Other()),
	})
	return lines
}

// ControlLines is the key help shown under the state panel.
func ControlLines() []string {
	lines := []string{"Controls:", "Click: select / move / attack / place"}
	for _, kind := range core.UnitKinds {
		lines = append(lines, fmt.Sprintf("%s: buy %s (%d gold)", spawnKeyName(kind), kind, kind.GoldCost()))
	}
	return append(lines, "Space: end turn", "Esc: cancel")
}

// BannerText is the victory message, or "" while the game is running.
func BannerText(b *game.Board) string {
	winner, ok := b.Winner()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s wins!", winner)
}

func spawnKeyName(kind core.UnitKind) string {
	switch kind {
	case core.Marines:
		return "M"
	case core.AntiTank:
		return "A"
	case core.Tank:
		return "T"
	default:
		return "?"
	}
}

// DrawHUD renders the side panel at (x, y), followed by the last combat
// result and a transient status message when present.
func DrawHUD(screen *ebiten.Image, f font.Face, b *game.Board, x, y int, lastCombat, status string) {
	for i, l := range HUDLines(b) {
		text.Draw(screen, l.Text, f, x, y+i*hudLineHeight, l.Color)
	}

	helpY := y + 8*hudLineHeight
	for i, l := range ControlLines() {
		c := HUDMutedColor
		if i == 0 {
			c = color.Gray{Y: 255}
		}
		text.Draw(screen, l, f, x, helpY+i*hudLineHeight, c)
	}

	footY := screen.Bounds().Dy() - 2*hudLineHeight
	if lastCombat != "" {
		text.Draw(screen, lastCombat, f, x, footY, HUDTextColor)
	}
	if status != "" {
		text.Draw(screen, status, f, x, footY+hudLineHeight, HUDMutedColor)
	}
}

// DrawBanner darkens a strip across the screen and announces the winner.
func DrawBanner(screen *ebiten.Image, f font.Face, b *game.Board) {
	msg := BannerText(b)
	if msg == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h/2-40), float32(w), 80, BannerBackColor, false)

	bounds := text.BoundString(f, msg)
	tw := bounds.Max.X - bounds.Min.X
	text.Draw(screen, msg, f, (w-tw)/2, h/2, core.PlayerColor(winnerOf(b)))
}

func winnerOf(b *game.Board) core.Player {
	p, _ := b.Winner()
	return p
}
