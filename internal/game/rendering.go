package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// ANSI color codes for terminal rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

const (
	plainSymbol     = "·"
	mountainSymbol  = "▲"
	goldSymbol      = "$"
	baseSymbol      = "⌂"
	spawnSymbol     = "S"
	spawnableSymbol = "s"
	flagSymbol      = "⚑"
)

var unitSymbols = [...]string{
	core.Marines:  "m",
	core.AntiTank: "a",
	core.Tank:     "t",
}

// Render draws the board as text. Odd columns sit half a row above even
// ones, so each board row takes two lines: odd columns first, then even.
func (b *Board) Render() string {
	g := b.grid

	var sb strings.Builder
	sb.Grow((g.W*12 + 8) * (g.H*2 + 4))

	sb.WriteString("   ")
	for x := 0; x < g.W; x++ {
		fmt.Fprintf(&sb, "%2d ", x)
	}
	sb.WriteString("\n")

	for y := 0; y < g.H; y++ {
		for _, parity := range [2]int{1, 0} {
			if parity == 1 {
				fmt.Fprintf(&sb, "%2d ", y)
			} else {
				sb.WriteString("   ")
			}
			for x := 0; x < g.W; x++ {
				if x%2 != parity {
					sb.WriteString("   ")
					continue
				}
				b.writeTile(&sb, g.GetTile(x, y))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(b.statusLine())
	sb.WriteString("\n")
	return sb.String()
}

// writeTile writes a three-column cell: symbol, flag marker, gap.
func (b *Board) writeTile(sb *strings.Builder, t *core.Tile) {
	if t == nil {
		sb.WriteString("   ")
		return
	}

	color, symbol := tileDisplay(t)
	marker := " "
	if t.Flag() != nil {
		marker = flagSymbol
	}
	if b.IsSelected(t) {
		color = ColorYellow
	}

	sb.WriteString(color)
	sb.WriteString(symbol)
	sb.WriteString(marker)
	sb.WriteString(ColorReset)
	sb.WriteString(" ")
}

func tileDisplay(t *core.Tile) (string, string) {
	if u := t.Unit(); u != nil {
		symbol := "?"
		if u.Kind.Valid() {
			symbol = unitSymbols[u.Kind]
		}
		return playerColor(u.Owner), symbol
	}

	switch t.Kind {
	case core.TerrainMountain:
		return ColorGray, mountainSymbol
	case core.TerrainGold:
		return ColorYellow, goldSymbol
	case core.TerrainBase:
		return playerColor(t.BaseOwner), baseSymbol
	case core.TerrainSpawn:
		return ColorPurple, spawnSymbol
	case core.TerrainSpawnable:
		for _, p := range core.Players {
			if t.SpawnableFor(p) {
				return playerColor(p), spawnableSymbol
			}
		}
		return ColorPurple, spawnableSymbol
	default:
		return ColorGreen, plainSymbol
	}
}

func (b *Board) statusLine() string {
	if winner, ok := b.Winner(); ok {
		return fmt.Sprintf("%s%s wins%s | turn %d | Gold: Red %d Blue %d",
			playerColor(winner), winner, ColorReset, b.gs.Turn, b.purse.Red, b.purse.Blue)
	}
	line := fmt.Sprintf("Turn %d | %s%s%s to move | Movement points: %d | Gold: Red %d Blue %d",
		b.gs.Turn, playerColor(b.gs.Current), b.gs.Current, ColorReset,
		b.gs.MovementPoints, b.purse.Red, b.purse.Blue)
	if kind, ok := b.PendingSpawn(); ok {
		line += " | Spawning " + kind.String()
	}
	return line
}

func playerColor(p core.Player) string {
	switch p {
	case core.Red:
		return ColorRed
	case core.Blue:
		return ColorBlue
	default:
		return ColorWhite
	}
}
