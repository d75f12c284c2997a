package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/groundwar/internal/config"
	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/ui/input"
	"github.com/mitchelldurbincs/groundwar/internal/ui/renderer"
)

// How long a rejection message stays on screen, in frames.
const messageFrames = 120

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

func WindowTitle() string {
	return config.Get().UI.Window.Title
}

// UIGame is a hot-seat Ground War client: both players share the mouse and
// keyboard and the board decides whose turn it is.
type UIGame struct {
	board         *game.Board
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face

	lastCombat    string
	statusMessage string
	messageTimer  int
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(board *game.Board) (*UIGame, error) {
	g := &UIGame{
		board:        board,
		inputHandler: input.NewHandler(),
		defaultFont:  basicfont.Face7x13,
	}
	g.boardRenderer = renderer.NewBoardRenderer(g.defaultFont)

	board.EventBus().SubscribeFunc(events.TypeCombatResolved, g.onCombat)
	return g, nil
}

func (g *UIGame) onCombat(e events.Event) {
	if ce, ok := e.(*events.CombatResolvedEvent); ok {
		g.lastCombat = ce.Summary()
	}
}

// LastCombat is the summary of the most recent battle.
func (g *UIGame) LastCombat() string { return g.lastCombat }

// Update proceeds the game state.
func (g *UIGame) Update() error {
	if g.messageTimer > 0 {
		g.messageTimer--
	}
	if g.board.GameOver() {
		return nil
	}

	g.inputHandler.Update(g.board)
	if msg := g.inputHandler.GetLastMessage(); msg != "" {
		g.showMessage(msg)
	}
	return nil
}

func (g *UIGame) showMessage(msg string) {
	g.statusMessage = msg
	g.messageTimer = messageFrames
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 50, G: 50, B: 50, A: 255}) // Dark gray background

	hoverX, hoverY := g.inputHandler.Cursor()
	g.boardRenderer.Draw(screen, g.board, hoverX, hoverY)

	status := ""
	if g.messageTimer > 0 {
		status = g.statusMessage
	}
	renderer.DrawHUD(screen, g.defaultFont, g.board, 10, 20, g.lastCombat, status)
	renderer.DrawBanner(screen, g.defaultFont, g.board)

	ebitenutil.DebugPrintAt(screen, g.board.GameID(), 5, screen.Bounds().Dy()-16)
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
