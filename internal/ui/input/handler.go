package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionSpawnMarines
	ActionSpawnAntiTank
	ActionSpawnTank
	ActionEndTurn
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionSpawnMarines:
		return "SpawnMarines"
	case ActionSpawnAntiTank:
		return "SpawnAntiTank"
	case ActionSpawnTank:
		return "SpawnTank"
	case ActionEndTurn:
		return "EndTurn"
	case ActionCancel:
		return "Cancel"
	default:
		return "None"
	}
}

// SpawnKind returns the unit kind a spawn action buys.
func (a Action) SpawnKind() (core.UnitKind, bool) {
	switch a {
	case ActionSpawnMarines:
		return core.Marines, true
	case ActionSpawnAntiTank:
		return core.AntiTank, true
	case ActionSpawnTank:
		return core.Tank, true
	default:
		return 0, false
	}
}

// DefaultKeyBindings maps keys to actions.
var DefaultKeyBindings = map[ebiten.Key]Action{
	ebiten.KeyM:      ActionSpawnMarines,
	ebiten.KeyA:      ActionSpawnAntiTank,
	ebiten.KeyT:      ActionSpawnTank,
	ebiten.KeySpace:  ActionEndTurn,
	ebiten.KeyEscape: ActionCancel,
}

// Controls is the command surface of the board the handler drives.
type Controls interface {
	CurrentPlayer() core.Player
	Money(p core.Player) int
	OnClick(px, py int) bool
	PrepareToSpawn(kind core.UnitKind) bool
	NextTurn() bool
	Deselect()
}

// Handler turns mouse and keyboard events into board commands.
type Handler struct {
	mouseX, mouseY int
	keys           map[ebiten.Key]Action

	lastMessage string
}

func NewHandler() *Handler {
	return &Handler{keys: DefaultKeyBindings}
}

// Update polls this frame's input and applies it to c.
func (h *Handler) Update(c Controls) {
	h.mouseX, h.mouseY = GetCursorPosition()

	if IsLeftClickJustPressed() {
		h.Click(c, h.mouseX, h.mouseY)
	}
	if IsRightClickJustPressed() {
		h.Apply(c, ActionCancel)
	}
	for key, action := range h.keys {
		if inpututil.IsKeyJustPressed(key) {
			h.Apply(c, action)
		}
	}
}

// Click forwards a left click at the given pixel.
func (h *Handler) Click(c Controls, px, py int) {
	c.OnClick(px, py)
}

// Apply runs a keyboard action against c. A rejected action leaves a message
// explaining why.
func (h *Handler) Apply(c Controls, a Action) {
	if kind, ok := a.SpawnKind(); ok {
		if !c.PrepareToSpawn(kind) {
			h.lastMessage = fmt.Sprintf("%s cannot afford %s (%d gold)", c.CurrentPlayer(), kind, c.Money(c.CurrentPlayer()))
		}
		return
	}
	switch a {
	case ActionEndTurn:
		if !c.NextTurn() {
			h.lastMessage = "Move a unit before ending the turn"
		}
	case ActionCancel:
		c.Deselect()
	}
}

// Cursor returns the last polled mouse position.
func (h *Handler) Cursor() (int, int) {
	return h.mouseX, h.mouseY
}

// GetLastMessage returns and clears the last rejection message.
func (h *Handler) GetLastMessage() string {
	msg := h.lastMessage
	h.lastMessage = ""
	return msg
}
