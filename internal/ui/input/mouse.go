package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var touchIDs []ebiten.TouchID

// IsLeftClickJustPressed reports a left click or a new touch this frame.
func IsLeftClickJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	return len(touchIDs) > 0
}

func IsRightClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// GetCursorPosition returns the position of the newest touch, or of the
// mouse cursor when nothing touches the screen.
func GetCursorPosition() (int, int) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[len(touchIDs)-1])
	}
	return ebiten.CursorPosition()
}
