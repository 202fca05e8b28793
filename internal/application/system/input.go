package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputFrame is one frame of player intent. It is the unit the
// recorder stores and the replayer feeds back, so it carries no
// device detail, only what the avatar should do.
type InputFrame struct {
	Left  bool
	Right bool
	Jump  bool
	Fire  bool
	Heavy bool
}

// InputSystem reads the keyboard into InputFrames.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current device state. Fire modes are edge-triggered
// so holding a key does not mash the trigger.
func (s *InputSystem) Poll() InputFrame {
	return InputFrame{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Heavy: inpututil.IsKeyJustPressed(ebiten.KeyK),
	}
}
