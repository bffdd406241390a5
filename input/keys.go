package input

// Action is a logical control. Bindings are fixed for the session; there is
// no runtime rebinding.
type Action int

const (
	TogglePatch Action = iota
	ToggleFreeCam
	MoveForward
	MoveBackward
	StrafeLeft
	StrafeRight
	MoveUp
	MoveDown
	SpeedUp
	SpeedDown

	actionCount
)

// Virtual key codes
const (
	VK_I     = 0x49
	VK_J     = 0x4A
	VK_K     = 0x4B
	VK_L     = 0x4C
	VK_M     = 0x4D
	VK_O     = 0x4F
	VK_P     = 0x50
	VK_U     = 0x55
	VK_PRIOR = 0x21 // Page Up
	VK_NEXT  = 0x22 // Page Down
)

// Bindings maps every action to its physical key.
var Bindings = [actionCount]int{
	TogglePatch:   VK_P,
	ToggleFreeCam: VK_M,
	MoveForward:   VK_I,
	MoveBackward:  VK_K,
	StrafeLeft:    VK_J,
	StrafeRight:   VK_L,
	MoveUp:        VK_U,
	MoveDown:      VK_O,
	SpeedUp:       VK_PRIOR,
	SpeedDown:     VK_NEXT,
}
