package input

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procSetCursorPos     = user32.NewProc("SetCursorPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

type point struct {
	x, y int32
}

func isKeyDown(vk int) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0
}

// ScreenMouse reads mouse movement by measuring how far the cursor drifted
// from the screen center and snapping it back, so look input never runs out
// of desk. Recentering only happens while captured.
type ScreenMouse struct {
	centerX, centerY int32
	captured         bool
}

func NewScreenMouse() *ScreenMouse {
	cx, _, _ := procGetSystemMetrics.Call(smCxScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return &ScreenMouse{
		centerX: int32(cx) / 2,
		centerY: int32(cy) / 2,
	}
}

func (m *ScreenMouse) SetCapture(enabled bool) {
	if enabled && !m.captured {
		procSetCursorPos.Call(uintptr(m.centerX), uintptr(m.centerY))
	}
	m.captured = enabled
}

func (m *ScreenMouse) Delta() (float32, float32) {
	if !m.captured {
		return 0, 0
	}

	var p point
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return 0, 0
	}

	dx := p.x - m.centerX
	dy := p.y - m.centerY
	if dx != 0 || dy != 0 {
		procSetCursorPos.Call(uintptr(m.centerX), uintptr(m.centerY))
	}
	return float32(dx), float32(dy)
}
