package config

import "time"

// Target build: Tony Hawk's Pro Skater 3 (PC), skate3.exe. All offsets below
// are specific to this build and must be verified against live bytes before
// any code is patched.
const (
	ProcessName = "skate3.exe"
)

// Camera pointer chain: "Skate3.exe"+0x4E1E78 -> 34C -> 8 -> 4 -> 8C -> 0
// lands on the camera object. The 4x4 view matrix starts at +0x2F4; the
// position floats at +0x324/0x328/0x32C are elements 12/13/14 of that matrix.
const (
	PtrCameraBase = 0x4E1E78

	OffCameraMatrix = 0x2F4
	OffCameraPosX   = 0x324
	OffCameraPosY   = 0x328
	OffCameraPosZ   = 0x32C
)

// CameraChain is followed from PtrCameraBase down to the camera object.
var CameraChain = []uintptr{0x34C, 0x8, 0x4, 0x8C, 0x0}

// Camera write patch site: the "repe movsd" at skate3.exe+0x16B2E4 copies the
// engine camera over ours every frame. NOPing it freezes the engine writes.
const PatchCameraWrite = 0x16B2E4

var (
	PatchExpectedBytes    = []byte{0xF3, 0xA5} // repe movsd
	PatchReplacementBytes = []byte{0x90, 0x90} // nop nop
)

// Free camera tuning
const (
	MoveSpeedDefault = 5.0
	MoveSpeedMin     = 0.1
	MoveSpeedMax     = 100.0
	MoveSpeedFactor  = 1.25

	MouseSensitivity = 0.002 // radians per cursor unit
	PitchLimitDeg    = 89.0

	FramePeriod = 16 * time.Millisecond // ~60 FPS, matches the game's tick
)

// HUD window
const (
	ScreenWidth  = 460
	ScreenHeight = 280
)
