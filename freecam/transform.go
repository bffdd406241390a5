package freecam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jacobkapitein/thps3-free-cam/config"
)

// Mode selects who owns the camera.
type Mode int

const (
	EngineControlled Mode = iota
	FreeCam
)

func (m Mode) String() string {
	if m == FreeCam {
		return "free cam"
	}
	return "engine"
}

var pitchLimit = mgl32.DegToRad(config.PitchLimitDeg)

// Transform is the free camera's pose. Yaw is the rotation around the world
// Y axis, pitch around the camera-local X axis.
type Transform struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Rotate applies a look delta. Yaw wraps to (-π, π]; pitch is clamped short
// of straight up/down to avoid a gimbal flip.
func (t *Transform) Rotate(dYaw, dPitch float32) {
	t.Yaw = wrapYaw(t.Yaw + dYaw)
	t.Pitch = mgl32.Clamp(t.Pitch+dPitch, -pitchLimit, pitchLimit)
}

func wrapYaw(yaw float32) float32 {
	const twoPi = 2 * math.Pi
	y := math.Mod(float64(yaw), twoPi)
	if y > math.Pi {
		y -= twoPi
	} else if y <= -math.Pi {
		y += twoPi
	}
	return float32(y)
}

// Forward is the camera's look direction.
func (t Transform) Forward() mgl32.Vec3 {
	cy, sy := cossin(t.Yaw)
	cp, sp := cossin(t.Pitch)
	return mgl32.Vec3{cp * cy, sp, cp * sy}
}

// Right is horizontal, perpendicular to forward.
func (t Transform) Right() mgl32.Vec3 {
	cy, sy := cossin(t.Yaw)
	return mgl32.Vec3{-sy, 0, cy}
}

// Up completes the right-handed camera basis.
func (t Transform) Up() mgl32.Vec3 {
	cy, sy := cossin(t.Yaw)
	cp, sp := cossin(t.Pitch)
	return mgl32.Vec3{-sp * cy, cp, -sp * sy}
}

// Translate moves the position along the camera-local axes.
func (t *Transform) Translate(dRight, dUp, dForward float32) {
	t.Position = t.Position.
		Add(t.Right().Mul(dRight)).
		Add(t.Up().Mul(dUp)).
		Add(t.Forward().Mul(dForward))
}

// Matrix packs the pose into the 4x4 layout this build keeps its camera in:
// rows right / up / negated forward / position.
func (t Transform) Matrix() [16]float32 {
	r, u, f := t.Right(), t.Up(), t.Forward()
	return [16]float32{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		-f[0], -f[1], -f[2], 0,
		t.Position[0], t.Position[1], t.Position[2], 1,
	}
}

// FromMatrix recovers a pose from the in-game camera matrix, used to seed
// the free camera where the engine camera was.
func FromMatrix(m [16]float32) Transform {
	fwd := mgl32.Vec3{-m[8], -m[9], -m[10]}
	pitch := float32(math.Asin(float64(mgl32.Clamp(fwd[1], -1, 1))))
	yaw := float32(math.Atan2(float64(fwd[2]), float64(fwd[0])))
	return Transform{
		Position: mgl32.Vec3{m[12], m[13], m[14]},
		Yaw:      wrapYaw(yaw),
		Pitch:    mgl32.Clamp(pitch, -pitchLimit, pitchLimit),
	}
}

func cossin(a float32) (float32, float32) {
	return float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))
}
