package freecam

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/input"
	"github.com/jacobkapitein/thps3-free-cam/patch"
)

// Status is a read-only snapshot of the session for the HUD.
type Status struct {
	Mode         Mode
	PatchApplied bool
	Position     mgl32.Vec3
	Yaw          float32
	Pitch        float32
	Speed        float32
	Frames       uint64
}

// Session owns all mutable free-cam state: the current mode, the camera
// transform, the movement speed and the camera-write patch. Tick is the
// frame hook callback and the only writer; Status is safe to call from the
// HUD goroutine.
type Session struct {
	sampler *input.Sampler
	camOff  *patch.Patch
	writer  *Writer
	log     *slog.Logger

	mu        sync.RWMutex
	mode      Mode
	transform Transform
	speed     float32
	frames    uint64
}

func NewSession(sampler *input.Sampler, camOff *patch.Patch, writer *Writer, log *slog.Logger) *Session {
	return &Session{
		sampler: sampler,
		camOff:  camOff,
		writer:  writer,
		log:     log,
		mode:    EngineControlled,
		speed:   config.MoveSpeedDefault,
	}
}

// Tick advances the session by one frame: sample input, run the toggles,
// update the transform and, in free-cam mode, write the camera. A returned
// error is fatal and stops the frame loop; the caller restores any applied
// patch before exiting.
func (s *Session) Tick(dt float64) error {
	snap := s.sampler.Sample()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++

	if snap.TogglePatch {
		applied, err := s.camOff.Toggle()
		if err != nil {
			return err
		}
		s.log.Info("engine camera code toggled", "disabled", applied)
	}

	if snap.ToggleFreeCam {
		if err := s.toggleMode(); err != nil {
			return err
		}
	}

	if s.mode != FreeCam {
		return nil
	}

	if snap.SpeedUp {
		s.speed = mgl32.Clamp(s.speed*config.MoveSpeedFactor, config.MoveSpeedMin, config.MoveSpeedMax)
	}
	if snap.SpeedDown {
		s.speed = mgl32.Clamp(s.speed/config.MoveSpeedFactor, config.MoveSpeedMin, config.MoveSpeedMax)
	}

	s.transform.Rotate(
		snap.MouseDX*config.MouseSensitivity,
		-snap.MouseDY*config.MouseSensitivity,
	)

	step := s.speed * float32(dt)
	s.transform.Translate(
		axis(snap.Right, snap.Left)*step,
		axis(snap.Up, snap.Down)*step,
		axis(snap.Forward, snap.Backward)*step,
	)

	return s.writer.Flush(s.transform)
}

// toggleMode flips the mode unconditionally. Entering free cam seeds the
// transform from the live engine camera so the switch is seamless.
func (s *Session) toggleMode() error {
	if s.mode == EngineControlled {
		t, err := s.writer.ReadEngine()
		if err != nil {
			return err
		}
		s.transform = t
		s.mode = FreeCam
	} else {
		s.mode = EngineControlled
	}
	s.sampler.SetMouseCapture(s.mode == FreeCam)
	s.log.Info("camera mode toggled", "mode", s.mode.String())
	return nil
}

// Close restores the camera-write patch if it is still applied. Best effort;
// called once at session teardown.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.camOff.Restore(); err != nil && !errors.Is(err, patch.ErrNotApplied) {
		return err
	}
	return nil
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Mode:         s.mode,
		PatchApplied: s.camOff.Applied(),
		Position:     s.transform.Position,
		Yaw:          s.transform.Yaw,
		Pitch:        s.transform.Pitch,
		Speed:        s.speed,
		Frames:       s.frames,
	}
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
