package input

// Snapshot is one frame of sampled input. Toggle fields fire on the rising
// edge of a key press only; movement fields hold while the key is down.
type Snapshot struct {
	TogglePatch   bool
	ToggleFreeCam bool
	SpeedUp       bool
	SpeedDown     bool

	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool

	MouseDX float32
	MouseDY float32
}

// MouseSource supplies raw cursor deltas since the previous sample.
type MouseSource interface {
	SetCapture(enabled bool)
	Delta() (dx, dy float32)
}

// keyEdge is a per-key {Released, Pressed} machine. A rising edge fires once
// per physical press, never while held.
type keyEdge struct {
	pressed bool
}

func (e *keyEdge) update(down bool) bool {
	rising := down && !e.pressed
	e.pressed = down
	return rising
}

// Sampler polls the bound keys and mouse once per frame. The key state
// source is injectable so the sampler can be driven by a fake in tests.
type Sampler struct {
	keyDown func(vk int) bool
	mouse   MouseSource
	edges   [actionCount]keyEdge
}

// NewSampler builds a sampler over GetAsyncKeyState.
func NewSampler(mouse MouseSource) *Sampler {
	return &Sampler{keyDown: isKeyDown, mouse: mouse}
}

// NewSamplerWithSource builds a sampler over an arbitrary key state source.
func NewSamplerWithSource(keyDown func(vk int) bool, mouse MouseSource) *Sampler {
	return &Sampler{keyDown: keyDown, mouse: mouse}
}

// SetMouseCapture enables or disables look input and cursor recentering.
func (s *Sampler) SetMouseCapture(enabled bool) {
	s.mouse.SetCapture(enabled)
}

func (s *Sampler) edge(a Action) bool {
	return s.edges[a].update(s.keyDown(Bindings[a]))
}

func (s *Sampler) held(a Action) bool {
	return s.keyDown(Bindings[a])
}

// Sample reads the current state of every bound key and the mouse delta.
func (s *Sampler) Sample() Snapshot {
	snap := Snapshot{
		TogglePatch:   s.edge(TogglePatch),
		ToggleFreeCam: s.edge(ToggleFreeCam),
		SpeedUp:       s.edge(SpeedUp),
		SpeedDown:     s.edge(SpeedDown),

		Forward:  s.held(MoveForward),
		Backward: s.held(MoveBackward),
		Left:     s.held(StrafeLeft),
		Right:    s.held(StrafeRight),
		Up:       s.held(MoveUp),
		Down:     s.held(MoveDown),
	}
	snap.MouseDX, snap.MouseDY = s.mouse.Delta()
	return snap
}
