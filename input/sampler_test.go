package input

import "testing"

type fakeKeys struct {
	down map[int]bool
}

func (k *fakeKeys) press(vk int)   { k.down[vk] = true }
func (k *fakeKeys) release(vk int) { k.down[vk] = false }

type fakeMouse struct {
	dx, dy   float32
	captured bool
}

func (m *fakeMouse) SetCapture(enabled bool) { m.captured = enabled }

func (m *fakeMouse) Delta() (float32, float32) {
	dx, dy := m.dx, m.dy
	m.dx, m.dy = 0, 0
	return dx, dy
}

func newTestSampler() (*Sampler, *fakeKeys, *fakeMouse) {
	keys := &fakeKeys{down: map[int]bool{}}
	mouse := &fakeMouse{}
	s := NewSamplerWithSource(func(vk int) bool { return keys.down[vk] }, mouse)
	return s, keys, mouse
}

func TestToggleFiresOncePerPress(t *testing.T) {
	s, keys, _ := newTestSampler()

	if s.Sample().TogglePatch {
		t.Fatal("toggle fired with key up")
	}

	keys.press(VK_P)
	if !s.Sample().TogglePatch {
		t.Fatal("toggle did not fire on rising edge")
	}
	for i := 0; i < 5; i++ {
		if s.Sample().TogglePatch {
			t.Fatalf("sample %d: toggle fired while key held", i)
		}
	}

	keys.release(VK_P)
	if s.Sample().TogglePatch {
		t.Fatal("toggle fired on release")
	}

	keys.press(VK_P)
	if !s.Sample().TogglePatch {
		t.Fatal("toggle did not fire on second press")
	}
}

func TestMovementIsLevelTriggered(t *testing.T) {
	s, keys, _ := newTestSampler()

	keys.press(VK_I)
	keys.press(VK_J)
	for i := 0; i < 3; i++ {
		snap := s.Sample()
		if !snap.Forward || !snap.Left {
			t.Fatalf("sample %d: Forward=%v Left=%v, want both held", i, snap.Forward, snap.Left)
		}
		if snap.Backward || snap.Right || snap.Up || snap.Down {
			t.Fatalf("sample %d: unbound movement reported", i)
		}
	}

	keys.release(VK_I)
	if s.Sample().Forward {
		t.Fatal("Forward still held after release")
	}
}

func TestTogglesAreIndependent(t *testing.T) {
	s, keys, _ := newTestSampler()

	keys.press(VK_P)
	keys.press(VK_M)
	snap := s.Sample()
	if !snap.TogglePatch || !snap.ToggleFreeCam {
		t.Fatalf("TogglePatch=%v ToggleFreeCam=%v, want both edges", snap.TogglePatch, snap.ToggleFreeCam)
	}

	keys.release(VK_P)
	snap = s.Sample()
	if snap.TogglePatch || snap.ToggleFreeCam {
		t.Fatal("edges fired again without a new press")
	}
}

func TestMouseDeltaPassthrough(t *testing.T) {
	s, _, mouse := newTestSampler()

	mouse.dx, mouse.dy = 12, -3
	snap := s.Sample()
	if snap.MouseDX != 12 || snap.MouseDY != -3 {
		t.Fatalf("mouse delta = (%v, %v), want (12, -3)", snap.MouseDX, snap.MouseDY)
	}

	snap = s.Sample()
	if snap.MouseDX != 0 || snap.MouseDY != 0 {
		t.Fatal("mouse delta not consumed")
	}
}

func TestSetMouseCapture(t *testing.T) {
	s, _, mouse := newTestSampler()

	s.SetMouseCapture(true)
	if !mouse.captured {
		t.Fatal("mouse not captured")
	}
	s.SetMouseCapture(false)
	if mouse.captured {
		t.Fatal("mouse still captured")
	}
}
