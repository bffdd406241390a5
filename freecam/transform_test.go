package freecam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestPitchClampUnderUnboundedInput(t *testing.T) {
	var tr Transform

	tr.Rotate(0, 1e6)
	if !near(tr.Pitch, pitchLimit) {
		t.Fatalf("pitch = %v, want clamp at %v", tr.Pitch, pitchLimit)
	}

	tr.Rotate(0, -1e9)
	if !near(tr.Pitch, -pitchLimit) {
		t.Fatalf("pitch = %v, want clamp at %v", tr.Pitch, -pitchLimit)
	}

	// Many small increments must not creep past the limit either.
	for i := 0; i < 10000; i++ {
		tr.Rotate(0, 0.05)
	}
	if tr.Pitch > pitchLimit {
		t.Fatalf("pitch = %v overran the limit %v", tr.Pitch, pitchLimit)
	}
}

func TestYawFullTurnRoundTrip(t *testing.T) {
	start := float32(0.5)
	tr := Transform{Yaw: start}

	// One full turn fed in quarters.
	for i := 0; i < 4; i++ {
		tr.Rotate(math.Pi/2, 0)
	}
	if !near(tr.Yaw, start) {
		t.Fatalf("yaw after full turn = %v, want %v", tr.Yaw, start)
	}

	for i := 0; i < 4; i++ {
		tr.Rotate(-math.Pi/2, 0)
	}
	if !near(tr.Yaw, start) {
		t.Fatalf("yaw after reverse turn = %v, want %v", tr.Yaw, start)
	}
}

func TestYawStaysWrapped(t *testing.T) {
	var tr Transform
	for i := 0; i < 1000; i++ {
		tr.Rotate(1.0, 0)
		if tr.Yaw > math.Pi+eps || tr.Yaw < -math.Pi-eps {
			t.Fatalf("yaw = %v escaped (-pi, pi]", tr.Yaw)
		}
	}
}

func TestAxesAreOrthonormal(t *testing.T) {
	testCases := []Transform{
		{},
		{Yaw: 0.7},
		{Pitch: -0.9},
		{Yaw: 2.1, Pitch: 1.2},
		{Yaw: -3.0, Pitch: -1.4},
	}

	for i, tr := range testCases {
		f, r, u := tr.Forward(), tr.Right(), tr.Up()
		for name, v := range map[string]mgl32.Vec3{"forward": f, "right": r, "up": u} {
			if !near(v.Len(), 1) {
				t.Errorf("[%d] |%s| = %v, want 1", i, name, v.Len())
			}
		}
		if !near(f.Dot(r), 0) || !near(f.Dot(u), 0) || !near(r.Dot(u), 0) {
			t.Errorf("[%d] axes not orthogonal: f.r=%v f.u=%v r.u=%v",
				i, f.Dot(r), f.Dot(u), r.Dot(u))
		}
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	testCases := []Transform{
		{Position: mgl32.Vec3{1, 2, 3}},
		{Position: mgl32.Vec3{-10, 55.5, 0.25}, Yaw: 1.1},
		{Position: mgl32.Vec3{100, -3, 7}, Yaw: -2.4, Pitch: 0.8},
		{Yaw: 3.0, Pitch: -1.3},
	}

	for i, tr := range testCases {
		got := FromMatrix(tr.Matrix())
		if !near(got.Yaw, tr.Yaw) || !near(got.Pitch, tr.Pitch) {
			t.Errorf("[%d] angles = (%v, %v), want (%v, %v)",
				i, got.Yaw, got.Pitch, tr.Yaw, tr.Pitch)
		}
		if !got.Position.ApproxEqualThreshold(tr.Position, eps) {
			t.Errorf("[%d] position = %v, want %v", i, got.Position, tr.Position)
		}
	}
}

func TestTranslateMovesAlongLocalAxes(t *testing.T) {
	tr := Transform{Yaw: 0.6}

	fwd := tr.Forward()
	tr.Translate(0, 0, 2)
	want := fwd.Mul(2)
	if !tr.Position.ApproxEqualThreshold(want, eps) {
		t.Fatalf("position = %v, want %v", tr.Position, want)
	}
}
