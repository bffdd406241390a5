package patch

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// fakeMem is a sparse byte-addressable process memory.
type fakeMem struct {
	data map[uintptr]byte
}

func newFakeMem() *fakeMem {
	return &fakeMem{data: map[uintptr]byte{}}
}

func (m *fakeMem) seed(addr uintptr, b []byte) {
	for i, v := range b {
		m.data[addr+uintptr(i)] = v
	}
}

func (m *fakeMem) ReadBytes(addr uintptr, size int) ([]byte, error) {
	buf := make([]byte, size)
	for i := range buf {
		v, ok := m.data[addr+uintptr(i)]
		if !ok {
			return nil, fmt.Errorf("unmapped address 0x%X", addr+uintptr(i))
		}
		buf[i] = v
	}
	return buf, nil
}

func (m *fakeMem) WriteCode(addr uintptr, data []byte) error {
	for i := range data {
		if _, ok := m.data[addr+uintptr(i)]; !ok {
			return fmt.Errorf("unmapped address 0x%X", addr+uintptr(i))
		}
	}
	m.seed(addr, data)
	return nil
}

const site = uintptr(0x56B2E4)

var (
	expected    = []byte{0xF3, 0xA5}
	replacement = []byte{0x90, 0x90}
)

func newTestPatch(m *fakeMem) *Patch {
	m.seed(site, expected)
	return New(m, "camera write", site, expected, replacement)
}

func mustBytes(t *testing.T, m *fakeMem, want []byte) {
	t.Helper()
	got, err := m.ReadBytes(site, len(want))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("bytes at site = % X, want % X", got, want)
	}
}

func TestApplyRestoreRoundTrip(t *testing.T) {
	m := newFakeMem()
	p := newTestPatch(m)

	if err := p.Apply(); err != nil {
		t.Fatal(err)
	}
	if !p.Applied() {
		t.Fatal("patch should be applied")
	}
	mustBytes(t, m, replacement)

	if err := p.Restore(); err != nil {
		t.Fatal(err)
	}
	if p.Applied() {
		t.Fatal("patch should not be applied")
	}
	mustBytes(t, m, expected)
}

func TestToggleAlternates(t *testing.T) {
	m := newFakeMem()
	p := newTestPatch(m)

	for i := 0; i < 7; i++ {
		applied, err := p.Toggle()
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		wantApplied := i%2 == 0
		if applied != wantApplied {
			t.Fatalf("toggle %d: applied = %v, want %v", i, applied, wantApplied)
		}
		if wantApplied {
			mustBytes(t, m, replacement)
		} else {
			mustBytes(t, m, expected)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	m := newFakeMem()
	p := newTestPatch(m)

	if err := p.Apply(); err != nil {
		t.Fatal(err)
	}
	if err := p.Apply(); err != nil {
		t.Fatal(err)
	}
	mustBytes(t, m, replacement)

	// Originals were captured before the first write, not from the patched
	// bytes, so the restore is still byte exact.
	if err := p.Restore(); err != nil {
		t.Fatal(err)
	}
	mustBytes(t, m, expected)
}

func TestApplyRejectsWrongBuild(t *testing.T) {
	m := newFakeMem()
	m.seed(site, []byte{0xCC, 0xCC})
	p := New(m, "camera write", site, expected, replacement)

	err := p.Apply()
	if !errors.Is(err, ErrUnexpectedCodeLayout) {
		t.Fatalf("err = %v, want ErrUnexpectedCodeLayout", err)
	}
	if p.Applied() {
		t.Fatal("patch must not be marked applied")
	}
	mustBytes(t, m, []byte{0xCC, 0xCC})
}

func TestRestoreWithoutApply(t *testing.T) {
	m := newFakeMem()
	p := newTestPatch(m)

	if err := p.Restore(); !errors.Is(err, ErrNotApplied) {
		t.Fatalf("err = %v, want ErrNotApplied", err)
	}
	mustBytes(t, m, expected)
}
