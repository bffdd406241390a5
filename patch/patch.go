package patch

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedCodeLayout means the bytes at the patch site do not match
	// the expected instruction sequence. The game build is not the one this
	// address table was made for; patching must not proceed.
	ErrUnexpectedCodeLayout = errors.New("unexpected code layout at patch site")

	// ErrNotApplied is returned by Restore when the patch is not currently
	// applied. Callers treat it as a no-op.
	ErrNotApplied = errors.New("patch not applied")
)

// Memory is the slice of the process accessor a code patch needs.
type Memory interface {
	ReadBytes(addr uintptr, size int) ([]byte, error)
	WriteCode(addr uintptr, data []byte) error
}

// Patch overwrites a short instruction sequence in the target's executable
// memory and can restore it byte-for-byte. Original bytes are captured
// exactly once, on the first Apply, and kept for the life of the session.
type Patch struct {
	Name        string
	Addr        uintptr
	Expected    []byte
	Replacement []byte

	mem      Memory
	original []byte
	applied  bool
}

func New(mem Memory, name string, addr uintptr, expected, replacement []byte) *Patch {
	return &Patch{
		Name:        name,
		Addr:        addr,
		Expected:    expected,
		Replacement: replacement,
		mem:         mem,
	}
}

func (p *Patch) Applied() bool {
	return p.applied
}

// Apply writes the replacement bytes over the patch site. The live bytes are
// checked against the expected pattern first; a mismatch aborts with
// ErrUnexpectedCodeLayout before anything is written. Applying an
// already-applied patch is a no-op.
func (p *Patch) Apply() error {
	if p.applied {
		return nil
	}

	live, err := p.mem.ReadBytes(p.Addr, len(p.Replacement))
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	if !bytes.Equal(live, p.Expected) {
		return fmt.Errorf("%s at 0x%X: got % X, want % X: %w",
			p.Name, p.Addr, live, p.Expected, ErrUnexpectedCodeLayout)
	}
	if p.original == nil {
		p.original = live
	}

	if err := p.mem.WriteCode(p.Addr, p.Replacement); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	p.applied = true
	return nil
}

// Restore writes the captured original bytes back. Restoring a patch that is
// not applied returns ErrNotApplied, which callers recover as a no-op.
func (p *Patch) Restore() error {
	if !p.applied {
		return ErrNotApplied
	}
	if err := p.mem.WriteCode(p.Addr, p.original); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	p.applied = false
	return nil
}

// Toggle flips the patch state and reports whether it is applied afterwards.
func (p *Patch) Toggle() (bool, error) {
	if p.applied {
		if err := p.Restore(); err != nil && !errors.Is(err, ErrNotApplied) {
			return p.applied, err
		}
		return false, nil
	}
	if err := p.Apply(); err != nil {
		return false, err
	}
	return true, nil
}
