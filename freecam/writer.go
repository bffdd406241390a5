package freecam

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jacobkapitein/thps3-free-cam/config"
	"github.com/jacobkapitein/thps3-free-cam/memory"
)

// Memory is the slice of the process accessor the camera reads and writes
// need. *memory.Accessor satisfies it; tests use an in-memory fake.
type Memory interface {
	ReadBytes(addr uintptr, size int) ([]byte, error)
	WriteBytes(addr uintptr, data []byte) error
	ReadUint32(addr uintptr) (uint32, error)
}

// Writer serializes a Transform into the camera matrix the game reads each
// frame. The camera object is found by walking the build's pointer chain on
// every access, because the engine reallocates it between game states.
type Writer struct {
	mem  Memory
	base uintptr
}

func NewWriter(mem Memory, base uintptr) *Writer {
	return &Writer{mem: mem, base: base}
}

// matrixAddr resolves the pointer chain down to the camera matrix.
func (w *Writer) matrixAddr() (uintptr, error) {
	current := w.base + config.PtrCameraBase
	for i, off := range config.CameraChain {
		ptr, err := w.mem.ReadUint32(current)
		if err != nil {
			return 0, fmt.Errorf("camera chain step %d: %w", i, err)
		}
		if !validPtr(ptr) {
			return 0, fmt.Errorf("camera chain step %d: pointer 0x%X: %w",
				i, ptr, memory.ErrInvalidAddress)
		}
		current = uintptr(ptr) + off
	}
	return current + config.OffCameraMatrix, nil
}

// ReadEngine reads the live engine camera, for seeding the free camera at
// the moment of the mode switch.
func (w *Writer) ReadEngine() (Transform, error) {
	addr, err := w.matrixAddr()
	if err != nil {
		return Transform{}, err
	}
	buf, err := w.mem.ReadBytes(addr, 64)
	if err != nil {
		return Transform{}, err
	}
	var m [16]float32
	for i := range m {
		m[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return FromMatrix(m), nil
}

// Flush writes the transform's full matrix in a single write, so the game
// never renders a half-updated camera.
func (w *Writer) Flush(t Transform) error {
	addr, err := w.matrixAddr()
	if err != nil {
		return err
	}
	m := t.Matrix()
	buf := make([]byte, 64)
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return w.mem.WriteBytes(addr, buf)
}

func validPtr(ptr uint32) bool {
	return ptr >= 0x10000 && ptr < 0x7FFFFFFF
}
