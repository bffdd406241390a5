package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualProtectEx      = kernel32.NewProc("VirtualProtectEx")
	procFlushInstructionCache = kernel32.NewProc("FlushInstructionCache")
)

const PAGE_EXECUTE_READWRITE = 0x40

var (
	// ErrInvalidAddress is returned when a read or write touches memory the
	// target process has not mapped.
	ErrInvalidAddress = errors.New("address not mapped in target process")

	// ErrAccessDenied is returned when the page protection cannot be changed.
	ErrAccessDenied = errors.New("access denied changing page protection")
)

// Accessor provides typed read/write access to the attached process's memory.
// It is the only component that touches raw addresses; everything above it
// works through this type (or a test fake implementing the same methods).
type Accessor struct {
	handle windows.Handle
}

func NewAccessor(handle windows.Handle) *Accessor {
	return &Accessor{handle: handle}
}

func (a *Accessor) ReadBytes(addr uintptr, size int) ([]byte, error) {
	buf := make([]byte, size)
	var read uintptr
	if err := windows.ReadProcessMemory(a.handle, addr, &buf[0], uintptr(size), &read); err != nil {
		return nil, fmt.Errorf("read %d bytes at 0x%X: %w", size, addr, ErrInvalidAddress)
	}
	return buf, nil
}

func (a *Accessor) WriteBytes(addr uintptr, data []byte) error {
	var written uintptr
	if err := windows.WriteProcessMemory(a.handle, addr, &data[0], uintptr(len(data)), &written); err != nil {
		return fmt.Errorf("write %d bytes at 0x%X: %w", len(data), addr, ErrInvalidAddress)
	}
	return nil
}

func (a *Accessor) ReadUint32(addr uintptr) (uint32, error) {
	buf, err := a.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (a *Accessor) ReadFloat32(addr uintptr) (float32, error) {
	v, err := a.ReadUint32(addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (a *Accessor) WriteFloat32(addr uintptr, val float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(val))
	return a.WriteBytes(addr, buf[:])
}

// SetProtection changes the protection of an address range in the target
// process and returns the previous protection.
func (a *Accessor) SetProtection(addr uintptr, size int, prot uint32) (uint32, error) {
	var old uint32
	ret, _, _ := procVirtualProtectEx.Call(
		uintptr(a.handle), addr, uintptr(size),
		uintptr(prot),
		uintptr(unsafe.Pointer(&old)),
	)
	if ret == 0 {
		return 0, fmt.Errorf("protect 0x%X: %w", addr, ErrAccessDenied)
	}
	return old, nil
}

// WriteCode writes into an executable region. The page is made writable only
// for the duration of the write and the previous protection is restored on
// every path, then the instruction cache is flushed.
func (a *Accessor) WriteCode(addr uintptr, data []byte) error {
	old, err := a.SetProtection(addr, len(data), PAGE_EXECUTE_READWRITE)
	if err != nil {
		return err
	}
	werr := a.WriteBytes(addr, data)
	if _, rerr := a.SetProtection(addr, len(data), old); rerr != nil && werr == nil {
		werr = rerr
	}
	procFlushInstructionCache.Call(uintptr(a.handle), addr, uintptr(len(data)))
	return werr
}
