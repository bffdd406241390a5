package hook

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInjectionFailed means the frame hook could not be installed because the
// call site did not match the address table. The session cannot start.
var ErrInjectionFailed = errors.New("hook installation failed")

// Memory is the slice of the process accessor the hook needs to verify the
// call site before the first frame.
type Memory interface {
	ReadBytes(addr uintptr, size int) ([]byte, error)
}

// Callback runs exactly once per frame with the elapsed time in seconds.
// A returned error stops the frame loop.
type Callback func(dt float64) error

// FrameHook drives a callback once per frame period, synchronized to the
// game's tick rate. Install verifies the camera-update call site against the
// expected instruction bytes, so a mismatched game build fails fast instead
// of corrupting memory later. The callback goroutine is the only context
// that touches game memory after installation.
type FrameHook struct {
	mem    Memory
	period time.Duration

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	installed bool
	err       error
}

func New(mem Memory, period time.Duration) *FrameHook {
	return &FrameHook{
		mem:    mem,
		period: period,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Install checks the bytes at the call site and starts the frame loop.
// It is not re-entrant; a FrameHook is installed at most once per session.
func (h *FrameHook) Install(site uintptr, expected []byte, cb Callback) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.installed {
		return fmt.Errorf("already installed: %w", ErrInjectionFailed)
	}

	live, err := h.mem.ReadBytes(site, len(expected))
	if err != nil {
		return fmt.Errorf("call site 0x%X unreadable: %w", site, ErrInjectionFailed)
	}
	if !bytes.Equal(live, expected) {
		return fmt.Errorf("call site 0x%X: got % X, want % X: %w",
			site, live, expected, ErrInjectionFailed)
	}

	h.installed = true
	go h.run(cb)
	return nil
}

func (h *FrameHook) run(cb Callback) {
	defer close(h.done)

	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-h.stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := cb(dt); err != nil {
				h.mu.Lock()
				h.err = err
				h.mu.Unlock()
				return
			}
		}
	}
}

// Uninstall stops the frame loop and waits for the in-flight frame to
// finish. Safe to call more than once, and before Install.
func (h *FrameHook) Uninstall() {
	h.mu.Lock()
	installed := h.installed
	h.mu.Unlock()

	h.stopOnce.Do(func() { close(h.stop) })
	if installed {
		<-h.done
	}
}

// Done is closed when the frame loop has exited, either by Uninstall or by
// a callback error.
func (h *FrameHook) Done() <-chan struct{} {
	return h.done
}

// Err reports the callback error that stopped the loop, if any.
func (h *FrameHook) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
