//go:build !headless

package keyboard

import (
	"os"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/zayn-spectrum/zxemu/internal/diag"
)

// TerminalHost reads raw stdin in a background goroutine and drives a
// Matrix from printable ASCII, adapted from the teacher's raw-mode stdin
// reader (terminal_host.go) but feeding the ZX keyboard matrix instead of
// a line-oriented MMIO device.
type TerminalHost struct {
	matrix  *Matrix
	log     *diag.Logger
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
	fd      int
	oldState *term.State
}

// NewTerminalHost creates a host feeding key events into matrix.
func NewTerminalHost(matrix *Matrix, log *diag.Logger) *TerminalHost {
	return &TerminalHost{
		matrix: matrix,
		log:    log,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// NewHost creates the raw-stdin Host for this build.
func NewHost(matrix *Matrix, log *diag.Logger) Host {
	return NewTerminalHost(matrix, log)
}

// Start puts stdin into raw, non-blocking mode and begins reading.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		h.log.Warnf("keyboard: failed to set raw mode: %v", err)
		close(h.done)
		return
	}
	h.oldState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		h.log.Warnf("keyboard: failed to set nonblocking stdin: %v", err)
		_ = term.Restore(h.fd, h.oldState)
		h.oldState = nil
		close(h.done)
		return
	}

	go h.readLoop()
}

func (h *TerminalHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-h.stopCh:
			return
		default:
		}
		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			h.handleByte(buf[0])
			continue
		}
		if err != nil && err != syscall.EAGAIN {
			return
		}
	}
}

// handleByte presses and immediately releases the matching key(s); a
// terminal has no natural key-up event for a typed character, so this
// host models a brief tap rather than a held key.
func (h *TerminalHost) handleByte(b byte) {
	if b == '\r' {
		b = '\n'
	}
	lower := b
	if b >= 'A' && b <= 'Z' {
		lower = b - 'A' + 'a'
	}
	pos, ok := KeyFor(lower)
	if !ok {
		return
	}
	h.matrix.SetKey(pos.Row, pos.Col, true)
	if b >= 'A' && b <= 'Z' {
		h.matrix.SetKey(CapsShift.Row, CapsShift.Col, true)
	}
	defer func() {
		h.matrix.SetKey(pos.Row, pos.Col, false)
		if b >= 'A' && b <= 'Z' {
			h.matrix.SetKey(CapsShift.Row, CapsShift.Col, false)
		}
	}()
}

// Stop restores the terminal's original mode and stops the read loop.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
		if h.oldState != nil {
			_ = term.Restore(h.fd, h.oldState)
		}
	})
}
