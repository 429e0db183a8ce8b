// Package fdc implements the +3's floppy controller port surface: enough
// of the uPD765/NEC "Main Status Register" handshake that ROM disk
// routines can probe for a controller and get a well-defined "no disk"
// answer, rather than modelling real FDD seek/read timings (spec.md's
// supplemented "+3 floppy controller" feature lists this as out of scope
// beyond port-level presence). Grounded on the ULA Gateway's small
// capability-interface style (ula.FDC).
package fdc

// Status register bits (Main Status Register, port 0x2FFD).
const (
	statusRQM = 1 << 7 // ready for data transfer
	statusDIO = 1 << 6 // direction: 1 = controller-to-CPU
)

// Controller is a minimal +3 FDC: it always reports "ready, no data
// pending" and discards command bytes, since no disk image is attached.
type Controller struct {
	lastCommand byte
}

// New creates a Controller with no disk inserted.
func New() *Controller { return &Controller{} }

// In implements ula.FDC. Port 0x2FFD is the Main Status Register; port
// 0x3FFD is the data register, which always reads back the last command
// byte written, matching a controller configuration register's common
// "reads back what was last written" RTC/peripheral convention.
func (c *Controller) In(port uint16) byte {
	switch port {
	case 0x2FFD:
		return statusRQM
	case 0x3FFD:
		return c.lastCommand
	default:
		return 0xFF
	}
}

// Out implements ula.FDC.
func (c *Controller) Out(port uint16, value byte) {
	if port == 0x3FFD {
		c.lastCommand = value
	}
}
