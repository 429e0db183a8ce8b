// Package divide implements the DivIDE IDE-paging interface: an 8 KiB
// window of battery-backed RAM/EPROM banks that can be switched in over
// 0x0000-0x1FFF and 0x2000-0x3FFF, mapped in only through the CONMEM and
// MAPRAM bits of the control register; accesses to ROM entry points do not
// page it in. Grounded
// on memory.Map's own bank-switch style (applyPaging) rather than
// introducing a second paging abstraction.
package divide

import (
	"fmt"

	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

const bankSize = 8 * 1024
const numBanks = 4

// Controller is a minimal DivIDE: a control register (conmem/mapram bits)
// and a small bank of paged RAM, enough to satisfy memory.DivIDE and let a
// DivIDE-aware ROM see a writable paging window without modelling the IDE
// interface's actual ATA registers.
type Controller struct {
	banks  [numBanks][bankSize]byte
	bank   int
	conmem bool // true while the DivIDE page is forced into the map
	mapram bool // true once mapram has been latched (locks bank 3 in)
}

// New creates a Controller with all banks zeroed.
func New() *Controller { return &Controller{} }

// LoadROM seeds the controller's banks with a boot EPROM image: an 8 KiB
// image is mirrored into bank 0 only (the conventional single-bank DivIDE
// EPROM, visible before MAPRAM latches), a 32 KiB image is split across
// all four banks in order. Any other size is rejected.
func (d *Controller) LoadROM(data []byte) error {
	switch len(data) {
	case bankSize:
		copy(d.banks[0][:], data)
	case bankSize * numBanks:
		for i := 0; i < numBanks; i++ {
			copy(d.banks[i][:], data[i*bankSize:(i+1)*bankSize])
		}
	default:
		return fmt.Errorf("%w: DivIDE ROM is %d bytes, want %d or %d", zerr.ErrFormat, len(data), bankSize, bankSize*numBanks)
	}
	return nil
}

// Active reports whether the DivIDE page is currently mapped in,
// satisfying memory.DivIDE.
func (d *Controller) Active() bool { return d.conmem || d.mapram }

// WriteControl applies a write to the DivIDE control register (conventionally
// port 0xE3), following the common DivIDE control-port convention; other
// bits are ignored:
//
//	bit 0-1: bank select (ignored once mapram latched)
//	bit 6:   MAPRAM (sticky: once set, clearing CONMEM no longer unmaps)
//	bit 7:   CONMEM (forces the paging window in)
func (d *Controller) WriteControl(v byte) {
	if !d.mapram {
		d.bank = int(v & 0x03)
	}
	if v&0x40 != 0 {
		d.mapram = true
		d.bank = 3
	}
	d.conmem = v&0x80 != 0
}

// ReadLow reads from the DivIDE's 16 KiB window (0x0000-0x3FFF): the low
// 8 KiB is the currently selected bank, the high 8 KiB is always bank 3
// (the convention real DivIDE hardware uses so a paged-in ROM can always
// reach its own RAM bank regardless of the low bank selection).
func (d *Controller) ReadLow(addr uint16) byte {
	return d.banks[d.bankFor(addr)][addr&(bankSize-1)]
}

// WriteLow writes to the DivIDE's 16 KiB window, ignored when the
// selected bank is the fixed boot EPROM (bank 0, before MAPRAM latches).
func (d *Controller) WriteLow(addr uint16, value byte) {
	bank := d.bankFor(addr)
	if bank == 0 && !d.mapram {
		return
	}
	d.banks[bank][addr&(bankSize-1)] = value
}

func (d *Controller) bankFor(addr uint16) int {
	if addr >= bankSize {
		return 3
	}
	return d.bank
}
