// Package memory implements the 48K/128K/+3 paging map: four 16 KiB slot
// descriptors over a bank of physical 16 KiB pages (ROMs plus 8 RAM
// banks), driven by the 0x7FFD/0x1FFD latches (spec.md §2 "Memory map").
package memory

const (
	bankSize  = 16 * 1024
	numRAM    = 8
	maxROM    = 4 // 48K has 1, 128K has 2, +3 has 4
	numBanks  = numRAM + maxROM
	slotCount = 4
)

// Model selects which paging rules apply.
type Model int

const (
	Model48K Model = iota
	Model128K
	ModelPlus3
)

// Map is the paged 64 KiB address space. RAM banks live at indices
// 0..7; ROM banks live at indices 8..8+numROM-1.
type Map struct {
	model Model

	ram [numRAM][bankSize]byte
	rom [maxROM][bankSize]byte
	romCount int

	slot [slotCount]*[bankSize]byte
	slotIsROM [slotCount]bool

	mlatch  byte // 0x7FFD
	p3latch byte // 0x1FFD
	locked  bool // 0x7FFD bit 5: further paging writes ignored until reset

	divide DivIDE
}

// DivIDE is the optional IDE-paging window a +3/48K DivIDE interface
// inserts over 0x0000-0x3FFF. A nil DivIDE leaves the ROM/RAM map
// untouched.
type DivIDE interface {
	// Active reports whether the DivIDE page is currently mapped in,
	// overriding the normal ROM/RAM slot 0 for the whole 0x0000-0x3FFF
	// range.
	Active() bool
	ReadLow(addr uint16) byte
	WriteLow(addr uint16, value byte)
}

// New creates a Map for model, with rom as the concatenated ROM image(s)
// (16 KiB each: one for 48K, two for 128K, four for +3).
func New(model Model, rom []byte) *Map {
	m := &Map{model: model}
	m.romCount = len(rom) / bankSize
	if m.romCount > maxROM {
		m.romCount = maxROM
	}
	for i := 0; i < m.romCount; i++ {
		copy(m.rom[i][:], rom[i*bankSize:(i+1)*bankSize])
	}
	m.Reset()
	return m
}

// Reset re-establishes the power-on paging configuration: ROM 0 at
// 0x0000, RAM 5 at 0x4000, RAM 2 at 0x8000, RAM 0 at 0xC000.
func (m *Map) Reset() {
	m.mlatch = 0
	m.p3latch = 0
	m.locked = false
	m.slot[0], m.slotIsROM[0] = &m.rom[0], true
	m.slot[1], m.slotIsROM[1] = &m.ram[5], false
	m.slot[2], m.slotIsROM[2] = &m.ram[2], false
	m.slot[3], m.slotIsROM[3] = &m.ram[0], false
}

// WriteMlatch applies a write to port 0x7FFD (RAM bank at 0xC000, shadow
// screen select, ROM select, paging lock).
func (m *Map) WriteMlatch(v byte) {
	if m.locked {
		return
	}
	m.mlatch = v
	m.applyPaging()
	if v&0x20 != 0 {
		m.locked = true
	}
}

// WriteP3latch applies a write to port 0x1FFD (+3 only): extra ROM bit
// and the special all-RAM configurations.
func (m *Map) WriteP3latch(v byte) {
	if m.model != ModelPlus3 || m.locked {
		return
	}
	m.p3latch = v
	m.applyPaging()
}

// SetDivIDE installs (or clears, with nil) the DivIDE paging window.
func (m *Map) SetDivIDE(d DivIDE) { m.divide = d }

// Port7FFD returns the last value latched into port 0x7FFD, for snapshot
// save and diagnostics.
func (m *Map) Port7FFD() byte { return m.mlatch }

// ShadowScreenSelected reports whether bank 7 (rather than bank 5) is the
// currently-selected VRAM bank, per the 0x7FFD bit-3 shadow-screen latch.
func (m *Map) ShadowScreenSelected() bool {
	return m.model != Model48K && m.mlatch&0x08 != 0
}

// VRAMBank returns the bank currently selected as the video RAM source.
func (m *Map) VRAMBank() *[bankSize]byte {
	if m.ShadowScreenSelected() {
		return &m.ram[7]
	}
	return &m.ram[5]
}

func (m *Map) applyPaging() {
	if m.model == Model48K {
		return
	}

	ramBank := int(m.mlatch & 0x07)
	m.slot[3], m.slotIsROM[3] = &m.ram[ramBank], false

	if m.model == ModelPlus3 && m.p3latch&0x01 != 0 {
		// Special all-RAM configurations, selected by p3latch bits 1-2.
		config := (m.p3latch >> 1) & 0x03
		banks := [4][4]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{4, 5, 6, 3},
			{4, 7, 6, 3},
		}[config]
		for i := 0; i < 4; i++ {
			m.slot[i], m.slotIsROM[i] = &m.ram[banks[i]], false
		}
		return
	}

	romSelect := 0
	if m.mlatch&0x10 != 0 {
		romSelect |= 1
	}
	if m.model == ModelPlus3 && m.p3latch&0x04 != 0 {
		romSelect |= 2
	}
	if romSelect >= m.romCount {
		romSelect = m.romCount - 1
	}
	if romSelect < 0 {
		romSelect = 0
	}
	m.slot[0], m.slotIsROM[0] = &m.rom[romSelect], true
	m.slot[1], m.slotIsROM[1] = &m.ram[5], false
	m.slot[2], m.slotIsROM[2] = &m.ram[2], false
}

// Read returns the byte at addr through the current paging map. When a
// DivIDE controller is installed and active, it overrides slot 0
// (0x0000-0x3FFF) entirely.
func (m *Map) Read(addr uint16) byte {
	if m.divide != nil && m.divide.Active() && addr < 0x4000 {
		return m.divide.ReadLow(addr)
	}
	slot := addr >> 14
	off := addr & (bankSize - 1)
	return m.slot[slot][off]
}

// Write stores value at addr, ignored for a slot currently mapped to ROM
// (or routed to an active DivIDE controller below 0x4000).
func (m *Map) Write(addr uint16, value byte) {
	if m.divide != nil && m.divide.Active() && addr < 0x4000 {
		m.divide.WriteLow(addr, value)
		return
	}
	slot := addr >> 14
	if m.slotIsROM[slot] {
		return
	}
	off := addr & (bankSize - 1)
	m.slot[slot][off] = value
}

// WriteByte is an alias for Write, satisfying the tape fast-loader's
// MemoryWriter capability interface.
func (m *Map) WriteByte(addr uint16, value byte) { m.Write(addr, value) }

// RAMBank exposes one physical RAM bank directly, for snapshot load/save.
func (m *Map) RAMBank(n int) *[bankSize]byte { return &m.ram[n] }
