package memory

import "testing"

func rom48K() []byte {
	r := make([]byte, bankSize)
	r[0] = 0xAA
	return r
}

func rom128K() []byte {
	r := make([]byte, 2*bankSize)
	r[0] = 0x10      // ROM 0 marker
	r[bankSize] = 0x20 // ROM 1 marker
	return r
}

func TestResetMapping48K(t *testing.T) {
	m := New(Model48K, rom48K())
	if got := m.Read(0x0000); got != 0xAA {
		t.Fatalf("Read(0x0000) = %02X, want AA (ROM)", got)
	}
	m.Write(0x0000, 0xFF)
	if got := m.Read(0x0000); got != 0xAA {
		t.Fatalf("Write to ROM slot changed value: got %02X", got)
	}
	m.Write(0x4000, 0x42)
	if got := m.Read(0x4000); got != 0x42 {
		t.Fatalf("Read(0x4000) = %02X, want 42 (RAM bank 5)", got)
	}
}

func TestWriteMlatchSelectsBankAt0xC000(t *testing.T) {
	m := New(Model128K, rom128K())
	m.Write(0xC000, 0x01) // write into whatever's there before paging
	m.WriteMlatch(0x03)   // select RAM bank 3 at 0xC000
	m.Write(0xC000, 0x99)
	if got := m.RAMBank(3)[0]; got != 0x99 {
		t.Fatalf("RAMBank(3)[0] = %02X, want 99", got)
	}

	m.WriteMlatch(0x05) // select RAM bank 5 at 0xC000 (distinct from the
	// fixed bank 5 already at 0x4000 - both slots now alias the same bank)
	if got := m.Read(0xC000); got != m.Read(0x4000) {
		t.Fatalf("bank 5 aliased at 0x4000 and 0xC000 disagree: %02X vs %02X", m.Read(0xC000), m.Read(0x4000))
	}
}

func TestWriteMlatchSelectsROM(t *testing.T) {
	m := New(Model128K, rom128K())
	if got := m.Read(0x0000); got != 0x10 {
		t.Fatalf("Read(0x0000) = %02X, want 10 (ROM 0 at reset)", got)
	}
	m.WriteMlatch(0x10) // ROM select bit set -> ROM 1
	if got := m.Read(0x0000); got != 0x20 {
		t.Fatalf("Read(0x0000) = %02X, want 20 (ROM 1)", got)
	}
}

func TestPagingLockHonoured(t *testing.T) {
	m := New(Model128K, rom128K())
	m.WriteMlatch(0x20) // bit 5 locks further paging
	m.WriteMlatch(0x11) // should be ignored: still locked, bank/ROM unchanged
	if got := m.Read(0x0000); got != 0x10 {
		t.Fatalf("Read(0x0000) = %02X after locked write, want 10 (unchanged)", got)
	}
}

func TestShadowScreenSelect(t *testing.T) {
	m := New(Model128K, rom128K())
	if m.ShadowScreenSelected() {
		t.Fatalf("ShadowScreenSelected() = true at reset, want false")
	}
	m.WriteMlatch(0x08)
	if !m.ShadowScreenSelected() {
		t.Fatalf("ShadowScreenSelected() = false after bit 3 set, want true")
	}
	if m.VRAMBank() != m.RAMBank(7) {
		t.Fatalf("VRAMBank() did not switch to bank 7")
	}
}

func TestPlus3AllRAMConfig(t *testing.T) {
	m := New(ModelPlus3, make([]byte, 4*bankSize))
	m.WriteP3latch(0x01) // special paging mode, config 0 -> banks 0,1,2,3
	m.RAMBank(1)[0] = 0x77
	if got := m.Read(0x4000); got != 0x77 {
		t.Fatalf("Read(0x4000) = %02X, want 77 (RAM bank 1 in all-RAM config 0)", got)
	}
}

type fakeDivIDE struct {
	active bool
	data   [2][0x2000]byte
}

func (f *fakeDivIDE) Active() bool { return f.active }
func (f *fakeDivIDE) ReadLow(addr uint16) byte {
	if addr < 0x2000 {
		return f.data[0][addr]
	}
	return f.data[1][addr-0x2000]
}
func (f *fakeDivIDE) WriteLow(addr uint16, value byte) {
	if addr < 0x2000 {
		f.data[0][addr] = value
	} else {
		f.data[1][addr-0x2000] = value
	}
}

func TestDivIDEOverridesLowWindow(t *testing.T) {
	m := New(Model48K, rom48K())
	d := &fakeDivIDE{active: true}
	m.SetDivIDE(d)

	m.Write(0x1000, 0x55)
	if got := m.Read(0x1000); got != 0x55 {
		t.Fatalf("Read(0x1000) with active DivIDE = %02X, want 55", got)
	}
	if d.data[0][0x1000] != 0x55 {
		t.Fatalf("DivIDE controller did not receive the write")
	}

	d.active = false
	if got := m.Read(0x0000); got != 0xAA {
		t.Fatalf("Read(0x0000) with inactive DivIDE = %02X, want AA (normal ROM)", got)
	}
}
