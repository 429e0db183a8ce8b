package cpu

import "testing"

type z80TestBus struct {
	mem   [0x10000]byte
	io    [0x10000]byte
	ticks uint64
}

func (b *z80TestBus) Read(addr uint16) byte         { return b.mem[addr] }
func (b *z80TestBus) Write(addr uint16, value byte) { b.mem[addr] = value }
func (b *z80TestBus) In(port uint16) byte           { return b.io[port] }
func (b *z80TestBus) Out(port uint16, value byte)   { b.io[port] = value }
func (b *z80TestBus) Tick(cycles int)               { b.ticks += uint64(cycles) }

type z80TestRig struct {
	bus *z80TestBus
	cpu *Z80
}

func newZ80TestRig(start uint16, program []byte) *z80TestRig {
	bus := &z80TestBus{}
	cpu := NewZ80(bus)
	for i, value := range program {
		bus.mem[start+uint16(i)] = value
	}
	cpu.PC = start
	return &z80TestRig{bus: bus, cpu: cpu}
}

func requireZ80EqualU16(t *testing.T, name string, got, want uint16) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%04X, want 0x%04X", name, got, want)
	}
}

func requireZ80EqualU8(t *testing.T, name string, got, want byte) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%02X, want 0x%02X", name, got, want)
	}
}

func TestLDRegImmAndALU(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{
		0x3E, 0x05, // LD A, 5
		0xC6, 0x03, // ADD A, 3
	})
	rig.cpu.Step()
	requireZ80EqualU8(t, "A", rig.cpu.A, 0x05)
	rig.cpu.Step()
	requireZ80EqualU8(t, "A", rig.cpu.A, 0x08)
	if rig.cpu.Flag(z80FlagZ) {
		t.Fatalf("zero flag set unexpectedly")
	}
}

func TestIXDisplacementLoad(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{
		0xDD, 0x21, 0x00, 0x90, // LD IX, 0x9000
		0xDD, 0x36, 0x02, 0x42, // LD (IX+2), 0x42
	})
	rig.cpu.Step()
	requireZ80EqualU16(t, "IX", rig.cpu.IX, 0x9000)
	rig.cpu.Step()
	requireZ80EqualU8(t, "(IX+2)", rig.bus.mem[0x9002], 0x42)
}

func TestCBBitOnHLMemory(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{
		0xCB, 0x46, // BIT 0, (HL)
	})
	rig.cpu.SetHL(0x9000)
	rig.bus.mem[0x9000] = 0x01
	rig.cpu.Step()
	if rig.cpu.Flag(z80FlagZ) {
		t.Fatalf("BIT 0 on set bit reported zero")
	}
}

func TestBlockLDIRCopiesAndDecrementsBC(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{
		0xED, 0xB0, // LDIR
	})
	rig.cpu.SetHL(0x9000)
	rig.cpu.SetDE(0x9100)
	rig.cpu.SetBC(0x0003)
	rig.bus.mem[0x9000] = 0xAA
	rig.bus.mem[0x9001] = 0xBB
	rig.bus.mem[0x9002] = 0xCC
	for rig.cpu.BC() != 0 || rig.cpu.PC == 0x8000 {
		rig.cpu.Step()
	}
	requireZ80EqualU8(t, "(0x9100)", rig.bus.mem[0x9100], 0xAA)
	requireZ80EqualU8(t, "(0x9101)", rig.bus.mem[0x9101], 0xBB)
	requireZ80EqualU8(t, "(0x9102)", rig.bus.mem[0x9102], 0xCC)
	requireZ80EqualU16(t, "BC", rig.cpu.BC(), 0)
}

func TestMaskableInterruptServicedInIM1(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{0x00})
	rig.cpu.IFF1 = true
	rig.cpu.IM = 1
	rig.cpu.SetIRQLine(true)
	rig.cpu.Step()
	requireZ80EqualU16(t, "PC", rig.cpu.PC, 0x0038)
	if rig.cpu.IFF1 {
		t.Fatalf("IFF1 should be cleared on interrupt acceptance")
	}
}

func TestNMIServicedRegardlessOfIFF1(t *testing.T) {
	rig := newZ80TestRig(0x8000, []byte{0x00})
	rig.cpu.IFF1 = false
	rig.cpu.SetNMILine(true)
	rig.cpu.Step()
	requireZ80EqualU16(t, "PC", rig.cpu.PC, 0x0066)
}
