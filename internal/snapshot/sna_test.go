package snapshot

import (
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/cpu"
	"github.com/zayn-spectrum/zxemu/internal/memory"
)

type stubBus struct{}

func (stubBus) Read(addr uint16) byte          { return 0 }
func (stubBus) Write(addr uint16, value byte)  {}
func (stubBus) In(port uint16) byte            { return 0xFF }
func (stubBus) Out(port uint16, value byte)    {}
func (stubBus) Tick(cycles int)                {}

func TestSave48KRoundTrip(t *testing.T) {
	mem := memory.New(memory.Model48K, make([]byte, 16*1024))
	c := cpu.New(stubBus{})
	c.Reset()
	c.SetPC(0x8000)

	data := Bytes(c, mem, memory.Model48K, 4)
	if len(data) != headerSize+bulkRAMSize {
		t.Fatalf("len(data) = %d, want %d", len(data), headerSize+bulkRAMSize)
	}

	mem2 := memory.New(memory.Model48K, make([]byte, 16*1024))
	c2 := cpu.New(stubBus{})
	border, err := LoadBytes(data, c2, mem2)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if border != 4 {
		t.Fatalf("border = %d, want 4", border)
	}
	if c2.PC() != 0x8000 {
		t.Fatalf("PC after round trip = %04X, want 8000", c2.PC())
	}
}

func TestSave128KRoundTrip(t *testing.T) {
	mem := memory.New(memory.Model128K, make([]byte, 2*16*1024))
	mem.WriteMlatch(0x03) // page RAM bank 3 at 0xC000
	c := cpu.New(stubBus{})
	c.Reset()
	c.SetPC(0x1234)
	mem.RAMBank(3)[0] = 0xAB

	data := Bytes(c, mem, memory.Model128K, 2)

	mem2 := memory.New(memory.Model128K, make([]byte, 2*16*1024))
	c2 := cpu.New(stubBus{})
	_, err := LoadBytes(data, c2, mem2)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if c2.PC() != 0x1234 {
		t.Fatalf("PC after round trip = %04X, want 1234", c2.PC())
	}
	if mem2.RAMBank(3)[0] != 0xAB {
		t.Fatalf("bank 3 byte 0 = %02X, want AB", mem2.RAMBank(3)[0])
	}
}
