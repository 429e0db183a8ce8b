// Package snapshot implements .SNA snapshot load/save for 48K and 128K/+3
// machines (spec.md's supplemented "SNA snapshot" feature), following the
// teacher's plain byte-slice file parsers (ay_parser.go) rather than any
// binary/struct-tag decoding library, since the format is a small,
// fixed-layout header plus raw memory dumps.
package snapshot

import (
	"fmt"
	"os"

	"github.com/zayn-spectrum/zxemu/internal/cpu"
	"github.com/zayn-spectrum/zxemu/internal/memory"
	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

const (
	headerSize  = 27
	bulkRAMSize = 48 * 1024
	bankSize    = 16 * 1024
	ext128Size  = 4 // PC(2), 7FFD(1), TR-DOS paged(1)
)

// Load reads a .SNA file into cpu and mem. mem must already be constructed
// for the right Model; a 48K-sized file (header+48KiB) is valid for any
// model (registers, border and RAM banks 5, 2 and 0), while a 128K-sized file additionally
// requires mem's model to not be Model48K.
func Load(path string, c *cpu.CPU, mem *memory.Map) (border byte, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: reading snapshot %q: %v", zerr.ErrIO, path, err)
	}
	return LoadBytes(data, c, mem)
}

// LoadBytes parses an in-memory .SNA image, for callers that already have
// the file's bytes (e.g. an embedded test fixture).
func LoadBytes(data []byte, c *cpu.CPU, mem *memory.Map) (border byte, err error) {
	if len(data) < headerSize+bulkRAMSize {
		return 0, fmt.Errorf("%w: snapshot is %d bytes, want at least %d", zerr.ErrFormat, len(data), headerSize+bulkRAMSize)
	}

	h := data[:headerSize]
	var s cpu.State
	s.I = h[0]
	s.L2 = h[1]
	s.H2 = h[2]
	s.E2 = h[3]
	s.D2 = h[4]
	s.C2 = h[5]
	s.B2 = h[6]
	s.F2 = h[7]
	s.A2 = h[8]
	s.L = h[9]
	s.H = h[10]
	s.E = h[11]
	s.D = h[12]
	s.C = h[13]
	s.B = h[14]
	s.IY = uint16(h[15]) | uint16(h[16])<<8
	s.IX = uint16(h[17]) | uint16(h[18])<<8
	iff2 := h[19]&0x04 != 0
	s.IFF1, s.IFF2 = iff2, iff2
	s.R = h[20]
	s.F = h[21]
	s.A = h[22]
	sp := uint16(h[23]) | uint16(h[24])<<8
	s.IM = h[25]
	border = h[26] & 0x07

	bulk := data[headerSize : headerSize+bulkRAMSize]
	rest := data[headerSize+bulkRAMSize:]

	if len(rest) >= ext128Size {
		pc := uint16(rest[0]) | uint16(rest[1])<<8
		port7ffd := rest[2]
		// rest[3] is the TR-DOS-paged flag, not modelled: this port is
		// implemented, unlike the full TR-DOS ROM banking it would need
		// to actually switch in.
		s.PC = pc
		loadBulk128(mem, bulk, port7ffd, rest[ext128Size:])
		mem.WriteMlatch(port7ffd)
	} else {
		copy(mem.RAMBank(5)[:], bulk[0:bankSize])
		copy(mem.RAMBank(2)[:], bulk[bankSize:2*bankSize])
		copy(mem.RAMBank(0)[:], bulk[2*bankSize:3*bankSize])
		// 48K SNAs store no PC: it is the word at the top of the saved
		// stack, which the popping below also corrects SP for.
		s.PC = uint16(mem.Read(sp)) | uint16(mem.Read(sp+1))<<8
		sp += 2
	}
	s.SP = sp

	c.Restore(s)
	return border, nil
}

// loadBulk128 places the 48KiB bulk dump's three banks (5, 2, and whatever
// was paged at 0xC000 when the snapshot was taken) and then the remaining
// banks block, in ascending bank order skipping 5, 2 and the paged bank.
func loadBulk128(mem *memory.Map, bulk []byte, port7ffd byte, extra []byte) {
	paged := int(port7ffd & 0x07)
	copy(mem.RAMBank(5)[:], bulk[0:bankSize])
	copy(mem.RAMBank(2)[:], bulk[bankSize:2*bankSize])
	copy(mem.RAMBank(paged)[:], bulk[2*bankSize:3*bankSize])

	off := 0
	for bank := 0; bank < 8 && off+bankSize <= len(extra); bank++ {
		if bank == 5 || bank == 2 || bank == paged {
			continue
		}
		copy(mem.RAMBank(bank)[:], extra[off:off+bankSize])
		off += bankSize
	}
}

// Save writes a .SNA file from cpu's registers, mem's RAM banks and the
// current border colour. For a 48K mem, SP is decremented by 2 and PC
// pushed onto the stack at the new SP, matching the format's convention
// that 48K snapshots carry no explicit PC field.
func Save(path string, c *cpu.CPU, mem *memory.Map, model memory.Model, border byte) error {
	data := Bytes(c, mem, model, border)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing snapshot %q: %v", zerr.ErrIO, path, err)
	}
	return nil
}

// Bytes renders a .SNA image without touching the filesystem.
func Bytes(c *cpu.CPU, mem *memory.Map, model memory.Model, border byte) []byte {
	s := c.Snapshot()
	h := make([]byte, headerSize)
	h[0] = s.I
	h[1], h[2] = s.L2, s.H2
	h[3], h[4] = s.E2, s.D2
	h[5], h[6] = s.C2, s.B2
	h[7], h[8] = s.F2, s.A2
	h[9], h[10] = s.L, s.H
	h[11], h[12] = s.E, s.D
	h[13], h[14] = s.C, s.B
	h[15], h[16] = byte(s.IY), byte(s.IY>>8)
	h[17], h[18] = byte(s.IX), byte(s.IX>>8)
	if s.IFF2 {
		h[19] = 0x04
	}
	h[20] = s.R
	h[21] = s.F
	h[22] = s.A

	sp := s.SP
	var bulk []byte
	var tail []byte
	if model == memory.Model48K {
		sp -= 2
		mem.Write(sp, byte(s.PC))
		mem.Write(sp+1, byte(s.PC>>8))
		bulk = append(bulk, mem.RAMBank(5)[:]...)
		bulk = append(bulk, mem.RAMBank(2)[:]...)
		bulk = append(bulk, mem.RAMBank(0)[:]...)
	} else {
		bulk = append(bulk, mem.RAMBank(5)[:]...)
		bulk = append(bulk, mem.RAMBank(2)[:]...)
		bulk = append(bulk, snapshot0xC000(mem)...)

		port7ffd := mem.Port7FFD()
		tail = append(tail, byte(s.PC), byte(s.PC>>8), port7ffd, 0)
		pagedBank := int(port7ffd & 0x07)
		for bank := 0; bank < 8; bank++ {
			if bank == 5 || bank == 2 || bank == pagedBank {
				continue
			}
			tail = append(tail, mem.RAMBank(bank)[:]...)
		}
	}

	h[23], h[24] = byte(sp), byte(sp>>8)
	h[25] = s.IM
	h[26] = border & 0x07

	out := make([]byte, 0, len(h)+len(bulk)+len(tail))
	out = append(out, h...)
	out = append(out, bulk...)
	out = append(out, tail...)
	return out
}

// snapshot0xC000 reads the 16 KiB currently visible at 0xC000 through the
// paging map, which is whichever RAM bank the 7FFD latch selected.
func snapshot0xC000(mem *memory.Map) []byte {
	out := make([]byte, bankSize)
	for i := 0; i < bankSize; i++ {
		out[i] = mem.Read(uint16(0xC000 + i))
	}
	return out
}
