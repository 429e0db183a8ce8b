package tape

import "github.com/zayn-spectrum/zxemu/internal/diag"

// MemoryWriter is the capability the fast loader needs from the machine to
// inject CODE blocks: a plain byte write into the current memory map.
type MemoryWriter interface {
	WriteByte(addr uint16, value byte)
}

// PCSetter lets the fast loader set the CPU's program counter once loading
// completes, for auto-start.
type PCSetter interface {
	SetPC(addr uint16)
}

// FastLoad parses a TAP file and injects every CODE block directly into
// memory at its declared load address, skipping the ROM loader's
// pilot/sync/bit timing entirely (spec.md §4.7). If autoStart is set, PC is
// set to the start address of the last CODE block loaded.
func FastLoad(data []byte, mem MemoryWriter, pc PCSetter, autoStart bool, log *diag.Logger) error {
	blocks, err := ParseTAP(data)
	if err != nil {
		return err
	}

	var lastCodeAddr uint16
	haveCode := false

	for i := 0; i < len(blocks); i++ {
		header, ok := blocks[i].HeaderPayload()
		if !ok {
			continue
		}
		if header.Type != HeaderTypeCode {
			if log != nil {
				log.Warnf("tape: skipping unsupported header type %d (%q)", header.Type, string(header.Name[:]))
			}
			continue
		}
		if i+1 >= len(blocks) {
			if log != nil {
				log.Warnf("tape: CODE header %q has no following data block", string(header.Name[:]))
			}
			continue
		}
		payload := blocks[i+1].Payload()
		i++

		n := len(payload)
		if int(header.Length) <= n {
			n = int(header.Length)
		}
		addr := header.Param1
		for j := 0; j < n; j++ {
			mem.WriteByte(addr+uint16(j), payload[j])
		}
		lastCodeAddr = addr
		haveCode = true
	}

	if autoStart && haveCode && pc != nil {
		pc.SetPC(lastCodeAddr)
	}
	return nil
}
