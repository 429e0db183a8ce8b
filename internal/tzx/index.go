// Package tzx implements the TZX tape-image player: a 17-block-kind pulse
// generator with drift-free edge scheduling across arbitrary stepping
// granularity (spec.md §4.6).
package tzx

import (
	"encoding/binary"
	"fmt"

	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

// Block IDs, per spec.md §4.6.1.
const (
	idStandard      = 0x10
	idTurbo         = 0x11
	idPureTone      = 0x12
	idPulseSequence = 0x13
	idPureData      = 0x14
	idDirectRec     = 0x15
	idCSW           = 0x18
	idGeneralised   = 0x19
	idPauseStop     = 0x20
	idGroupStart    = 0x21
	idGroupEnd      = 0x22
	idJump          = 0x23
	idLoopStart     = 0x24
	idLoopEnd       = 0x25
	idCallSeq       = 0x26
	idReturn        = 0x27
	idSelect        = 0x28
	idStop48K       = 0x2A
	idSetSignal     = 0x2B
	idTextDesc      = 0x30
	idMessage       = 0x31
	idArchiveInfo   = 0x32
	idHardwareType  = 0x33
	idCustomInfo    = 0x35
	idGlue          = 0x5A
)

// blockRef indexes one block's location in the owned file buffer: the ID
// byte's offset, and the payload slice following it.
type blockRef struct {
	id     byte
	offset int // offset of ID byte
	length int // total bytes including the ID byte
}

func (b blockRef) payload(data []byte) []byte {
	return data[b.offset+1 : b.offset+b.length]
}

var magic = []byte("ZXTape!\x1a")

// buildIndex validates the file header and indexes every block. An unknown
// block ID is a fatal load-time error, per spec.md §4.6.6.
func buildIndex(data []byte) ([]blockRef, error) {
	if len(data) < 10 || string(data[:8]) != string(magic) {
		return nil, fmt.Errorf("%w: bad TZX magic", zerr.ErrFormat)
	}
	var refs []blockRef
	off := 10
	for off < len(data) {
		id := data[off]
		length, err := blockLength(id, data[off+1:])
		if err != nil {
			return nil, err
		}
		total := 1 + length
		if off+total > len(data) {
			return nil, fmt.Errorf("%w: block 0x%02X at offset %d truncated", zerr.ErrFormat, id, off)
		}
		refs = append(refs, blockRef{id: id, offset: off, length: total})
		off += total
	}
	return refs, nil
}

// blockLength returns the number of payload bytes following the ID byte,
// per each block kind's documented layout.
func blockLength(id byte, payload []byte) (int, error) {
	need := func(n int) error {
		if len(payload) < n {
			return fmt.Errorf("%w: block 0x%02X needs %d header bytes, have %d", zerr.ErrFormat, id, n, len(payload))
		}
		return nil
	}
	switch id {
	case idStandard:
		if err := need(4); err != nil {
			return 0, err
		}
		dataLen := int(binary.LittleEndian.Uint16(payload[2:4]))
		return 4 + dataLen, nil
	case idTurbo:
		if err := need(18); err != nil {
			return 0, err
		}
		dataLen := int(payload[15]) | int(payload[16])<<8 | int(payload[17])<<16
		return 18 + dataLen, nil
	case idPureTone:
		return 4, nil
	case idPulseSequence:
		if err := need(1); err != nil {
			return 0, err
		}
		n := int(payload[0])
		return 1 + 2*n, nil
	case idPureData:
		if err := need(10); err != nil {
			return 0, err
		}
		dataLen := int(payload[7]) | int(payload[8])<<8 | int(payload[9])<<16
		return 10 + dataLen, nil
	case idDirectRec:
		if err := need(8); err != nil {
			return 0, err
		}
		dataLen := int(payload[5]) | int(payload[6])<<8 | int(payload[7])<<16
		return 8 + dataLen, nil
	case idCSW:
		if err := need(4); err != nil {
			return 0, err
		}
		blen := int(binary.LittleEndian.Uint32(payload[0:4]))
		return 4 + blen, nil
	case idGeneralised:
		if err := need(4); err != nil {
			return 0, err
		}
		blen := int(binary.LittleEndian.Uint32(payload[0:4]))
		return 4 + blen, nil
	case idPauseStop:
		return 2, nil
	case idGroupStart:
		if err := need(1); err != nil {
			return 0, err
		}
		return 1 + int(payload[0]), nil
	case idGroupEnd:
		return 0, nil
	case idJump:
		return 2, nil
	case idLoopStart:
		return 2, nil
	case idLoopEnd:
		return 0, nil
	case idCallSeq:
		if err := need(2); err != nil {
			return 0, err
		}
		n := int(binary.LittleEndian.Uint16(payload[0:2]))
		return 2 + 2*n, nil
	case idReturn:
		return 0, nil
	case idSelect:
		if err := need(2); err != nil {
			return 0, err
		}
		blen := int(binary.LittleEndian.Uint16(payload[0:2]))
		return 2 + blen, nil
	case idStop48K:
		return 4, nil
	case idSetSignal:
		return 5, nil
	case idTextDesc:
		if err := need(1); err != nil {
			return 0, err
		}
		return 1 + int(payload[0]), nil
	case idMessage:
		if err := need(2); err != nil {
			return 0, err
		}
		return 2 + int(payload[1]), nil
	case idArchiveInfo:
		if err := need(2); err != nil {
			return 0, err
		}
		blen := int(binary.LittleEndian.Uint16(payload[0:2]))
		return 2 + blen, nil
	case idHardwareType:
		if err := need(1); err != nil {
			return 0, err
		}
		n := int(payload[0])
		return 1 + 3*n, nil
	case idCustomInfo:
		if err := need(14); err != nil {
			return 0, err
		}
		blen := int(binary.LittleEndian.Uint32(payload[10:14]))
		return 14 + blen, nil
	case idGlue:
		return 9, nil
	default:
		return 0, fmt.Errorf("%w: unknown TZX block ID 0x%02X", zerr.ErrUnsupported, id)
	}
}

// isControlBlock reports whether id is handled by the control-block drain
// loop of spec.md §4.6.6/§4.6.7, rather than by block init + edge advance.
func isControlBlock(id byte) bool {
	switch id {
	case idGroupStart, idGroupEnd, idJump, idLoopStart, idLoopEnd,
		idCallSeq, idReturn, idSelect, idStop48K,
		idTextDesc, idMessage, idArchiveInfo, idHardwareType, idCustomInfo, idGlue:
		return true
	default:
		return false
	}
}
