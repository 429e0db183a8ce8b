package tzx

import (
	"encoding/binary"
	"fmt"

	"github.com/zayn-spectrum/zxemu/internal/clock"
	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

// symbol is one entry of a generalised-data alphabet: a start-of-symbol
// flag action plus the sequence of toggle pulses that follow it.
type symbol struct {
	flags  byte
	pulses []clock.TState
}

// ops expands a symbol into its edge operations: the flag action (emitted
// instantly, i.e. with a zero pulse) followed by each pulse as a toggle,
// per spec.md §4.6.3.
func (s symbol) ops() []edgeOp {
	out := make([]edgeOp, 0, 1+len(s.pulses))
	switch s.flags & 0x03 {
	case 0: // toggle EAR
		out = append(out, toggle(0))
	case 1: // keep EAR level, no action
	case 2: // force low
		out = append(out, forceAt(0, false))
	case 3: // force high
		out = append(out, forceAt(0, true))
	}
	for _, p := range s.pulses {
		out = append(out, toggle(p))
	}
	return out
}

// parseAlphabet reads n symbol entries, each a flags byte followed by
// maxPulses little-endian pulse lengths (a stored length of 0 marks an
// unused trailing slot and is dropped).
func parseAlphabet(data []byte, n, maxPulses int) ([]symbol, int, error) {
	entrySize := 1 + 2*maxPulses
	need := n * entrySize
	if len(data) < need {
		return nil, 0, fmt.Errorf("%w: generalised data alphabet truncated", zerr.ErrFormat)
	}
	symbols := make([]symbol, n)
	for i := 0; i < n; i++ {
		off := i * entrySize
		flags := data[off]
		var pulses []clock.TState
		for j := 0; j < maxPulses; j++ {
			v := binary.LittleEndian.Uint16(data[off+1+2*j : off+3+2*j])
			if v != 0 {
				pulses = append(pulses, clock.TState(v))
			}
		}
		symbols[i] = symbol{flags: flags, pulses: pulses}
	}
	return symbols, need, nil
}

// bitsFor returns ceil(log2(n)) for n >= 1.
func bitsFor(n int) int {
	bits := 0
	for (1 << uint(bits)) < n {
		bits++
	}
	return bits
}

type bitReader struct {
	data []byte
	pos  int // bit position, MSB first within each byte
}

func (r *bitReader) read(bits int) int {
	v := 0
	for i := 0; i < bits; i++ {
		byteIdx := r.pos / 8
		bit := 7 - r.pos%8
		b := 0
		if byteIdx < len(r.data) && r.data[byteIdx]&(1<<uint(bit)) != 0 {
			b = 1
		}
		v = v<<1 | b
		r.pos++
	}
	return v
}

// decodeGeneralised builds block ID 0x19: an explicit pilot/sync symbol
// stream followed by a bit-packed data symbol stream, each driven by its
// own alphabet of flag+pulses entries (spec.md §4.6.1/§4.6.3).
func decodeGeneralised(raw []byte) (signalBlock, error) {
	payload := raw[4:] // skip the leading block-length field
	pause := int(binary.LittleEndian.Uint16(payload[0:2]))
	totp := int(binary.LittleEndian.Uint32(payload[2:6]))
	npp := int(payload[6])
	asp := int(payload[7])
	totd := int(binary.LittleEndian.Uint32(payload[8:12]))
	npd := int(payload[12])
	asd := int(payload[13])
	if asp == 0 {
		asp = 256
	}
	if asd == 0 {
		asd = 256
	}

	if npp >= 16 || npd >= 16 {
		return signalBlock{}, fmt.Errorf("%w: generalised data pulses-per-symbol must be below 16", zerr.ErrFormat)
	}

	off := 14
	var ops []edgeOp

	if totp > 0 {
		if npp == 0 {
			return signalBlock{}, fmt.Errorf("%w: generalised data pilot stream with empty alphabet", zerr.ErrFormat)
		}
		alphabet, consumed, err := parseAlphabet(payload[off:], asp, npp)
		if err != nil {
			return signalBlock{}, err
		}
		off += consumed
		for i := 0; i < totp; i++ {
			idx := int(payload[off])
			rep := int(binary.LittleEndian.Uint16(payload[off+1 : off+3]))
			if rep == 0 {
				rep = 65536
			}
			off += 3
			if idx >= len(alphabet) {
				return signalBlock{}, fmt.Errorf("%w: generalised data pilot symbol index out of range", zerr.ErrFormat)
			}
			symOps := alphabet[idx].ops()
			for r := 0; r < rep; r++ {
				ops = append(ops, symOps...)
			}
		}
	}

	if totd > 0 {
		if npd == 0 {
			return signalBlock{}, fmt.Errorf("%w: generalised data data stream with empty alphabet", zerr.ErrFormat)
		}
		alphabet, consumed, err := parseAlphabet(payload[off:], asd, npd)
		if err != nil {
			return signalBlock{}, err
		}
		off += consumed
		bits := bitsFor(asd)
		br := bitReader{data: payload[off:]}
		for i := 0; i < totd; i++ {
			idx := br.read(bits)
			if idx >= len(alphabet) {
				return signalBlock{}, fmt.Errorf("%w: generalised data data symbol index out of range", zerr.ErrFormat)
			}
			ops = append(ops, alphabet[idx].ops()...)
		}
	}

	return signalBlock{ops: ops, pauseMS: pause}, nil
}
