package tzx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zayn-spectrum/zxemu/internal/clock"
	"github.com/zayn-spectrum/zxemu/internal/zerr"
)

// decodeCSW builds block ID 0x18: a Compressed Square Wave recording,
// re-timed from its own sample rate onto the master T-state clock with a
// running remainder so repeated rounding never drifts (spec.md §4.6.1,
// the same fixed-point discipline the beeper uses for host sample timing).
func decodeCSW(raw []byte) (signalBlock, error) {
	payload := raw[4:] // skip the leading block-length field
	pause := int(binary.LittleEndian.Uint16(payload[0:2]))
	samplingRate := int(payload[2]) | int(payload[3])<<8 | int(payload[4])<<16
	compression := payload[5]
	rle := payload[10:]

	var decoded []byte
	switch compression {
	case 1: // RLE, stored as-is
		decoded = rle
	case 2: // Z-RLE, zlib-compressed
		r, err := zlib.NewReader(bytes.NewReader(rle))
		if err != nil {
			return signalBlock{}, fmt.Errorf("%w: CSW zlib stream: %v", zerr.ErrFormat, err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return signalBlock{}, fmt.Errorf("%w: CSW zlib stream: %v", zerr.ErrFormat, err)
		}
		decoded = out
	default:
		return signalBlock{}, fmt.Errorf("%w: CSW compression type %d", zerr.ErrUnsupported, compression)
	}

	if samplingRate <= 0 {
		return signalBlock{}, fmt.Errorf("%w: CSW sampling rate %d", zerr.ErrFormat, samplingRate)
	}

	var ops []edgeOp
	level := false
	ops = append(ops, forceAt(0, level))
	var remainder int64
	i := 0
	for i < len(decoded) {
		runSamples := int64(decoded[i])
		i++
		if runSamples == 0 {
			if i+4 > len(decoded) {
				break
			}
			runSamples = int64(binary.LittleEndian.Uint32(decoded[i : i+4]))
			i += 4
		}
		numerator := runSamples*masterClockHz + remainder
		pulseT := numerator / int64(samplingRate)
		remainder = numerator % int64(samplingRate)
		level = !level
		ops = append(ops, forceAt(clock.TState(pulseT), level))
	}
	return signalBlock{ops: ops, pauseMS: pause}, nil
}
