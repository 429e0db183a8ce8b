package tzx

import (
	"encoding/binary"

	"github.com/zayn-spectrum/zxemu/internal/clock"
)

// Pulse lengths shared with the TAP player's ROM-loader timing, per
// spec.md §4.5/§4.6.1.
const (
	pulsePilot = 2168
	pulseSync1 = 667
	pulseSync2 = 735
	pulseBit0  = 855
	pulseBit1  = 1710

	pilotCountHeader = 8063
	pilotCountData   = 3223
)

// signalBlock is a block decoded into a flat edge schedule plus the pause
// (in milliseconds) that follows it. pauseMS of 0 means no forced pause:
// the player moves to the next block immediately.
type signalBlock struct {
	ops    []edgeOp
	pauseMS int
}

// decodeStandard builds block ID 0x10 (Standard Speed Data): ROM-loader
// pilot/sync/bit timing with the pilot length chosen from the data's flag
// byte, exactly like a TAP block (spec.md §4.6.1).
func decodeStandard(payload []byte) signalBlock {
	pause := int(binary.LittleEndian.Uint16(payload[0:2]))
	dataLen := int(binary.LittleEndian.Uint16(payload[2:4]))
	data := payload[4 : 4+dataLen]

	pilotCount := pilotCountData
	if len(data) > 0 && data[0] == 0x00 {
		pilotCount = pilotCountHeader
	}
	var ops []edgeOp
	for i := 0; i < pilotCount; i++ {
		ops = append(ops, toggle(pulsePilot))
	}
	ops = append(ops, toggle(pulseSync1), toggle(pulseSync2))
	ops = append(ops, dataBitPulses(data, 8, pulseBit0, pulseBit1)...)
	return signalBlock{ops: ops, pauseMS: pause}
}

// decodeTurbo builds block ID 0x11 (Turbo Speed Data): the same pilot/
// sync/bit shape as Standard, but with every pulse duration, pilot
// repetition count, and final-byte bit count given explicitly.
func decodeTurbo(payload []byte) signalBlock {
	pilotPulse := clock.TState(binary.LittleEndian.Uint16(payload[0:2]))
	sync1 := clock.TState(binary.LittleEndian.Uint16(payload[2:4]))
	sync2 := clock.TState(binary.LittleEndian.Uint16(payload[4:6]))
	zero := clock.TState(binary.LittleEndian.Uint16(payload[6:8]))
	one := clock.TState(binary.LittleEndian.Uint16(payload[8:10]))
	pilotLen := int(binary.LittleEndian.Uint16(payload[10:12]))
	usedBits := int(payload[12])
	pause := int(binary.LittleEndian.Uint16(payload[13:15]))
	dataLen := int(payload[15]) | int(payload[16])<<8 | int(payload[17])<<16
	data := payload[18 : 18+dataLen]

	var ops []edgeOp
	for i := 0; i < pilotLen; i++ {
		ops = append(ops, toggle(pilotPulse))
	}
	if sync1 > 0 {
		ops = append(ops, toggle(sync1))
	}
	if sync2 > 0 {
		ops = append(ops, toggle(sync2))
	}
	ops = append(ops, dataBitPulses(data, usedBits, zero, one)...)
	return signalBlock{ops: ops, pauseMS: pause}
}

// decodePureTone builds block ID 0x12: a fixed number of equal-length
// toggle pulses, with no pause field.
func decodePureTone(payload []byte) signalBlock {
	pulseLen := clock.TState(binary.LittleEndian.Uint16(payload[0:2]))
	count := int(binary.LittleEndian.Uint16(payload[2:4]))
	ops := make([]edgeOp, count)
	for i := range ops {
		ops[i] = toggle(pulseLen)
	}
	return signalBlock{ops: ops}
}

// decodePulseSequence builds block ID 0x13: an explicit list of toggle
// pulse lengths, with no pause field.
func decodePulseSequence(payload []byte) signalBlock {
	n := int(payload[0])
	ops := make([]edgeOp, n)
	for i := 0; i < n; i++ {
		ops[i] = toggle(clock.TState(binary.LittleEndian.Uint16(payload[1+2*i : 3+2*i])))
	}
	return signalBlock{ops: ops}
}

// decodePureData builds block ID 0x14: bit-encoded data with explicit
// zero/one pulse lengths and no pilot or sync, per spec.md §4.6.1.
func decodePureData(payload []byte) signalBlock {
	zero := clock.TState(binary.LittleEndian.Uint16(payload[0:2]))
	one := clock.TState(binary.LittleEndian.Uint16(payload[2:4]))
	usedBits := int(payload[4])
	pause := int(binary.LittleEndian.Uint16(payload[5:7]))
	dataLen := int(payload[7]) | int(payload[8])<<8 | int(payload[9])<<16
	data := payload[10 : 10+dataLen]
	return signalBlock{ops: dataBitPulses(data, usedBits, zero, one), pauseMS: pause}
}
