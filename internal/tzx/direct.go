package tzx

import (
	"encoding/binary"

	"github.com/zayn-spectrum/zxemu/internal/clock"
)

// decodeDirectRecording builds block ID 0x15: a raw bitstream of EAR
// samples, one bit per sample (MSB first), each held for tstatesPerSample
// T-states. Runs of identical samples are compressed into a single forced-
// level edge at the run's start, per spec.md §4.6.1.
func decodeDirectRecording(payload []byte) signalBlock {
	tStatesPerSample := clock.TState(binary.LittleEndian.Uint16(payload[0:2]))
	pause := int(binary.LittleEndian.Uint16(payload[2:4]))
	usedBits := int(payload[4])
	dataLen := int(payload[5]) | int(payload[6])<<8 | int(payload[7])<<16
	data := payload[8 : 8+dataLen]

	n := 0
	for i := range data {
		bits := 8
		if i == len(data)-1 && usedBits >= 1 && usedBits <= 8 {
			bits = usedBits
		}
		n += bits
	}
	if n == 0 {
		return signalBlock{pauseMS: pause}
	}

	sample := func(idx int) bool {
		byteIdx := idx / 8
		bit := 7 - idx%8
		return data[byteIdx]&(1<<uint(bit)) != 0
	}

	var ops []edgeOp
	runLevel := sample(0)
	runStart := 0
	ops = append(ops, forceAt(0, runLevel))
	for i := 1; i < n; i++ {
		if sample(i) != runLevel {
			ops = append(ops, forceAt(clock.TState(i-runStart)*tStatesPerSample, sample(i)))
			runLevel = sample(i)
			runStart = i
		}
	}
	return signalBlock{ops: ops, pauseMS: pause}
}
