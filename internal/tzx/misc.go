package tzx

import "encoding/binary"

// decodePauseStop builds block ID 0x20. A pause value of 0 means "stop the
// tape", which the player treats the same as reaching end of the block
// list: it deactivates until something rewinds it, rather than resuming
// after a zero-length pause (spec.md §4.6.1).
func decodePauseStop(payload []byte) (signalBlock, bool) {
	pause := int(binary.LittleEndian.Uint16(payload[0:2]))
	if pause == 0 {
		return signalBlock{}, true
	}
	return signalBlock{pauseMS: pause}, false
}

// decodeSetSignalLevel builds block ID 0x2B: an instantaneous forced EAR
// level with no pulses and no pause, taking effect immediately and
// falling through to the next block.
func decodeSetSignalLevel(payload []byte) signalBlock {
	level := payload[4] != 0
	return signalBlock{ops: []edgeOp{forceAt(0, level)}}
}
