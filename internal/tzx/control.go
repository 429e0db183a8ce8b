package tzx

import "encoding/binary"

// controlResult tells the player's control-drain loop what to do next:
// advance one block, jump to an absolute block index, or stop the tape
// (model mismatch or a Stop-the-tape-if-in-48K-mode block that applies).
type controlResult struct {
	nextIndex int
	stop      bool
}

// runControlBlock interprets one control/informational block and returns
// where to go next. Loop and call/return state lives on the Player so it
// can span multiple invocations (spec.md §4.6.4).
func (p *Player) runControlBlock(idx int, ref blockRef) controlResult {
	payload := ref.payload(p.data)
	switch ref.id {
	case idGroupStart, idGroupEnd,
		idTextDesc, idMessage, idArchiveInfo, idHardwareType, idCustomInfo, idGlue:
		return controlResult{nextIndex: idx + 1}

	case idJump:
		rel := int16(binary.LittleEndian.Uint16(payload))
		return controlResult{nextIndex: idx + int(rel)}

	case idLoopStart:
		count := int(binary.LittleEndian.Uint16(payload))
		p.loopStart = idx + 1
		p.loopCount = count
		return controlResult{nextIndex: idx + 1}

	case idLoopEnd:
		if p.loopCount > 1 {
			p.loopCount--
			return controlResult{nextIndex: p.loopStart}
		}
		p.loopCount = 0
		return controlResult{nextIndex: idx + 1}

	case idCallSeq:
		n := int(binary.LittleEndian.Uint16(payload[0:2]))
		if n > 0 {
			first := int(int16(binary.LittleEndian.Uint16(payload[2:4])))
			p.callReturn = idx + 1
			return controlResult{nextIndex: idx + first}
		}
		return controlResult{nextIndex: idx + 1}

	case idReturn:
		if p.callReturn >= 0 {
			next := p.callReturn
			p.callReturn = -1
			return controlResult{nextIndex: next}
		}
		return controlResult{nextIndex: idx + 1}

	case idSelect:
		// Interactive block selection has no input source in this player;
		// treated as informational and skipped (spec.md §4.6.4).
		return controlResult{nextIndex: idx + 1}

	case idStop48K:
		if p.is48K {
			return controlResult{stop: true}
		}
		return controlResult{nextIndex: idx + 1}

	default:
		return controlResult{nextIndex: idx + 1}
	}
}
