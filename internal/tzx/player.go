package tzx

import (
	"github.com/zayn-spectrum/zxemu/internal/clock"
)

// maxEdgesPerAdvance bounds the number of edges a single AdvanceTo call may
// emit, per spec.md §4.6.5's hard cap against pathological or malformed
// tape images stalling the scheduler.
const maxEdgesPerAdvance = 200_000

// maxControlStepsPerBlock guards against a degenerate control-block chain
// (e.g. a jump that oscillates between two empty groups) spinning forever
// without ever reaching a signal-producing block or the end of the tape.
const maxControlStepsPerBlock = 1_000_000

// EdgeSink receives EAR edges, sharing its shape with the TAP player's
// sink so a single observer (the beeper) can serve both.
type EdgeSink interface {
	AdvanceTo(t clock.TState)
	SetTapeLevel(level bool)
}

// Player replays a TZX tape image, decoding each signal-producing block
// into a flat edge schedule on entry and draining control blocks (groups,
// jumps, loops, calls) between them, per spec.md §4.6.
type Player struct {
	data []byte
	refs []blockRef
	sink EdgeSink
	is48K bool

	blockIdx int
	stopped  bool // end of tape, or an explicit Stop-the-tape block
	active   bool

	ops    []edgeOp
	opIdx  int
	lastAt clock.TState
	nextAt clock.TState

	inPause    bool
	pauseEndAt clock.TState

	level bool

	loopStart  int
	loopCount  int
	callReturn int

	curPauseMS int

	sliceOrigin clock.TState
}

// NewPlayer parses data as a TZX file and prepares to play it. is48K
// selects whether block ID 0x2A (Stop the tape if in 48K mode) takes
// effect.
func NewPlayer(data []byte, sink EdgeSink, is48K bool) (*Player, error) {
	refs, err := buildIndex(data)
	if err != nil {
		return nil, err
	}
	p := &Player{
		data:       data,
		refs:       refs,
		sink:       sink,
		is48K:      is48K,
		callReturn: -1,
		level:      true, // EAR idles high with no tape signal present
	}
	if len(refs) > 0 {
		p.active = true
		p.enterBlock(0, 0)
	}
	return p, nil
}

// Active reports whether the player still has edges, a pause, or reachable
// blocks pending.
func (p *Player) Active() bool { return p.active }

// Level returns the current EAR level this player is driving.
func (p *Player) Level() bool { return p.level }

// BeginSlice anchors the slice origin (scheduler contract, spec.md §4.2).
func (p *Player) BeginSlice(origin clock.TState) {
	p.sliceOrigin = origin
}

// EndSlice advances the player to slice_origin+cpuTStates.
func (p *Player) EndSlice(cpuTStates uint64) {
	p.AdvanceTo(p.sliceOrigin + clock.TState(cpuTStates))
}

// enterBlock walks forward from idx through any control/informational
// blocks and any signal blocks with neither pulses nor a pause, installing
// the first block it reaches that actually produces edges or a pause (or
// deactivating if the tape ends or a Stop block fires). anchor is the
// T-state the resulting schedule is relative to. The whole walk is a flat
// loop, never recursion, so a pathological chain of empty blocks degrades
// to a bounded number of iterations rather than unbounded stack growth
// (spec.md §4.6.5's stall guard).
func (p *Player) enterBlock(idx int, anchor clock.TState) {
	steps := 0
	for {
		if idx < 0 || idx >= len(p.refs) {
			p.active = false
			p.stopped = true
			return
		}
		steps++
		if steps > maxControlStepsPerBlock {
			p.active = false
			p.stopped = true
			return
		}

		ref := p.refs[idx]
		if isControlBlock(ref.id) {
			res := p.runControlBlock(idx, ref)
			if res.stop {
				p.active = false
				p.stopped = true
				return
			}
			idx = res.nextIndex
			continue
		}

		block, stop, err := p.decodeSignalBlock(ref)
		if err != nil || stop {
			p.active = false
			p.stopped = true
			return
		}
		if len(block.ops) == 0 && block.pauseMS <= 0 {
			idx++
			continue
		}
		p.blockIdx = idx
		p.installBlock(block, anchor)
		return
	}
}

// decodeSignalBlock dispatches to the per-kind decoder. The second return
// reports an explicit tape stop (block ID 0x20 with pause == 0).
func (p *Player) decodeSignalBlock(ref blockRef) (signalBlock, bool, error) {
	payload := ref.payload(p.data)
	switch ref.id {
	case idStandard:
		return decodeStandard(payload), false, nil
	case idTurbo:
		return decodeTurbo(payload), false, nil
	case idPureTone:
		return decodePureTone(payload), false, nil
	case idPulseSequence:
		return decodePulseSequence(payload), false, nil
	case idPureData:
		return decodePureData(payload), false, nil
	case idDirectRec:
		return decodeDirectRecording(payload), false, nil
	case idCSW:
		b, err := decodeCSW(payload)
		return b, false, err
	case idGeneralised:
		b, err := decodeGeneralised(payload)
		return b, false, err
	case idPauseStop:
		b, stop := decodePauseStop(payload)
		return b, stop, nil
	case idSetSignal:
		return decodeSetSignalLevel(payload), false, nil
	default:
		return signalBlock{}, false, nil
	}
}

// installBlock sets up the edge schedule for a block known to have either
// pulses or a positive pause (enterBlock skips anything emptier than that).
func (p *Player) installBlock(block signalBlock, anchor clock.TState) {
	p.ops = block.ops
	p.opIdx = 0
	p.lastAt = anchor
	p.curPauseMS = block.pauseMS
	if len(p.ops) == 0 {
		p.inPause = true
		p.pauseEndAt = anchor + msToTStates(block.pauseMS)
		return
	}
	p.inPause = false
	p.nextAt = p.lastAt + p.ops[0].pulse
}

// startPause transitions from the end of the current block's pulses into
// its pause (if any), or straight into the next block.
func (p *Player) startPause(at clock.TState, pauseMS int) {
	if pauseMS <= 0 {
		p.enterBlock(p.blockIdx+1, at)
		return
	}
	p.pauseEndAt = at + msToTStates(pauseMS)
	p.inPause = true
}

// AdvanceTo emits every edge scheduled at or before tNow, accumulating
// each subsequent edge from the previous edge's resolved time rather than
// from tNow, so the edge sequence is identical regardless of how finely
// AdvanceTo is called (spec.md §8 invariant 2, TZX invariant 4).
func (p *Player) AdvanceTo(tNow clock.TState) {
	emitted := 0
	for p.active {
		if p.inPause {
			if tNow < p.pauseEndAt {
				return
			}
			p.enterBlock(p.blockIdx+1, p.pauseEndAt)
			continue
		}
		if p.opIdx >= len(p.ops) {
			p.startPause(p.lastAt, p.curPauseMS)
			continue
		}
		if p.nextAt > tNow {
			return
		}
		if emitted >= maxEdgesPerAdvance {
			return
		}
		op := p.ops[p.opIdx]
		at := p.nextAt
		if op.setLevel != nil {
			p.level = *op.setLevel
		} else {
			p.level = !p.level
		}
		p.sink.AdvanceTo(at)
		p.sink.SetTapeLevel(p.level)
		p.lastAt = at
		emitted++

		p.opIdx++
		if p.opIdx < len(p.ops) {
			p.nextAt = p.lastAt + p.ops[p.opIdx].pulse
			continue
		}
		// Block exhausted: its pulses are done, move into its pause (if
		// any) or straight on to the next block.
		p.startPause(p.lastAt, p.curPauseMS)
	}
}

// Rewind re-anchors the player at the start of the tape, with origin
// standing in for the caller's current frame origin (spec.md §6, F9).
func (p *Player) Rewind(origin clock.TState) {
	if len(p.refs) == 0 {
		p.active = false
		return
	}
	p.active = true
	p.stopped = false
	p.level = true
	p.loopCount = 0
	p.callReturn = -1
	p.enterBlock(0, origin)
}
