package tape

import "github.com/zayn-spectrum/zxemu/internal/clock"

// Pulse lengths in T-states, per spec.md §4.5.
const (
	pulsePilot = 2168
	pulseSync1 = 667
	pulseSync2 = 735
	pulseBit0  = 855
	pulseBit1  = 1710

	pilotCountHeader = 8063 // flag 0x00
	pilotCountData   = 3223 // flag 0xFF (and any other non-zero flag)

	pauseMS = 1000
)

const masterClockHz = 3_546_900

// msToTStates converts whole milliseconds to T-states, floor rounding.
func msToTStates(ms int) clock.TState {
	return clock.TState(int64(ms) * masterClockHz / 1000)
}

// EdgeSink receives tape edges. AdvanceTo must be called with the edge's
// exact T-state before SetTapeLevel, so an observer's sample generator
// sees the edge land in the right sample (spec.md §4.3 contract). Beeper
// implements this interface directly.
type EdgeSink interface {
	AdvanceTo(t clock.TState)
	SetTapeLevel(level bool)
}

// Player replays a sequence of TAP blocks as pilot/sync/bit edges with the
// accumulate-from-edge scheduling discipline of spec.md §4.5: every pulse
// schedules its edge from the previous edge's time, never from whatever
// T-state advance_to happened to be called with.
type Player struct {
	blocks []Block
	sink   EdgeSink

	blockIdx int
	pulses   []clock.TState // cumulative pulse lengths since block start, precomputed
	pulseIdx int

	lastEdgeAt clock.TState
	nextEdgeAt clock.TState
	inPause    bool
	pauseEndAt clock.TState

	level  bool
	active bool

	sliceOrigin clock.TState
}

// NewPlayer creates a player over blocks, emitting edges to sink.
func NewPlayer(blocks []Block, sink EdgeSink) *Player {
	p := &Player{blocks: blocks, sink: sink, level: true}
	if len(blocks) > 0 {
		p.active = true
		p.initBlock(0, 0)
	}
	return p
}

// Active reports whether the player still has edges or a pause pending.
func (p *Player) Active() bool { return p.active }

// Level returns the current EAR level this player is driving.
func (p *Player) Level() bool { return p.level }

// initBlock sets up the pulse schedule for blocks[idx], anchored at anchor
// (the previous block's pause end, or the player's start time).
func (p *Player) initBlock(idx int, anchor clock.TState) {
	p.blockIdx = idx
	p.pulses = buildPulseSchedule(p.blocks[idx])
	p.pulseIdx = 0
	p.lastEdgeAt = anchor
	p.inPause = false
	if len(p.pulses) == 0 {
		p.pauseEndAt = anchor + msToTStates(pauseMS)
		p.inPause = true
		return
	}
	p.nextEdgeAt = anchor + p.pulses[0]
}

// buildPulseSchedule returns the relative pulse lengths for one block:
// pilot edges, sync1, sync2, then two sub-pulses per bit MSB-first for
// every byte (including the trailing checksum byte), per the block
// invariant of spec.md §3.
func buildPulseSchedule(b Block) []clock.TState {
	pilotCount := pilotCountData
	if b.Flag() == 0x00 {
		pilotCount = pilotCountHeader
	}
	pulses := make([]clock.TState, 0, pilotCount+2+len(b.Data)*16)
	for i := 0; i < pilotCount; i++ {
		pulses = append(pulses, pulsePilot)
	}
	pulses = append(pulses, pulseSync1, pulseSync2)
	for _, by := range b.Data {
		for bit := 7; bit >= 0; bit-- {
			var pulse clock.TState = pulseBit0
			if by&(1<<uint(bit)) != 0 {
				pulse = pulseBit1
			}
			pulses = append(pulses, pulse, pulse)
		}
	}
	return pulses
}

// BeginSlice anchors the slice origin (scheduler contract).
func (p *Player) BeginSlice(origin clock.TState) {
	p.sliceOrigin = origin
}

// EndSlice advances the player to slice_origin+cpuTStates.
func (p *Player) EndSlice(cpuTStates uint64) {
	p.AdvanceTo(p.sliceOrigin + clock.TState(cpuTStates))
}

// AdvanceTo emits every edge scheduled at or before tNow, in order,
// accumulating each subsequent edge from the previous edge's time. Calling
// this in one large step or many tiny steps produces an identical edge
// sequence (spec.md §8 invariant 2).
func (p *Player) AdvanceTo(tNow clock.TState) {
	for p.active {
		if p.inPause {
			if tNow < p.pauseEndAt {
				return
			}
			p.advanceToNextBlock()
			continue
		}
		if p.nextEdgeAt > tNow {
			return
		}
		p.sink.AdvanceTo(p.nextEdgeAt)
		p.level = !p.level
		p.sink.SetTapeLevel(p.level)
		p.lastEdgeAt = p.nextEdgeAt
		p.pulseIdx++
		if p.pulseIdx < len(p.pulses) {
			p.nextEdgeAt = p.lastEdgeAt + p.pulses[p.pulseIdx]
			continue
		}
		p.pauseEndAt = p.lastEdgeAt + msToTStates(pauseMS)
		p.inPause = true
	}
}

func (p *Player) advanceToNextBlock() {
	next := p.blockIdx + 1
	if next >= len(p.blocks) {
		p.active = false
		return
	}
	p.initBlock(next, p.pauseEndAt)
}

// Rewind re-anchors the player at the start of the first block, with the
// given origin standing in for the caller's current frame origin so edge
// callbacks remain monotonic (spec.md §6, F9 hotkey).
func (p *Player) Rewind(origin clock.TState) {
	if len(p.blocks) == 0 {
		p.active = false
		return
	}
	p.active = true
	p.level = true
	p.initBlock(0, origin)
}
