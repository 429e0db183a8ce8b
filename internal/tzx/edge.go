package tzx

import "github.com/zayn-spectrum/zxemu/internal/clock"

const masterClockHz = 3_546_900

// msToTStates converts whole milliseconds to T-states, floor rounding.
func msToTStates(ms int) clock.TState {
	return clock.TState(int64(ms) * masterClockHz / 1000)
}

// edgeOp is one scheduled action on the EAR line, relative to the previous
// op's resolved time: wait pulse T-states, then either toggle the current
// level (setLevel == nil) or force it to *setLevel. A zero-pulse op applies
// instantly at the anchor time it is reached, used for a generalised-data
// symbol's start-of-symbol flag action (spec.md §4.6.3) and for block 0x2B.
type edgeOp struct {
	pulse    clock.TState
	setLevel *bool
}

func toggle(pulse clock.TState) edgeOp { return edgeOp{pulse: pulse} }

func forceAt(pulse clock.TState, level bool) edgeOp {
	v := level
	return edgeOp{pulse: pulse, setLevel: &v}
}

// bitPulses encodes one byte as 16 sub-pulses (two per bit, MSB first),
// using zero/one as the per-bit pulse duration, matching the TAP/TZX
// standard-block bit encoding.
func bitPulses(by byte, bits int, zero, one clock.TState) []edgeOp {
	ops := make([]edgeOp, 0, bits*2)
	for i := 0; i < bits; i++ {
		bit := 7 - i
		d := zero
		if by&(1<<uint(bit)) != 0 {
			d = one
		}
		ops = append(ops, toggle(d), toggle(d))
	}
	return ops
}

// dataBitPulses encodes every byte in data as bit pulses, where the final
// byte may use fewer than 8 bits (usedBits, 1..8 meaning 8), per spec.md
// §4.6.1's turbo/pure-data block layout.
func dataBitPulses(data []byte, usedBits int, zero, one clock.TState) []edgeOp {
	var ops []edgeOp
	for i, by := range data {
		bits := 8
		if i == len(data)-1 && usedBits >= 1 && usedBits <= 8 {
			bits = usedBits
		}
		ops = append(ops, bitPulses(by, bits, zero, one)...)
	}
	return ops
}
