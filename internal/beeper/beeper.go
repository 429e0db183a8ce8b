// Package beeper converts the ULA's EAR/MIC output bits, the tape EAR input
// level and the AY PSG's mixed sample into a mono S16 host-rate sample
// stream. It is the single place T-states are converted to wall-clock audio
// samples, and every caller that changes a driving input must flush up to
// the current T-state first (AdvanceTo) so edges land in the right sample.
package beeper

import "github.com/zayn-spectrum/zxemu/internal/clock"

// masterClockHz is the Z80 clock rate tape/TZX/beeper timings are all
// expressed against: 3.5469 MHz, per the ZX Spectrum glossary.
const masterClockHz = 3_546_900

// PSGStepper advances the AY PSG by exactly one output sample and returns
// its mixed contribution. Only present on 128K/+3 models.
type PSGStepper interface {
	TickSample() int16
}

const (
	earAmplitude  = int32(0x3000)
	micAmplitude  = int32(0x1800)
	tapeAmplitude = int32(0x3000)
)

// Beeper accumulates T-state-timed level changes and emits S16 samples at
// a fixed host sample rate.
type Beeper struct {
	sampleRate int
	psg        PSGStepper

	frameOrigin clock.TState
	sliceOrigin clock.TState
	lastTstate  clock.TState
	fracAcc     int64 // residual numerator of (delta*sampleRate)/masterClockHz

	earOut bool
	micOut bool

	tapeActive bool
	tapeLevel  bool

	samples []int16
}

// New creates a Beeper producing samples at sampleRate Hz. psg may be nil on
// 48K models, where there is no AY chip to mix in.
func New(sampleRate int, psg PSGStepper) *Beeper {
	return &Beeper{sampleRate: sampleRate, psg: psg}
}

// BeginSlice anchors the slice origin. It must equal the frameOrigin this
// Beeper reported at the end of the previous slice (scheduler contract,
// spec.md invariant 1).
func (b *Beeper) BeginSlice(origin clock.TState) {
	b.sliceOrigin = origin
}

// EndSlice flushes all samples up to slice_origin+cpuTStates and re-anchors
// frameOrigin there.
func (b *Beeper) EndSlice(cpuTStates uint64) {
	tNow := b.sliceOrigin + clock.TState(cpuTStates)
	b.AdvanceTo(tNow)
	b.frameOrigin = tNow
}

// FrameOrigin returns the T-state the last EndSlice flushed to.
func (b *Beeper) FrameOrigin() clock.TState { return b.frameOrigin }

// LastTState returns the T-state samples have been generated up to.
func (b *Beeper) LastTState() clock.TState { return b.lastTstate }

// SetLevel updates the EAR/MIC output bits driven by ULA port-0xFE writes.
// Callers must have already advanced to the current T-state.
func (b *Beeper) SetLevel(ear, mic bool) {
	b.earOut = ear
	b.micOut = mic
}

// SetTapeLevel updates the tape EAR-input level. Tape/TZX edge callbacks
// call AdvanceTo(edgeTState) immediately before this, per spec.md §4.3.
func (b *Beeper) SetTapeLevel(level bool) {
	b.tapeLevel = level
}

// SetTapeActive marks whether a tape engine currently owns the EAR input;
// when false the tape contributes silence regardless of tapeLevel.
func (b *Beeper) SetTapeActive(active bool) {
	b.tapeActive = active
}

// AdvanceTo flushes deterministic sample generation from lastTstate up to
// tNow. It is idempotent for tNow <= lastTstate.
func (b *Beeper) AdvanceTo(tNow clock.TState) {
	if tNow <= b.lastTstate {
		return
	}
	delta := uint64(tNow - b.lastTstate)
	b.lastTstate = tNow

	total := int64(delta)*int64(b.sampleRate) + b.fracAcc
	n := total / masterClockHz
	b.fracAcc = total % masterClockHz
	if n <= 0 {
		return
	}

	contribution := int32(0)
	if b.earOut {
		contribution += earAmplitude
	}
	if b.micOut {
		contribution += micAmplitude
	}
	if b.tapeActive && b.tapeLevel {
		contribution += tapeAmplitude
	}

	for i := int64(0); i < n; i++ {
		sample := contribution
		if b.psg != nil {
			sample += int32(b.psg.TickSample())
		}
		b.samples = append(b.samples, clampS16(sample))
	}
}

// DrainSamples returns all samples accumulated since the last drain and
// resets the internal buffer, for handoff to an audio sink.
func (b *Beeper) DrainSamples() []int16 {
	out := b.samples
	b.samples = nil
	return out
}

func clampS16(v int32) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}
