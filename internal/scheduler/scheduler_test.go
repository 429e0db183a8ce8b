package scheduler

import (
	"testing"

	"github.com/zayn-spectrum/zxemu/internal/beeper"
	"github.com/zayn-spectrum/zxemu/internal/border"
	"github.com/zayn-spectrum/zxemu/internal/clock"
)

// fakeCPU counts T-states consumed in fixed-size instruction steps, enough
// to exercise the scheduler's budget accounting without a real Z80 core.
type fakeCPU struct {
	stepSize   int
	irqAsserts int
	irqLow     bool
	totalSpent int
}

func (f *fakeCPU) RunFor(budget int) int {
	spent := 0
	for spent < budget {
		spent += f.stepSize
	}
	f.totalSpent += spent
	return spent
}

func (f *fakeCPU) SetIRQLine(assert bool) {
	if assert {
		f.irqAsserts++
		f.irqLow = false
	} else {
		f.irqLow = true
	}
}

func newTestScheduler(cpu CPU) *Scheduler {
	fb := make([]byte, border.FrameWidth*border.FrameHeight*4)
	b := border.New(border.Timing48K, fb)
	bp := beeper.New(44100, nil)
	return New(cpu, clock.New(), b, bp, nil, nil, nil, border.Timing48K.TStatesPerLine)
}

func TestRunFrameConsumesWholeFrameBudget(t *testing.T) {
	cpu := &fakeCPU{stepSize: 4}
	s := newTestScheduler(cpu)

	s.RunFrame()

	want := TStatesPerFrame(border.Timing48K.TStatesPerLine)
	if cpu.totalSpent < want {
		t.Fatalf("CPU ran for %d T-states, want at least %d", cpu.totalSpent, want)
	}
	if !cpu.irqLow {
		t.Fatalf("IRQ line left asserted after frame, want released")
	}
	if cpu.irqAsserts != 1 {
		t.Fatalf("IRQ asserted %d times, want exactly 1 per frame", cpu.irqAsserts)
	}
}

func TestFlashTogglesEvery16Frames(t *testing.T) {
	cpu := &fakeCPU{stepSize: 4}
	s := newTestScheduler(cpu)

	for i := 0; i < 15; i++ {
		s.RunFrame()
	}
	if s.FlashPhase() != 0 {
		t.Fatalf("flash phase = %d after 15 frames, want 0", s.FlashPhase())
	}

	s.RunFrame() // 16th frame
	if s.FlashPhase() != 1 {
		t.Fatalf("flash phase = %d after 16 frames, want 1", s.FlashPhase())
	}

	for i := 0; i < 15; i++ {
		s.RunFrame()
	}
	if s.FlashPhase() != 1 {
		t.Fatalf("flash phase = %d after 31 frames, want 1", s.FlashPhase())
	}

	s.RunFrame() // 32nd frame
	if s.FlashPhase() != 0 {
		t.Fatalf("flash phase = %d after 32 frames, want 0", s.FlashPhase())
	}
}

func TestFrameCountIncrements(t *testing.T) {
	cpu := &fakeCPU{stepSize: 4}
	s := newTestScheduler(cpu)

	for i := 0; i < 5; i++ {
		s.RunFrame()
	}
	if s.FrameCount() != 5 {
		t.Fatalf("FrameCount() = %d, want 5", s.FrameCount())
	}
}
