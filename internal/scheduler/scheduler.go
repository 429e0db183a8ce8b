// Package scheduler drives the per-frame loop that ties the CPU to every
// T-state-timed peripheral through the begin_slice/end_slice contract
// (spec.md §4.2). One frame is always 312 lines; a model's line length
// (224 or 228 T-states) decides where the frame's INT pulse and VRAM
// raster points fall.
package scheduler

import (
	"github.com/zayn-spectrum/zxemu/internal/beeper"
	"github.com/zayn-spectrum/zxemu/internal/border"
	"github.com/zayn-spectrum/zxemu/internal/clock"
	tape "github.com/zayn-spectrum/zxemu/internal/tape"
	tzx "github.com/zayn-spectrum/zxemu/internal/tzx"
)

const linesPerFrame = 312

// TStatesPerFrame returns the whole frame's T-state length for a line
// length of tStatesPerLine (224 for 48K, 228 for 128K/+3).
func TStatesPerFrame(tStatesPerLine int) int {
	return linesPerFrame * tStatesPerLine
}

// intPulseTStates is how long the ULA asserts /INT for, per spec.md §6.
const intPulseTStates = 32

// CPU is the subset of cpu.CPU the scheduler drives.
type CPU interface {
	RunFor(budget int) int
	SetIRQLine(assert bool)
}

// VideoRaster paints the active 256x192 screen area at frame end.
type VideoRaster interface {
	RenderFrame(flashPhase int)
}

// Scheduler runs whole frames: CPU for tStatesPerFrame T-states, slicing
// every participant in the fixed order spec.md §4.2 requires, raising one
// IRQ pulse per frame, and repainting VRAM at frame end. tap and tzx are
// optional (nil when no tape is loaded); video is optional in a headless
// build that never paints a framebuffer.
type Scheduler struct {
	cpu    CPU
	clock  *clock.Clock
	border *border.Rasterizer
	beeper *beeper.Beeper
	tap    *tape.Player
	tzx    *tzx.Player
	video  VideoRaster

	tStatesPerLine int
	flashCounter   int
	frameCount     uint64
}

// New creates a Scheduler.
func New(cpu CPU, clk *clock.Clock, b *border.Rasterizer, bp *beeper.Beeper, tapPlayer *tape.Player, tzxPlayer *tzx.Player, video VideoRaster, tStatesPerLine int) *Scheduler {
	return &Scheduler{
		cpu: cpu, clock: clk, border: b, beeper: bp,
		tap: tapPlayer, tzx: tzxPlayer, video: video, tStatesPerLine: tStatesPerLine,
	}
}

// RunFrame executes exactly one video frame: it asserts /INT at the frame's
// start, runs the CPU for the whole frame's T-state budget (the CPU core
// services the interrupt at the next instruction boundary, matching IM1
// behaviour on real hardware), ends every slice in the {TAP, TZX, Border,
// Beeper} order, repaints the active screen area, and advances the flash
// counter every 16 frames.
func (s *Scheduler) RunFrame() {
	budget := TStatesPerFrame(s.tStatesPerLine)

	origin := s.clock.Now()
	s.border.BeginSlice(origin)
	s.beeper.BeginSlice(origin)
	if s.tap != nil {
		s.tap.BeginSlice(origin)
	}
	if s.tzx != nil {
		s.tzx.BeginSlice(origin)
	}

	// /INT is held for intPulseTStates, then released for the rest of the
	// frame; the CPU core services it at the next instruction boundary,
	// same as IM1 hardware behaviour on a real ULA.
	s.cpu.SetIRQLine(true)
	spent := s.cpu.RunFor(intPulseTStates)
	s.cpu.SetIRQLine(false)
	if spent < budget {
		spent += s.cpu.RunFor(budget - spent)
	}

	cpuTStates := uint64(spent)
	if s.tap != nil {
		s.tap.EndSlice(cpuTStates)
	}
	if s.tzx != nil {
		s.tzx.EndSlice(cpuTStates)
	}
	s.border.EndSlice(cpuTStates)
	s.beeper.EndSlice(cpuTStates)

	s.clock.Advance(cpuTStates)

	if s.video != nil {
		s.video.RenderFrame(s.flashCounter)
	}
	s.border.NewFrame()

	s.frameCount++
	if s.frameCount%16 == 0 {
		s.flashCounter ^= 1
	}
}

// FlashPhase reports the current flash-attribute phase (0 or 1), toggling
// every 16 frames, per spec.md §2 "FLASH attribute".
func (s *Scheduler) FlashPhase() int { return s.flashCounter }

// FrameCount returns the number of frames run so far.
func (s *Scheduler) FrameCount() uint64 { return s.frameCount }
