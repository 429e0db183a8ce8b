// Package ula implements the ULA Gateway: the port 0xFE (and 128K/+3
// extra-port) decode that ties memory, the border rasteriser, the beeper,
// the keyboard matrix, Kempston, and the AY PSG into the single I/O
// surface the CPU drives (spec.md §2 "ULA Gateway", §6 port map).
package ula

import (
	"github.com/zayn-spectrum/zxemu/internal/border"
	"github.com/zayn-spectrum/zxemu/internal/clock"
	"github.com/zayn-spectrum/zxemu/internal/keyboard"
	"github.com/zayn-spectrum/zxemu/internal/memory"
	"github.com/zayn-spectrum/zxemu/internal/psg"
)

// AudioSink is the subset of the beeper's contract the gateway needs to
// time port writes against (spec.md §4.2: "the ULA Gateway ... calls
// beeper_advance_to(t_now) before mutating the beeper level or border
// colour").
type AudioSink interface {
	AdvanceTo(t clock.TState)
	SetLevel(ear, mic bool)
}

// TapeSource is the capability a tape engine (TAP or TZX player) exposes
// for EAR-input priority, per spec.md §6 "EAR input priority".
type TapeSource interface {
	Active() bool
	Level() bool
}

// FDC is the +3 floppy controller's port-mapped register surface.
type FDC interface {
	In(port uint16) byte
	Out(port uint16, value byte)
}

// Gateway is the machine's single I/O decode point and the cpu.Bus
// implementation the Z80 core drives.
type Gateway struct {
	mem    *memory.Map
	border *border.Rasterizer
	beeper AudioSink
	keys   *keyboard.Matrix
	ay     *psg.PSG
	fdc    FDC
	model  memory.Model

	tapeSources []TapeSource // priority order: TAP, then TZX

	lastULAWrite byte // for issue-3/48K-2 EAR-input floating fallback
	aySelected   byte

	sliceOrigin clock.TState
	elapsed     uint64
}

// New creates a Gateway over its collaborators. ay and fdc may be nil on
// models without them (48K has no AY or FDC; 128K has no FDC).
func New(mem *memory.Map, b *border.Rasterizer, beeper AudioSink, keys *keyboard.Matrix, ay *psg.PSG, fdc FDC, model memory.Model) *Gateway {
	return &Gateway{mem: mem, border: b, beeper: beeper, keys: keys, ay: ay, fdc: fdc, model: model}
}

// SetTapeSources installs the EAR-input priority chain: the first source
// reporting Active() wins. Pass TAP first, then TZX, per spec.md §6.
func (g *Gateway) SetTapeSources(sources ...TapeSource) {
	g.tapeSources = sources
}

// BeginSlice anchors the T-state origin the gateway times port writes
// against, mirroring the scheduler's fan-out to Beeper/Border/TAP/TZX.
func (g *Gateway) BeginSlice(origin clock.TState) {
	g.sliceOrigin = origin
	g.elapsed = 0
}

// now returns the current absolute T-state, the same time base the
// scheduler's slice origins and Border/Beeper AdvanceTo use.
func (g *Gateway) now() clock.TState {
	return g.sliceOrigin + clock.TState(g.elapsed)
}

// Tick advances the gateway's view of elapsed T-states. The Z80 core
// calls this once per instruction with that instruction's T-states.
func (g *Gateway) Tick(cycles int) {
	g.elapsed += uint64(cycles)
}

// Read implements cpu.Bus.
func (g *Gateway) Read(addr uint16) byte { return g.mem.Read(addr) }

// Write implements cpu.Bus.
func (g *Gateway) Write(addr uint16, value byte) { g.mem.Write(addr, value) }

// earInputLevel resolves the current EAR-input bit by tape-source
// priority, falling back to the last-written ULA byte's bit 4 (a crude
// stand-in for the issue-3/48K-2 floating-bus behaviour spec.md §6 notes
// as a fallback rather than a modelled analogue effect).
func (g *Gateway) earInputLevel() bool {
	for _, src := range g.tapeSources {
		if src != nil && src.Active() {
			return src.Level()
		}
	}
	return g.lastULAWrite&0x10 != 0
}

// In implements cpu.Bus.
func (g *Gateway) In(port uint16) byte {
	switch {
	case port == 0xFFFD && g.ay != nil:
		return g.ay.ReadRegister(g.aySelected)

	case g.model == memory.ModelPlus3 && (port == 0x2FFD || port == 0x3FFD) && g.fdc != nil:
		return g.fdc.In(port)

	case port&0xFF == 0x1F:
		return g.keys.ReadKempston()

	case port&0x01 == 0:
		row := g.keys.ReadRow(byte(port >> 8))
		var b byte = 0xA0 // bits 7 and 5 fixed high
		b |= row & 0x1F
		if g.earInputLevel() {
			b |= 0x40
		}
		return b

	default:
		return 0xFF
	}
}

// Out implements cpu.Bus.
func (g *Gateway) Out(port uint16, value byte) {
	switch {
	case port == 0xFFFD && g.ay != nil:
		g.aySelected = value & 0x0F

	case port == 0xBFFD && g.ay != nil:
		g.ay.WriteRegister(g.aySelected, value)

	case port == 0x7FFD && g.model != memory.Model48K:
		g.mem.WriteMlatch(value)

	case port == 0x1FFD && g.model == memory.ModelPlus3:
		g.mem.WriteP3latch(value)

	case g.model == memory.ModelPlus3 && (port == 0x2FFD || port == 0x3FFD) && g.fdc != nil:
		g.fdc.Out(port, value)

	case port&0x01 == 0:
		g.lastULAWrite = value
		now := g.now()
		g.beeper.AdvanceTo(now)
		g.border.AdvanceTo(now)
		g.border.SetBorder(value & 0x07)
		g.beeper.SetLevel(value&0x10 != 0, value&0x08 != 0)
	}
}
