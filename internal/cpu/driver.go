package cpu

// Bus is the machine-side adapter the core drives: memory and I/O decode,
// plus a Tick callback invoked after every instruction so peripherals can be
// stepped alongside the CPU clock. The ULA gateway satisfies this
// directly.
type Bus = Z80Bus

// CPU wraps the Z80 core with a T-state budget runner, matching the
// begin_slice/run/end_slice scheduler contract: RunFor executes whole
// instructions until the budget is met or exceeded, and returns the
// number of T-states actually consumed (an instruction is never split).
type CPU struct {
	core *Z80
}

// New creates a CPU driving bus.
func New(bus Bus) *CPU {
	return &CPU{core: NewZ80(bus)}
}

// Reset re-initialises all registers to power-on defaults.
func (c *CPU) Reset() { c.core.Reset() }

// RunFor steps the CPU until at least budget T-states have been consumed
// (an IM1 interrupt boundary included), returning the T-states actually
// spent.
func (c *CPU) RunFor(budget int) int {
	start := c.core.Cycles
	spent := 0
	for spent < budget {
		c.core.Step()
		spent = int(c.core.Cycles - start)
	}
	return spent
}

// SetIRQLine asserts or releases the maskable interrupt line. The ZX
// Spectrum ULA pulses this once per frame for ~32 T-states.
func (c *CPU) SetIRQLine(assert bool) { c.core.SetIRQLine(assert) }

// SetNMILine asserts or releases the non-maskable interrupt line (used by
// some +3/DivIDE paging hardware, not by a stock 48K/128K machine).
func (c *CPU) SetNMILine(assert bool) { c.core.SetNMILine(assert) }

// PC returns the current program counter.
func (c *CPU) PC() uint16 { return c.core.PC }

// SetPC sets the program counter directly, used by the fast tape loader
// and by snapshot restore.
func (c *CPU) SetPC(addr uint16) { c.core.PC = addr }

// Cycles returns the CPU's lifetime T-state counter.
func (c *CPU) Cycles() uint64 { return c.core.Cycles }

// State is the subset of CPU register state an SNA snapshot stores.
type State struct {
	A, F, B, C, D, E, H, L     byte
	A2, F2, B2, C2, D2, E2, H2, L2 byte
	IX, IY, SP, PC             uint16
	I, R, IM                   byte
	IFF1, IFF2                 bool
}

// Snapshot returns the current register state.
func (c *CPU) Snapshot() State {
	return State{
		A: c.core.A, F: c.core.F, B: c.core.B, C: c.core.C,
		D: c.core.D, E: c.core.E, H: c.core.H, L: c.core.L,
		A2: c.core.A2, F2: c.core.F2, B2: c.core.B2, C2: c.core.C2,
		D2: c.core.D2, E2: c.core.E2, H2: c.core.H2, L2: c.core.L2,
		IX: c.core.IX, IY: c.core.IY, SP: c.core.SP, PC: c.core.PC,
		I: c.core.I, R: c.core.R, IM: c.core.IM,
		IFF1: c.core.IFF1, IFF2: c.core.IFF2,
	}
}

// Restore loads register state, used by the SNA loader.
func (c *CPU) Restore(s State) {
	c.core.A, c.core.F, c.core.B, c.core.C = s.A, s.F, s.B, s.C
	c.core.D, c.core.E, c.core.H, c.core.L = s.D, s.E, s.H, s.L
	c.core.A2, c.core.F2, c.core.B2, c.core.C2 = s.A2, s.F2, s.B2, s.C2
	c.core.D2, c.core.E2, c.core.H2, c.core.L2 = s.D2, s.E2, s.H2, s.L2
	c.core.IX, c.core.IY, c.core.SP, c.core.PC = s.IX, s.IY, s.SP, s.PC
	c.core.I, c.core.R, c.core.IM = s.I, s.R, s.IM
	c.core.IFF1, c.core.IFF2 = s.IFF1, s.IFF2
	c.core.Halted = false
}
