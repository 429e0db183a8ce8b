package cpu

// initBaseOps builds the unprefixed opcode table. Unmapped entries stay
// at opUnimplemented, which simply burns 4 T-states: the real Z80 has no
// illegal unprefixed opcodes, every entry here is eventually assigned.
func (c *Z80) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*Z80).opUnimplemented
	}

	c.baseOps[0x00] = (*Z80).opNOP
	c.baseOps[0x76] = (*Z80).opHALT

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opLDRegReg(dest, src)
		}
	}

	ldRegImmOpcodes := map[byte]byte{
		0x06: 0,
		0x0E: 1,
		0x16: 2,
		0x1E: 3,
		0x26: 4,
		0x2E: 5,
		0x36: 6,
		0x3E: 7,
	}
	for opcode, reg := range ldRegImmOpcodes {
		op := opcode
		dest := reg
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opLDRegImm(dest)
		}
	}

	for opcode := 0x80; opcode <= 0x87; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluAdd, src)
		}
	}
	for opcode := 0x88; opcode <= 0x8F; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluAdc, src)
		}
	}
	for opcode := 0x90; opcode <= 0x97; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluSub, src)
		}
	}
	for opcode := 0x98; opcode <= 0x9F; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluSbc, src)
		}
	}
	for opcode := 0xA0; opcode <= 0xA7; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluAnd, src)
		}
	}
	for opcode := 0xA8; opcode <= 0xAF; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluXor, src)
		}
	}
	for opcode := 0xB0; opcode <= 0xB7; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluOr, src)
		}
	}
	for opcode := 0xB8; opcode <= 0xBF; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *Z80) {
			cpu.opALUReg(aluCp, src)
		}
	}

	c.baseOps[0xC6] = (*Z80).opADDImm
	c.baseOps[0xCE] = (*Z80).opADCImm
	c.baseOps[0xD6] = (*Z80).opSUBImm
	c.baseOps[0xDE] = (*Z80).opSBCImm
	c.baseOps[0xE6] = (*Z80).opANDImm
	c.baseOps[0xEE] = (*Z80).opXORImm
	c.baseOps[0xF6] = (*Z80).opORImm
	c.baseOps[0xFE] = (*Z80).opCPImm

	c.baseOps[0x27] = (*Z80).opDAA
	c.baseOps[0x2F] = (*Z80).opCPL
	c.baseOps[0x37] = (*Z80).opSCF
	c.baseOps[0x3F] = (*Z80).opCCF

	c.baseOps[0x01] = (*Z80).opLDBCNN
	c.baseOps[0x11] = (*Z80).opLDDENN
	c.baseOps[0x21] = (*Z80).opLDHLImm
	c.baseOps[0x31] = (*Z80).opLDSPNN
	c.baseOps[0x09] = (*Z80).opADDHLBC
	c.baseOps[0x19] = (*Z80).opADDHLDE
	c.baseOps[0x29] = (*Z80).opADDHLHL
	c.baseOps[0x39] = (*Z80).opADDHLSP
	c.baseOps[0x03] = (*Z80).opINCBC
	c.baseOps[0x13] = (*Z80).opINCDE
	c.baseOps[0x23] = (*Z80).opINCHL
	c.baseOps[0x33] = (*Z80).opINCSP
	c.baseOps[0x0B] = (*Z80).opDECBC
	c.baseOps[0x1B] = (*Z80).opDECDE
	c.baseOps[0x2B] = (*Z80).opDECHL
	c.baseOps[0x3B] = (*Z80).opDECSP
	c.baseOps[0xC5] = (*Z80).opPUSHBC
	c.baseOps[0xD5] = (*Z80).opPUSHDE
	c.baseOps[0xE5] = (*Z80).opPUSHLH
	c.baseOps[0xF5] = (*Z80).opPUSHAF
	c.baseOps[0xC1] = (*Z80).opPOPBC
	c.baseOps[0xD1] = (*Z80).opPOPDE
	c.baseOps[0xE1] = (*Z80).opPOPHL
	c.baseOps[0xF1] = (*Z80).opPOPAF
	c.baseOps[0xC3] = (*Z80).opJPNN
	c.baseOps[0x18] = (*Z80).opJR
	c.baseOps[0x10] = (*Z80).opDJNZ
	c.baseOps[0xCD] = (*Z80).opCALLNN
	c.baseOps[0xC9] = (*Z80).opRET
	c.baseOps[0xE3] = (*Z80).opEXSPHL
	c.baseOps[0x08] = (*Z80).opEXAF
	c.baseOps[0xEB] = (*Z80).opEXDEHL
	c.baseOps[0xD9] = (*Z80).opEXX
	c.baseOps[0xE9] = (*Z80).opJPHL
	c.baseOps[0x22] = (*Z80).opLDNNHL
	c.baseOps[0x2A] = (*Z80).opLDHLNN
	c.baseOps[0x32] = (*Z80).opLDNNA
	c.baseOps[0x3A] = (*Z80).opLDANN
	c.baseOps[0x02] = (*Z80).opLDBCA
	c.baseOps[0x0A] = (*Z80).opLDABC
	c.baseOps[0x12] = (*Z80).opLDDEA
	c.baseOps[0x1A] = (*Z80).opLDABD
	c.baseOps[0xF9] = (*Z80).opLDSPHL
	c.baseOps[0xD3] = (*Z80).opOUTNA
	c.baseOps[0xDB] = (*Z80).opINAN
	c.baseOps[0x07] = (*Z80).opRLCA
	c.baseOps[0x0F] = (*Z80).opRRCA
	c.baseOps[0x17] = (*Z80).opRLA
	c.baseOps[0x1F] = (*Z80).opRRA
	c.baseOps[0xC7] = (*Z80).opRST00
	c.baseOps[0xCF] = (*Z80).opRST08
	c.baseOps[0xD7] = (*Z80).opRST10
	c.baseOps[0xDF] = (*Z80).opRST18
	c.baseOps[0xE7] = (*Z80).opRST20
	c.baseOps[0xEF] = (*Z80).opRST28
	c.baseOps[0xF7] = (*Z80).opRST30
	c.baseOps[0xFF] = (*Z80).opRST38
	c.baseOps[0x04] = (*Z80).opINCB
	c.baseOps[0x0C] = (*Z80).opINCC
	c.baseOps[0x14] = (*Z80).opINCD
	c.baseOps[0x1C] = (*Z80).opINCE
	c.baseOps[0x24] = (*Z80).opINCH
	c.baseOps[0x2C] = (*Z80).opINCL
	c.baseOps[0x34] = (*Z80).opINCHLMem
	c.baseOps[0x3C] = (*Z80).opINCA
	c.baseOps[0x05] = (*Z80).opDECB
	c.baseOps[0x0D] = (*Z80).opDECC
	c.baseOps[0x15] = (*Z80).opDECD
	c.baseOps[0x1D] = (*Z80).opDECE
	c.baseOps[0x25] = (*Z80).opDECH
	c.baseOps[0x2D] = (*Z80).opDECL
	c.baseOps[0x35] = (*Z80).opDECHLMem
	c.baseOps[0x3D] = (*Z80).opDECA
	c.baseOps[0xC2] = (*Z80).opJPNZ
	c.baseOps[0xCA] = (*Z80).opJPZ
	c.baseOps[0xD2] = (*Z80).opJPNC
	c.baseOps[0xDA] = (*Z80).opJPC
	c.baseOps[0xE2] = (*Z80).opJPPO
	c.baseOps[0xEA] = (*Z80).opJPPE
	c.baseOps[0xF2] = (*Z80).opJPNS
	c.baseOps[0xFA] = (*Z80).opJPS
	c.baseOps[0x20] = (*Z80).opJRNZ
	c.baseOps[0x28] = (*Z80).opJRZ
	c.baseOps[0x30] = (*Z80).opJRNC
	c.baseOps[0x38] = (*Z80).opJRC
	c.baseOps[0xC4] = (*Z80).opCALLNZ
	c.baseOps[0xCC] = (*Z80).opCALLZ
	c.baseOps[0xD4] = (*Z80).opCALLNC
	c.baseOps[0xDC] = (*Z80).opCALLC
	c.baseOps[0xE4] = (*Z80).opCALLPO
	c.baseOps[0xEC] = (*Z80).opCALLPE
	c.baseOps[0xF4] = (*Z80).opCALLNS
	c.baseOps[0xFC] = (*Z80).opCALLS
	c.baseOps[0xC0] = (*Z80).opRETNZ
	c.baseOps[0xC8] = (*Z80).opRETZ
	c.baseOps[0xD0] = (*Z80).opRETNC
	c.baseOps[0xD8] = (*Z80).opRETC
	c.baseOps[0xE0] = (*Z80).opRETPO
	c.baseOps[0xE8] = (*Z80).opRETPE
	c.baseOps[0xF0] = (*Z80).opRETNS
	c.baseOps[0xF8] = (*Z80).opRETS
	c.baseOps[0xCB] = (*Z80).opCBPrefix
	c.baseOps[0xDD] = (*Z80).opDDPrefix
	c.baseOps[0xFD] = (*Z80).opFDPrefix
	c.baseOps[0xED] = (*Z80).opEDPrefix
	c.baseOps[0xF3] = (*Z80).opDI
	c.baseOps[0xFB] = (*Z80).opEI
}

func (c *Z80) opUnimplemented() {
	c.tick(4)
}

func (c *Z80) opNOP() {
	c.tick(4)
}

func (c *Z80) opHALT() {
	c.Halted = true
	c.tick(4)
}

func (c *Z80) opLDRegReg(dest, src byte) {
	value := c.readReg8(src)
	c.writeReg8(dest, value)
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *Z80) opLDRegImm(dest byte) {
	value := c.fetchByte()
	c.writeReg8(dest, value)
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(7)
	}
}

type aluOp byte

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

func (c *Z80) opALUReg(op aluOp, src byte) {
	value := c.readReg8(src)
	c.performALU(op, value)
	if src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *Z80) opADDImm() {
	value := c.fetchByte()
	c.performALU(aluAdd, value)
	c.tick(7)
}

func (c *Z80) opADCImm() {
	value := c.fetchByte()
	c.performALU(aluAdc, value)
	c.tick(7)
}

func (c *Z80) opSUBImm() {
	value := c.fetchByte()
	c.performALU(aluSub, value)
	c.tick(7)
}

func (c *Z80) opSBCImm() {
	value := c.fetchByte()
	c.performALU(aluSbc, value)
	c.tick(7)
}

func (c *Z80) opANDImm() {
	value := c.fetchByte()
	c.performALU(aluAnd, value)
	c.tick(7)
}

func (c *Z80) opXORImm() {
	value := c.fetchByte()
	c.performALU(aluXor, value)
	c.tick(7)
}

func (c *Z80) opORImm() {
	value := c.fetchByte()
	c.performALU(aluOr, value)
	c.tick(7)
}

func (c *Z80) opCPImm() {
	value := c.fetchByte()
	c.performALU(aluCp, value)
	c.tick(7)
}

func (c *Z80) opDAA() {
	a := c.A
	adj := byte(0)
	carry := c.Flag(z80FlagC)
	if c.Flag(z80FlagH) || (!c.Flag(z80FlagN) && (a&0x0F) > 0x09) {
		adj |= 0x06
	}
	if carry || (!c.Flag(z80FlagN) && a > 0x99) {
		adj |= 0x60
	}

	var res byte
	if c.Flag(z80FlagN) {
		res = a - adj
	} else {
		res = a + adj
	}

	c.A = res
	c.F &^= z80FlagS | z80FlagZ | z80FlagPV | z80FlagH | z80FlagC | z80FlagX | z80FlagY
	if res == 0 {
		c.F |= z80FlagZ
	}
	if res&0x80 != 0 {
		c.F |= z80FlagS
	}
	if parity8(res) {
		c.F |= z80FlagPV
	}
	if c.Flag(z80FlagN) {
		if (a^res)&0x10 != 0 {
			c.F |= z80FlagH
		}
	} else if (a&0x0F)+byte(adj&0x0F) > 0x0F {
		c.F |= z80FlagH
	}
	if adj >= 0x60 {
		c.F |= z80FlagC
	}
	c.F |= res & (z80FlagX | z80FlagY)
	c.tick(4)
}

func (c *Z80) opCPL() {
	c.A = ^c.A
	c.F = (c.F & (z80FlagS | z80FlagZ | z80FlagPV | z80FlagC)) | z80FlagH | z80FlagN
	c.F |= c.A & (z80FlagX | z80FlagY)
	c.tick(4)
}

func (c *Z80) opSCF() {
	c.F = (c.F & (z80FlagS | z80FlagZ | z80FlagPV)) | z80FlagC
	c.F |= c.A & (z80FlagX | z80FlagY)
	c.tick(4)
}

func (c *Z80) opCCF() {
	carry := c.Flag(z80FlagC)
	c.F = (c.F & (z80FlagS | z80FlagZ | z80FlagPV)) | (c.A & (z80FlagX | z80FlagY))
	if carry {
		c.F |= z80FlagH
	} else {
		c.F |= z80FlagC
	}
	c.tick(4)
}

func (c *Z80) opLDBCNN() {
	c.SetBC(c.fetchWord())
	c.tick(10)
}

func (c *Z80) opLDDENN() {
	c.SetDE(c.fetchWord())
	c.tick(10)
}

func (c *Z80) opLDHLImm() {
	c.SetHL(c.fetchWord())
	c.tick(10)
}

func (c *Z80) opLDSPNN() {
	c.SP = c.fetchWord()
	c.tick(10)
}

func (c *Z80) opADDHLBC() {
	c.addHL(c.BC())
	c.tick(11)
}

func (c *Z80) opADDHLDE() {
	c.addHL(c.DE())
	c.tick(11)
}

func (c *Z80) opADDHLHL() {
	c.addHL(c.HL())
	c.tick(11)
}

func (c *Z80) opADDHLSP() {
	c.addHL(c.SP)
	c.tick(11)
}

func (c *Z80) opINCBC() {
	c.SetBC(c.BC() + 1)
	c.tick(6)
}

func (c *Z80) opINCDE() {
	c.SetDE(c.DE() + 1)
	c.tick(6)
}

func (c *Z80) opINCHL() {
	c.SetHL(c.HL() + 1)
	c.tick(6)
}

func (c *Z80) opINCSP() {
	c.SP++
	c.tick(6)
}

func (c *Z80) opDECBC() {
	c.SetBC(c.BC() - 1)
	c.tick(6)
}

func (c *Z80) opDECDE() {
	c.SetDE(c.DE() - 1)
	c.tick(6)
}

func (c *Z80) opDECHL() {
	c.SetHL(c.HL() - 1)
	c.tick(6)
}

func (c *Z80) opDECSP() {
	c.SP--
	c.tick(6)
}

func (c *Z80) opPUSHBC() {
	c.pushWord(c.BC())
	c.tick(11)
}

func (c *Z80) opPUSHDE() {
	c.pushWord(c.DE())
	c.tick(11)
}

func (c *Z80) opPUSHLH() {
	c.pushWord(c.HL())
	c.tick(11)
}

func (c *Z80) opPUSHAF() {
	c.pushWord(c.AF())
	c.tick(11)
}

func (c *Z80) opPOPBC() {
	c.SetBC(c.popWord())
	c.tick(10)
}

func (c *Z80) opPOPDE() {
	c.SetDE(c.popWord())
	c.tick(10)
}

func (c *Z80) opPOPHL() {
	c.SetHL(c.popWord())
	c.tick(10)
}

func (c *Z80) opPOPAF() {
	c.SetAF(c.popWord())
	c.tick(10)
}

func (c *Z80) opJPNN() {
	c.PC = c.fetchWord()
	c.tick(10)
}

func (c *Z80) opJR() {
	disp := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.tick(12)
}

func (c *Z80) opDJNZ() {
	disp := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *Z80) opCALLNN() {
	addr := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = addr
	c.tick(17)
}

func (c *Z80) opRET() {
	c.PC = c.popWord()
	c.tick(10)
}

func (c *Z80) opEXSPHL() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	hl := c.HL()
	c.write(c.SP, byte(hl))
	c.write(c.SP+1, byte(hl>>8))
	c.SetHL(memVal)
	c.WZ = memVal
	c.tick(19)
}

func (c *Z80) opEXAF() {
	c.ExAF()
	c.tick(4)
}

func (c *Z80) opEXDEHL() {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	c.tick(4)
}

func (c *Z80) opEXX() {
	c.Exx()
	c.tick(4)
}

func (c *Z80) opJPHL() {
	c.PC = c.HL()
	c.WZ = c.PC
	c.tick(4)
}

func (c *Z80) opLDNNHL() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *Z80) opLDHLNN() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *Z80) opLDNNA() {
	addr := c.fetchWord()
	c.write(addr, c.A)
	c.WZ = addr
	c.tick(13)
}

func (c *Z80) opLDANN() {
	addr := c.fetchWord()
	c.A = c.read(addr)
	c.WZ = addr
	c.tick(13)
}

func (c *Z80) opLDBCA() {
	c.write(c.BC(), c.A)
	c.tick(7)
}

func (c *Z80) opLDABC() {
	c.A = c.read(c.BC())
	c.tick(7)
}

func (c *Z80) opLDDEA() {
	c.write(c.DE(), c.A)
	c.tick(7)
}

func (c *Z80) opLDABD() {
	c.A = c.read(c.DE())
	c.tick(7)
}

func (c *Z80) opLDSPHL() {
	c.SP = c.HL()
	c.tick(6)
}

func (c *Z80) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.tick(11)
}

func (c *Z80) opINAN() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.A = c.in(port)
	c.updateInFlags(c.A)
	c.tick(11)
}

func (c *Z80) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *Z80) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *Z80) opRLA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x80 != 0
	c.A = c.A << 1
	if carryIn {
		c.A |= 0x01
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *Z80) opRRA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x01 != 0
	c.A = c.A >> 1
	if carryIn {
		c.A |= 0x80
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *Z80) opRST00() {
	c.opRST(0x00)
}

func (c *Z80) opRST08() {
	c.opRST(0x08)
}

func (c *Z80) opRST10() {
	c.opRST(0x10)
}

func (c *Z80) opRST18() {
	c.opRST(0x18)
}

func (c *Z80) opRST20() {
	c.opRST(0x20)
}

func (c *Z80) opRST28() {
	c.opRST(0x28)
}

func (c *Z80) opRST30() {
	c.opRST(0x30)
}

func (c *Z80) opRST38() {
	c.opRST(0x38)
}

func (c *Z80) opRST(vector uint16) {
	c.pushWord(c.PC)
	c.PC = vector
	c.tick(11)
}

func (c *Z80) opCBPrefix() {
	opcode := c.fetchOpcode()
	c.cbOps[opcode](c)
}

func (c *Z80) opDDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = z80PrefixDD
	c.prefixOpcode = opcode
	c.ddOps[opcode](c)
	c.prefixMode = prev
}

func (c *Z80) opFDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = z80PrefixFD
	c.prefixOpcode = opcode
	c.fdOps[opcode](c)
	c.prefixMode = prev
}

func (c *Z80) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}

func (c *Z80) opINCB() {
	c.B = c.inc8(c.B)
	c.tick(4)
}

func (c *Z80) opINCC() {
	c.C = c.inc8(c.C)
	c.tick(4)
}

func (c *Z80) opINCD() {
	c.D = c.inc8(c.D)
	c.tick(4)
}

func (c *Z80) opINCE() {
	c.E = c.inc8(c.E)
	c.tick(4)
}

func (c *Z80) opINCH() {
	c.writeReg8(4, c.inc8(c.readReg8(4)))
	c.tick(4)
}

func (c *Z80) opINCL() {
	c.writeReg8(5, c.inc8(c.readReg8(5)))
	c.tick(4)
}

func (c *Z80) opINCHLMem() {
	addr := c.HL()
	value := c.read(addr)
	value = c.inc8(value)
	c.write(addr, value)
	c.tick(11)
}

func (c *Z80) opINCA() {
	c.A = c.inc8(c.A)
	c.tick(4)
}

func (c *Z80) opDECB() {
	c.B = c.dec8(c.B)
	c.tick(4)
}

func (c *Z80) opDECC() {
	c.C = c.dec8(c.C)
	c.tick(4)
}

func (c *Z80) opDECD() {
	c.D = c.dec8(c.D)
	c.tick(4)
}

func (c *Z80) opDECE() {
	c.E = c.dec8(c.E)
	c.tick(4)
}

func (c *Z80) opDECH() {
	c.writeReg8(4, c.dec8(c.readReg8(4)))
	c.tick(4)
}

func (c *Z80) opDECL() {
	c.writeReg8(5, c.dec8(c.readReg8(5)))
	c.tick(4)
}

func (c *Z80) opDECHLMem() {
	addr := c.HL()
	value := c.read(addr)
	value = c.dec8(value)
	c.write(addr, value)
	c.tick(11)
}

func (c *Z80) opDECA() {
	c.A = c.dec8(c.A)
	c.tick(4)
}

func (c *Z80) opDI() {
	c.IFF1 = false
	c.IFF2 = false
	c.iffDelay = 0
	c.tick(4)
}

func (c *Z80) opEI() {
	c.iffDelay = 2
	c.tick(4)
}

func (c *Z80) opJPNZ() {
	c.jpCond(!c.Flag(z80FlagZ))
}

func (c *Z80) opJPZ() {
	c.jpCond(c.Flag(z80FlagZ))
}

func (c *Z80) opJPNC() {
	c.jpCond(!c.Flag(z80FlagC))
}

func (c *Z80) opJPC() {
	c.jpCond(c.Flag(z80FlagC))
}

func (c *Z80) opJPPO() {
	c.jpCond(!c.Flag(z80FlagPV))
}

func (c *Z80) opJPPE() {
	c.jpCond(c.Flag(z80FlagPV))
}

func (c *Z80) opJPNS() {
	c.jpCond(!c.Flag(z80FlagS))
}

func (c *Z80) opJPS() {
	c.jpCond(c.Flag(z80FlagS))
}

func (c *Z80) opJRNZ() {
	c.jrCond(!c.Flag(z80FlagZ))
}

func (c *Z80) opJRZ() {
	c.jrCond(c.Flag(z80FlagZ))
}

func (c *Z80) opJRNC() {
	c.jrCond(!c.Flag(z80FlagC))
}

func (c *Z80) opJRC() {
	c.jrCond(c.Flag(z80FlagC))
}

func (c *Z80) opCALLNZ() {
	c.callCond(!c.Flag(z80FlagZ))
}

func (c *Z80) opCALLZ() {
	c.callCond(c.Flag(z80FlagZ))
}

func (c *Z80) opCALLNC() {
	c.callCond(!c.Flag(z80FlagC))
}

func (c *Z80) opCALLC() {
	c.callCond(c.Flag(z80FlagC))
}

func (c *Z80) opCALLPO() {
	c.callCond(!c.Flag(z80FlagPV))
}

func (c *Z80) opCALLPE() {
	c.callCond(c.Flag(z80FlagPV))
}

func (c *Z80) opCALLNS() {
	c.callCond(!c.Flag(z80FlagS))
}

func (c *Z80) opCALLS() {
	c.callCond(c.Flag(z80FlagS))
}

func (c *Z80) opRETNZ() {
	c.retCond(!c.Flag(z80FlagZ))
}

func (c *Z80) opRETZ() {
	c.retCond(c.Flag(z80FlagZ))
}

func (c *Z80) opRETNC() {
	c.retCond(!c.Flag(z80FlagC))
}

func (c *Z80) opRETC() {
	c.retCond(c.Flag(z80FlagC))
}

func (c *Z80) opRETPO() {
	c.retCond(!c.Flag(z80FlagPV))
}

func (c *Z80) opRETPE() {
	c.retCond(c.Flag(z80FlagPV))
}

func (c *Z80) opRETNS() {
	c.retCond(!c.Flag(z80FlagS))
}

func (c *Z80) opRETS() {
	c.retCond(c.Flag(z80FlagS))
}
