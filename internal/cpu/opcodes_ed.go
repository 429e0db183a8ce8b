package cpu

// initEDOps builds the ED-prefixed table: I/O-via-C, NEG, interrupt
// mode/refresh register loads, RRD/RLD, the block transfer/compare/IO
// families, 16-bit memory loads and ADC/SBC HL.
func (c *Z80) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*Z80).opEDUnimplemented
	}

	c.edOps[0x40] = (*Z80).opINBC
	c.edOps[0x48] = (*Z80).opINRC
	c.edOps[0x50] = (*Z80).opINDC
	c.edOps[0x58] = (*Z80).opINEC
	c.edOps[0x60] = (*Z80).opINHC
	c.edOps[0x68] = (*Z80).opINLC
	c.edOps[0x70] = (*Z80).opINCM
	c.edOps[0x78] = (*Z80).opINAC

	c.edOps[0x41] = (*Z80).opOUTBC
	c.edOps[0x49] = (*Z80).opOUTCC
	c.edOps[0x51] = (*Z80).opOUTDC
	c.edOps[0x59] = (*Z80).opOUTEC
	c.edOps[0x61] = (*Z80).opOUTHC
	c.edOps[0x69] = (*Z80).opOUTLC
	c.edOps[0x71] = (*Z80).opOUTC0
	c.edOps[0x79] = (*Z80).opOUTAC

	c.edOps[0x44] = (*Z80).opNEG
	c.edOps[0x4C] = (*Z80).opNEG
	c.edOps[0x54] = (*Z80).opNEG
	c.edOps[0x5C] = (*Z80).opNEG
	c.edOps[0x64] = (*Z80).opNEG
	c.edOps[0x6C] = (*Z80).opNEG
	c.edOps[0x74] = (*Z80).opNEG
	c.edOps[0x7C] = (*Z80).opNEG

	c.edOps[0x47] = (*Z80).opLDIA
	c.edOps[0x4F] = (*Z80).opLDRA
	c.edOps[0x57] = (*Z80).opLDAI
	c.edOps[0x5F] = (*Z80).opLDAR

	c.edOps[0x46] = (*Z80).opIM0
	c.edOps[0x56] = (*Z80).opIM1
	c.edOps[0x5E] = (*Z80).opIM2
	c.edOps[0x66] = (*Z80).opIM0
	c.edOps[0x6E] = (*Z80).opIM0
	c.edOps[0x76] = (*Z80).opIM1
	c.edOps[0x7E] = (*Z80).opIM2

	c.edOps[0x45] = (*Z80).opRETN
	c.edOps[0x4D] = (*Z80).opRETI
	c.edOps[0x55] = (*Z80).opRETN
	c.edOps[0x5D] = (*Z80).opRETN
	c.edOps[0x65] = (*Z80).opRETN
	c.edOps[0x6D] = (*Z80).opRETN
	c.edOps[0x75] = (*Z80).opRETN
	c.edOps[0x7D] = (*Z80).opRETN

	c.edOps[0x67] = (*Z80).opRRD
	c.edOps[0x6F] = (*Z80).opRLD

	c.edOps[0xA0] = (*Z80).opLDI
	c.edOps[0xB0] = (*Z80).opLDIR
	c.edOps[0xA8] = (*Z80).opLDD
	c.edOps[0xB8] = (*Z80).opLDDR
	c.edOps[0xA1] = (*Z80).opCPI
	c.edOps[0xB1] = (*Z80).opCPIR
	c.edOps[0xA9] = (*Z80).opCPD
	c.edOps[0xB9] = (*Z80).opCPDR
	c.edOps[0xA2] = (*Z80).opINI
	c.edOps[0xB2] = (*Z80).opINIR
	c.edOps[0xAA] = (*Z80).opIND
	c.edOps[0xBA] = (*Z80).opINDR
	c.edOps[0xA3] = (*Z80).opOUTI
	c.edOps[0xB3] = (*Z80).opOTIR
	c.edOps[0xAB] = (*Z80).opOUTD
	c.edOps[0xBB] = (*Z80).opOTDR

	c.edOps[0x43] = (*Z80).opLDNNBC
	c.edOps[0x4B] = (*Z80).opLDBCNNED
	c.edOps[0x53] = (*Z80).opLDNNDE
	c.edOps[0x5B] = (*Z80).opLDDENNED
	c.edOps[0x63] = (*Z80).opLDNNHLed
	c.edOps[0x6B] = (*Z80).opLDHLNNed
	c.edOps[0x73] = (*Z80).opLDNNSP
	c.edOps[0x7B] = (*Z80).opLDSPNNED

	c.edOps[0x4A] = (*Z80).opADCHLBC
	c.edOps[0x5A] = (*Z80).opADCHLDE
	c.edOps[0x6A] = (*Z80).opADCHLHL
	c.edOps[0x7A] = (*Z80).opADCHLSP
	c.edOps[0x42] = (*Z80).opSBCHLBC
	c.edOps[0x52] = (*Z80).opSBCHLDE
	c.edOps[0x62] = (*Z80).opSBCHLHL
	c.edOps[0x72] = (*Z80).opSBCHLSP
}

func (c *Z80) opEDUnimplemented() {
	c.tick(8)
}

func (c *Z80) inRegC(dest *byte) {
	value := c.in(c.BC())
	*dest = value
	c.updateInFlags(value)
	c.tick(12)
}

func (c *Z80) outRegC(value byte) {
	c.out(c.BC(), value)
	c.tick(12)
}

func (c *Z80) opINBC() {
	c.inRegC(&c.B)
}

func (c *Z80) opINRC() {
	c.inRegC(&c.C)
}

func (c *Z80) opINDC() {
	c.inRegC(&c.D)
}

func (c *Z80) opINEC() {
	c.inRegC(&c.E)
}

func (c *Z80) opINHC() {
	c.inRegC(&c.H)
}

func (c *Z80) opINLC() {
	c.inRegC(&c.L)
}

func (c *Z80) opINAC() {
	c.inRegC(&c.A)
}

func (c *Z80) opINCM() {
	value := c.in(c.BC())
	c.updateInFlags(value)
	c.tick(12)
}

func (c *Z80) opOUTBC() {
	c.outRegC(c.B)
}

func (c *Z80) opOUTCC() {
	c.outRegC(c.C)
}

func (c *Z80) opOUTDC() {
	c.outRegC(c.D)
}

func (c *Z80) opOUTEC() {
	c.outRegC(c.E)
}

func (c *Z80) opOUTHC() {
	c.outRegC(c.H)
}

func (c *Z80) opOUTLC() {
	c.outRegC(c.L)
}

func (c *Z80) opOUTAC() {
	c.outRegC(c.A)
}

func (c *Z80) opOUTC0() {
	c.outRegC(0x00)
}

func (c *Z80) opNEG() {
	a := c.A
	res := byte(0 - int(a))
	c.A = res
	c.F = z80FlagN
	if res == 0 {
		c.F |= z80FlagZ
	}
	if res&0x80 != 0 {
		c.F |= z80FlagS
	}
	if a&0x0F != 0 {
		c.F |= z80FlagH
	}
	if a == 0x80 {
		c.F |= z80FlagPV
	}
	if a != 0 {
		c.F |= z80FlagC
	}
	c.F |= res & (z80FlagX | z80FlagY)
	c.tick(8)
}

func (c *Z80) opLDIA() {
	c.I = c.A
	c.tick(9)
}

func (c *Z80) opLDRA() {
	c.R = c.A
	c.tick(9)
}

func (c *Z80) opLDAI() {
	c.A = c.I
	c.updateLDAIRFlags()
	c.tick(9)
}

func (c *Z80) opLDAR() {
	c.A = c.R
	c.updateLDAIRFlags()
	c.tick(9)
}

func (c *Z80) opIM0() {
	c.IM = 0
	c.tick(8)
}

func (c *Z80) opIM1() {
	c.IM = 1
	c.tick(8)
}

func (c *Z80) opIM2() {
	c.IM = 2
	c.tick(8)
}

func (c *Z80) opRETN() {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	c.tick(14)
}

func (c *Z80) opRETI() {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	c.tick(14)
}

func (c *Z80) opRRD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value>>4)|(c.A<<4))
	c.A = (c.A & 0xF0) | (value & 0x0F)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *Z80) opRLD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value<<4)|(c.A&0x0F))
	c.A = (c.A & 0xF0) | (value >> 4)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *Z80) opLDI() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *Z80) opLDIR() {
	c.opLDI()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opLDD() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() - 1)
	c.SetDE(c.DE() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *Z80) opLDDR() {
	c.opLDD()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opCPI() {
	value := c.read(c.HL())
	c.SetHL(c.HL() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	if bc != 0 {
		c.F |= z80FlagPV
	} else {
		c.F &^= z80FlagPV
	}
	c.tick(16)
}

func (c *Z80) opCPIR() {
	c.opCPI()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opCPD() {
	value := c.read(c.HL())
	c.SetHL(c.HL() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	if bc != 0 {
		c.F |= z80FlagPV
	} else {
		c.F &^= z80FlagPV
	}
	c.tick(16)
}

func (c *Z80) opCPDR() {
	c.opCPD()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opINI() {
	port := c.BC()
	value := c.in(port)
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *Z80) opINIR() {
	c.opINI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opIND() {
	port := c.BC()
	value := c.in(port)
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *Z80) opINDR() {
	c.opIND()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opOUTI() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *Z80) opOTIR() {
	c.opOUTI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opOUTD() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *Z80) opOTDR() {
	c.opOUTD()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *Z80) opLDNNBC() {
	addr := c.fetchWord()
	value := c.BC()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDBCNNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetBC(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDNNDE() {
	addr := c.fetchWord()
	value := c.DE()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDDENNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetDE(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDNNHLed() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDHLNNed() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDNNSP() {
	addr := c.fetchWord()
	c.write(addr, byte(c.SP))
	c.write(addr+1, byte(c.SP>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDSPNNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SP = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opADCHLBC() {
	c.adcHL(c.BC())
	c.tick(15)
}

func (c *Z80) opADCHLDE() {
	c.adcHL(c.DE())
	c.tick(15)
}

func (c *Z80) opADCHLHL() {
	c.adcHL(c.HL())
	c.tick(15)
}

func (c *Z80) opADCHLSP() {
	c.adcHL(c.SP)
	c.tick(15)
}

func (c *Z80) opSBCHLBC() {
	c.sbcHL(c.BC())
	c.tick(15)
}

func (c *Z80) opSBCHLDE() {
	c.sbcHL(c.DE())
	c.tick(15)
}

func (c *Z80) opSBCHLHL() {
	c.sbcHL(c.HL())
	c.tick(15)
}

func (c *Z80) opSBCHLSP() {
	c.sbcHL(c.SP)
	c.tick(15)
}
