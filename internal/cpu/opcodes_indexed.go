package cpu

// initDDOps and initFDOps build the IX/IY-prefixed tables. Both share
// almost the same layout as the unprefixed table restricted to opcodes
// that actually touch H/L/(HL); everything else falls through to
// opDDUnimplemented/opFDUnimplemented, which retries the base opcode
// (the real Z80 treats an unaffected DD/FD prefix as four wasted T-states
// in front of the plain instruction).
func (c *Z80) initDDOps() {
	for i := range c.ddOps {
		c.ddOps[i] = (*Z80).opDDUnimplemented
	}
	c.ddOps[0x21] = (*Z80).opLDIXNN
	c.ddOps[0x22] = (*Z80).opLDNNIX
	c.ddOps[0x2A] = (*Z80).opLDIXNNMem
	c.ddOps[0xE5] = (*Z80).opPUSHIX
	c.ddOps[0xE1] = (*Z80).opPOPIX
	c.ddOps[0xF9] = (*Z80).opLDSPX
	c.ddOps[0x36] = (*Z80).opLDIXdN
	c.ddOps[0x34] = (*Z80).opINCIXd
	c.ddOps[0x35] = (*Z80).opDECIXd
	c.ddOps[0xE9] = (*Z80).opJPIX
	c.ddOps[0xCB] = (*Z80).opDDCBPrefix
	c.ddOps[0xE3] = (*Z80).opEXSPIX
	c.ddOps[0x09] = (*Z80).opADDIXBC
	c.ddOps[0x19] = (*Z80).opADDIXDE
	c.ddOps[0x29] = (*Z80).opADDIXIX
	c.ddOps[0x39] = (*Z80).opADDIXSP
	c.ddOps[0x23] = (*Z80).opINCIX
	c.ddOps[0x2B] = (*Z80).opDECIX

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *Z80) {
			cpu.opLDRegIXd(dest)
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		src := byte(op & 0x07)
		c.ddOps[op] = func(cpu *Z80) {
			cpu.opLDIXdReg(src)
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := opcode
		alu := aluOp((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *Z80) {
			cpu.opALUIXd(alu)
		}
	}
}

func (c *Z80) initFDOps() {
	for i := range c.fdOps {
		c.fdOps[i] = (*Z80).opFDUnimplemented
	}
	c.fdOps[0x21] = (*Z80).opLDIYNN
	c.fdOps[0x22] = (*Z80).opLDNNIY
	c.fdOps[0x2A] = (*Z80).opLDIYNNMem
	c.fdOps[0xE5] = (*Z80).opPUSHIY
	c.fdOps[0xE1] = (*Z80).opPOPIY
	c.fdOps[0xF9] = (*Z80).opLDSPY
	c.fdOps[0x36] = (*Z80).opLDIYdN
	c.fdOps[0x34] = (*Z80).opINCIYd
	c.fdOps[0x35] = (*Z80).opDECIYd
	c.fdOps[0xE9] = (*Z80).opJPIY
	c.fdOps[0xCB] = (*Z80).opFDCBPrefix
	c.fdOps[0xE3] = (*Z80).opEXSPIY
	c.fdOps[0x09] = (*Z80).opADDIYBC
	c.fdOps[0x19] = (*Z80).opADDIYDE
	c.fdOps[0x29] = (*Z80).opADDIYIY
	c.fdOps[0x39] = (*Z80).opADDIYSP
	c.fdOps[0x23] = (*Z80).opINCIY
	c.fdOps[0x2B] = (*Z80).opDECIY

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		c.fdOps[op] = func(cpu *Z80) {
			cpu.opLDRegIYd(dest)
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		src := byte(op & 0x07)
		c.fdOps[op] = func(cpu *Z80) {
			cpu.opLDIYdReg(src)
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := opcode
		alu := aluOp((op >> 3) & 0x07)
		c.fdOps[op] = func(cpu *Z80) {
			cpu.opALUIYd(alu)
		}
	}
}

func (c *Z80) opDDUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

func (c *Z80) opFDUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

func (c *Z80) opLDIXNN() {
	c.IX = c.fetchWord()
	c.tick(14)
}

func (c *Z80) opLDNNIX() {
	addr := c.fetchWord()
	c.write(addr, byte(c.IX))
	c.write(addr+1, byte(c.IX>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDIXNNMem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.IX = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opPUSHIX() {
	c.pushWord(c.IX)
	c.tick(15)
}

func (c *Z80) opPOPIX() {
	c.IX = c.popWord()
	c.tick(14)
}

func (c *Z80) opLDSPX() {
	c.SP = c.IX
	c.tick(10)
}

func (c *Z80) opLDIXdN() {
	disp := int8(c.fetchByte())
	value := c.fetchByte()
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, value)
	c.tick(19)
}

func (c *Z80) opINCIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.read(addr)
	value = c.inc8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *Z80) opDECIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.read(addr)
	value = c.dec8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *Z80) opJPIX() {
	c.PC = c.IX
	c.WZ = c.PC
	c.tick(8)
}

func (c *Z80) opEXSPIX() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	c.write(c.SP, byte(c.IX))
	c.write(c.SP+1, byte(c.IX>>8))
	c.IX = memVal
	c.WZ = memVal
	c.tick(23)
}

func (c *Z80) opADDIXBC() {
	c.addIX(c.BC())
	c.tick(15)
}

func (c *Z80) opADDIXDE() {
	c.addIX(c.DE())
	c.tick(15)
}

func (c *Z80) opADDIXIX() {
	c.addIX(c.IX)
	c.tick(15)
}

func (c *Z80) opADDIXSP() {
	c.addIX(c.SP)
	c.tick(15)
}

func (c *Z80) opINCIX() {
	c.IX++
	c.tick(10)
}

func (c *Z80) opDECIX() {
	c.IX--
	c.tick(10)
}

func (c *Z80) opLDIYNN() {
	c.IY = c.fetchWord()
	c.tick(14)
}

func (c *Z80) opLDNNIY() {
	addr := c.fetchWord()
	c.write(addr, byte(c.IY))
	c.write(addr+1, byte(c.IY>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opLDIYNNMem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.IY = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *Z80) opPUSHIY() {
	c.pushWord(c.IY)
	c.tick(15)
}

func (c *Z80) opPOPIY() {
	c.IY = c.popWord()
	c.tick(14)
}

func (c *Z80) opLDSPY() {
	c.SP = c.IY
	c.tick(10)
}

func (c *Z80) opLDIYdN() {
	disp := int8(c.fetchByte())
	value := c.fetchByte()
	addr := uint16(int32(c.IY) + int32(disp))
	c.write(addr, value)
	c.tick(19)
}

func (c *Z80) opINCIYd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	value := c.read(addr)
	value = c.inc8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *Z80) opDECIYd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	value := c.read(addr)
	value = c.dec8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *Z80) opJPIY() {
	c.PC = c.IY
	c.WZ = c.PC
	c.tick(8)
}

func (c *Z80) opEXSPIY() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	c.write(c.SP, byte(c.IY))
	c.write(c.SP+1, byte(c.IY>>8))
	c.IY = memVal
	c.WZ = memVal
	c.tick(23)
}

func (c *Z80) opADDIYBC() {
	c.addIY(c.BC())
	c.tick(15)
}

func (c *Z80) opADDIYDE() {
	c.addIY(c.DE())
	c.tick(15)
}

func (c *Z80) opADDIYIY() {
	c.addIY(c.IY)
	c.tick(15)
}

func (c *Z80) opADDIYSP() {
	c.addIY(c.SP)
	c.tick(15)
}

func (c *Z80) opINCIY() {
	c.IY++
	c.tick(10)
}

func (c *Z80) opDECIY() {
	c.IY--
	c.tick(10)
}

func (c *Z80) opLDRegIXd(dest byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *Z80) opLDIXdReg(src byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *Z80) opALUIXd(op aluOp) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.performALU(op, c.read(addr))
	c.tick(19)
}

func (c *Z80) opLDRegIYd(dest byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *Z80) opLDIYdReg(src byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *Z80) opALUIYd(op aluOp) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.performALU(op, c.read(addr))
	c.tick(19)
}
