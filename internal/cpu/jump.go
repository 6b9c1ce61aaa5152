package cpu

// push pushes a 16-bit value onto the stack, high byte first, leaving
// the low byte at the lower address.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// jumpAbsolute reads a 16-bit address and jumps to it if condition is
// true. The operand is consumed either way.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
	}
}

// jumpRelative reads a signed 8-bit displacement and, if condition is
// true, adds it to the address of the next instruction.
//
//	JR e
//	JR cc, e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// call reads a 16-bit address and, if condition is true, pushes the
// address of the next instruction and jumps to it.
//
//	CALL nn
//	CALL cc, nn
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.push(c.PC)
		c.PC = address
	}
}

// ret pops the return address off the stack into PC if condition is
// true.
//
//	RET
//	RET cc
func (c *CPU) ret(condition bool) {
	if condition {
		c.PC = c.pop()
	}
}

// retInterrupt returns and enables interrupts immediately, without the
// delay EI has.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret(true)
	c.IME = true
	c.eiPending = false
}

// restart pushes PC and jumps to one of the fixed vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(vector uint16) {
	c.push(c.PC)
	c.PC = vector
}
