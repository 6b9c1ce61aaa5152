package cpu

// load8 copies the 8-bit value at src to dst. The source is resolved
// first, so any immediate bytes are fetched in instruction order.
//
//	LD r, r'     LD r, d8      LD r, (HL)    LD (HL), r
//	LD (HL), d8  LD A, (rr)    LD (rr), A    LD A, (HL+/-)
//	LD (HL+/-), A  LD A, (a16)  LD (a16), A  LDH A, (a8)
//	LDH (a8), A  LD A, (C)     LD (C), A
func (c *CPU) load8(dst, src Operand) {
	value := c.load(c.resolve(src))
	c.store(c.resolve(dst), value)
}

// storeSP writes SP to a 16-bit immediate address, low byte first.
//
//	LD (a16), SP
func (c *CPU) storeSP() {
	address := c.readOperand16()
	c.writeByte(address, uint8(c.SP))
	c.writeByte(address+1, uint8(c.SP>>8))
}

// pushPair pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushPair(pair Reg16) {
	c.push(c.GetR16(pair))
}

// popPair pops a register pair off the stack. Popping into AF discards
// the lower nibble of F.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) popPair(pair Reg16) {
	c.SetR16(pair, c.pop())
}
