package cpu

import "fmt"

// The primary table is generated from opcode families. Each family is
// a base opcode, a stride and the operands it fans out over, e.g. INC r
// is 0x04 + 8*r for r in B, C, D, E, H, L, (HL), A.

// pairs are the register pairs selected by bits 4-5 of the 16-bit
// load and arithmetic opcodes; stackPairs replace SP with AF for
// PUSH and POP.
var (
	pairs      = [4]Reg16{RegBC, RegDE, RegHL, RegSP}
	stackPairs = [4]Reg16{RegBC, RegDE, RegHL, RegAF}
)

func init() {
	generateLoadInstructions()
	generate16BitInstructions()
	generateALUInstructions()
	generateJumpInstructions()
	generateStackInstructions()
}

func generateLoadInstructions() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			d, s := operands[dst], operands[src]
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", d, s), func(c *CPU) { c.load8(d, s) })
		}
	}

	// 0x06 - 0x3E - LD r, d8
	for i, o := range operands {
		o := o
		DefineInstruction(0x06+uint8(i)*8, fmt.Sprintf("LD %s, d8", o), func(c *CPU) { c.load8(o, opD8) })
	}

	// 0x02 - 0x32 - LD (rr), A and 0x0A - 0x3A - LD A, (rr)
	for i, o := range [4]Operand{indirectOperand(RegBC), indirectOperand(RegDE), opHLInc, opHLDec} {
		o := o
		DefineInstruction(0x02+uint8(i)<<4, fmt.Sprintf("LD %s, A", o), func(c *CPU) { c.load8(o, opA) })
		DefineInstruction(0x0A+uint8(i)<<4, fmt.Sprintf("LD A, %s", o), func(c *CPU) { c.load8(opA, o) })
	}

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) { c.load8(opA8, opA) })
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) { c.load8(opA, opA8) })
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.load8(opC, opA) })
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.load8(opA, opC) })
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.load8(opA16, opA) })
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.load8(opA, opA16) })
}

func generate16BitInstructions() {
	for i, pair := range pairs {
		pair := pair
		row := uint8(i) << 4
		// 0x01 - 0x31 - LD rr, d16
		DefineInstruction(0x01+row, fmt.Sprintf("LD %s, d16", pair), func(c *CPU) {
			c.SetR16(pair, c.readOperand16())
		})
		// 0x03 - 0x33 - INC rr
		DefineInstruction(0x03+row, fmt.Sprintf("INC %s", pair), func(c *CPU) {
			c.SetR16(pair, c.GetR16(pair)+1)
		})
		// 0x0B - 0x3B - DEC rr
		DefineInstruction(0x0B+row, fmt.Sprintf("DEC %s", pair), func(c *CPU) {
			c.SetR16(pair, c.GetR16(pair)-1)
		})
		// 0x09 - 0x39 - ADD HL, rr
		DefineInstruction(0x09+row, fmt.Sprintf("ADD HL, %s", pair), func(c *CPU) {
			c.addHL(c.GetR16(pair))
		})
	}

	DefineInstruction(0x08, "LD (a16), SP", (*CPU).storeSP)
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) { c.SP = c.addSPSigned() })
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) })
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) { c.SP = c.HL.Uint16() })
}

func generateALUInstructions() {
	for op := uint8(0); op < 8; op++ {
		op := op
		// 0x80 - 0xBF - ALU A, r
		for i, o := range operands {
			o := o
			DefineInstruction(0x80+op*8+uint8(i), fmt.Sprintf("%s A, %s", aluNames[op], o), func(c *CPU) {
				c.alu(op, c.load(c.resolve(o)))
			})
		}
		// 0xC6 - 0xFE - ALU A, d8
		DefineInstruction(0xC6+op*8, fmt.Sprintf("%s A, d8", aluNames[op]), func(c *CPU) {
			c.alu(op, c.readOperand())
		})
	}

	for i, o := range operands {
		o := o
		// 0x04 - 0x3C - INC r
		DefineInstruction(0x04+uint8(i)*8, fmt.Sprintf("INC %s", o), func(c *CPU) {
			l := c.resolve(o)
			c.store(l, c.increment(c.load(l)))
		})
		// 0x05 - 0x3D - DEC r
		DefineInstruction(0x05+uint8(i)*8, fmt.Sprintf("DEC %s", o), func(c *CPU) {
			l := c.resolve(o)
			c.store(l, c.decrement(c.load(l)))
		})
	}

	// 0x07, 0x0F, 0x17, 0x1F - RLCA, RRCA, RLA, RRA
	for op := uint8(0); op < 4; op++ {
		op := op
		DefineInstruction(0x07+op*8, shiftNames[op]+"A", func(c *CPU) { c.rotateAccumulator(op) })
	}
}

func generateJumpInstructions() {
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]
		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20+cc*8, fmt.Sprintf("JR %s, r8", name), func(c *CPU) {
			c.jumpRelative(c.condition(cc))
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0+cc*8, fmt.Sprintf("RET %s", name), func(c *CPU) {
			c.ret(c.condition(cc))
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2+cc*8, fmt.Sprintf("JP %s, a16", name), func(c *CPU) {
			c.jumpAbsolute(c.condition(cc))
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4+cc*8, fmt.Sprintf("CALL %s, a16", name), func(c *CPU) {
			c.call(c.condition(cc))
		})
	}

	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) })
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret(true) })
	DefineInstruction(0xD9, "RETI", (*CPU).retInterrupt)

	// 0xC7 - 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", vector), func(c *CPU) { c.restart(vector) })
	}
}

func generateStackInstructions() {
	for i, pair := range stackPairs {
		pair := pair
		// 0xC1 - 0xF1 - POP rr
		DefineInstruction(0xC1+uint8(i)<<4, fmt.Sprintf("POP %s", pair), func(c *CPU) { c.popPair(pair) })
		// 0xC5 - 0xF5 - PUSH rr
		DefineInstruction(0xC5+uint8(i)<<4, fmt.Sprintf("PUSH %s", pair), func(c *CPU) { c.pushPair(pair) })
	}
}
