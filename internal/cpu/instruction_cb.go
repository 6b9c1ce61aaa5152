package cpu

import "fmt"

// The CB table is laid out as
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit loc
//
// where op 0 selects a rotate/shift (bit then picks which), 1 BIT,
// 2 RES and 3 SET, and loc is one of B, C, D, E, H, L, (HL), A.
func init() {
	for i, o := range operands {
		o, loc := o, uint8(i)

		// 0x00 - 0x3F - RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL
		for op := uint8(0); op < 8; op++ {
			op := op
			DefineInstructionCB(op<<3|loc, fmt.Sprintf("%s %s", shiftNames[op], o), func(c *CPU) {
				l := c.resolve(o)
				c.store(l, c.shift(op, c.load(l)))
			})
		}

		for b := uint8(0); b < 8; b++ {
			b := b
			// 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40|b<<3|loc, fmt.Sprintf("BIT %d, %s", b, o), func(c *CPU) {
				c.testBit(c.load(c.resolve(o)), b)
			})
			// 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80|b<<3|loc, fmt.Sprintf("RES %d, %s", b, o), func(c *CPU) {
				l := c.resolve(o)
				c.store(l, resetBit(c.load(l), b))
			})
			// 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0|b<<3|loc, fmt.Sprintf("SET %d, %s", b, o), func(c *CPU) {
				l := c.resolve(o)
				c.store(l, setBit(c.load(l), b))
			})
		}
	}
}
