package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// shiftNames are the rotate and shift operations of the CB table, in
// opcode order (0x00-0x3F, bits 3-5).
var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// shift performs the CB rotate/shift operation op on n.
func (c *CPU) shift(op uint8, n uint8) uint8 {
	switch op & 0x7 {
	case 0:
		return c.rotateLeftCarry(n)
	case 1:
		return c.rotateRightCarry(n)
	case 2:
		return c.rotateLeftThroughCarry(n)
	case 3:
		return c.rotateRightThroughCarry(n)
	case 4:
		return c.shiftLeftArithmetic(n)
	case 5:
		return c.shiftRightArithmetic(n)
	case 6:
		return c.swap(n)
	default:
		return c.shiftRightLogical(n)
	}
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is
// copied to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit
// is copied to both the carry flag and the most significant bit.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is
// copied to the least significant bit, and the most significant bit is
// copied to the carry flag.
//
//	RL n
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryBit()
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is
// copied to the most significant bit, and the least significant bit is
// copied to the carry flag.
//
//	RR n
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftLeftArithmetic shifts n left by one bit, and sets the carry flag
// to the most significant bit of n.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right by one bit and sets the carry flag
// to the least significant bit of n. The most significant bit does not
// change.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right one bit and sets the carry flag to
// the least significant bit of n.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// rotateAccumulator performs RLCA, RRCA, RLA or RRA. They behave as
// their CB counterparts on A, except Z is always reset.
func (c *CPU) rotateAccumulator(op uint8) {
	c.A = c.shift(op, c.A)
	c.F &^= FlagZero
}
