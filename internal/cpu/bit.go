package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// testBit tests bit b of value.
//
//	BIT b, r
//	b = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(value&types.Bit(b) == 0, false, true, c.isFlagSet(FlagCarry))
}

// setBit sets bit b of value. No flags are affected.
//
//	SET b, r
func setBit(value uint8, b uint8) uint8 {
	return value | types.Bit(b)
}

// resetBit clears bit b of value. No flags are affected.
//
//	RES b, r
func resetBit(value uint8, b uint8) uint8 {
	return value &^ types.Bit(b)
}
