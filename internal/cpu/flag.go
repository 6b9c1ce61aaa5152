package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// Flag is the mask of a condition flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// GetFlag returns true if the given flag is set.
func (c *CPU) GetFlag(flag Flag) bool {
	return c.isFlagSet(flag)
}

// SetFlag sets or clears the given flag.
func (c *CPU) SetFlag(flag Flag, value bool) {
	if value {
		c.F |= flag & 0xF0
	} else {
		c.F &^= flag
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if halfCarry {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return c.F & FlagCarry >> 4
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates the branch condition encoded in bits 3-4 of a
// conditional jump, call or return opcode: NZ, Z, NC, C.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
