package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// Reg8 names an 8-bit register. The values of B through A match the
// 3-bit register encoding used by the opcodes, where 6 selects (HL).
type Reg8 uint8

const (
	RegB Reg8 = 0
	RegC Reg8 = 1
	RegD Reg8 = 2
	RegE Reg8 = 3
	RegH Reg8 = 4
	RegL Reg8 = 5
	RegA Reg8 = 7
	RegF Reg8 = 8
)

var reg8Names = [...]string{
	RegB: "B", RegC: "C", RegD: "D", RegE: "E",
	RegH: "H", RegL: "L", RegA: "A", RegF: "F",
}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) && reg8Names[r] != "" {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// Reg16 names a 16-bit register or register pair.
type Reg16 uint8

const (
	RegBC Reg16 = iota
	RegDE
	RegHL
	RegSP
	RegAF
)

var reg16Names = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (r Reg16) String() string {
	if int(r) < len(reg16Names) {
		return reg16Names[r]
	}
	return fmt.Sprintf("Reg16(%d)", uint8(r))
}

// register returns a pointer to the storage of the given register.
func (c *CPU) register(r Reg8) *types.Register {
	switch r {
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	case RegA:
		return &c.A
	case RegF:
		return &c.F
	}
	panic(fmt.Sprintf("invalid register: %d", uint8(r)))
}

// GetR8 returns the value of an 8-bit register.
func (c *CPU) GetR8(r Reg8) uint8 {
	return *c.register(r)
}

// SetR8 sets an 8-bit register. The lower nibble of F always reads
// as zero.
func (c *CPU) SetR8(r Reg8, value uint8) {
	if r == RegF {
		value &= 0xF0
	}
	*c.register(r) = value
}

// GetR16 returns the value of a 16-bit register.
func (c *CPU) GetR16(r Reg16) uint16 {
	if r == RegSP {
		return c.SP
	}
	return c.pair(r).Uint16()
}

// SetR16 sets a 16-bit register. Writing a pair writes both of its
// 8-bit halves.
func (c *CPU) SetR16(r Reg16, value uint16) {
	if r == RegSP {
		c.SP = value
		return
	}
	c.pair(r).SetUint16(value)
}

func (c *CPU) pair(r Reg16) *types.RegisterPair {
	switch r {
	case RegBC:
		return c.BC
	case RegDE:
		return c.DE
	case RegHL:
		return c.HL
	case RegAF:
		return c.AF
	}
	panic(fmt.Sprintf("invalid register pair: %d", uint8(r)))
}
