package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// addressing is the addressing mode of an 8-bit operand.
type addressing uint8

const (
	direct      addressing = iota // r
	indirect                      // (BC), (DE), (HL)
	indirectInc                   // (HL+)
	indirectDec                   // (HL-)
	immediate                     // d8
	absolute                      // (a16)
	zeroPage                      // (0xFF00 + a8)
	zeroPageC                     // (0xFF00 + C)
)

// Operand describes where an 8-bit instruction operand lives. It is
// resolved to a location when the instruction executes.
type Operand struct {
	mode addressing
	reg  Reg8
	pair Reg16
}

var (
	opA     = Operand{mode: direct, reg: RegA}
	opHL    = Operand{mode: indirect, pair: RegHL}
	opHLInc = Operand{mode: indirectInc, pair: RegHL}
	opHLDec = Operand{mode: indirectDec, pair: RegHL}
	opD8    = Operand{mode: immediate}
	opA16   = Operand{mode: absolute}
	opA8    = Operand{mode: zeroPage}
	opC     = Operand{mode: zeroPageC}
)

// operands are the 8 locations selected by the 3-bit register field
// of an opcode: B, C, D, E, H, L, (HL), A.
var operands = [8]Operand{
	{mode: direct, reg: RegB},
	{mode: direct, reg: RegC},
	{mode: direct, reg: RegD},
	{mode: direct, reg: RegE},
	{mode: direct, reg: RegH},
	{mode: direct, reg: RegL},
	opHL,
	opA,
}

func indirectOperand(pair Reg16) Operand {
	return Operand{mode: indirect, pair: pair}
}

func (o Operand) String() string {
	switch o.mode {
	case direct:
		return o.reg.String()
	case indirect:
		return "(" + o.pair.String() + ")"
	case indirectInc:
		return "(HL+)"
	case indirectDec:
		return "(HL-)"
	case immediate:
		return "d8"
	case absolute:
		return "(a16)"
	case zeroPage:
		return "(a8)"
	case zeroPageC:
		return "(C)"
	}
	return fmt.Sprintf("Operand(%d)", o.mode)
}

type locationKind uint8

const (
	locRegister locationKind = iota
	locMemory
	locImmediate
)

// location is a resolved Operand: a register, a bus address, or an
// immediate value already fetched from the instruction stream.
type location struct {
	kind    locationKind
	reg     *types.Register
	address uint16
	value   uint8
}

// resolve computes the location of o, fetching any operand bytes from
// the instruction stream and applying the HL post increment/decrement.
func (c *CPU) resolve(o Operand) location {
	switch o.mode {
	case direct:
		return location{kind: locRegister, reg: c.register(o.reg)}
	case indirect:
		return location{kind: locMemory, address: c.GetR16(o.pair)}
	case indirectInc:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return location{kind: locMemory, address: hl}
	case indirectDec:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return location{kind: locMemory, address: hl}
	case immediate:
		return location{kind: locImmediate, value: c.readOperand()}
	case absolute:
		return location{kind: locMemory, address: c.readOperand16()}
	case zeroPage:
		return location{kind: locMemory, address: 0xFF00 | uint16(c.readOperand())}
	case zeroPageC:
		return location{kind: locMemory, address: 0xFF00 | uint16(c.C)}
	}
	panic(fmt.Sprintf("invalid addressing mode: %d", o.mode))
}

// load reads the value held at l.
func (c *CPU) load(l location) uint8 {
	switch l.kind {
	case locRegister:
		return *l.reg
	case locMemory:
		return c.readByte(l.address)
	}
	return l.value
}

// store writes value to l.
func (c *CPU) store(l location, value uint8) {
	switch l.kind {
	case locRegister:
		*l.reg = value
	case locMemory:
		c.writeByte(l.address, value)
	default:
		panic("cannot store to an immediate operand")
	}
}

// readOperand16 reads a little-endian 16-bit immediate, low byte first.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}
