package types

// Register represents an 8-bit LR35902 register. The CPU has 8 of
// them: A, B, C, D, E, H, L and F, where F holds the condition flags.
type Register = uint8

// RegisterPair is a 16-bit view over two Registers. It does not hold a
// value of its own, reads and writes go straight through to the
// underlying High and Low registers, so a write to either half is
// immediately visible through the pair and vice versa.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to Low on write. AF uses it to keep the
	// unused lower nibble of F zero.
	mask uint8
}

// NewRegisterPair returns a RegisterPair over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low register only
// keeps the bits set in mask when written through the pair.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the LR35902 register file.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns a zeroed register file with its pairs wired to
// the 8-bit registers.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	r.AF = NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
	return r
}
