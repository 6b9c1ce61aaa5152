// Package ram provides a flat, byte-addressable memory used as the
// CPU's bus when no memory-mapped peripherals are attached.
package ram

// RAM represents a block of RAM.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Flat is a 64KB address space with no mapped I/O.
type Flat struct {
	data [0x10000]uint8
}

// NewFlat returns a zeroed 64KB RAM.
func NewFlat() *Flat {
	return &Flat{}
}

// NewFlatWithProgram returns a 64KB RAM with program copied to origin.
func NewFlatWithProgram(origin uint16, program []byte) *Flat {
	r := NewFlat()
	r.Load(origin, program)
	return r
}

// Read returns the value at the given address.
func (r *Flat) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *Flat) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Load copies b into memory starting at origin, wrapping at the end of
// the address space.
func (r *Flat) Load(origin uint16, b []byte) {
	for i, v := range b {
		r.data[origin+uint16(i)] = v
	}
}
