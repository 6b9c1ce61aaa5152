// Package interrupts implements the interrupt request (IF) and enable
// (IE) registers, and the priority logic used to pick the vector the
// CPU jumps to when it services an interrupt.
package interrupts

import (
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag = types.Bit4
)

const (
	// FlagAddress is the address of the IF register.
	FlagAddress uint16 = 0xFF0F
	// EnableAddress is the address of the IE register.
	EnableAddress uint16 = 0xFFFF
)

// Service is the interrupt service, used to request interrupts and to
// get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When an interrupt is enabled, the corresponding bit
// in the Enable register is set. An interrupt is pending when both are
// set; whether the CPU acts on it depends on its IME and mode.
type Service struct {
	Flag   uint8 // interrupt Flag (IF)
	Enable uint8 // interrupt Enable (IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector returns the vector of the highest priority pending interrupt
// and acknowledges it by clearing its bit in the Flag register. It
// returns 0 if nothing is pending.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag &^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}

// Bus maps the IF and IE registers of a Service over another bus, so a
// running program can enable and acknowledge interrupts with ordinary
// loads and stores.
type Bus struct {
	ram.RAM
	s *Service
}

// NewBus returns a Bus routing IF and IE to s and everything else to mem.
func NewBus(mem ram.RAM, s *Service) *Bus {
	return &Bus{RAM: mem, s: s}
}

func (b *Bus) Read(address uint16) uint8 {
	switch address {
	case FlagAddress:
		return b.s.Flag | 0xE0 // the upper 3 bits are always set
	case EnableAddress:
		return b.s.Enable
	}
	return b.RAM.Read(address)
}

func (b *Bus) Write(address uint16, value uint8) {
	switch address {
	case FlagAddress:
		b.s.Flag = value & 0x1F // only the first 5 bits are used
	case EnableAddress:
		b.s.Enable = value
	default:
		b.RAM.Write(address, value)
	}
}
