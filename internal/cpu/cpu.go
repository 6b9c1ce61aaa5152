// Package cpu implements the instruction decode/execute core of the
// Sharp LR35902. Memory, interrupts and timing are supplied by the
// caller through the Bus and InterruptSource interfaces.
package cpu

import (
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/snapshot"
)

// Bus is the byte-addressable memory the CPU executes from.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// InterruptSource is the interrupt controller as seen by the CPU.
// Vector returns the address of the highest priority pending interrupt
// and acknowledges it.
type InterruptSource interface {
	HasInterrupts() bool
	Vector() uint16
}

// Mode is the execution state of the CPU.
type Mode uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal Mode = iota
	// ModeHalt is entered by HALT, and left when an interrupt is pending.
	ModeHalt
	// ModeStop is entered by STOP, and left when an interrupt is pending.
	ModeStop
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "running"
	case ModeHalt:
		return "halted"
	case ModeStop:
		return "stopped"
	}
	return "unknown"
}

// CPU represents the LR35902. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	// IME is the interrupt master enable flag.
	IME bool

	// Debug logs every executed instruction along with the register file.
	Debug bool

	b   Bus
	irq InterruptSource
	log log.Logger

	mode Mode
	// eiPending is set by EI; IME is set once the instruction after
	// EI has completed.
	eiPending bool
	fault     error
}

// New creates a new CPU reading and writing memory through b.
func New(b Bus, opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		b:         b,
		log:       log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Resume returns a halted or stopped CPU to normal execution.
func (c *CPU) Resume() {
	c.mode = ModeNormal
}

// Err returns the fault that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.fault
}

// Reset returns the CPU to its power-on state: every register zeroed,
// interrupts disabled and any fault cleared.
func (c *CPU) Reset() {
	*c.Registers = types.Registers{BC: c.BC, DE: c.DE, HL: c.HL, AF: c.AF}
	c.PC, c.SP = 0, 0
	c.IME = false
	c.eiPending = false
	c.mode = ModeNormal
	c.fault = nil
}

// Step executes a single instruction. A halted or stopped CPU stays
// idle until its interrupt source has a pending interrupt. After the
// instruction, a pending interrupt is serviced if IME is set.
//
// Once an invalid opcode has been decoded every call returns the same
// error without executing anything.
func (c *CPU) Step() error {
	if c.fault != nil {
		return c.fault
	}

	if c.mode != ModeNormal {
		if c.irq == nil || !c.irq.HasInterrupts() {
			return nil
		}
		c.mode = ModeNormal
		if c.IME {
			c.executeInterrupt()
			return nil
		}
	}

	if err := c.DecodeExec(c.readInstruction()); err != nil {
		return err
	}

	if c.IME && c.irq != nil && c.irq.HasInterrupts() {
		c.executeInterrupt()
	}

	return nil
}

// DecodeExec executes opcode, which has already been fetched from
// PC-1. A 0xCB opcode fetches its second byte from PC.
func (c *CPU) DecodeExec(opcode uint8) error {
	if c.fault != nil {
		return c.fault
	}

	pc := c.PC - 1
	instruction := InstructionSet[opcode]
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	}

	if !instruction.Valid() {
		c.fault = &InvalidOpcodeError{Opcode: opcode, PC: pc}
		c.log.Errorf("%v", c.fault)
		return c.fault
	}

	enableIME := c.eiPending
	instruction.fn(c)
	if enableIME && c.eiPending {
		c.eiPending = false
		c.IME = true
	}

	if c.Debug {
		c.log.Debugf("%04X %-16s A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
			pc, instruction.name, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
	}

	return nil
}

// Interrupt pushes PC and jumps to vector, disabling IME, as the CPU
// does when it services an interrupt. A halted or stopped CPU resumes.
func (c *CPU) Interrupt(vector uint16) {
	c.IME = false
	c.eiPending = false
	c.mode = ModeNormal
	c.push(c.PC)
	c.PC = vector
}

func (c *CPU) executeInterrupt() {
	vector := c.irq.Vector()
	if c.Debug {
		c.log.Debugf("servicing interrupt 0x%04X from 0x%04X", vector, c.PC)
	}
	c.Interrupt(vector)
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte from memory.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.b.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.b.Write(addr, val)
}

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface. If the attached interrupt
// source is itself a types.Stater it is loaded after the CPU.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.mode = Mode(s.Read8())
	c.IME = s.ReadBool()
	c.eiPending = s.ReadBool()
	if st, ok := c.irq.(types.Stater); ok {
		st.Load(s)
	}
}

// Save implements the types.Stater interface.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(uint8(c.mode))
	s.WriteBool(c.IME)
	s.WriteBool(c.eiPending)
	if st, ok := c.irq.(types.Stater); ok {
		st.Save(s)
	}
}

// Snapshot returns the CPU state encoded by the snapshot package.
func (c *CPU) Snapshot() ([]byte, error) {
	s := types.NewState()
	c.Save(s)
	return snapshot.Encode(s)
}

// Restore loads a state produced by Snapshot. The CPU is left
// unchanged if the snapshot is corrupt or short.
func (c *CPU) Restore(b []byte) error {
	s, err := snapshot.Decode(b)
	if err != nil {
		return err
	}

	backup := types.NewState()
	c.Save(backup)

	c.Load(s)
	if err := s.Err(); err != nil {
		c.Load(backup)
		return err
	}

	c.fault = nil
	return nil
}
