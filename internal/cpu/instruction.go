package cpu

import "fmt"

// Instruction is a single entry of an instruction table.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// Name returns the mnemonic of the instruction, e.g. "LD B, (HL)".
func (i Instruction) Name() string {
	return i.name
}

// Valid reports whether the instruction is implemented by the LR35902.
func (i Instruction) Valid() bool {
	return i.fn != nil
}

var (
	// InstructionSet is the primary opcode table.
	InstructionSet [256]Instruction
	// InstructionSetCB is the table of opcodes following the 0xCB prefix.
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction for opcode in the
// InstructionSet. Defining an opcode twice is a programming error.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	define(&InstructionSet, opcode, name, fn)
}

// DefineInstructionCB is DefineInstruction for the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	define(&InstructionSetCB, opcode, name, fn)
}

func define(set *[256]Instruction, opcode uint8, name string, fn func(*CPU)) {
	if set[opcode].name != "" {
		panic(fmt.Sprintf("opcode 0x%02X defined as both %q and %q", opcode, set[opcode].name, name))
	}
	set[opcode] = Instruction{name: name, fn: fn}
}

// disallowedOpcodes are not implemented by the LR35902. Decoding one
// faults the CPU.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		// STOP is followed by a padding byte which is always skipped
		c.readOperand()
		c.mode = ModeStop
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) { c.mode = ModeHalt })
	DefineInstruction(0xF3, "DI", func(c *CPU) {
		c.IME = false
		c.eiPending = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.eiPending = true })

	DefineInstruction(0x27, "DAA", (*CPU).daa)
	DefineInstruction(0x2F, "CPL", (*CPU).cpl)
	DefineInstruction(0x37, "SCF", (*CPU).scf)
	DefineInstruction(0x3F, "CCF", (*CPU).ccf)

	// the CB prefix is decoded by DecodeExec, this entry only keeps the
	// table total for callers walking it directly
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU) {
		InstructionSetCB[c.readOperand()].fn(c)
	})

	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL_%02X", opcode), nil)
	}
}
