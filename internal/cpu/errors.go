package cpu

import (
	"errors"
	"fmt"
)

// ErrInvalidOpcode is matched by every InvalidOpcodeError.
var ErrInvalidOpcode = errors.New("invalid opcode")

// InvalidOpcodeError is returned when the CPU decodes one of the opcodes
// the LR35902 does not implement. The CPU stays faulted afterwards.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16 // address the opcode was fetched from
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *InvalidOpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}
