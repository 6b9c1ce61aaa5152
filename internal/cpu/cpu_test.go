package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/pkg/log"
)

var (
	cpu *CPU
	mem *ram.Flat
)

// newTestCPU returns a CPU with program loaded at 0x0100, PC pointing
// at it and SP at the top of memory.
func newTestCPU(program ...byte) (*CPU, *ram.Flat) {
	m := ram.NewFlatWithProgram(0x0100, program)
	c := New(m)
	c.PC = 0x0100
	c.SP = 0xFFFE
	return c, m
}

// testInstruction runs f against a freshly reset cpu. The execute
// function passed to f writes opcode and its operands at PC and steps
// the CPU once.
func testInstruction(t *testing.T, name string, opcode uint8, f func(t *testing.T, execute func(operands ...byte))) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		cpu, mem = newTestCPU()
		f(t, func(operands ...byte) {
			t.Helper()
			mem.Write(cpu.PC, opcode)
			mem.Load(cpu.PC+1, operands)
			if err := cpu.Step(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	})
}

// testInstructionCB is testInstruction for the CB table.
func testInstructionCB(t *testing.T, name string, opcode uint8, f func(t *testing.T, execute func())) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		cpu, mem = newTestCPU()
		f(t, func() {
			t.Helper()
			mem.Write(cpu.PC, 0xCB)
			mem.Write(cpu.PC+1, opcode)
			if err := cpu.Step(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	})
}

// step steps c n times, failing the test on error.
func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
}

func expectFlags(t *testing.T, want uint8) {
	t.Helper()
	if cpu.F != want {
		t.Errorf("expected flags to be 0x%02X, got 0x%02X", want, cpu.F)
	}
}

func TestCPU_Step(t *testing.T) {
	c, _ := newTestCPU(0x00, 0x3E, 0x42)

	step(t, c, 1)
	if c.PC != 0x0101 {
		t.Errorf("expected PC to be 0x0101 after NOP, got 0x%04X", c.PC)
	}
	step(t, c, 1)
	if c.A != 0x42 || c.PC != 0x0103 {
		t.Errorf("expected A=0x42 PC=0x0103, got A=0x%02X PC=0x%04X", c.A, c.PC)
	}
}

func TestCPU_InvalidOpcode(t *testing.T) {
	for _, opcode := range disallowedOpcodes {
		c, _ := newTestCPU(opcode)

		err := c.Step()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidOpcode))

		var invalid *InvalidOpcodeError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, opcode, invalid.Opcode)
		assert.Equal(t, uint16(0x0100), invalid.PC)

		// the fault is latched, nothing else executes
		assert.Same(t, invalid, c.Step())
		assert.Equal(t, uint16(0x0101), c.PC)
		assert.Equal(t, err, c.Err())

		c.Reset()
		assert.NoError(t, c.Err())
		assert.Equal(t, uint16(0x0000), c.PC)
	}
}

func TestCPU_HaltStop(t *testing.T) {
	t.Run("halt", func(t *testing.T) {
		c, _ := newTestCPU(0x76, 0x3C)
		step(t, c, 3)
		if c.Mode() != ModeHalt {
			t.Fatalf("expected CPU to be halted, got %s", c.Mode())
		}
		if c.PC != 0x0101 || c.A != 0 {
			t.Errorf("expected halted CPU to not execute, got PC=0x%04X A=0x%02X", c.PC, c.A)
		}

		c.Resume()
		step(t, c, 1)
		if c.Mode() != ModeNormal || c.A != 0x01 {
			t.Errorf("expected resumed CPU to execute INC A, got %s A=0x%02X", c.Mode(), c.A)
		}
	})
	t.Run("stop", func(t *testing.T) {
		c, _ := newTestCPU(0x10, 0x3C, 0x3C)
		step(t, c, 1)
		if c.Mode() != ModeStop {
			t.Fatalf("expected CPU to be stopped, got %s", c.Mode())
		}
		if c.PC != 0x0102 {
			t.Errorf("expected STOP to consume 2 bytes, got PC=0x%04X", c.PC)
		}
		c.Resume()
		step(t, c, 1)
		if c.A != 0x01 {
			t.Errorf("expected INC A after the STOP padding byte, got A=0x%02X", c.A)
		}
	})
}

func TestCPU_EI(t *testing.T) {
	t.Run("delayed", func(t *testing.T) {
		c, _ := newTestCPU(0xFB, 0x00, 0x00)
		step(t, c, 1)
		if c.IME {
			t.Errorf("expected IME to be unset directly after EI")
		}
		step(t, c, 1)
		if !c.IME {
			t.Errorf("expected IME to be set after the instruction following EI")
		}
	})
	t.Run("cancelled by DI", func(t *testing.T) {
		c, _ := newTestCPU(0xFB, 0xF3, 0x00)
		step(t, c, 3)
		if c.IME {
			t.Errorf("expected DI to cancel a pending EI")
		}
	})
	t.Run("decode exec", func(t *testing.T) {
		c, _ := newTestCPU()
		require.NoError(t, c.DecodeExec(0xFB))
		assert.False(t, c.IME)
		require.NoError(t, c.DecodeExec(0x00))
		assert.True(t, c.IME)
	})
	t.Run("RETI", func(t *testing.T) {
		c, m := newTestCPU(0xD9)
		c.SP = 0xFFFC
		m.Write(0xFFFC, 0x34)
		m.Write(0xFFFD, 0x12)
		step(t, c, 1)
		if !c.IME {
			t.Errorf("expected RETI to set IME immediately")
		}
		if c.PC != 0x1234 || c.SP != 0xFFFE {
			t.Errorf("expected PC=0x1234 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}
	})
}

func TestCPU_Interrupts(t *testing.T) {
	newInterruptCPU := func(program ...byte) (*CPU, *ram.Flat, *interrupts.Service) {
		irq := interrupts.NewService()
		m := ram.NewFlatWithProgram(0x0100, program)
		c := New(interrupts.NewBus(m, irq), WithInterrupts(irq))
		c.PC, c.SP = 0x0100, 0xFFFE
		return c, m, irq
	}

	t.Run("service after instruction", func(t *testing.T) {
		c, m, irq := newInterruptCPU(0x00)
		c.IME = true
		irq.Enable = interrupts.TimerFlag
		irq.Request(interrupts.TimerFlag)

		step(t, c, 1)
		if c.PC != 0x0050 {
			t.Errorf("expected PC to be the timer vector 0x0050, got 0x%04X", c.PC)
		}
		if c.IME {
			t.Errorf("expected IME to be cleared on interrupt entry")
		}
		if m.Read(0xFFFD) != 0x01 || m.Read(0xFFFC) != 0x01 {
			t.Errorf("expected return address 0x0101 on the stack")
		}
		if irq.Flag != 0 {
			t.Errorf("expected interrupt to be acknowledged, got IF=0x%02X", irq.Flag)
		}
	})
	t.Run("wake from halt", func(t *testing.T) {
		c, _, irq := newInterruptCPU(0x76, 0x00)
		c.IME = true
		irq.Enable = interrupts.VBlankFlag
		step(t, c, 2)
		if c.Mode() != ModeHalt {
			t.Fatalf("expected CPU to be halted")
		}

		irq.Request(interrupts.VBlankFlag)
		step(t, c, 1)
		if c.Mode() != ModeNormal || c.PC != 0x0040 {
			t.Errorf("expected CPU to service VBlank, got %s PC=0x%04X", c.Mode(), c.PC)
		}
	})
	t.Run("wake from halt without IME", func(t *testing.T) {
		c, _, irq := newInterruptCPU(0x76, 0x3C)
		irq.Enable = interrupts.JoypadFlag
		step(t, c, 1)

		irq.Request(interrupts.JoypadFlag)
		step(t, c, 1)
		if c.Mode() != ModeNormal || c.A != 0x01 || c.PC != 0x0102 {
			t.Errorf("expected CPU to resume at the next instruction, got %s A=0x%02X PC=0x%04X", c.Mode(), c.A, c.PC)
		}
		if !irq.HasInterrupts() {
			t.Errorf("expected interrupt to remain pending")
		}
	})
	t.Run("program enables", func(t *testing.T) {
		// LD A, 0x04; LDH (0xFF), A; EI; NOP
		c, _, irq := newInterruptCPU(0x3E, 0x04, 0xE0, 0xFF, 0xFB, 0x00)
		irq.Request(interrupts.TimerFlag)
		step(t, c, 3)
		if c.PC != 0x0105 {
			t.Fatalf("expected interrupt to wait for EI latency, got PC=0x%04X", c.PC)
		}
		step(t, c, 1)
		if c.PC != 0x0050 {
			t.Errorf("expected timer vector after NOP, got PC=0x%04X", c.PC)
		}
	})
}

func TestCPU_Interrupt(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x1234
	c.IME = true
	c.mode = ModeHalt

	c.Interrupt(0x0048)
	assert.Equal(t, uint16(0x0048), c.PC)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint8(0x12), m.Read(0xFFFD))
	assert.Equal(t, uint8(0x34), m.Read(0xFFFC))
	assert.False(t, c.IME)
	assert.Equal(t, ModeNormal, c.Mode())
}

func TestCPU_Options(t *testing.T) {
	t.Run("post boot", func(t *testing.T) {
		c := New(ram.NewFlat(), PostBoot())
		assert.Equal(t, uint16(0x01B0), c.AF.Uint16())
		assert.Equal(t, uint16(0x0013), c.BC.Uint16())
		assert.Equal(t, uint16(0x00D8), c.DE.Uint16())
		assert.Equal(t, uint16(0x014D), c.HL.Uint16())
		assert.Equal(t, uint16(0xFFFE), c.SP)
		assert.Equal(t, uint16(0x0100), c.PC)
	})
	t.Run("debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := ram.NewFlatWithProgram(0x0100, []byte{0x3E, 0x42, 0xDD})
		c := New(m, PostBoot(), Debug(), WithLogger(log.NewWithOutput(&buf, logrus.DebugLevel)))

		step(t, c, 1)
		assert.Contains(t, buf.String(), "LD A, d8")
		assert.Contains(t, buf.String(), "A: 42")

		assert.Error(t, c.Step())
		assert.Contains(t, buf.String(), "level=error")
		assert.Contains(t, buf.String(), "invalid opcode 0xDD at 0x0102")
	})
}

func TestMode_String(t *testing.T) {
	for mode, want := range map[Mode]string{
		ModeNormal: "running",
		ModeHalt:   "halted",
		ModeStop:   "stopped",
		Mode(9):    "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
