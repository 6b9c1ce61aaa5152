package cpu

import "github.com/thelolagemann/lr35902/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables per-instruction trace logging.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithInterrupts attaches the interrupt controller the CPU polls after
// every instruction and while halted.
func WithInterrupts(irq InterruptSource) Opt {
	return func(c *CPU) {
		c.irq = irq
	}
}

// PostBoot sets the registers to the values the DMG boot ROM leaves
// behind, so execution can start directly at the cartridge entry point.
func PostBoot() Opt {
	return func(c *CPU) {
		c.AF.SetUint16(0x01B0)
		c.BC.SetUint16(0x0013)
		c.DE.SetUint16(0x00D8)
		c.HL.SetUint16(0x014D)
		c.SP = 0xFFFE
		c.PC = 0x0100
	}
}

// WithState restores a snapshot produced by CPU.Snapshot. A snapshot
// that fails to decode is logged and ignored. Pass it after
// WithInterrupts and WithLogger so both are in place when it is loaded.
func WithState(b []byte) Opt {
	return func(c *CPU) {
		if err := c.Restore(b); err != nil {
			c.log.Errorf("unable to restore state: %v", err)
		}
	}
}
