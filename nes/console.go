package nes

import (
	"errors"
	"io"
)

// Console is the host-facing control surface: a CPU wired to a SysBus built
// from a loaded cartridge.
type Console struct {
	CPU *CPU
	Bus *SysBus
}

// NewConsole builds a console around cart and runs a reset, the way real
// hardware comes up. trace may be nil to disable execution tracing.
func NewConsole(cart *Cartridge, trace io.Writer) *Console {
	bus := NewSysBus(cart)
	cpu := NewCPU(trace)
	cpu.Reset(bus)
	return &Console{CPU: cpu, Bus: bus}
}

// LoadINESConsole parses r as an iNES image and builds a Console from it.
func LoadINESConsole(r io.Reader, trace io.Writer) (*Console, error) {
	cart, err := LoadINES(r)
	if err != nil {
		return nil, err
	}
	return NewConsole(cart, trace), nil
}

// Reset re-runs the power-up sequence without reloading the cartridge.
func (c *Console) Reset() {
	c.CPU.Reset(c.Bus)
}

// SetPC overrides the program counter, for test harnesses that need to
// start execution somewhere other than the reset vector.
func (c *Console) SetPC(pc uint16) {
	c.CPU.PC = pc
}

// StepInstruction runs exactly one instruction (or interrupt service) and
// returns the cycles it charged.
func (c *Console) StepInstruction() (byte, error) {
	return c.CPU.Step(c.Bus)
}

// ErrInstructionBudgetExceeded is returned by RunUntil when maxInstructions
// elapses before pc is reached, most often because the program never
// reaches it (a bad test ROM or a genuine infinite loop).
var ErrInstructionBudgetExceeded = errors.New("nes: instruction budget exceeded before target PC")

// RunUntil steps the CPU until PC equals pc or maxInstructions have run,
// whichever comes first.
func (c *Console) RunUntil(pc uint16, maxInstructions int) error {
	for i := 0; i < maxInstructions; i++ {
		if c.CPU.PC == pc {
			return nil
		}
		if _, err := c.StepInstruction(); err != nil {
			return err
		}
	}
	if c.CPU.PC == pc {
		return nil
	}
	return ErrInstructionBudgetExceeded
}

func (c *Console) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

func (c *Console) Write(addr uint16, value byte) {
	c.Bus.Write(addr, value)
}

func (c *Console) Press(button Button) {
	c.Bus.Ctrl1.Press(button)
}

func (c *Console) Release(button Button) {
	c.Bus.Ctrl1.Release(button)
}
