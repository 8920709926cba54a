package nes

import "io"

// CPU is the register file and dispatch loop for a Ricoh 2A03: a MOS 6502
// core with the decimal mode wired off.
type CPU struct {
	A, X, Y byte
	S       byte
	PC      uint16
	P       Status

	Cycles uint64

	irqLine bool
	trace   io.Writer
}

// NewCPU returns a CPU with its registers zeroed. Call Reset before running
// it, as real hardware requires. trace may be nil to disable execution
// tracing.
func NewCPU(trace io.Writer) *CPU {
	return &CPU{trace: trace}
}

// Reset loads PC from the reset vector and puts the registers in the state
// real 2A03 hardware settles into: A, X and Y zeroed, S at $FD, and P with
// only I and U set. Cycles is not cleared; the reset's cost is added to it.
func (c *CPU) Reset(bus Bus) {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = 0
	c.P.Set(FlagUnused, true)
	c.P.Set(FlagIRQ, true)
	c.PC = bus.Read16(0xFFFC)
	c.Cycles += uint64(descReset.Cost)
	bus.Tick(descReset.Cost)
}

// SetIRQLine models the maskable IRQ line as level-triggered: a mapper or
// the APU frame counter holds it asserted until whatever raised it clears
// it, independent of whether the CPU happens to service it promptly.
func (c *CPU) SetIRQLine(asserted bool) {
	c.irqLine = asserted
}

// Step runs exactly one instruction, or services a pending interrupt in
// its place, and returns the cycle count charged. NMI is edge-triggered and
// always wins; IRQ is level-triggered and masked by the I flag.
func (c *CPU) Step(bus Bus) (byte, error) {
	if bus.TakePendingNMI() {
		cycles := c.service(bus, descNMI)
		c.Cycles += uint64(cycles)
		bus.Tick(cycles)
		return cycles, nil
	}
	if c.irqLine && !c.P.Has(FlagIRQ) {
		cycles := c.service(bus, descIRQ)
		c.Cycles += uint64(cycles)
		bus.Tick(cycles)
		return cycles, nil
	}

	opcodeAddr := c.PC
	snapA, snapX, snapY, snapS, snapP := c.A, c.X, c.Y, c.S, c.P

	opcode := bus.Read(c.PC)
	c.PC++

	inst := opcodeTable[opcode]
	if inst.Illegal {
		return 0, &IllegalOpcodeError{Opcode: opcode, PC: opcodeAddr}
	}

	operand := c.resolveOperand(bus, inst)
	extra := c.execute(bus, inst, operand)

	if !inst.ControlFlow {
		c.PC += uint16(inst.Size) - 1
	}

	cycles := inst.Cycles + extra
	if inst.Kind == KindRead && operand.PageCrossed {
		cycles++
	}

	c.Cycles += uint64(cycles)
	bus.Tick(cycles)

	if c.trace != nil {
		snap := traceSnapshot{pc: opcodeAddr, a: snapA, x: snapX, y: snapY, s: snapS, p: snapP}
		fmtTraceLine(c.trace, bus, snap, inst, operand, c.Cycles)
	}

	return cycles, nil
}

func (c *CPU) push(bus Bus, value byte) {
	bus.Write(0x0100+uint16(c.S), value)
	c.S--
}

func (c *CPU) pull(bus Bus) byte {
	c.S++
	return bus.Read(0x0100 + uint16(c.S))
}

func (c *CPU) pushWord(bus Bus, value uint16) {
	c.push(bus, byte(value>>8))
	c.push(bus, byte(value))
}

func (c *CPU) pullWord(bus Bus) uint16 {
	lo := c.pull(bus)
	hi := c.pull(bus)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) setA(v byte) {
	c.A = v
	c.P.SetZN(v)
}

func (c *CPU) setX(v byte) {
	c.X = v
	c.P.SetZN(v)
}

func (c *CPU) setY(v byte) {
	c.Y = v
	c.P.SetZN(v)
}
