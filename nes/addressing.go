package nes

// Operand is what the addressing-mode unit hands back to an instruction:
// either an effective address (stores and read-modify-write instructions
// use Addr) or a value already read from memory (most reads use Value),
// plus whether resolving the address crossed a page boundary.
//
// resolveOperand never advances PC. CPU.Step advances PC by the
// instruction's byte length once Execute returns, except for control-flow
// instructions that set PC themselves.
type Operand struct {
	Addr        uint16
	Value       byte
	PageCrossed bool
}

// resolveOperand computes the effective address for inst.Mode and, for
// read-class instructions only, the value at that address. Write and
// read-modify-write instructions get the address and touch memory
// themselves at Execute time; reading the value here too would perform a
// second, spurious bus access — harmless against RAM but not against a
// memory-mapped register like the controller port at $4016, where an extra
// read shifts its bit register.
func (c *CPU) resolveOperand(bus Bus, inst Instruction) Operand {
	wantsValue := inst.Kind == KindRead
	switch inst.Mode {
	case Implicit:
		return Operand{}
	case Accumulator:
		return Operand{Value: c.A}
	case Immediate:
		return Operand{Value: bus.Read(c.PC)}
	case ZeroPage:
		addr := uint16(bus.Read(c.PC))
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue)}
	case ZeroPageX:
		addr := uint16(bus.Read(c.PC) + c.X)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue)}
	case ZeroPageY:
		addr := uint16(bus.Read(c.PC) + c.Y)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue)}
	case Relative:
		offset := int8(bus.Read(c.PC))
		target := c.PC + 1 + uint16(int16(offset))
		return Operand{Addr: target}
	case Absolute:
		addr := bus.Read16(c.PC)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue)}
	case AbsoluteX:
		base := bus.Read16(c.PC)
		addr := base + uint16(c.X)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue), PageCrossed: pageCrossed(base, addr)}
	case AbsoluteY:
		base := bus.Read16(c.PC)
		addr := base + uint16(c.Y)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue), PageCrossed: pageCrossed(base, addr)}
	case Indirect:
		ptr := bus.Read16(c.PC)
		return Operand{Addr: readIndirectWrapped(bus, ptr)}
	case IndirectX:
		zp := bus.Read(c.PC) + c.X
		addr := zeroPageIndirect(bus, zp)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue)}
	case IndirectY:
		zp := bus.Read(c.PC)
		base := zeroPageIndirect(bus, zp)
		addr := base + uint16(c.Y)
		return Operand{Addr: addr, Value: readIf(bus, addr, wantsValue), PageCrossed: pageCrossed(base, addr)}
	default:
		return Operand{}
	}
}

// readIf reads addr only when wantsValue is true, so write and
// read-modify-write instructions resolve an address without touching
// memory until their own Execute-time access.
func readIf(bus Bus, addr uint16, wantsValue bool) byte {
	if !wantsValue {
		return 0
	}
	return bus.Read(addr)
}

func pageCrossed(base, addr uint16) bool {
	return base&0xFF00 != addr&0xFF00
}

// zeroPageIndirect reads a little-endian pointer out of the zero page,
// wrapping within page zero rather than spilling into page one.
func zeroPageIndirect(bus Bus, zp byte) uint16 {
	lo := bus.Read(uint16(zp))
	hi := bus.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// readIndirectWrapped reproduces the JMP ($xxFF) page-wrap bug: the high
// byte of the target is fetched from the start of the same page instead of
// spilling into the next one.
func readIndirectWrapped(bus Bus, ptr uint16) uint16 {
	lo := bus.Read(ptr)
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := bus.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}
