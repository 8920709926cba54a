package nes

// execute runs the instruction's semantics given its resolved operand and
// returns any extra cycles beyond the descriptor's base count (used only by
// branches, for the taken and page-crossing bonuses; page-cross penalties
// for read-class addressing are charged by the caller).
func (c *CPU) execute(bus Bus, inst Instruction, op Operand) byte {
	switch inst.Name {
	case "ADC":
		c.adc(op.Value)
	case "AND":
		c.setA(c.A & op.Value)
	case "ASL":
		c.shift(bus, inst, op, func(v byte) (byte, bool) { return v << 1, v&0x80 != 0 })
	case "BCC":
		return c.branch(!c.P.Has(FlagCarry), op.Addr)
	case "BCS":
		return c.branch(c.P.Has(FlagCarry), op.Addr)
	case "BEQ":
		return c.branch(c.P.Has(FlagZero), op.Addr)
	case "BMI":
		return c.branch(c.P.Has(FlagNegative), op.Addr)
	case "BNE":
		return c.branch(!c.P.Has(FlagZero), op.Addr)
	case "BPL":
		return c.branch(!c.P.Has(FlagNegative), op.Addr)
	case "BVC":
		return c.branch(!c.P.Has(FlagOverflow), op.Addr)
	case "BVS":
		return c.branch(c.P.Has(FlagOverflow), op.Addr)
	case "BIT":
		c.P.Set(FlagZero, c.A&op.Value == 0)
		c.P.Set(FlagOverflow, op.Value&0x40 != 0)
		c.P.Set(FlagNegative, op.Value&0x80 != 0)
	case "BRK":
		c.PC++ // skip the padding byte BRK always carries
		c.service(bus, descBRK)
	case "CLC":
		c.P.Set(FlagCarry, false)
	case "CLD":
		c.P.Set(FlagDecimal, false)
	case "CLI":
		c.P.Set(FlagIRQ, false)
	case "CLV":
		c.P.Set(FlagOverflow, false)
	case "CMP":
		c.compare(c.A, op.Value)
	case "CPX":
		c.compare(c.X, op.Value)
	case "CPY":
		c.compare(c.Y, op.Value)
	case "DEC":
		c.readModWrite(bus, op, func(v byte) byte { return v - 1 })
	case "DEX":
		c.setX(c.X - 1)
	case "DEY":
		c.setY(c.Y - 1)
	case "EOR":
		c.setA(c.A ^ op.Value)
	case "INC":
		c.readModWrite(bus, op, func(v byte) byte { return v + 1 })
	case "INX":
		c.setX(c.X + 1)
	case "INY":
		c.setY(c.Y + 1)
	case "JMP":
		c.PC = op.Addr
	case "JSR":
		c.pushWord(bus, c.PC+1)
		c.PC = op.Addr
	case "LDA":
		c.setA(op.Value)
	case "LDX":
		c.setX(op.Value)
	case "LDY":
		c.setY(op.Value)
	case "LSR":
		c.shift(bus, inst, op, func(v byte) (byte, bool) { return v >> 1, v&0x01 != 0 })
	case "NOP":
		// no-op
	case "ORA":
		c.setA(c.A | op.Value)
	case "PHA":
		c.push(bus, c.A)
	case "PHP":
		pushed := c.P
		pushed.Set(FlagBreak, true)
		pushed.Set(FlagUnused, true)
		c.push(bus, byte(pushed))
	case "PLA":
		c.setA(c.pull(bus))
	case "PLP":
		liveBreak, liveUnused := c.P.Has(FlagBreak), c.P.Has(FlagUnused)
		c.P.FromByte(c.pull(bus))
		c.P.Set(FlagBreak, liveBreak)
		c.P.Set(FlagUnused, liveUnused)
	case "ROL":
		carryIn := c.P.Has(FlagCarry)
		c.shift(bus, inst, op, func(v byte) (byte, bool) {
			out := v<<1 | b2u(carryIn)
			return out, v&0x80 != 0
		})
	case "ROR":
		carryIn := c.P.Has(FlagCarry)
		c.shift(bus, inst, op, func(v byte) (byte, bool) {
			out := v>>1 | b2u(carryIn)<<7
			return out, v&0x01 != 0
		})
	case "RTI":
		c.P.FromByte(c.pull(bus))
		c.P.Set(FlagBreak, false)
		c.P.Set(FlagUnused, true)
		c.PC = c.pullWord(bus)
	case "RTS":
		c.PC = c.pullWord(bus) + 1
	case "SBC":
		c.adc(op.Value ^ 0xFF)
	case "SEC":
		c.P.Set(FlagCarry, true)
	case "SED":
		c.P.Set(FlagDecimal, true)
	case "SEI":
		c.P.Set(FlagIRQ, true)
	case "STA":
		bus.Write(op.Addr, c.A)
	case "STX":
		bus.Write(op.Addr, c.X)
	case "STY":
		bus.Write(op.Addr, c.Y)
	case "TAX":
		c.setX(c.A)
	case "TAY":
		c.setY(c.A)
	case "TSX":
		c.setX(c.S)
	case "TXA":
		c.setA(c.X)
	case "TXS":
		c.S = c.X
	case "TYA":
		c.setA(c.Y)
	}
	return 0
}

func b2u(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// adc implements ADC directly; SBC reuses it by feeding the one's
// complement of its operand, since M - N - !C == M + ~N + C.
func (c *CPU) adc(value byte) {
	carryIn := uint16(b2u(c.P.Has(FlagCarry)))
	sum := uint16(c.A) + uint16(value) + carryIn
	result := byte(sum)

	c.P.Set(FlagCarry, sum > 0xFF)
	c.P.Set(FlagOverflow, (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.setA(result)
}

func (c *CPU) compare(reg, value byte) {
	c.P.Set(FlagCarry, reg >= value)
	c.P.SetZN(reg - value)
}

// branch is always marked ControlFlow, taken or not, so it owns PC
// unconditionally: on no-take it still has to land on the normal
// fallthrough address itself.
func (c *CPU) branch(taken bool, target uint16) byte {
	if !taken {
		c.PC++
		return 0
	}
	var extra byte = 1
	if pageCrossed(c.PC+1, target) {
		extra++
	}
	c.PC = target
	return extra
}

// shift runs a shift/rotate's bit transform against the accumulator or a
// memory operand, writing the result back to wherever it came from.
func (c *CPU) shift(bus Bus, inst Instruction, op Operand, f func(byte) (byte, bool)) {
	var in byte
	if inst.Mode == Accumulator {
		in = c.A
	} else {
		in = bus.Read(op.Addr)
	}
	out, carry := f(in)
	c.P.Set(FlagCarry, carry)
	c.P.SetZN(out)
	if inst.Mode == Accumulator {
		c.A = out
	} else {
		bus.Write(op.Addr, out)
	}
}

func (c *CPU) readModWrite(bus Bus, op Operand, f func(byte) byte) {
	v := f(bus.Read(op.Addr))
	c.P.SetZN(v)
	bus.Write(op.Addr, v)
}
