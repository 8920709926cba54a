package nes

// InterruptKind names the four ways the dispatch loop can be diverted away
// from normal fetch/decode/execute.
type InterruptKind byte

const (
	InterruptReset InterruptKind = iota
	InterruptNMI
	InterruptIRQ
	InterruptBRK
)

// InterruptDescriptor is the constant data for one interrupt kind: the
// vector it reads PC from, the bits OR'd into the status byte it pushes
// (bit0 -> B, bit1 -> U), and its fixed cycle cost. RESET never pushes
// anything, so its BMask is unused.
type InterruptDescriptor struct {
	Kind   InterruptKind
	Vector uint16
	BMask  byte
	Cost   byte
}

var (
	descReset = InterruptDescriptor{Kind: InterruptReset, Vector: 0xFFFC, Cost: 7}
	descNMI   = InterruptDescriptor{Kind: InterruptNMI, Vector: 0xFFFA, BMask: 0b10, Cost: 7}
	descIRQ   = InterruptDescriptor{Kind: InterruptIRQ, Vector: 0xFFFE, BMask: 0b10, Cost: 7}
	descBRK   = InterruptDescriptor{Kind: InterruptBRK, Vector: 0xFFFE, BMask: 0b11, Cost: 7}
)

// service pushes PC and P, loads PC from the descriptor's vector, and
// returns the cycle cost to charge. It handles NMI, IRQ, and BRK; RESET is
// handled by CPU.Reset directly since it pushes nothing; it only reads its
// vector.
func (c *CPU) service(bus Bus, d InterruptDescriptor) byte {
	c.pushWord(bus, c.PC)
	pushed := c.P
	pushed.Set(FlagBreak, d.BMask&0b01 != 0)
	pushed.Set(FlagUnused, d.BMask&0b10 != 0)
	c.push(bus, byte(pushed))
	c.P.Set(FlagIRQ, true)
	c.PC = bus.Read16(d.Vector)
	return d.Cost
}
