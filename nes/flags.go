package nes

// Flag identifies one bit of the processor status register P. The 6502
// datasheet and various emulators disagree on names for the unused bits
// (BREAK vs BREAK_COMMAND); this package settles on one canonical set.
type Flag byte

const (
	FlagCarry    Flag = 1 << iota // C - carry out of the last ADC/SBC/shift
	FlagZero                      // Z - result was zero
	FlagIRQ                       // I - IRQ line masked when set
	FlagDecimal                   // D - BCD mode; the 2A03 ignores it
	FlagBreak                     // B - set in the byte pushed by PHP/BRK, never a real register bit
	FlagUnused                    // U - always reads as 1 when pushed
	FlagOverflow                  // V - signed overflow
	FlagNegative                  // N - bit 7 of the result
)

// Status is the packed processor status register P. It is stored as a
// single byte so PHP/PLP are a plain load/store; named-flag access goes
// through Has/Set.
type Status byte

// Has reports whether f is set in p.
func (p Status) Has(f Flag) bool {
	return p&Status(f) != 0
}

// Set assigns f to v.
func (p *Status) Set(f Flag, v bool) {
	if v {
		*p |= Status(f)
	} else {
		*p &^= Status(f)
	}
}

// SetZN sets Z and N from the given result byte, as almost every
// load/transfer/ALU instruction does.
func (p *Status) SetZN(result byte) {
	p.Set(FlagZero, result == 0)
	p.Set(FlagNegative, result&0x80 != 0)
}

// Byte returns the raw register value, U forced to 1 as it is whenever the
// flags are inspected via a push.
func (p Status) Byte() byte {
	return byte(p) | byte(FlagUnused)
}

// FromByte loads P from a popped/restored byte. B and U are not real
// register bits; callers that need PLP's "preserve live B/U" semantics
// should mask them back in after calling FromByte.
func (p *Status) FromByte(b byte) {
	*p = Status(b)
}
