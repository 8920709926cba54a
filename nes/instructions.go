package nes

// AddressingMode tags how an instruction's operand is located. The 2A03
// exposes 13 distinct modes; every opcode descriptor names exactly one.
type AddressingMode byte

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// InstructionKind distinguishes how an instruction uses its resolved
// operand, which in turn decides whether a page-crossing penalty applies:
// only plain reads pay it, stores and read-modify-write instructions always
// carry the crossing cost in their base cycle count instead.
type InstructionKind byte

const (
	KindOther InstructionKind = iota
	KindRead
	KindWrite
	KindReadModWrite
)

// Instruction is the static descriptor for one opcode byte: its mnemonic,
// addressing mode, base cycle count, and byte length. ControlFlow marks
// instructions that set PC themselves (branches, jumps, subroutine calls and
// returns, BRK) — the dispatch loop skips its generic PC advance for these.
type Instruction struct {
	Opcode      byte
	Name        string
	Mode        AddressingMode
	Kind        InstructionKind
	Size        byte
	Cycles      byte
	ControlFlow bool
	Illegal     bool
}

// opcodeTable is indexed directly by opcode byte, avoiding a map lookup on
// the hottest path in the package.
var opcodeTable [256]Instruction

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = Instruction{Opcode: byte(i), Name: "???", Mode: Implicit, Size: 1, Cycles: 2, Illegal: true}
	}
	for _, d := range definedOpcodes {
		opcodeTable[d.Opcode] = d
	}
}

var definedOpcodes = []Instruction{
	// ADC
	{Opcode: 0x69, Name: "ADC", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0x65, Name: "ADC", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0x75, Name: "ADC", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0x6D, Name: "ADC", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x7D, Name: "ADC", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x79, Name: "ADC", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x61, Name: "ADC", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0x71, Name: "ADC", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// AND
	{Opcode: 0x29, Name: "AND", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0x25, Name: "AND", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0x35, Name: "AND", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0x2D, Name: "AND", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x3D, Name: "AND", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x39, Name: "AND", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x21, Name: "AND", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0x31, Name: "AND", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// ASL
	{Opcode: 0x0A, Name: "ASL", Mode: Accumulator, Kind: KindReadModWrite, Size: 1, Cycles: 2},
	{Opcode: 0x06, Name: "ASL", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0x16, Name: "ASL", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0x0E, Name: "ASL", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0x1E, Name: "ASL", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},

	// Branches
	{Opcode: 0x90, Name: "BCC", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0xB0, Name: "BCS", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0xF0, Name: "BEQ", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0x30, Name: "BMI", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0xD0, Name: "BNE", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0x10, Name: "BPL", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0x50, Name: "BVC", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},
	{Opcode: 0x70, Name: "BVS", Mode: Relative, Size: 2, Cycles: 2, ControlFlow: true},

	// BIT
	{Opcode: 0x24, Name: "BIT", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0x2C, Name: "BIT", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},

	// BRK
	{Opcode: 0x00, Name: "BRK", Mode: Implicit, Size: 1, Cycles: 7, ControlFlow: true},

	// flag clear/set
	{Opcode: 0x18, Name: "CLC", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xD8, Name: "CLD", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x58, Name: "CLI", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xB8, Name: "CLV", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x38, Name: "SEC", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xF8, Name: "SED", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x78, Name: "SEI", Mode: Implicit, Size: 1, Cycles: 2},

	// CMP
	{Opcode: 0xC9, Name: "CMP", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xC5, Name: "CMP", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xD5, Name: "CMP", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0xCD, Name: "CMP", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xDD, Name: "CMP", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xD9, Name: "CMP", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xC1, Name: "CMP", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0xD1, Name: "CMP", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// CPX / CPY
	{Opcode: 0xE0, Name: "CPX", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xE4, Name: "CPX", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xEC, Name: "CPX", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xC0, Name: "CPY", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xC4, Name: "CPY", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xCC, Name: "CPY", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},

	// DEC
	{Opcode: 0xC6, Name: "DEC", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0xD6, Name: "DEC", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0xCE, Name: "DEC", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0xDE, Name: "DEC", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},

	// DEX/DEY/INX/INY
	{Opcode: 0xCA, Name: "DEX", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x88, Name: "DEY", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xE8, Name: "INX", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xC8, Name: "INY", Mode: Implicit, Size: 1, Cycles: 2},

	// EOR
	{Opcode: 0x49, Name: "EOR", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0x45, Name: "EOR", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0x55, Name: "EOR", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0x4D, Name: "EOR", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x5D, Name: "EOR", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x59, Name: "EOR", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x41, Name: "EOR", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0x51, Name: "EOR", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// INC
	{Opcode: 0xE6, Name: "INC", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0xF6, Name: "INC", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0xEE, Name: "INC", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0xFE, Name: "INC", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},

	// JMP / JSR
	{Opcode: 0x4C, Name: "JMP", Mode: Absolute, Size: 3, Cycles: 3, ControlFlow: true},
	{Opcode: 0x6C, Name: "JMP", Mode: Indirect, Size: 3, Cycles: 5, ControlFlow: true},
	{Opcode: 0x20, Name: "JSR", Mode: Absolute, Size: 3, Cycles: 6, ControlFlow: true},

	// LDA
	{Opcode: 0xA9, Name: "LDA", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xA5, Name: "LDA", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xB5, Name: "LDA", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0xAD, Name: "LDA", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xBD, Name: "LDA", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xB9, Name: "LDA", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xA1, Name: "LDA", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0xB1, Name: "LDA", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// LDX / LDY
	{Opcode: 0xA2, Name: "LDX", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xA6, Name: "LDX", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xB6, Name: "LDX", Mode: ZeroPageY, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0xAE, Name: "LDX", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xBE, Name: "LDX", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xA0, Name: "LDY", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xA4, Name: "LDY", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xB4, Name: "LDY", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0xAC, Name: "LDY", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xBC, Name: "LDY", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},

	// LSR
	{Opcode: 0x4A, Name: "LSR", Mode: Accumulator, Kind: KindReadModWrite, Size: 1, Cycles: 2},
	{Opcode: 0x46, Name: "LSR", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0x56, Name: "LSR", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0x4E, Name: "LSR", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0x5E, Name: "LSR", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},

	// NOP
	{Opcode: 0xEA, Name: "NOP", Mode: Implicit, Size: 1, Cycles: 2},

	// ORA
	{Opcode: 0x09, Name: "ORA", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0x05, Name: "ORA", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0x15, Name: "ORA", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0x0D, Name: "ORA", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x1D, Name: "ORA", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x19, Name: "ORA", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0x01, Name: "ORA", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0x11, Name: "ORA", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// stack ops
	{Opcode: 0x48, Name: "PHA", Mode: Implicit, Size: 1, Cycles: 3},
	{Opcode: 0x08, Name: "PHP", Mode: Implicit, Size: 1, Cycles: 3},
	{Opcode: 0x68, Name: "PLA", Mode: Implicit, Size: 1, Cycles: 4},
	{Opcode: 0x28, Name: "PLP", Mode: Implicit, Size: 1, Cycles: 4},

	// ROL / ROR
	{Opcode: 0x2A, Name: "ROL", Mode: Accumulator, Kind: KindReadModWrite, Size: 1, Cycles: 2},
	{Opcode: 0x26, Name: "ROL", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0x36, Name: "ROL", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0x2E, Name: "ROL", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0x3E, Name: "ROL", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},
	{Opcode: 0x6A, Name: "ROR", Mode: Accumulator, Kind: KindReadModWrite, Size: 1, Cycles: 2},
	{Opcode: 0x66, Name: "ROR", Mode: ZeroPage, Kind: KindReadModWrite, Size: 2, Cycles: 5},
	{Opcode: 0x76, Name: "ROR", Mode: ZeroPageX, Kind: KindReadModWrite, Size: 2, Cycles: 6},
	{Opcode: 0x6E, Name: "ROR", Mode: Absolute, Kind: KindReadModWrite, Size: 3, Cycles: 6},
	{Opcode: 0x7E, Name: "ROR", Mode: AbsoluteX, Kind: KindReadModWrite, Size: 3, Cycles: 7},

	// RTI / RTS
	{Opcode: 0x40, Name: "RTI", Mode: Implicit, Size: 1, Cycles: 6, ControlFlow: true},
	{Opcode: 0x60, Name: "RTS", Mode: Implicit, Size: 1, Cycles: 6, ControlFlow: true},

	// SBC
	{Opcode: 0xE9, Name: "SBC", Mode: Immediate, Kind: KindRead, Size: 2, Cycles: 2},
	{Opcode: 0xE5, Name: "SBC", Mode: ZeroPage, Kind: KindRead, Size: 2, Cycles: 3},
	{Opcode: 0xF5, Name: "SBC", Mode: ZeroPageX, Kind: KindRead, Size: 2, Cycles: 4},
	{Opcode: 0xED, Name: "SBC", Mode: Absolute, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xFD, Name: "SBC", Mode: AbsoluteX, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xF9, Name: "SBC", Mode: AbsoluteY, Kind: KindRead, Size: 3, Cycles: 4},
	{Opcode: 0xE1, Name: "SBC", Mode: IndirectX, Kind: KindRead, Size: 2, Cycles: 6},
	{Opcode: 0xF1, Name: "SBC", Mode: IndirectY, Kind: KindRead, Size: 2, Cycles: 5},

	// STA
	{Opcode: 0x85, Name: "STA", Mode: ZeroPage, Kind: KindWrite, Size: 2, Cycles: 3},
	{Opcode: 0x95, Name: "STA", Mode: ZeroPageX, Kind: KindWrite, Size: 2, Cycles: 4},
	{Opcode: 0x8D, Name: "STA", Mode: Absolute, Kind: KindWrite, Size: 3, Cycles: 4},
	{Opcode: 0x9D, Name: "STA", Mode: AbsoluteX, Kind: KindWrite, Size: 3, Cycles: 5},
	{Opcode: 0x99, Name: "STA", Mode: AbsoluteY, Kind: KindWrite, Size: 3, Cycles: 5},
	{Opcode: 0x81, Name: "STA", Mode: IndirectX, Kind: KindWrite, Size: 2, Cycles: 6},
	{Opcode: 0x91, Name: "STA", Mode: IndirectY, Kind: KindWrite, Size: 2, Cycles: 6},

	// STX / STY
	{Opcode: 0x86, Name: "STX", Mode: ZeroPage, Kind: KindWrite, Size: 2, Cycles: 3},
	{Opcode: 0x96, Name: "STX", Mode: ZeroPageY, Kind: KindWrite, Size: 2, Cycles: 4},
	{Opcode: 0x8E, Name: "STX", Mode: Absolute, Kind: KindWrite, Size: 3, Cycles: 4},
	{Opcode: 0x84, Name: "STY", Mode: ZeroPage, Kind: KindWrite, Size: 2, Cycles: 3},
	{Opcode: 0x94, Name: "STY", Mode: ZeroPageX, Kind: KindWrite, Size: 2, Cycles: 4},
	{Opcode: 0x8C, Name: "STY", Mode: Absolute, Kind: KindWrite, Size: 3, Cycles: 4},

	// register transfers
	{Opcode: 0xAA, Name: "TAX", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xA8, Name: "TAY", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0xBA, Name: "TSX", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x8A, Name: "TXA", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x9A, Name: "TXS", Mode: Implicit, Size: 1, Cycles: 2},
	{Opcode: 0x98, Name: "TYA", Mode: Implicit, Size: 1, Cycles: 2},
}
