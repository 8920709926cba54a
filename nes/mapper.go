package nes

// Mapper is the cartridge-side half of bank switching: everything from
// $4020 up on the CPU bus goes through one of these. SPEC_FULL implements
// only NROM; a header naming any other mapper id fails to load with
// UnsupportedMapperError.
type Mapper interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// NROM is iNES mapper 0: a fixed 16 or 32 KiB PRG ROM bank mirrored across
// $8000-$FFFF, plus an 8 KiB PRG RAM window at $6000-$7FFF gated on the
// header's battery bit — without it the window reads as 0 and drops writes,
// since there is nothing for the window to back.
type NROM struct {
	prg     []byte
	sram    [0x2000]byte
	battery bool
}

func NewNROM(prg []byte, battery bool) *NROM {
	return &NROM{prg: prg, battery: battery}
}

func (m *NROM) Read(addr uint16) byte {
	switch {
	case addr >= 0x8000:
		return m.prg[int(addr-0x8000)%len(m.prg)]
	case addr >= 0x6000:
		if !m.battery {
			return 0
		}
		return m.sram[addr-0x6000]
	default:
		return 0
	}
}

func (m *NROM) Write(addr uint16, value byte) {
	switch {
	case addr >= 0x8000:
		// PRG ROM; NROM has no bank-select registers to write.
	case addr >= 0x6000:
		if m.battery {
			m.sram[addr-0x6000] = value
		}
	}
}
