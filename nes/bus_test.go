package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCartridge(t *testing.T) *Cartridge {
	t.Helper()
	prg := make([]byte, prgBankLen)
	return &Cartridge{Mapper: NewNROM(prg, true)}
}

func TestSysBusRAMMirroring(t *testing.T) {
	bus := NewSysBus(testCartridge(t))
	bus.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), bus.Read(0x0800))
	assert.Equal(t, byte(0x42), bus.Read(0x1000))
	assert.Equal(t, byte(0x42), bus.Read(0x1800))
}

func TestSysBusControllerRouting(t *testing.T) {
	bus := NewSysBus(testCartridge(t))
	bus.Ctrl1.Press(ButtonA)
	bus.Write(0x4016, 1)
	bus.Write(0x4016, 0)
	assert.Equal(t, byte(1), bus.Read(0x4016))
}

func TestSysBusCartridgeRouting(t *testing.T) {
	cart := testCartridge(t)
	cart.Mapper.Write(0x8000, 0xFF) // no-op on NROM but exercises the path
	bus := NewSysBus(cart)
	assert.Equal(t, byte(0), bus.Read(0x8000))
}

func TestSTAToControllerStrobeDoesNotConsumeShiftBit(t *testing.T) {
	// PRG ROM is read-only through the bus, so the test program and reset
	// vector are built into the cartridge's backing bytes directly instead
	// of written through bus.Write.
	prg := make([]byte, prgBankLen)
	prg[0] = 0x8D // STA $4016 (absolute)
	prg[1] = 0x16
	prg[2] = 0x40
	prg[0x3FFC] = 0x00 // reset vector low byte, at $FFFC -> offset 0x3FFC
	prg[0x3FFD] = 0x80 // reset vector high byte -> PC = $8000
	bus := NewSysBus(&Cartridge{Mapper: NewNROM(prg, true)})

	bus.Ctrl1.Press(ButtonA)
	bus.Ctrl1.Write(1)
	bus.Ctrl1.Write(0) // strobe low: head starts at 0, ButtonA is first out

	cpu := NewCPU(nil)
	cpu.Reset(bus)
	_, err := cpu.Step(bus)
	require.NoError(t, err)

	// STA must not have performed a phantom Controller.Read as part of
	// resolving its address: the next explicit read still sees bit 0
	// (ButtonA), not bit 1, as it would if STA's address resolution had
	// silently advanced the shift register first.
	assert.Equal(t, byte(1), bus.Ctrl1.Read())
}

func TestSysBusTicksPPUThreeToOne(t *testing.T) {
	bus := NewSysBus(testCartridge(t))
	bus.Tick(1)
	require.Equal(t, 3, bus.PPU.Dot)
}
