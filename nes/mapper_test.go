package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNROMSRAMReadWriteWithBattery(t *testing.T) {
	m := NewNROM(make([]byte, prgBankLen), true)
	m.Write(0x6000, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x6000))
}

func TestNROMSRAMDisabledWithoutBattery(t *testing.T) {
	m := NewNROM(make([]byte, prgBankLen), false)
	m.Write(0x6000, 0x42)
	assert.Equal(t, byte(0), m.Read(0x6000))
}

func TestNROMPRGBankMirrors(t *testing.T) {
	prg := make([]byte, prgBankLen)
	prg[0] = 0xAA
	m := NewNROM(prg, false)
	assert.Equal(t, byte(0xAA), m.Read(0x8000))
	assert.Equal(t, byte(0xAA), m.Read(0xC000)) // 16KB PRG mirrors into the upper half
}
