package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks byte, flags6, flags7 byte, prg, chr []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Write(inesMagic)
	buf.WriteByte(prgBanks)
	buf.WriteByte(chrBanks)
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // PRGRAMSize + 7 reserved bytes
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

func TestLoadINESNROM(t *testing.T) {
	prg := make([]byte, prgBankLen)
	prg[0] = 0xEA
	data := buildINES(1, 1, flags6Vertical, 0, prg, make([]byte, chrBankLen))

	cart, err := LoadINES(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, byte(0), cart.MapperID)
	assert.Equal(t, MirrorVertical, cart.Mirror)
	assert.Equal(t, byte(0xEA), cart.Read(0x8000))
	assert.Equal(t, byte(0xEA), cart.Read(0xC000)) // 16KB PRG mirrors into the upper half
}

func TestLoadINESRejectsBadMagic(t *testing.T) {
	data := append([]byte("XES\x1a\x01\x01\x00\x00"), make([]byte, 8)...) // full 16-byte header
	_, err := LoadINES(bytes.NewReader(data))
	require.Error(t, err)
	var hdrErr *InvalidRomHeaderError
	require.ErrorAs(t, err, &hdrErr)
}

func TestLoadINESUnsupportedMapper(t *testing.T) {
	prg := make([]byte, prgBankLen)
	data := buildINES(1, 1, 0x10, 0, prg, make([]byte, chrBankLen)) // mapper 1
	_, err := LoadINES(bytes.NewReader(data))
	require.Error(t, err)
	var mapErr *UnsupportedMapperError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, byte(1), mapErr.ID)
}

func TestLoadINESBatteryGatesSRAM(t *testing.T) {
	prg := make([]byte, prgBankLen)
	data := buildINES(1, 1, flags6Battery, 0, prg, make([]byte, chrBankLen))

	cart, err := LoadINES(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, cart.Battery)
	cart.Write(0x6000, 0x99)
	assert.Equal(t, byte(0x99), cart.Read(0x6000))
}

func TestLoadINESWithoutBatteryDropsSRAM(t *testing.T) {
	prg := make([]byte, prgBankLen)
	data := buildINES(1, 1, flags6Vertical, 0, prg, make([]byte, chrBankLen)) // no battery bit

	cart, err := LoadINES(bytes.NewReader(data))
	require.NoError(t, err)
	assert.False(t, cart.Battery)
	cart.Write(0x6000, 0x99)
	assert.Equal(t, byte(0), cart.Read(0x6000))
}

func TestLoadINESSkipsTrainer(t *testing.T) {
	prg := make([]byte, prgBankLen)
	prg[0] = 0x42
	data := buildINES(1, 0, flags6Trainer, 0, append(make([]byte, trainerLen), prg...), nil)

	cart, err := LoadINES(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), cart.Read(0x8000))
}
