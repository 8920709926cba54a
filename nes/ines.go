package nes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	trainerLen = 512
	prgBankLen = 1024 * 16
	chrBankLen = 1024 * 8
)

const (
	flags6Vertical = 1 << iota
	flags6Battery
	flags6Trainer
	flags6FourScreen
)

var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// LoadINES parses an iNES 1.0 image and builds a Cartridge with the mapper
// its header names. A trainer block, if present, is read past and
// discarded — this core has no use for it.
func LoadINES(r io.Reader) (*Cartridge, error) {
	var h struct {
		Magic      [4]byte
		PRGBanks   byte
		CHRBanks   byte
		Flags6     byte
		Flags7     byte
		PRGRAMSize byte
		_          [7]byte
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, &InvalidRomHeaderError{Reason: fmt.Sprintf("short header: %s", err)}
	}
	if !bytes.Equal(h.Magic[:], inesMagic) {
		return nil, &InvalidRomHeaderError{Reason: "missing NES\\x1A magic"}
	}

	if h.Flags6&flags6Trainer != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerLen); err != nil {
			return nil, &InvalidRomHeaderError{Reason: "truncated trainer"}
		}
	}

	prg := make([]byte, int(h.PRGBanks)*prgBankLen)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, &InvalidRomHeaderError{Reason: "truncated PRG ROM"}
	}

	var chr []byte
	if h.CHRBanks == 0 {
		chr = make([]byte, chrBankLen) // CHR RAM, one 8KB bank
	} else {
		chr = make([]byte, int(h.CHRBanks)*chrBankLen)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, &InvalidRomHeaderError{Reason: "truncated CHR ROM"}
		}
	}

	mirror := MirrorHorizontal
	if h.Flags6&flags6Vertical != 0 {
		mirror = MirrorVertical
	}
	if h.Flags6&flags6FourScreen != 0 {
		mirror = MirrorFourScreen
	}

	mapperID := h.Flags6>>4 | (h.Flags7 & 0xF0)
	battery := h.Flags6&flags6Battery != 0

	var mapper Mapper
	switch mapperID {
	case 0:
		mapper = NewNROM(prg, battery)
	default:
		return nil, &UnsupportedMapperError{ID: mapperID}
	}

	return &Cartridge{
		Mirror:   mirror,
		Battery:  battery,
		MapperID: mapperID,
		Mapper:   mapper,
		CHR:      chr,
	}, nil
}
