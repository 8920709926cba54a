package nes

// Bus is the capability set the CPU core needs from its memory system. It
// is deliberately narrow so tests can swap in MockBus instead of wiring a
// full SysBus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	Read16(addr uint16) uint16
	Write16(addr uint16, value uint16)
	Tick(cycles byte)
	TakePendingNMI() bool
}

// SysBus is the real NES address space: 2 KiB work RAM mirrored four times,
// PPU registers mirrored every 8 bytes, APU/IO registers including the
// controller ports, and the cartridge filling everything from $4020 up.
//
//	$0000-$07FF  2KB internal RAM
//	$0800-$1FFF  mirrors of $0000-$07FF
//	$2000-$2007  PPU registers
//	$2008-$3FFF  mirrors of $2000-$2007 every 8 bytes
//	$4000-$4015  APU registers (unimplemented, reads as open bus 0)
//	$4016-$4017  controller ports
//	$4018-$401F  APU/IO test registers (unimplemented)
//	$4020-$FFFF  cartridge (PRG ROM/RAM via the mapper)
type SysBus struct {
	RAM       *RAM
	Cartridge *Cartridge
	PPU       *PPUTiming
	Ctrl1     *Controller
	Ctrl2     *Controller
}

// NewSysBus wires RAM, a loaded cartridge, and a fresh PPU timing stub into
// one address space. Both controller ports get a Controller; Read and Write
// use them without a nil check, so neither may be nil.
func NewSysBus(cart *Cartridge) *SysBus {
	return &SysBus{
		RAM:       NewRAM(),
		Cartridge: cart,
		PPU:       NewPPUTiming(),
		Ctrl1:     NewController(),
		Ctrl2:     NewController(),
	}
}

func (b *SysBus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.RAM.Read(addr)
	case addr < 0x4000:
		return b.PPU.ReadRegister(addr)
	case addr == 0x4016:
		return b.Ctrl1.Read()
	case addr == 0x4017:
		return b.Ctrl2.Read()
	case addr < 0x4020:
		return 0
	default:
		return b.Cartridge.Read(addr)
	}
}

func (b *SysBus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		b.RAM.Write(addr, value)
	case addr < 0x4000:
		b.PPU.WriteRegister(addr, value)
	case addr == 0x4016:
		b.Ctrl1.Write(value)
		b.Ctrl2.Write(value)
	case addr < 0x4020:
		// APU registers and the $4014 OAM DMA port are outside this core's
		// scope; writes are accepted and discarded.
	default:
		b.Cartridge.Write(addr, value)
	}
}

func (b *SysBus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *SysBus) Write16(addr uint16, value uint16) {
	b.Write(addr, byte(value))
	b.Write(addr+1, byte(value>>8))
}

// Tick advances the PPU timing stub three dots per CPU cycle, as the NES's
// shared clock divider does.
func (b *SysBus) Tick(cycles byte) {
	for i := byte(0); i < cycles; i++ {
		b.PPU.Step()
		b.PPU.Step()
		b.PPU.Step()
	}
}

func (b *SysBus) TakePendingNMI() bool {
	return b.PPU.TakePendingNMI()
}
