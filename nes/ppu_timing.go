package nes

// PPUTiming tracks only the PPU's dot/scanline clock and the vertical-blank
// NMI edge it raises. Pixel generation and scrolling are out of scope;
// ReadRegister always returns 0, and WriteRegister acts only on PPUCTRL's
// NMI-enable bit (bit 7), ignoring every other register write.
type PPUTiming struct {
	Dot      int // 0-340
	Scanline int // -1 (pre-render) .. 260

	nmiPending bool
	nmiOutput  bool // PPUCTRL bit 7: whether vblank should assert NMI
}

func NewPPUTiming() *PPUTiming {
	return &PPUTiming{Scanline: -1, nmiOutput: true}
}

// Step advances the clock by one dot (one PPU cycle; the bus calls this
// three times per CPU cycle). It raises the NMI latch at scanline 241, dot
// 1, and wraps the frame after scanline 260 back to the pre-render line (-1).
func (p *PPUTiming) Step() {
	p.Dot++
	if p.Dot > 340 {
		p.Dot = 0
		p.Scanline++
		if p.Scanline > 260 {
			p.Scanline = -1
		}
	}

	if p.Scanline == 241 && p.Dot == 1 && p.nmiOutput {
		p.nmiPending = true
	}
	if p.Scanline == -1 && p.Dot == 1 {
		p.nmiPending = false
	}
}

// TakePendingNMI reports and clears an asserted NMI, modeling the
// edge-triggered /NMI line the CPU latches once per edge.
func (p *PPUTiming) TakePendingNMI() bool {
	if p.nmiPending {
		p.nmiPending = false
		return true
	}
	return false
}

func (p *PPUTiming) ReadRegister(addr uint16) byte {
	return 0
}

func (p *PPUTiming) WriteRegister(addr uint16, value byte) {
	if (addr-0x2000)%8 == 0 {
		p.nmiOutput = value&0x80 != 0
	}
}
