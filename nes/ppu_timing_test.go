package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPUTimingNMIEdgeAtScanline241Dot1(t *testing.T) {
	p := NewPPUTiming()
	p.Scanline = 240
	p.Dot = 340
	p.Step() // wraps into scanline 241, dot 0
	assert.False(t, p.TakePendingNMI())
	p.Step() // dot 1: NMI edge
	assert.Equal(t, 241, p.Scanline)
	assert.Equal(t, 1, p.Dot)
	assert.True(t, p.TakePendingNMI())
	assert.False(t, p.TakePendingNMI()) // edge-triggered: consumed once
}

func TestPPUTimingFrameWrapsAtScanline261(t *testing.T) {
	p := NewPPUTiming()
	p.Scanline = 260
	p.Dot = 340
	p.Step()
	assert.Equal(t, -1, p.Scanline)
	assert.Equal(t, 0, p.Dot)
}

func TestPPUTimingNMIOutputDisabledSuppressesEdge(t *testing.T) {
	p := NewPPUTiming()
	p.WriteRegister(0x2000, 0x00) // clear NMI-enable bit
	p.Scanline = 241
	p.Dot = 0
	p.Step()
	assert.False(t, p.TakePendingNMI())
}
