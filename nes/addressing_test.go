package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPageXWraps(t *testing.T) {
	bus := NewMockBus()
	cpu := &CPU{X: 0x01}
	bus.Write(0x8000, 0xFF) // operand byte
	cpu.PC = 0x8000
	op := cpu.resolveOperand(bus, Instruction{Mode: ZeroPageX, Kind: KindRead})
	assert.Equal(t, uint16(0x00), op.Addr) // 0xFF + 0x01 wraps within the zero page
}

func TestIndirectXZeroPageWraps(t *testing.T) {
	bus := NewMockBus()
	bus.Write(0x00, 0x34)
	bus.Write(0x01, 0x12)
	cpu := &CPU{X: 0x01, PC: 0x8000}
	bus.Write(0x8000, 0xFF) // zp operand; +X wraps to 0x00
	op := cpu.resolveOperand(bus, Instruction{Mode: IndirectX, Kind: KindRead})
	assert.Equal(t, uint16(0x1234), op.Addr)
}

func TestIndirectYBaseWrapsNotTheSum(t *testing.T) {
	bus := NewMockBus()
	bus.Write(0xFF, 0x00)
	bus.Write(0x00, 0x80) // the pointer bytes themselves wrap within the zero page
	cpu := &CPU{Y: 0x10, PC: 0x8000}
	bus.Write(0x8000, 0xFF)
	op := cpu.resolveOperand(bus, Instruction{Mode: IndirectY, Kind: KindRead})
	assert.Equal(t, uint16(0x8010), op.Addr)
	assert.False(t, op.PageCrossed)
}

func TestAbsoluteXPageCrossFlag(t *testing.T) {
	bus := NewMockBus()
	cpu := &CPU{X: 0x01, PC: 0x8000}
	bus.Write16(0x8000, 0x80FF)
	op := cpu.resolveOperand(bus, Instruction{Mode: AbsoluteX, Kind: KindRead})
	assert.Equal(t, uint16(0x8100), op.Addr)
	assert.True(t, op.PageCrossed)
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	bus := NewMockBus()
	cpu := &CPU{X: 0x01, PC: 0x8000}
	bus.Write16(0x8000, 0x8000)
	op := cpu.resolveOperand(bus, Instruction{Mode: AbsoluteX, Kind: KindRead})
	assert.Equal(t, uint16(0x8001), op.Addr)
	assert.False(t, op.PageCrossed)
}

func TestResolveOperandSkipsValueReadForWriteAndRMWInstructions(t *testing.T) {
	bus := NewMockBus()
	bus.Write(0x1234, 0x77)
	cpu := &CPU{PC: 0x8000}
	bus.Write16(0x8000, 0x1234)

	write := cpu.resolveOperand(bus, Instruction{Mode: Absolute, Kind: KindWrite})
	assert.Equal(t, uint16(0x1234), write.Addr)
	assert.Equal(t, byte(0), write.Value) // not read: STA/STX/STY write-only

	rmw := cpu.resolveOperand(bus, Instruction{Mode: Absolute, Kind: KindReadModWrite})
	assert.Equal(t, uint16(0x1234), rmw.Addr)
	assert.Equal(t, byte(0), rmw.Value) // not read here either: the RMW helper reads it itself

	read := cpu.resolveOperand(bus, Instruction{Mode: Absolute, Kind: KindRead})
	assert.Equal(t, byte(0x77), read.Value)
}
