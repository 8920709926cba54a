package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerShiftRegister(t *testing.T) {
	c := NewController()
	c.Press(ButtonA)
	c.Press(ButtonStart)

	c.Write(1) // strobe high: reload
	c.Write(0) // strobe low: start shifting

	var bits []byte
	for i := 0; i < 8; i++ {
		bits = append(bits, c.Read())
	}
	assert.Equal(t, []byte{1, 0, 0, 1, 0, 0, 0, 0}, bits)

	// past the 8th read the shift register is empty
	assert.Equal(t, byte(0), c.Read())
}

func TestControllerStrobeHighKeepsReloading(t *testing.T) {
	c := NewController()
	c.Press(ButtonB)
	c.Write(1)
	assert.Equal(t, byte(0), c.Read()) // A first, not pressed
	assert.Equal(t, byte(0), c.Read()) // strobe still high: head keeps resetting to 0
}
