package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTripsOnMatchingPC(t *testing.T) {
	m := New()
	m.Add(Watch{Name: "hit-C000", Expression: "cpu.pc == 0xC000"})

	hits, err := m.Check(Snapshot{PC: 0x8000})
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = m.Check(Snapshot{PC: 0xC000})
	require.NoError(t, err)
	assert.Equal(t, []string{"hit-C000"}, hits)
}

func TestCheckReportsScriptErrors(t *testing.T) {
	m := New()
	m.Add(Watch{Name: "broken", Expression: "cpu.pc ==="})

	_, err := m.Check(Snapshot{PC: 0x8000})
	assert.Error(t, err)
}

func TestCheckMultipleWatches(t *testing.T) {
	m := New()
	m.Add(Watch{Name: "a-set", Expression: "cpu.a == 0x42"})
	m.Add(Watch{Name: "zero-cycles", Expression: "cpu.cycles == 0"})

	hits, err := m.Check(Snapshot{A: 0x42, Cycles: 0})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-set", "zero-cycles"}, hits)
}
