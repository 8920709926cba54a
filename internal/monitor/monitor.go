// Package monitor implements a scripting debug console: JavaScript
// conditions evaluated against a snapshot of CPU/bus state after every
// retired instruction, for conditional breakpoints a host can attach
// without recompiling.
package monitor

import (
	"fmt"

	"github.com/robertkrimen/otto"
)

// Snapshot is the CPU/bus state a watch expression sees. Field names match
// what a script author would expect from the trace log column headers.
type Snapshot struct {
	PC     uint16
	A      byte
	X      byte
	Y      byte
	S      byte
	P      byte
	Cycles uint64
}

// Watch is one named breakpoint condition: a JavaScript expression that
// returns truthy when the monitor should report a hit.
type Watch struct {
	Name       string
	Expression string
}

// Monitor evaluates a set of Watch expressions against a Snapshot taken
// after each instruction. It keeps one otto.Otto VM alive across calls so
// scripts can accumulate state in globals (a hit counter, a previous-PC
// comparison) between steps.
type Monitor struct {
	vm     *otto.Otto
	watches []Watch
}

func New() *Monitor {
	return &Monitor{vm: otto.New()}
}

// Add registers a new conditional breakpoint.
func (m *Monitor) Add(w Watch) {
	m.watches = append(m.watches, w)
}

// Check runs every registered watch against snap and returns the names of
// the ones that tripped. A script that fails to compile or throws is
// reported as an error rather than silently skipped.
func (m *Monitor) Check(snap Snapshot) ([]string, error) {
	if err := m.bind(snap); err != nil {
		return nil, err
	}

	var hits []string
	for _, w := range m.watches {
		v, err := m.vm.Run(w.Expression)
		if err != nil {
			return hits, fmt.Errorf("monitor: watch %q: %w", w.Name, err)
		}
		truthy, err := v.ToBoolean()
		if err != nil {
			return hits, fmt.Errorf("monitor: watch %q: non-boolean result: %w", w.Name, err)
		}
		if truthy {
			hits = append(hits, w.Name)
		}
	}
	return hits, nil
}

func (m *Monitor) bind(snap Snapshot) error {
	cpu, err := m.vm.Object("({})")
	if err != nil {
		return err
	}
	fields := map[string]interface{}{
		"pc":     snap.PC,
		"a":      snap.A,
		"x":      snap.X,
		"y":      snap.Y,
		"s":      snap.S,
		"p":      snap.P,
		"cycles": snap.Cycles,
	}
	for k, v := range fields {
		if err := cpu.Set(k, v); err != nil {
			return err
		}
	}
	return m.vm.Set("cpu", cpu)
}
