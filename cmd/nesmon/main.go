// Command nesmon loads an iNES ROM and runs it against the nes CPU core,
// optionally tracing execution, profiling, watching breakpoint conditions,
// and reading controller input from an SDL2 window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/nesmon/nesmon/internal/monitor"
	"github.com/nesmon/nesmon/nes"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "nesmon:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("nesmon", flag.ExitOnError)
	romPath := fs.String("rom", "", "path to an iNES ROM")
	tracePath := fs.String("trace", "", "write an execution trace to this path")
	watchExpr := fs.String("watch", "", "JavaScript breakpoint expression, e.g. 'cpu.pc == 0xC000'")
	cpuProfile := fs.String("cpuprofile", "", "write a CPU profile to this path")
	memProfile := fs.String("memprofile", "", "write a heap profile to this path")
	headless := fs.Bool("headless", false, "skip opening an SDL2 window; run the budget below and exit")
	maxInstructions := fs.Int("max-instructions", 10_000_000, "instruction budget for -headless")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *romPath == "" {
		return fmt.Errorf("-rom is required")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	var trace *os.File
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			return err
		}
		defer f.Close()
		trace = f
	}

	rom, err := os.Open(*romPath)
	if err != nil {
		return err
	}
	defer rom.Close()

	var traceWriter io.Writer
	if trace != nil {
		traceWriter = trace
	}
	console, err := nes.LoadINESConsole(rom, traceWriter)
	if err != nil {
		return err
	}

	mon := monitor.New()
	if *watchExpr != "" {
		mon.Add(monitor.Watch{Name: "watch", Expression: *watchExpr})
	}

	if *headless {
		if err := runHeadless(console, mon, *maxInstructions); err != nil {
			return err
		}
	} else {
		if err := runWindowed(console, mon); err != nil {
			return err
		}
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}
	return nil
}

func runHeadless(console *nes.Console, mon *monitor.Monitor, maxInstructions int) error {
	for i := 0; i < maxInstructions; i++ {
		if _, err := console.StepInstruction(); err != nil {
			return err
		}
		if hits, err := checkMonitor(console, mon); err != nil {
			return err
		} else if len(hits) > 0 {
			fmt.Printf("breakpoint hit at $%04X: %v\n", console.CPU.PC, hits)
			return nil
		}
	}
	return nil
}

func checkMonitor(console *nes.Console, mon *monitor.Monitor) ([]string, error) {
	return mon.Check(monitor.Snapshot{
		PC:     console.CPU.PC,
		A:      console.CPU.A,
		X:      console.CPU.X,
		Y:      console.CPU.Y,
		S:      console.CPU.S,
		P:      console.CPU.P.Byte(),
		Cycles: console.CPU.Cycles,
	})
}
