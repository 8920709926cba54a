package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nesmon/nesmon/internal/monitor"
	"github.com/nesmon/nesmon/nes"
)

// keyToButton maps the keys a developer sits at a keyboard and uses to a
// standard controller's buttons. There is no rendering here — this core
// has no PPU framebuffer — so the window exists purely to host an SDL2
// event loop for input and to keep the process alive while the CPU runs.
var keyToButton = map[sdl.Keycode]nes.Button{
	sdl.K_z:     nes.ButtonA,
	sdl.K_x:     nes.ButtonB,
	sdl.K_RSHIFT: nes.ButtonSelect,
	sdl.K_RETURN: nes.ButtonStart,
	sdl.K_UP:    nes.ButtonUp,
	sdl.K_DOWN:  nes.ButtonDown,
	sdl.K_LEFT:  nes.ButtonLeft,
	sdl.K_RIGHT: nes.ButtonRight,
}

func runWindowed(console *nes.Console, mon *monitor.Monitor) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("nesmon", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		256, 240, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl create window: %w", err)
	}
	defer window.Destroy()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				button, ok := keyToButton[e.Keysym.Sym]
				if !ok {
					continue
				}
				if e.Type == sdl.KEYDOWN {
					console.Press(button)
				} else if e.Type == sdl.KEYUP {
					console.Release(button)
				}
			}
		}

		if _, err := console.StepInstruction(); err != nil {
			return err
		}
		hits, err := checkMonitor(console, mon)
		if err != nil {
			return err
		}
		if len(hits) > 0 {
			fmt.Printf("breakpoint hit at $%04X: %v\n", console.CPU.PC, hits)
			running = false
		}
	}
	return nil
}
