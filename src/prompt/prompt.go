// Package prompt drives a simulator from single key presses and optional auto-tick signals.
package prompt

import (
	"context"
	"fmt"
	"io"

	"elevsim/src/logger"
	"elevsim/src/render"
	"elevsim/src/types"

	"github.com/eiannone/keyboard"
)

var log = logger.GetLogger()

const Prompt = "[N]ext Tick or [Q]uit> "

type Key int

const (
	KeyOther Key = iota
	KeyNext
	KeyQuit
)

// Simulator is the part of the elevator system the prompt needs.
type Simulator interface {
	Tick() types.TickReport
}

// Run ticks sim on every KeyNext or auto-tick signal and renders the report to out.
// It returns nil on KeyQuit or when keys is closed, and ctx.Err() when ctx is cancelled.
// A nil ticks channel disables auto ticking.
func Run(ctx context.Context, sim Simulator, keys <-chan Key, ticks <-chan struct{}, out io.Writer) error {
	defer render.Goodbye(out)

	fmt.Fprint(out, Prompt)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case <-ticks:
			step(sim, out)
		case key, ok := <-keys:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			switch key {
			case KeyNext:
				fmt.Fprintln(out)
				step(sim, out)
			case KeyQuit:
				fmt.Fprintln(out)
				log.Info().Msg("Quit requested")
				return nil
			default:
				fmt.Fprint(out, "\n", Prompt)
			}
		}
	}
}

func step(sim Simulator, out io.Writer) {
	report := sim.Tick()
	render.Tick(out, report)
	fmt.Fprint(out, Prompt)
}

// Translate maps a raw keyboard event to a prompt key.
func Translate(char rune, key keyboard.Key) Key {
	switch {
	case char == 'n' || char == 'N':
		return KeyNext
	case char == 'q' || char == 'Q':
		return KeyQuit
	case key == keyboard.KeyCtrlC || key == keyboard.KeyEsc:
		return KeyQuit
	}
	return KeyOther
}

// KeyboardKeys puts the terminal in raw mode and streams translated key presses until ctx is done.
// The returned close function restores the terminal.
func KeyboardKeys(ctx context.Context) (<-chan Key, func(), error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, nil, fmt.Errorf("open keyboard: %w", err)
	}

	keys := make(chan Key)
	go func() {
		defer close(keys)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				if event.Err != nil {
					log.Error().Err(event.Err).Msg("Keyboard read failed")
					return
				}
				select {
				case keys <- Translate(event.Rune, event.Key):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	closeFn := func() {
		if err := keyboard.Close(); err != nil {
			log.Warn().Err(err).Msg("Keyboard close failed")
		}
	}
	return keys, closeFn, nil
}
