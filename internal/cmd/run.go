package cmd

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hidgames/classichid/device"
	"github.com/hidgames/classichid/game"
	"github.com/hidgames/classichid/hidio"
	"github.com/hidgames/classichid/internal/simdev"
	"github.com/hidgames/classichid/internal/simterm"
)

// DeviceOptions selects which controller a command talks to.
type DeviceOptions struct {
	Path   string `help:"Open the controller by platform device path"`
	Serial string `help:"Open the controller by serial number"`
}

// LoopOptions control the pacing and determinism of a game loop.
type LoopOptions struct {
	TickInterval time.Duration `help:"Delay between game ticks" default:"25ms"`
	Seed         uint64        `help:"Seed for the game's random choices (0 picks one from the clock)"`
}

// Rand builds the random source for a game, seeded explicitly when the
// player wants a reproducible run.
func (l *LoopOptions) Rand() *rand.Rand {
	seed := l.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32))
}

// openController opens the physical controller per the device options.
func openController(o DeviceOptions, logger *slog.Logger) (*hidio.Controller, error) {
	switch {
	case o.Path != "":
		return hidio.OpenPath(o.Path, logger)
	case o.Serial != "":
		return hidio.OpenSerial(o.Serial, logger)
	default:
		return hidio.Open(logger)
	}
}

// ticker is satisfied by both games.
type ticker interface {
	Update(dev device.Device, ticks uint64) (game.Event, error)
}

// runGame drives a game against the selected controller until the game
// ends or the process is interrupted, then clears the LEDs.
func runGame(g ticker, sim bool, o DeviceOptions, l LoopOptions, logger *slog.Logger) error {
	if sim {
		return runSimGame(g, l)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := openController(o, logger)
	if err != nil {
		return err
	}
	defer dev.Close()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			return resetLeds(dev)
		default:
		}

		event, err := g.Update(dev, ticks)
		if err != nil {
			return err
		}
		if event == game.Ended {
			return resetLeds(dev)
		}

		ticks++
		time.Sleep(l.TickInterval)
	}
}

// runSimGame plays the game on a keyboard-driven simulated controller.
func runSimGame(g ticker, l LoopOptions) error {
	dev := simdev.New()
	pump, err := simterm.Start(dev)
	if err != nil {
		return err
	}
	defer pump.Stop()

	var ticks uint64
	for {
		if !pump.Tick(ticks) {
			return nil
		}
		event, err := g.Update(dev, ticks)
		if err != nil {
			return err
		}
		if event == game.Ended {
			return nil
		}

		ticks++
		time.Sleep(l.TickInterval)
	}
}

// resetLeds hands LED control back to the controller, leaving it a
// moment to apply the report before the handle closes.
func resetLeds(dev device.Device) error {
	if err := device.ResetLeds(dev); err != nil {
		return err
	}
	time.Sleep(30 * time.Millisecond)
	return nil
}
