package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/internal/log"
)

// Monitor drains and logs decoded input states, mostly as a cabling
// check. It stops on interrupt or when the Fuji button is pressed.
type Monitor struct {
	DeviceOptions `embed:""`
	TickInterval  time.Duration `help:"Delay between polls" default:"25ms"`
	RawFile       string        `help:"Also hex-dump raw report traffic to this file"`
}

func (c *Monitor) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := openController(c.DeviceOptions, logger)
	if err != nil {
		return err
	}
	defer dev.Close()

	if c.RawFile != "" {
		f, err := os.OpenFile(c.RawFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		dev.SetRawLogger(log.NewRaw(f))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		state, ok, err := input.Drain(dev)
		if err != nil {
			return err
		}
		if ok {
			logger.Info("input",
				"stick", state.StickPosition,
				"roll", state.Roll,
				"button1", state.Button1,
				"button2", state.Button2,
				"back", state.ButtonBack,
				"menu", state.ButtonMenu,
				"fuji", state.ButtonFuji)
			if state.ButtonFuji {
				return nil
			}
		}

		time.Sleep(c.TickInterval)
	}
}
