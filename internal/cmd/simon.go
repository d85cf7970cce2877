package cmd

import (
	"log/slog"

	"github.com/hidgames/classichid/game/simon"
)

// Simon runs the Simon Says game loop.
type Simon struct {
	Sim           bool `help:"Use a simulated controller driven by the keyboard"`
	DeviceOptions `embed:""`
	LoopOptions   `embed:""`
}

func (c *Simon) Run(logger *slog.Logger) error {
	logger.Info("simon says: press menu to start, fuji to leave")
	g := simon.New(logger, c.Rand())
	return runGame(g, c.Sim, c.DeviceOptions, c.LoopOptions, logger)
}
