package cmd

import (
	"log/slog"

	"github.com/hidgames/classichid/game/catmouse"
)

// CatMouse runs the cat and mouse game loop.
type CatMouse struct {
	Sim           bool `help:"Use a simulated controller driven by the keyboard"`
	DeviceOptions `embed:""`
	LoopOptions   `embed:""`
}

func (c *CatMouse) Run(logger *slog.Logger) error {
	logger.Info("cat and mouse: press menu to start, turn the paddle to play, fuji to leave")
	g := catmouse.New(logger, c.Rand())
	if err := runGame(g, c.Sim, c.DeviceOptions, c.LoopOptions, logger); err != nil {
		return err
	}
	logger.Info("thanks for playing", "score", g.Score())
	return nil
}
