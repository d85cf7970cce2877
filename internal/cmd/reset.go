package cmd

import (
	"log/slog"
)

// Reset hands LED control back to the controller.
type Reset struct {
	DeviceOptions `embed:""`
}

func (c *Reset) Run(logger *slog.Logger) error {
	dev, err := openController(c.DeviceOptions, logger)
	if err != nil {
		return err
	}
	defer dev.Close()
	return resetLeds(dev)
}
