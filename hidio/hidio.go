// Package hidio opens the physical classic controller over hidapi and
// adapts it to the device capability contract.
package hidio

import (
	"fmt"
	"log/slog"

	hid "github.com/sstallion/go-hid"

	"github.com/hidgames/classichid/internal/log"
)

// USB identification of the classic controller.
const (
	VendorID  uint16 = 0x3250
	ProductID uint16 = 0x1001
)

// Controller is a handle to a physical classic controller. It is not
// safe for concurrent use; each handle belongs to exactly one loop.
type Controller struct {
	dev    *hid.Device
	logger *slog.Logger
	raw    log.RawLogger
}

// SetRawLogger attaches a tracer that sees every report crossing this
// handle. A nil tracer disables tracing.
func (c *Controller) SetRawLogger(raw log.RawLogger) {
	c.raw = raw
}

// Open opens the first classic controller found.
func Open(logger *slog.Logger) (*Controller, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidio: init: %w", err)
	}
	dev, err := hid.OpenFirst(VendorID, ProductID)
	if err != nil {
		return nil, fmt.Errorf("hidio: open: %w", err)
	}
	return newController(dev, logger), nil
}

// OpenPath opens a controller by platform device path. The path is not
// verified to belong to a classic controller.
func OpenPath(path string, logger *slog.Logger) (*Controller, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidio: init: %w", err)
	}
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("hidio: open %s: %w", path, err)
	}
	return newController(dev, logger), nil
}

// OpenSerial opens a classic controller by serial number.
func OpenSerial(serial string, logger *slog.Logger) (*Controller, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidio: init: %w", err)
	}
	dev, err := hid.Open(VendorID, ProductID, serial)
	if err != nil {
		return nil, fmt.Errorf("hidio: open serial %s: %w", serial, err)
	}
	return newController(dev, logger), nil
}

// OpenAll opens every classic controller attached to the host.
func OpenAll(logger *slog.Logger) ([]*Controller, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidio: init: %w", err)
	}
	var paths []string
	err := hid.Enumerate(VendorID, ProductID, func(info *hid.DeviceInfo) error {
		paths = append(paths, info.Path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hidio: enumerate: %w", err)
	}
	controllers := make([]*Controller, 0, len(paths))
	for _, path := range paths {
		c, err := OpenPath(path, logger)
		if err != nil {
			for _, open := range controllers {
				_ = open.Close()
			}
			return nil, err
		}
		controllers = append(controllers, c)
	}
	return controllers, nil
}

func newController(dev *hid.Device, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{dev: dev, logger: logger}
}

// SetBlocking toggles whether Read waits for a report.
func (c *Controller) SetBlocking(blocking bool) error {
	return c.dev.SetNonblock(!blocking)
}

// Read reads the next report from the controller. In non-blocking mode
// an empty queue yields (0, nil).
func (c *Controller) Read(out []byte) (int, error) {
	n, err := c.dev.Read(out)
	if err == nil && n > 0 && c.raw != nil {
		c.raw.Log(false, out[:n])
	}
	return n, err
}

// Write sends a report to the controller. A short write is logged and
// otherwise ignored; the next full report corrects the device state.
func (c *Controller) Write(data []byte) (int, error) {
	n, err := c.dev.Write(data)
	if err != nil {
		return n, err
	}
	if c.raw != nil {
		c.raw.Log(true, data)
	}
	if n != len(data) {
		c.logger.Warn("short write", "want", len(data), "got", n)
	}
	return n, nil
}

// Close releases the underlying hidapi handle.
func (c *Controller) Close() error {
	return c.dev.Close()
}
