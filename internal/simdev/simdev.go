// Package simdev implements a simulated classic controller that
// satisfies the device capability contract. It backs the package tests
// and the keyboard play mode; reads and writes behave as they would
// against the real hardware, minus the transport.
package simdev

import (
	"encoding/binary"
	"log/slog"

	"github.com/hidgames/classichid/device"
	"github.com/hidgames/classichid/input"
	"github.com/hidgames/classichid/led"
)

// Device is an in-memory classic controller. Every state mutation
// enqueues a fresh input report, so a burst of mutations between reads
// shows up as a backlog exactly like a real report queue would.
type Device struct {
	stick uint8
	roll  uint16

	button1    bool
	button2    bool
	buttonBack bool
	buttonMenu bool
	buttonFuji bool

	queue [][]byte

	leds     [led.RingSize]byte
	fujiLed  byte
	feedback [][]byte
}

func New() *Device {
	return &Device{}
}

// Leds returns the last ring intensities written by the host.
func (d *Device) Leds() [led.RingSize]byte {
	return d.leds
}

// FujiLed returns the last Fuji LED intensity written by the host.
func (d *Device) FujiLed() byte {
	return d.fujiLed
}

// Feedback returns every force feedback report written so far.
func (d *Device) Feedback() [][]byte {
	return d.feedback
}

// LastFeedback returns the most recent force feedback report, or nil.
func (d *Device) LastFeedback() []byte {
	if len(d.feedback) == 0 {
		return nil
	}
	return d.feedback[len(d.feedback)-1]
}

// MoveStick moves the stick to one of the nine discrete positions.
func (d *Device) MoveStick(position input.StickPosition) {
	d.stick = uint8(position)
	d.enqueue()
}

// SetRoll sets the paddle position, wrapped to its 10-bit track.
func (d *Device) SetRoll(roll uint16) {
	d.roll = roll & 0x3FF
	d.enqueue()
}

func (d *Device) SetButton1(down bool) {
	d.button1 = down
	d.enqueue()
}

func (d *Device) SetButton2(down bool) {
	d.button2 = down
	d.enqueue()
}

func (d *Device) SetButtonBack(down bool) {
	d.buttonBack = down
	d.enqueue()
}

func (d *Device) SetButtonMenu(down bool) {
	d.buttonMenu = down
	d.enqueue()
}

func (d *Device) SetButtonFuji(down bool) {
	d.buttonFuji = down
	d.enqueue()
}

// PushReport enqueues a raw report, bypassing the stateful setters.
// Tests use it to simulate stale backlogs and malformed messages.
func (d *Device) PushReport(data []byte) {
	msg := make([]byte, len(data))
	copy(msg, data)
	d.queue = append(d.queue, msg)
}

func (d *Device) enqueue() {
	d.queue = append(d.queue, d.report())
}

func (d *Device) report() []byte {
	msg := make([]byte, input.ReportSize)
	msg[0] = device.ReportIDInput
	if d.button1 {
		msg[1] |= 1
	}
	if d.button2 {
		msg[1] |= 1 << 1
	}
	if d.buttonBack {
		msg[2] |= 1
	}
	if d.buttonMenu {
		msg[2] |= 1 << 1
	}
	if d.buttonFuji {
		msg[2] |= 1 << 2
	}
	msg[2] |= d.stick << 4
	binary.LittleEndian.PutUint16(msg[3:5], d.roll)
	return msg
}

// SetBlocking is a no-op: reads never block on the simulated queue.
func (d *Device) SetBlocking(bool) error {
	return nil
}

// Read pops the oldest pending input report, or returns 0 when the
// queue is empty.
func (d *Device) Read(out []byte) (int, error) {
	if len(d.queue) == 0 {
		return 0, nil
	}
	msg := d.queue[0]
	d.queue = d.queue[1:]
	return copy(out, msg), nil
}

// Write applies a host report to the simulated controller state.
func (d *Device) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	switch data[0] {
	case device.ReportIDLed:
		if len(data) > 1 {
			count := int(data[1])
			if len(data) > 2 {
				d.fujiLed = data[2]
			}
			for i := 0; i < count && i < led.RingSize && 3+i < len(data); i++ {
				d.leds[i] = data[3+i]
			}
		}
	case device.ReportIDFeedback:
		msg := make([]byte, len(data))
		copy(msg, data)
		d.feedback = append(d.feedback, msg)
	default:
		slog.Debug("unsupported report type", "id", data[0])
	}
	return len(data), nil
}
