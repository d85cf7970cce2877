// Package input decodes classic controller input reports and reconciles
// a possibly backlogged report queue into a single current state.
package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hidgames/classichid/device"
)

// ReportSize is the size of a controller input report in bytes:
// a report id byte followed by a 5-byte payload.
const ReportSize = 6

// rollMask trims the paddle position to its 10-bit circular track.
const rollMask = 0x3FF

var (
	// ErrReportID signals that a report did not carry the input report id.
	ErrReportID = errors.New("input: unexpected report id")
	// ErrReportLength signals that a report had the wrong size for an
	// input report.
	ErrReportLength = errors.New("input: unexpected report length")
)

// StickPosition identifies one of the nine discrete stick positions.
type StickPosition uint8

const (
	Center StickPosition = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

func (p StickPosition) String() string {
	switch p {
	case Center:
		return "center"
	case Up:
		return "up"
	case UpRight:
		return "up-right"
	case Right:
		return "right"
	case DownRight:
		return "down-right"
	case Down:
		return "down"
	case DownLeft:
		return "down-left"
	case Left:
		return "left"
	case UpLeft:
		return "up-left"
	}
	return fmt.Sprintf("StickPosition(%d)", uint8(p))
}

// stickFromNibble maps the raw stick nibble to a position. Values the
// controller should never produce decode to Center.
func stickFromNibble(v uint8) StickPosition {
	if v > uint8(UpLeft) {
		return Center
	}
	return StickPosition(v)
}

// State is an immutable snapshot of the controller's input.
type State struct {
	// StickPosition is the current position of the stick.
	StickPosition StickPosition
	// Button1 is the main trigger.
	Button1 bool
	// Button2 is the secondary trigger.
	Button2 bool
	// ButtonBack is the back button.
	ButtonBack bool
	// ButtonMenu is the menu/context button.
	ButtonMenu bool
	// ButtonFuji is the Atari button.
	ButtonFuji bool
	// Roll is the absolute position of the rotational paddle, 0-1023.
	Roll uint16
}

// ParseReport decodes a full input report, id prefix included.
func ParseReport(data []byte) (State, error) {
	if len(data) != ReportSize {
		return State{}, fmt.Errorf("%w: got %d bytes, want %d", ErrReportLength, len(data), ReportSize)
	}
	if data[0] != device.ReportIDInput {
		return State{}, fmt.Errorf("%w: %#02x", ErrReportID, data[0])
	}

	payload := data[1:]
	return State{
		StickPosition: stickFromNibble(payload[1] >> 4),
		Button1:       payload[0]&1 == 1,
		Button2:       payload[0]>>1&1 == 1,
		ButtonBack:    payload[1]&1 == 1,
		ButtonMenu:    payload[1]>>1&1 == 1,
		ButtonFuji:    payload[1]>>2&1 == 1,
		Roll:          binary.LittleEndian.Uint16(payload[2:4]) & rollMask,
	}, nil
}

// ReadState performs a single read and decodes the resulting report.
//
// Prefer Drain in game loops: if more reports are queued, the state
// returned here may be stale.
func ReadState(d device.Device) (State, error) {
	var buf [ReportSize]byte
	n, err := d.Read(buf[:])
	if err != nil {
		return State{}, err
	}
	return ParseReport(buf[:n])
}

// Drain consumes every input report pending on the device queue and
// decodes only the most recent one, so a backlog accumulated between
// ticks never introduces input lag. The device is switched to
// non-blocking mode and Drain returns within one pass over the queue.
//
// The second return value is false when no report was pending, or when
// the final report was not a standard input report; the latter is a
// benign out-of-band message and is logged and discarded rather than
// surfaced as an error.
func Drain(d device.Device) (State, bool, error) {
	if err := d.SetBlocking(false); err != nil {
		return State{}, false, err
	}

	var buf [ReportSize]byte
	last := 0
	for {
		n, err := d.Read(buf[:])
		if err != nil {
			return State{}, false, err
		}
		if n == 0 {
			if last == 0 {
				// queue was empty all along
				return State{}, false, nil
			}
			break
		}
		last = n
	}

	state, err := ParseReport(buf[:last])
	if err != nil {
		slog.Warn("discarding non-standard report", "id", buf[0], "len", last)
		return State{}, false, nil
	}
	return state, true, nil
}
