package led

import (
	"github.com/hidgames/classichid/device"
)

// Report layout. The length byte counts the 24 ring LEDs plus the Fuji
// LED, which has its own slot ahead of the ring.
const (
	ReportSize = 28

	lengthByte = RingSize + 1
	fujiOffset = 2
	ringOffset = 3
)

// Report is an LED activation report for the controller. The zero value
// is not valid; use NewReport.
type Report struct {
	data [ReportSize]byte
}

// NewReport creates an LED report with the whole ring off. Written as-is
// it doubles as the "clear" report, telling the controller to drop any
// host LED override.
func NewReport() Report {
	var r Report
	r.data[0] = device.ReportIDLed
	r.data[1] = lengthByte
	return r
}

// Filled creates an LED report with every ring LED at the given
// intensity.
func Filled(value uint8) Report {
	r := NewReport()
	r.Fill(value)
	return r
}

// Clear turns the whole ring off.
func (r *Report) Clear() {
	r.Fill(0)
}

// Fill sets every LED in the ring to the given intensity.
func (r *Report) Fill(value uint8) {
	for i := ringOffset; i < ReportSize; i++ {
		r.data[i] = value
	}
}

// SetFuji sets the Fuji LED intensity.
func (r *Report) SetFuji(value uint8) {
	r.data[fujiOffset] = value
}

// Set sets one ring LED to the given intensity.
func (r *Report) Set(index int, value uint8) {
	r.data[ringOffset+wrap(index)] = value
}

// SetSelection sets every selected LED to the given intensity.
func (r *Report) SetSelection(sel Selection, value uint8) {
	for i, on := range sel {
		if on {
			r.data[ringOffset+i] = value
		}
	}
}

// Invert flips the intensity of one ring LED.
func (r *Report) Invert(index int) {
	i := ringOffset + wrap(index)
	r.data[i] = ^r.data[i]
}

// InvertSelection flips the intensity of every selected LED.
func (r *Report) InvertSelection(sel Selection) {
	for i, on := range sel {
		if on {
			r.data[ringOffset+i] = ^r.data[ringOffset+i]
		}
	}
}

// SaturatingAdd adds an intensity delta to one ring LED, clamping the
// result to the 0-255 range.
func (r *Report) SaturatingAdd(index int, delta int) {
	i := ringOffset + wrap(index)
	v := int(r.data[i]) + delta
	if v < 0 {
		v = 0
	} else if v > 0xFF {
		v = 0xFF
	}
	r.data[i] = uint8(v)
}

// SaturatingAddSelection adds an intensity delta to every selected LED.
func (r *Report) SaturatingAddSelection(sel Selection, delta int) {
	for i, on := range sel {
		if on {
			r.SaturatingAdd(i, delta)
		}
	}
}

// Bytes returns the encoded report.
func (r *Report) Bytes() []byte {
	out := make([]byte, ReportSize)
	copy(out, r.data[:])
	return out
}

// Send writes the report to the given device.
func (r *Report) Send(d device.Device) error {
	_, err := d.Write(r.data[:])
	return err
}
