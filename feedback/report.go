// Package feedback encodes force feedback (vibration) reports for the
// classic controller.
package feedback

import (
	"github.com/hidgames/classichid/device"
)

// ReportSize is the size of a force feedback report in bytes.
const ReportSize = 6

// Report is a force feedback report. The zero value is not valid; use
// New or NewWithParams.
type Report struct {
	data [ReportSize]byte
}

// New creates a report that cancels any ongoing vibration.
func New() Report {
	return Report{data: [ReportSize]byte{device.ReportIDFeedback, 0, 0, 0, 0, 0}}
}

// NewWithParams creates a vibration report.
//
//   - intensity: how strong each vibration is (0 cancels)
//   - upTime: the duration of each vibration burst
//   - downTime: the pause between bursts
//   - count: the number of bursts
func NewWithParams(intensity, upTime, downTime, count uint8) Report {
	return Report{data: [ReportSize]byte{
		device.ReportIDFeedback,
		intensity,
		upTime,
		downTime,
		count,
		0,
	}}
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
