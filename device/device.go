// Package device defines the capability contract that every classic
// controller backend satisfies: the real hidapi transport, the simulated
// device used in tests, or anything else that can shuttle HID reports.
package device

// Report ids used by the classic controller. Input and force feedback
// share id 1 and are disambiguated purely by transfer direction.
const (
	ReportIDInput    = 1
	ReportIDFeedback = 1
	ReportIDLed      = 2
)

// Device is the four-operation contract consumed by the input loop, the
// animation engine and the games. Implementations are exclusively owned
// by the single loop driving them; no internal locking is assumed.
type Device interface {
	// SetBlocking toggles whether Read waits for a report to arrive.
	SetBlocking(blocking bool) error

	// Read copies the next pending report into out and returns the
	// number of bytes read. In non-blocking mode an empty queue yields
	// (0, nil).
	Read(out []byte) (int, error)

	// Write sends a report to the device and returns the number of
	// bytes effectively written. A short write is a recoverable anomaly
	// for the implementation to log, not an error.
	Write(data []byte) (int, error)
}

// ledDisable tells the controller to stop honoring host LED overrides.
var ledDisable = []byte{ReportIDLed, 0, 0, 0}

// ResetLeds writes the report that disables LED manipulation on the
// controller, returning it to its built-in idle glow.
func ResetLeds(d Device) error {
	_, err := d.Write(ledDisable)
	return err
}
