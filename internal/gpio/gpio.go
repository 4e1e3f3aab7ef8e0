// Package gpio provides GPIO input reading with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Pin describes one input line to request.
type Pin struct {
	// Offset is the line offset on the GPIO chip (BCM numbering on a Pi).
	Offset int

	// PullUp enables the internal pull-up resistor; otherwise the line is
	// requested with pull-down, matching Pi boot defaults.
	PullUp bool
}

// Reader reads raw GPIO input levels.
type Reader interface {
	// Read returns the raw level (0 or 1) of each requested line, in the
	// order the pins were given. No active-level interpretation happens
	// here; that is the detector's job.
	Read() ([]int, error)

	// Close releases GPIO resources.
	Close() error
}

// DefaultChip is the GPIO character device used on a Raspberry Pi.
const DefaultChip = "gpiochip0"
