//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads GPIO from actual hardware using the Linux GPIO character
// device. Lines are requested individually so each pin can carry its own
// bias setting.
type RealReader struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line
}

// NewRealReader requests the given pins as inputs on the named chip.
func NewRealReader(chipName string, pins []Pin) (*RealReader, error) {
	if chipName == "" {
		chipName = DefaultChip
	}
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	r := &RealReader{chip: chip}
	for _, pin := range pins {
		bias := gpiocdev.WithPullDown
		if pin.PullUp {
			bias = gpiocdev.WithPullUp
		}
		line, err := chip.RequestLine(pin.Offset, gpiocdev.AsInput, bias)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("request pin %d: %w", pin.Offset, err)
		}
		r.lines = append(r.lines, line)
	}

	return r, nil
}

// Read returns the raw level of each requested line.
func (r *RealReader) Read() ([]int, error) {
	levels := make([]int, len(r.lines))
	for i, line := range r.lines {
		v, err := line.Value()
		if err != nil {
			return nil, fmt.Errorf("read pin %d: %w", line.Offset(), err)
		}
		levels[i] = v
	}
	return levels, nil
}

// Close releases GPIO resources. Lines are reconfigured to input with
// pull-down (matching Pi boot defaults) before closing so external hardware
// does not see unexpected levels across a restart.
func (r *RealReader) Close() error {
	var errs []error

	for _, line := range r.lines {
		if err := line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin %d: %w", line.Offset(), err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", line.Offset(), err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
