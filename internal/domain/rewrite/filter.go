package rewrite

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownMode is returned by ParseMode for unsupported values.
	ErrUnknownMode = errors.New("unknown region mode")
	// ErrUnclosedRegion is returned in strict mode when the input ends inside a region.
	ErrUnclosedRegion = errors.New("marker region is never closed")
	// ErrEmptyMarker is returned when a marker is blank.
	ErrEmptyMarker = errors.New("marker must not be empty")
)

const (
	// DefaultOpenMarker starts the region emitted around the FFI module import.
	DefaultOpenMarker = "canImport"
	// DefaultCloseMarker ends that region.
	DefaultCloseMarker = "endif"
)

// Markers are the substrings delimiting a region.
type Markers struct {
	// Open starts a region.
	Open string
	// Close ends the currently open region.
	Close string
}

// DefaultMarkers returns the canImport/endif pair.
func DefaultMarkers() Markers {
	return Markers{
		Open:  DefaultOpenMarker,
		Close: DefaultCloseMarker,
	}
}

// Validate reports blank or whitespace-only markers.
func (m Markers) Validate() error {
	if strings.TrimSpace(m.Open) == "" || strings.TrimSpace(m.Close) == "" {
		return ErrEmptyMarker
	}

	return nil
}

// Result is the outcome of Filter.
type Result struct {
	// Lines are the kept lines in their original order.
	Lines []string
	// Final is the state after the last line.
	Final State
	// Dropped counts removed lines.
	Dropped int
	// Regions counts regions that were opened.
	Regions int
	// OpenedAt is the 1-based line number of the last opening marker, 0 if none.
	OpenedAt int
}

// Unclosed reports whether the input ended inside a region.
func (r *Result) Unclosed() bool {
	return r.Final == SkippingRegion
}

// Matches reports whether marker occurs in line at an offset greater than zero.
// Only the first occurrence counts, so a marker leading the line is never
// recognised even when it repeats later on.
func Matches(line, marker string) bool {
	return strings.Index(line, marker) > 0
}

// Filter folds lines through the region state machine. Only one region is
// tracked at a time: an opening marker seen inside a region is an ordinary line.
func Filter(lines []string, markers Markers, mode Mode) *Result {
	res := &Result{
		Lines: make([]string, 0, len(lines)),
		Final: Scanning,
	}

	for i, line := range lines {
		switch {
		case res.Final == Scanning && Matches(line, markers.Open):
			res.Final = SkippingRegion
			res.Regions++
			res.OpenedAt = i + 1
			res.Dropped++
		case res.Final == SkippingRegion && Matches(line, markers.Close):
			res.Final = Scanning
			res.Dropped++
		case res.Final == SkippingRegion && mode == ModeStrip:
			res.Dropped++
		default:
			res.Lines = append(res.Lines, line)
		}
	}

	return res
}
