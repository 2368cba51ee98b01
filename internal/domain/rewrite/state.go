package rewrite

import (
	"fmt"
	"strings"
)

// State is the position of the filter relative to a marker region.
type State int

const (
	// Scanning means no region is open.
	Scanning State = iota
	// SkippingRegion means an opening marker was seen and its closing marker was not.
	SkippingRegion
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case SkippingRegion:
		return "skipping-region"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Mode selects what happens to lines between an opening and a closing marker.
type Mode string

const (
	// ModeUnwrap drops only the two marker lines and keeps the body.
	ModeUnwrap Mode = "unwrap"
	// ModeStrip drops the marker lines and everything between them.
	ModeStrip Mode = "strip"
)

// ParseMode converts s to a Mode. The empty string maps to ModeUnwrap.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeUnwrap, "":
		return ModeUnwrap, nil
	case ModeStrip:
		return ModeStrip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
