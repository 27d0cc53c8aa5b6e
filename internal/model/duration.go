package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDuration is returned when text does not name one of the duration labels
var ErrUnknownDuration = errors.New("unknown duration label")

// DurationLabel identifies a countdown length in minutes
type DurationLabel string

const (
	Duration45 DurationLabel = "45"
	Duration25 DurationLabel = "25"
	Duration10 DurationLabel = "10"
	Duration5  DurationLabel = "5"
)

// DefaultDurationLabel is selected on first instantiation
const DefaultDurationLabel = Duration25

// Duration lengths in milliseconds
const (
	FortyFiveMinutesMs  int64 = 45 * 60 * 1000
	TwentyFiveMinutesMs int64 = 25 * 60 * 1000
	TenMinutesMs        int64 = 10 * 60 * 1000
	FiveMinutesMs       int64 = 5 * 60 * 1000
)

// DurationLabels returns the selectable labels in menu order
func DurationLabels() []DurationLabel {
	return []DurationLabel{Duration45, Duration25, Duration10, Duration5}
}

// ParseDurationLabel converts free text such as "10" or "10m" into a label
func ParseDurationLabel(s string) (DurationLabel, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "m")
	for _, label := range DurationLabels() {
		if string(label) == trimmed {
			return label, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDuration, s)
}

// String returns the string representation of DurationLabel
func (d DurationLabel) String() string {
	return string(d)
}

// Millis returns the countdown length in milliseconds.
// Anything outside the closed set falls through to five minutes.
func (d DurationLabel) Millis() int64 {
	switch d {
	case Duration45:
		return FortyFiveMinutesMs
	case Duration25:
		return TwentyFiveMinutesMs
	case Duration10:
		return TenMinutesMs
	default:
		return FiveMinutesMs
	}
}

// Duration returns the countdown length as a time.Duration
func (d DurationLabel) Duration() time.Duration {
	return time.Duration(d.Millis()) * time.Millisecond
}

// MenuText returns the dropdown caption, e.g. "25 minutes"
func (d DurationLabel) MenuText() string {
	return string(d) + " minutes"
}
