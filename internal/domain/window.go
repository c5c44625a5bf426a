package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WindowStart is the canonical 24-hour start boundary of a peak time window.
// The end boundary of a window label is not used by the scheduler.
type WindowStart struct {
	Hour   int
	Minute int
}

// ParseError reports a malformed time-window label. It is never coerced into
// a best-guess time; a bad label must not silently schedule a wrong-time
// notification.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time window %q: %s", e.Label, e.Reason)
}

// ParseWindowStart converts a label like "6:00 PM - 9:00 PM" into the
// 24-hour start time (18, 0). Hour 12 maps to 0 for AM and stays 12 for PM.
func ParseWindowStart(label string) (WindowStart, error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return WindowStart{}, &ParseError{Label: label, Reason: "missing \" - \" separator"}
	}

	fields := strings.Fields(parts[0])
	if len(fields) != 2 {
		return WindowStart{}, &ParseError{Label: label, Reason: "start must be a time followed by AM/PM"}
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return WindowStart{}, &ParseError{Label: label, Reason: "start time must be H:MM"}
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return WindowStart{}, &ParseError{Label: label, Reason: "invalid hour"}
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return WindowStart{}, &ParseError{Label: label, Reason: "invalid minute"}
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return WindowStart{}, &ParseError{Label: label, Reason: "marker must be AM or PM"}
	}

	return WindowStart{Hour: hour, Minute: minute}, nil
}
