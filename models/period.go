package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// periodLayout is the month format used in stored period strings.
const periodLayout = "Jan 2006"

// presentLabel marks an ongoing position in a period string.
const presentLabel = "Present"

var ErrUnparsablePeriod = errors.New("unparsable period string")

// ParsePeriod splits a display period like "Jan 2020 - Mar 2023" or
// "Jan 2020 - Present" into structured dates. The stored string stays the
// source of truth; this only exists so the admin API can accept and return
// date pickers' values.
func ParsePeriod(period string) (start time.Time, end time.Time, current bool, err error) {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparsablePeriod, period)
	}

	start, err = time.Parse(periodLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparsablePeriod, period)
	}

	endPart := strings.TrimSpace(parts[1])
	if strings.EqualFold(endPart, presentLabel) {
		return start, time.Time{}, true, nil
	}

	end, err = time.Parse(periodLayout, endPart)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparsablePeriod, period)
	}
	return start, end, false, nil
}

// FormatPeriod renders structured dates back into the stored display form.
func FormatPeriod(start time.Time, end time.Time, current bool) string {
	if current || end.IsZero() {
		return fmt.Sprintf("%s - %s", start.Format(periodLayout), presentLabel)
	}
	return fmt.Sprintf("%s - %s", start.Format(periodLayout), end.Format(periodLayout))
}
