package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses the yyyy-mm-dd wire format used for scheduled,
// purchase and warranty dates.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
