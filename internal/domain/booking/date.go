package booking

import "time"

const DateLayout = "2006-01-02"

// ParseDate reads a calendar date. The result is midnight UTC and carries
// no time-zone meaning; Rules places it in the booking zone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
