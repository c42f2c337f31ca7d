package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutHHMM     = "15:04"
)

var hhmmPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formats time to YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// NormalizeHHMM accepts "8:00", "08:00" or "08:00:00" and returns the
// zero-padded 24-hour "08:00". Departure times are sorted as strings, so
// everything stored or compared goes through here.
func NormalizeHHMM(s string) (string, error) {
	s = strings.TrimSpace(s)
	m := hhmmPattern.FindStringSubmatch(s)
	if len(m) < 3 {
		return "", errors.New("format jam tidak valid (contoh: 08:00)")
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	hhmm := hour + ":" + m[2]
	if _, err := time.Parse(layoutHHMM, hhmm); err != nil {
		return "", errors.New("format jam tidak valid")
	}
	return hhmm, nil
}
