package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for strings not in the H+:MM:SS form.
var ErrInvalidDuration = errors.New("invalid duration")

// FormatDuration returns a string representation of the duration in the
// form of h:mm:ss.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour

	m := d / time.Minute
	d -= m * time.Minute

	s := d / time.Second

	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// ParseDuration parses the string in the form of H+:MM:SS[.F+], as used
// by AVTransport time positions.
func ParseDuration(str string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(str), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidDuration
	}

	h, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, ErrInvalidDuration
	}
	m, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || m > 59 {
		return 0, ErrInvalidDuration
	}
	s, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || s < 0 || s >= 60 {
		return 0, ErrInvalidDuration
	}

	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	return d + time.Duration(s*float64(time.Second)), nil
}
