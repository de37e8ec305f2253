package player

import (
	"strconv"
	"strings"
	"time"
)

// ParsePosition parses a seek position: plain seconds ("90"), MM:SS ("1:30")
// or HH:MM:SS ("1:02:03"). Returns ErrBadSeekFormat for anything else.
func ParsePosition(spec string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, ErrBadSeekFormat
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, ErrBadSeekFormat
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}
