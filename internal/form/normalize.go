package form

import (
	"regexp"
	"strings"
)

var (
	rgxDatePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	rgxClock      = regexp.MustCompile(`(?:^|[T\s])(\d{2}:\d{2})(?::\d{2})?`)
)

// DateInput reduces a server date or timestamp to YYYY-MM-DD for a date
// input. Anything without a leading date gives "".
func DateInput(v string) string {
	if m := rgxDatePrefix.FindStringSubmatch(strings.TrimSpace(v)); m != nil {
		return m[1]
	}
	return ""
}

// TimeInput reduces "14:30:00" or a full timestamp to "14:30".
func TimeInput(v string) string {
	if m := rgxClock.FindStringSubmatch(strings.TrimSpace(v)); m != nil {
		return m[1]
	}
	return ""
}
