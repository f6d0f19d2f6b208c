// Package service contains supporting services used by the handlers
package service

import (
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts a YouTube ISO-8601 duration (PT#H#M#S) into
// seconds. Anything that doesn't match parses as 0.
func ParseISODuration(d string) int {
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	return hours*3600 + minutes*60 + seconds
}
