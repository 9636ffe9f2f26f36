package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timePattern matches a 12-hour clock reference like "2pm" or "11 AM".
var timePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)

// weekdays are indexed Monday=0 through Sunday=6.
var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// defaultHour is used when the utterance names a day but no time.
const defaultHour = 10

// ExtractDateTime resolves a date/time reference in the utterance against
// the supplied reference instant. The reference now is injected rather
// than read from the clock so results are deterministic.
//
// Vocabulary, first match wins: "tomorrow", "today", then English weekday
// names. A weekday always resolves to a future occurrence: if today is
// Wednesday, "wednesday" means next week's Wednesday, never today.
func ExtractDateTime(utterance string, now time.Time) (string, bool) {
	lower := strings.ToLower(utterance)

	var target time.Time
	switch {
	case strings.Contains(lower, "tomorrow"):
		target = now.AddDate(0, 0, 1)
	case strings.Contains(lower, "today"):
		target = now
	default:
		dayIndex := -1
		for i, day := range weekdays {
			if strings.Contains(lower, day) {
				dayIndex = i
				break
			}
		}
		if dayIndex < 0 {
			return "", false
		}
		daysUntil := dayIndex - mondayIndex(now.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		target = now.AddDate(0, 0, daysUntil)
	}

	return fmt.Sprintf("%s %02d:00", target.Format("2006-01-02"), extractHour(utterance)), true
}

// extractHour finds a 12-hour time reference and converts it to a
// 24-hour hour value, defaulting to 10:00 when absent.
func extractHour(utterance string) int {
	matches := timePattern.FindStringSubmatch(utterance)
	if matches == nil {
		return defaultHour
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return defaultHour
	}
	period := strings.ToLower(matches[2])
	if period == "pm" && hour != 12 {
		hour += 12
	}
	if period == "am" && hour == 12 {
		hour = 0
	}
	return hour
}

// mondayIndex converts time.Weekday (Sunday=0) to Monday=0 indexing.
func mondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}
