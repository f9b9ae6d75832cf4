package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearPolicy decides which year an explicit day/month without a year belongs
// to. The original DragonTravel flow assumed near-future dates around a fixed
// mid-March pivot; the boundary is configuration, not derived from "today".
type YearPolicy struct {
	PivotMonth    int
	PivotDay      int
	YearBefore    int // assigned when the date falls before the pivot
	YearOnOrAfter int // assigned when the date falls on or after the pivot
}

// DefaultYearPolicy mirrors the original deployment: before March 15 means
// next year (2026), otherwise 2025.
func DefaultYearPolicy() YearPolicy {
	return YearPolicy{PivotMonth: 3, PivotDay: 15, YearBefore: 2026, YearOnOrAfter: 2025}
}

// Year applies the pivot rule to a day/month pair.
func (p YearPolicy) Year(month, day int) int {
	if month < p.PivotMonth || (month == p.PivotMonth && day < p.PivotDay) {
		return p.YearBefore
	}
	return p.YearOnOrAfter
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?P<day>\d{1,2})\s+de\s+(?P<month>[a-záéíóúñ]+)`),
	regexp.MustCompile(`(?i)the\s+(?P<day>\d{1,2})(?:st|nd|rd|th)?\s+of\s+(?P<month>[a-z]+)`),
	regexp.MustCompile(`(?i)(?P<month>[a-záéíóúñ]+)\s+(?P<day>\d{1,2})(?:st|nd|rd|th)?`),
	regexp.MustCompile(`(?i)(?P<day>\d{1,2})(?:st|nd|rd|th)?\s+(?P<month>[a-záéíóúñ]+)`),
}

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June, "julio": time.July,
	"agosto": time.August, "septiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
}

// Normalizer converts loose date phrases into canonical DD/MM/YYYY strings.
type Normalizer struct {
	Policy YearPolicy
}

// Normalize tries the phrase patterns in order and returns the canonical form
// of the first one naming a real day and month. Anything unparseable comes
// back unchanged; the conversation never fails on a bad date.
func (n Normalizer) Normalize(phrase string) string {
	trimmed := strings.Trim(phrase, " ,.")
	if trimmed == "" {
		return phrase
	}

	for _, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		var dayStr, monthStr string
		for i, name := range pattern.SubexpNames() {
			switch name {
			case "day":
				dayStr = m[i]
			case "month":
				monthStr = m[i]
			}
		}
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return phrase
		}
		month, ok := monthNames[strings.ToLower(monthStr)]
		if !ok {
			return phrase
		}
		year := n.Policy.Year(int(month), day)
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day || date.Month() != month {
			// time.Date normalizes overflow (e.g. Feb 30); treat as unparseable.
			return phrase
		}
		return fmt.Sprintf("%02d/%02d/%04d", day, int(month), year)
	}
	return phrase
}
