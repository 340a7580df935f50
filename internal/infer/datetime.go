package infer

import (
	"regexp"
	"strings"
	"time"
)

// isStrictDate reports whether s is a SQL date literal: yyyy-mm-dd with every
// component numeric and in calendar range.
func isStrictDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// commonLayouts are the formats tried by the date-time format guesser. Order
// only affects cost; any hit classifies the value as DATETIME.
var commonLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"02.01.2006 15:04:05",
	"02/01/2006 15:04:05",
	"2006/01/02 15:04:05",
	"2 Jan 2006 15:04:05",
}

// matchesCommonLayout is the pluggable format-guessing pass: each layout is
// tried with a strict parse.
func matchesCommonLayout(s string) bool {
	st := strings.TrimSpace(s)
	for _, layout := range commonLayouts {
		if _, err := time.Parse(layout, st); err == nil {
			return true
		}
	}
	return false
}

// The lenient matchers below are shape matchers: components must be numeric
// (or a known day/month name) but may be out of calendar range. An
// out-of-range component stands for the rolled-over date, e.g. month 13 of
// one year is January of the next, so such values still classify as dates.
var (
	rfc822Shape = regexp.MustCompile(`^(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun), ` +
		`\d{1,2} (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} ` +
		`\d{1,2}:\d{2}:\d{2} (?:[+-]\d{4}|[A-Z]{1,4})$`)

	slashDateTimeShape = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{1,2}:\d{1,2}$`)

	isoDateShape = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

// isLenientRFC822 matches "EEE, dd MMM yyyy HH:mm:ss Z" shaped values.
func isLenientRFC822(s string) bool {
	return rfc822Shape.MatchString(strings.TrimSpace(s))
}

// isLenientSlashDateTime matches "m/d/yyyy H:M:S" shaped values.
func isLenientSlashDateTime(s string) bool {
	return slashDateTimeShape.MatchString(strings.TrimSpace(s))
}

// isLenientISODate matches "yyyy-m-d" shaped values. It sits below the strict
// date rule and catches out-of-range dates the strict parse rejects.
func isLenientISODate(s string) bool {
	return isoDateShape.MatchString(strings.TrimSpace(s))
}
