// Package logdate converts the raw timestamp strings found in stealer logs
// into a canonical (date, time) pair. Families disagree on almost
// everything: separator characters, day/month order, 2- vs 4-digit years,
// month names, 12- vs 24-hour clocks and trailing timezone or signature
// annotations, so normalization is a chain of increasingly permissive
// heuristics evaluated in priority order.
package logdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTime is the clock value used when the raw input carries no time.
const DefaultTime = "00:00:00"

var junkTokens = map[string]struct{}{
	"":           {},
	"unknown":    {},
	"[redacted]": {},
	"n/a":        {},
	"none":       {},
	"null":       {},
}

var (
	isoPattern = regexp.MustCompile(
		`^(\d{4})-(\d{2})-(\d{2})(?:[ T](\d{2}):(\d{2})(?::(\d{2}))?)?`)
	// Go regexp has no backreferences; both separators are captured and
	// compared in code so "01/02-2024" does not slip through.
	numericPattern = regexp.MustCompile(
		`^(\d{1,4})([./-])(\d{1,2})([./-])(\d{1,4})` +
			`(?:[ T]+(\d{1,2}):(\d{2})(?::(\d{2}))?)?\s*([AaPp][Mm])?$`)
	timePattern = regexp.MustCompile(
		`(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp][Mm])?`)
)

// monthLayouts cover the text month-name forms emitted by families that
// format dates for humans ("29 Jun 25 21:02 CEST", "Jun 29, 2025").
var monthLayouts = []string{
	"2 Jan 2006",
	"2 Jan 06",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"January 2, 2006",
	"January 2 2006",
	"2006 Jan 2",
	"Mon Jan 2 2006",
	"Mon 2 Jan 2006",
	"Mon, 2 Jan 2006",
}

// fallbackLayouts are the last-resort calendar parse, accepted only when
// the resulting year is plausible.
var fallbackLayouts = []string{
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"Mon Jan 2 15:04:05 2006",
	"Mon, 2 Jan 2006 15:04:05",
	time.RFC3339,
	time.ANSIC,
}

// Normalize converts a raw date string into a canonical YYYY-MM-DD date and
// HH:mm:ss time. The date is empty when nothing could be recovered and no
// fallback timestamp was supplied; the time is never empty.
func Normalize(raw string, fallback *time.Time) (string, string) {
	trimmed := stripAnnotations(raw)
	if _, junk := junkTokens[strings.ToLower(trimmed)]; junk {
		return fromFallback(fallback)
	}

	if date, clock, ok := parseISO(trimmed); ok {
		return date, clock
	}
	if date, clock, ok := parseNumeric(trimmed); ok {
		return date, clock
	}
	if date, clock, ok := parseMonthName(trimmed); ok {
		return date, clock
	}
	if date, clock, ok := parseGeneric(trimmed); ok {
		return date, clock
	}
	return fromFallback(fallback)
}

// FormatDate renders a timestamp as the canonical date form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime renders a timestamp as the canonical time form.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

func fromFallback(fallback *time.Time) (string, string) {
	if fallback == nil {
		return "", DefaultTime
	}
	return FormatDate(*fallback), FormatTime(*fallback)
}

// stripAnnotations keeps the leading run of date/time-legal characters,
// cutting trailing signature or bracketed timezone annotations such as
// "(sig:...)" or "[UTC+3]".
func stripAnnotations(raw string) string {
	raw = strings.TrimSpace(raw)
	end := len(raw)
	for i, r := range raw {
		if !legalRune(r) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw[:end]), ","))
}

func legalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
	case r == ' ' || r == '.' || r == '/' || r == '-' || r == ':' || r == ',':
	default:
		return false
	}
	return true
}

func parseISO(s string) (string, string, bool) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	date := fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	if m[4] == "" {
		return date, DefaultTime, true
	}
	sec := m[6]
	if sec == "" {
		sec = "00"
	}
	return date, fmt.Sprintf("%s:%s:%s", m[4], m[5], sec), true
}

// parseNumeric handles "P1 sep P2 sep P3 [time] [AM/PM]" with sep one of
// '.', '/', '-'. Day/month ambiguity is resolved by whichever part exceeds
// 12; when both parts fit a month, day-first wins (non-US convention, and
// the default downstream data already assumes).
func parseNumeric(s string) (string, string, bool) {
	m := numericPattern.FindStringSubmatch(s)
	if m == nil || m[2] != m[4] {
		return "", "", false
	}
	p1s, p2s, p3s := m[1], m[3], m[5]
	p1, _ := strconv.Atoi(p1s)
	p2, _ := strconv.Atoi(p2s)
	p3, _ := strconv.Atoi(p3s)

	var year, month, day int
	switch {
	case len(p3s) == 4:
		year = p3
		day, month = pickDayMonth(p1, p2)
	case len(p1s) == 4:
		year, month, day = p1, p2, p3
	default:
		year = 2000 + p3
		day, month = pickDayMonth(p1, p2)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", "", false
	}

	clock := DefaultTime
	if m[6] != "" {
		hour, _ := strconv.Atoi(m[6])
		sec := m[8]
		if sec == "" {
			sec = "00"
		}
		hour = adjustHour(hour, m[9])
		clock = fmt.Sprintf("%02d:%s:%s", hour, m[7], sec)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), clock, true
}

func pickDayMonth(p1, p2 int) (day, month int) {
	switch {
	case p1 > 12:
		return p1, p2
	case p2 > 12:
		return p2, p1
	default:
		// Genuinely ambiguous: default day-first.
		return p1, p2
	}
}

func adjustHour(hour int, ampm string) int {
	switch strings.ToLower(ampm) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

// parseMonthName handles text month forms, day-first or month-first. The
// time is scanned separately because timezone names and other trailing
// tokens make full-layout matching unreliable.
func parseMonthName(s string) (string, string, bool) {
	if !containsLetter(s) {
		return "", "", false
	}
	datePart := s
	clock := DefaultTime
	if loc := timePattern.FindStringSubmatchIndex(s); loc != nil {
		m := timePattern.FindStringSubmatch(s)
		hour, _ := strconv.Atoi(m[1])
		sec := m[3]
		if sec == "" {
			sec = "00"
		}
		hour = adjustHour(hour, m[4])
		clock = fmt.Sprintf("%02d:%s:%s", hour, m[2], sec)
		datePart = s[:loc[0]]
	}
	datePart = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(datePart), ","))
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, datePart); err == nil {
			return FormatDate(t), clock, true
		}
	}
	return "", "", false
}

func parseGeneric(s string) (string, string, bool) {
	for _, layout := range fallbackLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Garbage inputs occasionally parse into nonsense dates.
		if t.Year() < 2000 || t.Year() > 2100 {
			continue
		}
		return FormatDate(t), FormatTime(t), true
	}
	return "", "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}
