package common

import (
	"strings"

	"github.com/darkmeter/stealer-parsers/pkg/country"
)

// junkTokens are placeholder values malware families emit for fields they
// could not collect. A field holding one of these is treated as absent.
var junkTokens = map[string]struct{}{
	"":           {},
	"unknown":    {},
	"[redacted]": {},
	"n/a":        {},
	"none":       {},
	"null":       {},
}

// CleanValue trims the value and replaces known junk tokens with the empty
// string. Comparison is case-insensitive; the original casing is preserved
// for real values.
func CleanValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if _, junk := junkTokens[strings.ToLower(trimmed)]; junk {
		return ""
	}
	return trimmed
}

// UsernameFromDomain strips a Windows domain qualifier from an account name:
// "DESKTOP-1A2B\john" becomes "john". Values without a backslash are
// returned unchanged.
func UsernameFromDomain(value string) string {
	if idx := strings.LastIndex(value, "\\"); idx >= 0 && idx < len(value)-1 {
		return value[idx+1:]
	}
	return value
}

// CountryValue maps a free-text country value to its two-letter code where
// the lookup table knows it, keeping the raw value otherwise. Used as a
// value transform by adapters whose format emits full country names.
func CountryValue(value string) string {
	if code, ok := country.Code(value); ok {
		return code
	}
	return value
}

// RejectIPShaped returns "" when the value parses as an IP address, and the
// value unchanged otherwise. One family's logs place the host IP in the
// country field; the generic adapter uses this to skip the bad assignment.
func RejectIPShaped(value string) string {
	if IsIP(value) != "" {
		return ""
	}
	return value
}
