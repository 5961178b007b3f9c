// Package credentials extracts stored-credential records from browser
// password dump files and prepares their values for persistence.
package credentials

import (
	"strings"

	"github.com/darkmeter/stealer-parsers/parsers/common"
	"github.com/darkmeter/stealer-parsers/records"
)

// accumulator holds one in-progress credential block. The has* flags
// distinguish an absent field from a legitimately empty one: an empty
// password line still counts as a password.
type accumulator struct {
	url     string
	user    string
	pass    string
	browser string
	hasURL  bool
	hasUser bool
	hasPass bool
}

func (a *accumulator) reset() {
	*a = accumulator{}
}

// complete requires a URL plus both credential lines seen, even when their
// values are empty.
func (a *accumulator) complete() bool {
	return a.hasURL && a.url != "" && a.hasUser && a.hasPass
}

func (a *accumulator) record(filePath string) records.CredentialRecord {
	info := common.ExtractURLInfo(a.url)
	return records.CredentialRecord{
		URL:      a.url,
		Username: a.user,
		Password: a.pass,
		Browser:  a.browser,
		Domain:   info.Domain,
		TLD:      info.TLD,
		FilePath: filePath,
	}
}

// ExtractCredentials scans a password dump and returns the valid credential
// blocks it contains. Blocks are separated by separator lines or implicitly
// by the next URL label; incomplete blocks are dropped silently because
// partial records are expected in noisy dumps.
func ExtractCredentials(content, filePath string) []records.CredentialRecord {
	var out []records.CredentialRecord
	var acc accumulator

	flush := func() {
		if acc.complete() {
			out = append(out, acc.record(filePath))
		}
		acc.reset()
	}

	for _, line := range common.SplitLines(content) {
		if isBlockSeparator(line) {
			flush()
			continue
		}
		norm := common.NormalizeLine(line)
		lower := strings.ToLower(norm)
		switch {
		case hasAnyPrefix(lower, "url:", "host:", "hostname:"):
			// A second URL starts the next block without an explicit
			// separator.
			if acc.hasURL {
				flush()
			}
			acc.url = strings.TrimSpace(common.ExtractValue(norm))
			acc.hasURL = true
		case hasAnyPrefix(lower, "username:", "user:", "login:"):
			if !acc.hasUser {
				acc.user = strings.TrimSpace(common.ExtractValue(norm))
				acc.hasUser = true
			}
		case hasAnyPrefix(lower, "password:", "pass:"):
			if !acc.hasPass {
				acc.pass = strings.TrimSpace(common.ExtractValue(norm))
				acc.hasPass = true
			}
		case hasAnyPrefix(lower, "browser:", "soft:", "application:"):
			if acc.browser == "" {
				acc.browser = strings.TrimSpace(common.ExtractValue(norm))
			}
		}
	}
	flush()
	return out
}

// isBlockSeparator is the line grammar's separator test, except that a
// bracketed banner containing a credential label ("=== URL: ... ===") is
// data, not a divider.
func isBlockSeparator(line string) bool {
	if !common.IsSeparatorLine(line) {
		return false
	}
	text := strings.ToLower(common.ExtractSectionFromSeparator(line))
	if text == "" {
		return true
	}
	return !hasAnyLabel(text, "url:", "host:", "hostname:", "username:",
		"user:", "login:", "password:", "pass:", "browser:")
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnyLabel(s string, labels ...string) bool {
	for _, l := range labels {
		if strings.Contains(s, l) {
			return true
		}
	}
	return false
}
