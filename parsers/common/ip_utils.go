package common

import (
	"net"
	"regexp"
	"strings"
)

var ipRegex = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// ExtractOneIP extracts the first IPv4 address from a string. Several
// families decorate the IP line ("IP: 1.2.3.4 (US)"), so adapters use this
// as a value transform instead of taking the raw remainder.
func ExtractOneIP(text string) string {
	match := ipRegex.FindString(text)
	if match != "" {
		if net.ParseIP(match) != nil {
			return match
		}
	}
	return ""
}

// IsIP returns the trimmed input when it is a valid IP address, else "".
func IsIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if net.ParseIP(ipStr) != nil {
		return ipStr
	}
	return ""
}

// IsIPv4Shaped reports whether a host string consists of four dot-separated
// numeric labels. Used by URL info derivation: an IPv4 host has no TLD.
func IsIPv4Shaped(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
