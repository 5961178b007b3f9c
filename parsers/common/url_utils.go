package common

import (
	"strings"
)

// URLInfo carries the domain and top-level-domain derived from a
// credential's URL.
type URLInfo struct {
	Domain string
	TLD    string
}

// ExtractURLInfo derives domain and TLD from a raw URL: scheme and "www."
// prefix are stripped, the host is taken up to the first '/' with any port
// removed. IPv4-shaped hosts keep the whole address as domain with no TLD;
// otherwise the TLD is the last dot label and the domain the last two labels
// joined (or the whole host when it has fewer than two labels).
func ExtractURLInfo(rawURL string) URLInfo {
	host := strings.TrimSpace(rawURL)
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	host = strings.TrimPrefix(host, "www.")
	if idx := strings.IndexByte(host, '/'); idx >= 0 {
		host = host[:idx]
	}
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	if host == "" {
		return URLInfo{}
	}
	if IsIPv4Shaped(host) {
		return URLInfo{Domain: host}
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return URLInfo{Domain: host}
	}
	return URLInfo{
		Domain: strings.Join(labels[len(labels)-2:], "."),
		TLD:    labels[len(labels)-1],
	}
}
