// Package country resolves free-text country values from stealer logs to
// ISO 3166-1 alpha-2 codes. The table ships embedded; lookups are pure.
package country

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var tableYAML []byte

var (
	once  sync.Once
	table map[string]string
)

func load() {
	table = map[string]string{}
	// The embedded table is static; a decode failure would be a build
	// defect, so a broken table just degrades every lookup to a miss.
	_ = yaml.Unmarshal(tableYAML, &table)
}

// Code maps a country name (or common alias) to its two-letter code.
// A value that already is a two-letter alpha code is returned uppercased.
// The boolean reports whether the lookup succeeded.
func Code(name string) (string, bool) {
	once.Do(load)
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	if len(trimmed) == 2 && isAlpha(trimmed) {
		return strings.ToUpper(trimmed), true
	}
	if code, ok := table[strings.ToLower(trimmed)]; ok {
		return code, true
	}
	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
