package common

import (
	"strings"

	"github.com/darkmeter/stealer-parsers/records"
)

// Canonical section tags. Formats that reuse a label in multiple sections
// ("Path:" under hardware vs miscellaneous) scope their rules to one of
// these; the scan tracks the current section from INI-style headers and
// bracketed separators.
const (
	SectionNetwork       = "network"
	SectionHardware      = "hardware"
	SectionSystem        = "system"
	SectionGeolocation   = "geolocation"
	SectionMachine       = "machine"
	SectionMiscellaneous = "miscellaneous"
)

// LabelRule maps one label pattern to a record field. Rules are evaluated
// in order and the first rule matching a line consumes it.
type LabelRule struct {
	// Label is the lowercase pattern, matched as a prefix of the
	// normalized line unless Contains is set.
	Label    string
	Contains bool
	// Field is the records field constant receiving the value.
	Field string
	// Section restricts the rule to one canonical section; empty matches
	// in any section.
	Section string
	// Map optionally transforms the cleaned value. Returning "" rejects
	// the value (the field stays unset).
	Map func(string) string
}

// ListRule accumulates a list-valued field (GPU or antivirus enumerations)
// from indented / dash-prefixed continuation lines following a header line.
type ListRule struct {
	// Header is the lowercase prefix that opens the list.
	Header string
	// Field receives the collapsed value.
	Field string
	// Join is the separator for collapsing accumulated items; empty keeps
	// only the first item.
	Join string
	// Section restricts the rule like LabelRule.Section.
	Section string
}

// ScanConfig is a family adapter expressed as data: section names, ordered
// label rules, list rules and the labels carrying the log timestamp.
type ScanConfig struct {
	// Sections maps lowercase raw section names (from "[Section]" headers
	// or bracketed separators) to canonical section tags. Nil disables
	// section tracking.
	Sections map[string]string
	Rules    []LabelRule
	Lists    []ListRule
	// DateLabels are lowercase prefixes whose value is the raw log date;
	// the first hit wins and is returned from Scan for the adapter to
	// normalize.
	DateLabels []string
}

// scanState is the accumulator threaded through the line fold: the current
// section, any in-progress list and the captured raw date.
type scanState struct {
	section string
	list    *ListRule
	items   []string
	rawDate string
}

// Scan folds the file's lines through the config, filling info in place
// (first-write-wins) and returning the raw log date string, if any.
func Scan(content string, cfg *ScanConfig, info *records.SystemInfo) string {
	st := scanState{}
	for _, line := range SplitLines(content) {
		if st.list != nil {
			if IsContinuationLine(line) && !IsSeparatorLine(line) {
				if item := CleanValue(NormalizeLine(line)); item != "" {
					st.items = append(st.items, item)
				}
				continue
			}
			st.flushList(info)
		}

		if IsSeparatorLine(line) {
			st.enterSection(ExtractSectionFromSeparator(line), cfg)
			continue
		}
		if name, ok := iniSection(line); ok {
			st.enterSection(name, cfg)
			continue
		}

		norm := NormalizeLine(line)
		lower := strings.ToLower(norm)

		if st.openList(lower, norm, cfg) {
			continue
		}
		if st.rawDate == "" {
			if raw, ok := matchDate(lower, norm, cfg); ok {
				st.rawDate = raw
				continue
			}
		}
		st.applyRules(lower, norm, cfg, info)
	}
	st.flushList(info)
	return st.rawDate
}

func (st *scanState) enterSection(name string, cfg *ScanConfig) {
	if name == "" || cfg.Sections == nil {
		return
	}
	if tag, ok := cfg.Sections[strings.ToLower(name)]; ok {
		st.section = tag
	}
}

func (st *scanState) sectionAllows(required string) bool {
	return required == "" || required == st.section
}

func (st *scanState) openList(lower, norm string, cfg *ScanConfig) bool {
	for i := range cfg.Lists {
		lr := &cfg.Lists[i]
		if !st.sectionAllows(lr.Section) || !strings.HasPrefix(lower, lr.Header) {
			continue
		}
		st.list = lr
		st.items = nil
		// A first item may follow the header on the same line. The value is
		// taken after the matched header, not via ExtractValue, because
		// headers like "Anti-Viruses:" contain a dash themselves.
		if item := CleanValue(norm[len(lr.Header):]); item != "" {
			st.items = append(st.items, item)
		}
		return true
	}
	return false
}

func (st *scanState) flushList(info *records.SystemInfo) {
	if st.list == nil {
		return
	}
	if len(st.items) > 0 {
		value := st.items[0]
		if st.list.Join != "" {
			value = strings.Join(st.items, st.list.Join)
		}
		info.Set(st.list.Field, value)
	}
	st.list = nil
	st.items = nil
}

func matchDate(lower, norm string, cfg *ScanConfig) (string, bool) {
	for _, dl := range cfg.DateLabels {
		if strings.HasPrefix(lower, dl) {
			return ExtractValue(norm), true
		}
	}
	return "", false
}

func (st *scanState) applyRules(lower, norm string, cfg *ScanConfig, info *records.SystemInfo) {
	for i := range cfg.Rules {
		r := &cfg.Rules[i]
		if !st.sectionAllows(r.Section) {
			continue
		}
		matched := strings.HasPrefix(lower, r.Label)
		if !matched && r.Contains {
			matched = strings.Contains(lower, r.Label)
		}
		if !matched {
			continue
		}
		value := CleanValue(ExtractValue(norm))
		if value != "" && r.Map != nil {
			value = r.Map(value)
		}
		if value != "" {
			info.Set(r.Field, value)
		}
		return
	}
}

// iniSection matches "[Section Name]" header lines.
func iniSection(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if name == "" {
		return "", false
	}
	return name, true
}
