package common

import (
	"github.com/darkmeter/stealer-parsers/pkg/logdate"
	"github.com/darkmeter/stealer-parsers/records"
)

// ApplyLogDate normalizes the raw date string captured during a scan into
// the record's canonical date and time. An unparseable or absent date leaves
// the record's defaults in place (no date, midnight).
func ApplyLogDate(info *records.SystemInfo, rawDate string) {
	date, clock := logdate.Normalize(rawDate, nil)
	if date != "" {
		info.LogDate = date
		info.LogTime = clock
	}
}
