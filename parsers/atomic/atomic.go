// Package atomic parses Atomic (AMOS) macOS stealer dumps: Apple system
// profiler style labels instead of the Windows conventions.
package atomic

import (
	"github.com/darkmeter/stealer-parsers/parsers/base"
	"github.com/darkmeter/stealer-parsers/parsers/common"
	"github.com/darkmeter/stealer-parsers/records"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Type() base.StealerType {
	return base.TypeAtomic
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "system version:", Field: records.FieldOS},
		{Label: "macos:", Field: records.FieldOS},
		{Label: "chip:", Field: records.FieldCPU},
		{Label: "processor name:", Field: records.FieldCPU},
		{Label: "memory:", Field: records.FieldRAM},
		{Label: "hardware uuid:", Field: records.FieldHWID},
		{Label: "hostname:", Field: records.FieldComputerName},
		{Label: "user:", Field: records.FieldUsername},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
	},
	DateLabels: []string{"date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeAtomic))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
