// Package blackguard parses BlackGuard system dumps: flat labels with
// mixed-case variants of the common names.
package blackguard

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
	return base.TypeBlackGuard
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "os:", Field: records.FieldOS},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "machinename:", Field: records.FieldComputerName},
		{Label: "machine name:", Field: records.FieldComputerName},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "ram:", Field: records.FieldRAM},
	},
	DateLabels: []string{"time:", "date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeBlackGuard))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
