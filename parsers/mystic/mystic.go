// Package mystic parses Mystic Stealer system dumps: flat "Hardware ID" /
// "Operating System" long-form labels.
package mystic

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
	return base.TypeMystic
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "hardware id:", Field: records.FieldHWID},
		{Label: "operating system:", Field: records.FieldOS},
		{Label: "install path:", Field: records.FieldFilePath},
		{Label: "user:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "computer:", Field: records.FieldComputerName},
		{Label: "processor:", Field: records.FieldCPU},
		{Label: "memory:", Field: records.FieldRAM},
		{Label: "display adapter:", Field: records.FieldGPU},
		{Label: "external ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
	},
	DateLabels: []string{"collected at:", "date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeMystic))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
