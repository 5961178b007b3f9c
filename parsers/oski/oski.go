// Package oski parses Oski Stealer information dumps, an Arkei sibling
// whose builds brand the banner and use "Machine ID" plus flat labels.
package oski

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
	return base.TypeOski
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "machine id:", Field: records.FieldHWID},
		{Label: "os:", Field: records.FieldOS},
		{Label: "pc name:", Field: records.FieldComputerName},
		{Label: "user:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "filepath:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeOski))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
