// Package taurus parses Taurus Stealer Information.txt dumps: bracketed
// "====== Section ======" separators around groups of flat labels.
package taurus

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
	return base.TypeTaurus
}

var scanConfig = &common.ScanConfig{
	Sections: map[string]string{
		"network":  common.SectionNetwork,
		"pc info":  common.SectionSystem,
		"hardware": common.SectionHardware,
	},
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Section: common.SectionNetwork, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Section: common.SectionNetwork, Map: common.CountryValue},
		{Label: "os:", Field: records.FieldOS},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "cpu:", Field: records.FieldCPU, Section: common.SectionHardware},
		{Label: "gpu:", Field: records.FieldGPU, Section: common.SectionHardware},
		{Label: "ram:", Field: records.FieldRAM, Section: common.SectionHardware},
		{Label: "path:", Field: records.FieldFilePath, Section: common.SectionSystem},
	},
	DateLabels: []string{"local time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeTaurus))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
