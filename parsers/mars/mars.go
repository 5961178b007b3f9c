// Package mars parses Mars Stealer information.txt dumps. The layout is the
// Arkei/Vidar lineage with INI sections but different identifier labels.
package mars

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
	return base.TypeMars
}

var scanConfig = &common.ScanConfig{
	Sections: map[string]string{
		"hardware": common.SectionHardware,
		"network":  common.SectionNetwork,
		"system":   common.SectionSystem,
	},
	Rules: []common.LabelRule{
		{Label: "machine id:", Field: records.FieldHWID},
		{Label: "guid:", Field: records.FieldHWID},
		{Label: "working directory:", Field: records.FieldFilePath},
		{Label: "windows version:", Field: records.FieldOS},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "processor:", Field: records.FieldCPU, Section: common.SectionHardware},
		{Label: "ram:", Field: records.FieldRAM, Section: common.SectionHardware},
		{Label: "videocard:", Field: records.FieldGPU, Section: common.SectionHardware},
		{Label: "ip:", Field: records.FieldIPAddress, Section: common.SectionNetwork, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Section: common.SectionNetwork, Map: common.CountryValue},
	},
	DateLabels: []string{"local time:", "date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeMars))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
