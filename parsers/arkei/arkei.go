// Package arkei parses Arkei information.txt dumps: the flat ancestor of
// the Vidar format, without INI sections.
package arkei

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
	return base.TypeArkei
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "machine id:", Field: records.FieldHWID},
		{Label: "guid:", Field: records.FieldHWID},
		{Label: "windows:", Field: records.FieldOS},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "processor:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "videocard:", Field: records.FieldGPU},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "path:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"local time:", "date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeArkei))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
