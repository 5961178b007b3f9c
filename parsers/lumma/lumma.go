// Package lumma parses LummaC2 System.txt dumps: dash-bulleted
// "- Label: value" lines with no section structure.
package lumma

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
	return base.TypeLumma
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "os version:", Field: records.FieldOS},
		{Label: "os:", Field: records.FieldOS},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "cpu name:", Field: records.FieldCPU},
		{Label: "ram size:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "ip address:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "path:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"local date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeLumma))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
