// Package phemedrone parses Phemedrone Stealer system dumps: flat labels
// plus an "Antivirus products:" enumeration of dash-prefixed lines.
package phemedrone

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
	return base.TypePhemedrone
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "username:", Field: records.FieldUsername},
		{Label: "compname:", Field: records.FieldComputerName},
		{Label: "os:", Field: records.FieldOS},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
	},
	Lists: []common.ListRule{
		{Header: "antivirus products:", Field: records.FieldAntivirus, Join: ", "},
	},
	DateLabels: []string{"report time:", "time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypePhemedrone))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
