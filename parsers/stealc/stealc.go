// Package stealc parses Stealc system_info.txt dumps: "Network Info:",
// "System Summary:" and "Hardware Info:" groups of dash-bulleted lines. The
// group headers carry no information the labels do not, so the scan is flat.
package stealc

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
	return base.TypeStealc
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "os:", Field: records.FieldOS},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "processor:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "videocard:", Field: records.FieldGPU},
	},
	DateLabels: []string{"local time:", "log date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeStealc))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
