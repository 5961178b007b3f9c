// Package ficker parses Ficker Stealer system dumps, a short flat format.
package ficker

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
	return base.TypeFicker
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip address:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "os:", Field: records.FieldOS},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "computername:", Field: records.FieldComputerName},
		{Label: "cpu model:", Field: records.FieldCPU},
		{Label: "ram size:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
	},
	DateLabels: []string{"time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeFicker))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
