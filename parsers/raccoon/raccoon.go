// Package raccoon parses Raccoon Stealer "System Information.txt" dumps,
// where every field line carries a "- " bullet prefix.
package raccoon

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
	return base.TypeRaccoon
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "location:", Field: records.FieldCountry, Map: locationCountry},
		{Label: "computername:", Field: records.FieldComputerName},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "username:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "product name:", Field: records.FieldOS},
		{Label: "windows version:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
	},
	Lists: []common.ListRule{
		{Header: "display devices:", Field: records.FieldGPU},
	},
	DateLabels: []string{"log date:", "time:"},
}

// locationCountry maps the tail of a "Location: city, Country" value to a
// country code, keeping the raw value when the table misses.
func locationCountry(value string) string {
	return common.CountryValue(lastCommaPart(value))
}

func lastCommaPart(value string) string {
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == ',' {
			return common.CleanValue(value[i+1:])
		}
	}
	return value
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeRaccoon))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
