// Package rhadamanthys parses Rhadamanthys "Device Info" dumps. The IP
// arrives on an "IPv4:" label and the location line combines city and
// country name with a parenthesized code.
package rhadamanthys

import (
	"strings"

	"github.com/darkmeter/stealer-parsers/parsers/base"
	"github.com/darkmeter/stealer-parsers/parsers/common"
	"github.com/darkmeter/stealer-parsers/records"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Type() base.StealerType {
	return base.TypeRhadamanthys
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "os:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "computer:", Field: records.FieldComputerName},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "ipv4:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "location:", Field: records.FieldCountry, Map: locationCountry},
		{Label: "exec path:", Field: records.FieldFilePath},
		{Label: "hwid:", Field: records.FieldHWID},
	},
	DateLabels: []string{"local time:"},
}

// locationCountry handles "Berlin, Germany (DE)": the parenthesized code
// wins, otherwise the trailing comma part is resolved through the table.
func locationCountry(value string) string {
	if idx := strings.LastIndex(value, "("); idx >= 0 && strings.HasSuffix(value, ")") {
		code := strings.TrimSpace(value[idx+1 : len(value)-1])
		if len(code) == 2 {
			return strings.ToUpper(code)
		}
	}
	if idx := strings.LastIndex(value, ","); idx >= 0 {
		value = strings.TrimSpace(value[idx+1:])
	}
	return common.CountryValue(value)
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeRhadamanthys))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
