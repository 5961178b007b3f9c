// Package predator parses Predator The Thief information.log dumps:
// bracketed banner, flat labels, CPU line decorated with a core count.
package predator

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
	return base.TypePredator
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "username:", Field: records.FieldUsername},
		{Label: "pc name:", Field: records.FieldComputerName},
		{Label: "os:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU, Map: stripCoreCount},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "path:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"local time:"},
}

// stripCoreCount drops the trailing "(x4)" core-count decoration.
func stripCoreCount(value string) string {
	if idx := strings.LastIndex(value, "(x"); idx >= 0 && strings.HasSuffix(value, ")") {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypePredator))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
