// Package titan parses Titan Stealer info dumps: flat "Machine"-prefixed
// labels emitted by the Go builder.
package titan

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
	return base.TypeTitan
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip address:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "machine name:", Field: records.FieldComputerName},
		{Label: "machine user:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "os version:", Field: records.FieldOS},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
	},
	DateLabels: []string{"grabbed at:", "time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeTitan))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
