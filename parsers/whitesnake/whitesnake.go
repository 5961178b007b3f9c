// Package whitesnake parses WhiteSnake report headers: flat labels with the
// machine name under "Compname:".
package whitesnake

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
	return base.TypeWhiteSnake
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "username:", Field: records.FieldUsername},
		{Label: "compname:", Field: records.FieldComputerName},
		{Label: "os:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "execution path:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"report date:", "time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeWhiteSnake))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
