// Package aurora parses Aurora Stealer information dumps: a branded
// "=========" banner followed by flat CamelCase labels.
package aurora

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
	return base.TypeAurora
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "os:", Field: records.FieldOS},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "pcname:", Field: records.FieldComputerName},
		{Label: "pc name:", Field: records.FieldComputerName},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "filepath:", Field: records.FieldFilePath},
		{Label: "file path:", Field: records.FieldFilePath},
	},
	DateLabels: []string{"timestamp:", "time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeAurora))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
