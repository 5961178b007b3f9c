// Package risepro parses RisePro UserInformation dumps, a RedLine-derived
// layout with flat labels and an antivirus list.
package risepro

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
	return base.TypeRisePro
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "filelocation:", Field: records.FieldFilePath},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "os version:", Field: records.FieldOS},
		{Label: "cpu name:", Field: records.FieldCPU},
		{Label: "ram amount:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "pc name:", Field: records.FieldComputerName},
	},
	Lists: []common.ListRule{
		{Header: "installed avs:", Field: records.FieldAntivirus, Join: ", "},
	},
	DateLabels: []string{"log date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeRisePro))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
