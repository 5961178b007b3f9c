// Package meta parses MetaStealer UserInformation.txt dumps. The format is
// a RedLine derivative with flat labels but without the combined hardware
// enumeration.
package meta

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
	return base.TypeMeta
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "file location:", Field: records.FieldFilePath},
		{Label: "os:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "total of ram:", Field: records.FieldRAM},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "pc name:", Field: records.FieldComputerName},
	},
	Lists: []common.ListRule{
		{Header: "antiviruses:", Field: records.FieldAntivirus, Join: ", "},
	},
	DateLabels: []string{"log date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeMeta))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
