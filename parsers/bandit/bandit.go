// Package bandit parses Bandit Stealer userinfo.txt dumps: flat labels with
// the machine name under "Hostname:" and a single-line antivirus field.
package bandit

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
	return base.TypeBandit
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hostname:", Field: records.FieldComputerName},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "os:", Field: records.FieldOS},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "av:", Field: records.FieldAntivirus},
	},
	DateLabels: []string{"time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeBandit))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
