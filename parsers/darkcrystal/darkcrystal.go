// Package darkcrystal parses DCRat system information dumps: .NET property
// style labels ("OSFullName", "MachineName") with no separators.
package darkcrystal

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
	return base.TypeDarkCrystal
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "osfullname:", Field: records.FieldOS},
		{Label: "machinename:", Field: records.FieldComputerName},
		{Label: "username:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "gpu:", Field: records.FieldGPU},
		{Label: "totalmemory:", Field: records.FieldRAM},
		{Label: "externalip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "clientid:", Field: records.FieldHWID},
		{Label: "executablepath:", Field: records.FieldFilePath},
		{Label: "antivirus:", Field: records.FieldAntivirus},
	},
	DateLabels: []string{"sessiondate:", "date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeDarkCrystal))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
