// Package vidar parses Vidar information.txt dumps: a flat header block
// (version, machine identifiers, user and OS lines) followed by INI-style
// [Hardware] and [Network] sections.
package vidar

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
	return base.TypeVidar
}

var scanConfig = &common.ScanConfig{
	Sections: map[string]string{
		"hardware": common.SectionHardware,
		"network":  common.SectionNetwork,
	},
	Rules: []common.LabelRule{
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "machineid:", Field: records.FieldHWID},
		{Label: "path:", Field: records.FieldFilePath},
		{Label: "windows:", Field: records.FieldOS},
		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "processor:", Field: records.FieldCPU, Section: common.SectionHardware},
		{Label: "ram:", Field: records.FieldRAM, Section: common.SectionHardware},
		{Label: "videocard:", Field: records.FieldGPU, Section: common.SectionHardware},
		{Label: "ip:", Field: records.FieldIPAddress, Section: common.SectionNetwork, Map: common.ExtractOneIP},
		{Label: "country:", Field: records.FieldCountry, Section: common.SectionNetwork, Map: countryCode},
	},
	DateLabels: []string{"local time:", "date:"},
}

// countryCode handles the "United States (US)" form: the parenthesized code
// wins, the table resolves bare names.
func countryCode(value string) string {
	if idx := strings.LastIndex(value, "("); idx >= 0 && strings.HasSuffix(value, ")") {
		code := strings.TrimSpace(value[idx+1 : len(value)-1])
		if len(code) == 2 {
			return strings.ToUpper(code)
		}
	}
	return common.CountryValue(value)
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeVidar))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
