// Package azorult parses AZORult PasswordsList-era system dumps. Mostly
// flat labels, with one combined "Computer(Username): NAME(user)" line that
// carries two fields.
package azorult

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
	return base.TypeAzorult
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "windows:", Field: records.FieldOS},
		{Label: "exe_path:", Field: records.FieldFilePath},
		{Label: "cpu:", Field: records.FieldCPU},
		{Label: "ram:", Field: records.FieldRAM},
		{Label: "videocard:", Field: records.FieldGPU},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "countrycode:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "id:", Field: records.FieldHWID},
	},
	DateLabels: []string{"time:", "local time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeAzorult))
	parseComputerUsername(content, info)
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}

// parseComputerUsername splits the combined "Computer(Username):
// DESKTOP-1A2B(john)" line into its two fields before the regular scan runs.
func parseComputerUsername(content string, info *records.SystemInfo) {
	for _, line := range common.SplitLines(content) {
		norm := common.NormalizeLine(line)
		if !strings.HasPrefix(strings.ToLower(norm), "computer(username):") {
			continue
		}
		value := common.CleanValue(common.ExtractValue(norm))
		open := strings.LastIndex(value, "(")
		if open < 0 || !strings.HasSuffix(value, ")") {
			info.Set(records.FieldComputerName, value)
			return
		}
		info.Set(records.FieldComputerName, common.CleanValue(value[:open]))
		info.Set(records.FieldUsername, common.CleanValue(value[open+1:len(value)-1]))
		return
	}
}
