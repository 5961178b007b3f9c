// Package redline parses RedLine UserInformation.txt dumps: flat
// "Label: value" lines followed by a "Hardwares:" block of indented
// "Name: item, detail" entries and an "Anti-Viruses:" list.
package redline

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
	return base.TypeRedLine
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "username:", Field: records.FieldUsername},
		{Label: "user name:", Field: records.FieldUsername},
		{Label: "country:", Field: records.FieldCountry, Map: common.CountryValue},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "file location:", Field: records.FieldFilePath},
		{Label: "filelocation:", Field: records.FieldFilePath},
		{Label: "operation system:", Field: records.FieldOS},
		{Label: "os version:", Field: records.FieldOS},
	},
	Lists: []common.ListRule{
		{Header: "anti-viruses:", Field: records.FieldAntivirus, Join: ", "},
		{Header: "antiviruses:", Field: records.FieldAntivirus, Join: ", "},
	},
	DateLabels: []string{"log date:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeRedLine))
	rawDate := common.Scan(content, scanConfig, info)
	parseHardwareBlock(content, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}

// parseHardwareBlock handles the "Hardwares:" enumeration, whose entries mix
// RAM, CPU and GPU into one list of "Name: <item>, <detail>" lines:
//
//	Hardwares:
//		Name: Total of RAM, 8190.83 MB or 8588759040 bytes
//		Name: Intel(R) Core(TM) i5-4460 CPU @ 3.20GHz, 4 Cores
//		Name: NVIDIA GeForce GT 710, 2147483648 bytes
func parseHardwareBlock(content string, info *records.SystemInfo) {
	inBlock := false
	for _, line := range common.SplitLines(content) {
		lower := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(lower, "hardwares:") {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if !common.IsContinuationLine(line) {
			return
		}
		item := common.CleanValue(common.ExtractValue(common.NormalizeLine(line)))
		if item == "" {
			continue
		}
		name, detail := splitHardwareItem(item)
		switch {
		case strings.EqualFold(name, "total of ram"):
			info.Set(records.FieldRAM, detail)
		case strings.Contains(strings.ToLower(detail), "core"):
			info.Set(records.FieldCPU, name)
		default:
			info.Set(records.FieldGPU, name)
		}
	}
}

func splitHardwareItem(item string) (name, detail string) {
	if idx := strings.LastIndex(item, ","); idx >= 0 {
		return strings.TrimSpace(item[:idx]), strings.TrimSpace(item[idx+1:])
	}
	return item, ""
}
