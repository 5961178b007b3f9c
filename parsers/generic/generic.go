// Package generic is the best-effort fallback adapter used when no family
// fingerprint matches. It carries broad label-synonym sets per field so that
// unrecognized or mutated builds still yield partial records.
package generic

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
	return base.TypeGeneric
}

// countryValue rejects IP-shaped values before the table lookup: one
// family's builds put the host IP on the country line, and relocating the
// value would guess at intent, so the assignment is skipped instead.
func countryValue(value string) string {
	if common.RejectIPShaped(value) == "" {
		return ""
	}
	return common.CountryValue(value)
}

var scanConfig = &common.ScanConfig{
	Rules: []common.LabelRule{
		{Label: "operation system:", Field: records.FieldOS},
		{Label: "operating system:", Field: records.FieldOS},
		{Label: "os version:", Field: records.FieldOS},
		{Label: "os name:", Field: records.FieldOS},
		{Label: "os:", Field: records.FieldOS},
		{Label: "windows:", Field: records.FieldOS},
		{Label: "pc type:", Field: records.FieldOS},
		{Label: "system:", Field: records.FieldOS},

		{Label: "ip address:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "external ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "ipv4:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},
		{Label: "ip:", Field: records.FieldIPAddress, Map: common.ExtractOneIP},

		{Label: "user name:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "username:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "user:", Field: records.FieldUsername, Map: common.UsernameFromDomain},
		{Label: "login:", Field: records.FieldUsername, Map: common.UsernameFromDomain},

		{Label: "computer name:", Field: records.FieldComputerName},
		{Label: "computername:", Field: records.FieldComputerName},
		{Label: "compname:", Field: records.FieldComputerName},
		{Label: "machine name:", Field: records.FieldComputerName},
		{Label: "pc name:", Field: records.FieldComputerName},
		{Label: "hostname:", Field: records.FieldComputerName},

		{Label: "cpu name:", Field: records.FieldCPU},
		{Label: "cpu model:", Field: records.FieldCPU},
		{Label: "processor:", Field: records.FieldCPU},
		{Label: "cpu:", Field: records.FieldCPU},

		{Label: "ram size:", Field: records.FieldRAM},
		{Label: "total of ram:", Field: records.FieldRAM},
		{Label: "memory:", Field: records.FieldRAM},
		{Label: "ram:", Field: records.FieldRAM},

		{Label: "videocard:", Field: records.FieldGPU},
		{Label: "video card:", Field: records.FieldGPU},
		{Label: "graphics card:", Field: records.FieldGPU},
		{Label: "gpu:", Field: records.FieldGPU},

		{Label: "country code:", Field: records.FieldCountry, Map: countryValue},
		{Label: "countrycode:", Field: records.FieldCountry, Map: countryValue},
		{Label: "country:", Field: records.FieldCountry, Map: countryValue},

		{Label: "hardware id:", Field: records.FieldHWID},
		{Label: "hwid:", Field: records.FieldHWID},
		{Label: "machine id:", Field: records.FieldHWID},

		{Label: "file location:", Field: records.FieldFilePath},
		{Label: "filelocation:", Field: records.FieldFilePath},
		{Label: "file path:", Field: records.FieldFilePath},
		{Label: "filepath:", Field: records.FieldFilePath},
		{Label: "execution path:", Field: records.FieldFilePath},
		{Label: "exe_path:", Field: records.FieldFilePath},

		{Label: "antiviruses:", Field: records.FieldAntivirus},
		{Label: "antivirus:", Field: records.FieldAntivirus},
		{Label: "av:", Field: records.FieldAntivirus},
	},
	DateLabels: []string{"log date:", "local time:", "local date:", "date:", "time:"},
}

func (p *Parser) Parse(content, fileName string) (*records.SystemInfo, error) {
	info := records.NewSystemInfo(string(base.TypeGeneric))
	rawDate := common.Scan(content, scanConfig, info)
	common.ApplyLogDate(info, rawDate)
	if info.IsEmpty() {
		return nil, common.NewParserError("no system information found")
	}
	return info, nil
}
