package vidar

import "testing"

const sample = `Version: 51.9
Date: Tue Aug 9 2022 11:07:37
MachineID: 90059c37-1320-41a4-b58d-2b75a9850d2f
Work Dir: In memory
HWID: FA6B12E9

Path: C:\ProgramData\5642.exe

Windows: Windows 10 Pro [x64]
Computer Name: DESKTOP-V1DAR
User Name: emma
Local Time: 9/8/2022 11:7:37

[Hardware]
Processor: Intel(R) Celeron(R) N4020
Cores: 2
RAM: 4018 MB
VideoCard: Intel(R) UHD Graphics 600

[Network]
IP: 91.203.5.146
Country: Germany (DE)
City: Berlin
`

func TestParser_FullSample(t *testing.T) {
	info, err := NewParser().Parse(sample, "information.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if info.HWID != "90059c37-1320-41a4-b58d-2b75a9850d2f" {
		t.Errorf("Expected MachineID kept over HWID (first write wins), got %s", info.HWID)
	}
	if info.FilePath != `C:\ProgramData\5642.exe` {
		t.Errorf("unexpected path: %s", info.FilePath)
	}
	if info.OS != "Windows 10 Pro [x64]" {
		t.Errorf("unexpected OS: %s", info.OS)
	}
	if info.ComputerName != "DESKTOP-V1DAR" {
		t.Errorf("unexpected computer name: %s", info.ComputerName)
	}
	if info.Username != "emma" {
		t.Errorf("unexpected username: %s", info.Username)
	}
	if info.CPU != "Intel(R) Celeron(R) N4020" {
		t.Errorf("unexpected CPU: %s", info.CPU)
	}
	if info.RAM != "4018 MB" {
		t.Errorf("unexpected RAM: %s", info.RAM)
	}
	if info.GPU != "Intel(R) UHD Graphics 600" {
		t.Errorf("unexpected GPU: %s", info.GPU)
	}
	if info.IPAddress != "91.203.5.146" {
		t.Errorf("unexpected IP: %s", info.IPAddress)
	}
	if info.Country != "DE" {
		t.Errorf("Expected DE from parenthesized code, got %s", info.Country)
	}
	if info.LogDate != "2022-08-09" || info.LogTime != "11:07:37" {
		t.Errorf("unexpected log date/time: %s %s", info.LogDate, info.LogTime)
	}
}

func TestParser_SectionScoping(t *testing.T) {
	// An "IP:" line outside [Network] must not populate the field.
	content := "IP: 10.0.0.1\n[Network]\nCountry: France\n"
	info, err := NewParser().Parse(content, "information.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if info.IPAddress != "" {
		t.Errorf("Expected unscoped IP ignored, got %s", info.IPAddress)
	}
	if info.Country != "FR" {
		t.Errorf("Expected FR, got %s", info.Country)
	}
}
