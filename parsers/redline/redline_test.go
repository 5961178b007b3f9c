package redline

import "testing"

const sample = `Build ID: build_01
IP: 45.12.33.108
FileLocation: C:\Users\john\AppData\Local\Temp\file.exe
UserName: john
Country: United States
HWID: A1B2C3D4E5
Operation System: Windows 10 Enterprise x64
Log date: 4.12.2022 10:30:57

Hardwares:
	Name: Total of RAM, 8190.83 MB or 8588759040 bytes
	Name: Intel(R) Core(TM) i5-4460 CPU @ 3.20GHz, 4 Cores
	Name: NVIDIA GeForce GT 710, 2147483648 bytes

Anti-Viruses:
	Windows Defender
	Avast Antivirus
`

func TestParser_FullSample(t *testing.T) {
	info, err := NewParser().Parse(sample, "UserInformation.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if info.StealerType != "redline" {
		t.Errorf("Expected stealer type redline, got %s", info.StealerType)
	}
	if info.IPAddress != "45.12.33.108" {
		t.Errorf("Expected IP 45.12.33.108, got %s", info.IPAddress)
	}
	if info.Username != "john" {
		t.Errorf("Expected username john, got %s", info.Username)
	}
	if info.Country != "US" {
		t.Errorf("Expected country US, got %s", info.Country)
	}
	if info.HWID != "A1B2C3D4E5" {
		t.Errorf("Expected HWID A1B2C3D4E5, got %s", info.HWID)
	}
	if info.FilePath != `C:\Users\john\AppData\Local\Temp\file.exe` {
		t.Errorf("unexpected file path: %s", info.FilePath)
	}
	if info.OS != "Windows 10 Enterprise x64" {
		t.Errorf("unexpected OS: %s", info.OS)
	}
	if info.RAM != "8190.83 MB or 8588759040 bytes" {
		t.Errorf("unexpected RAM: %s", info.RAM)
	}
	if info.CPU != "Intel(R) Core(TM) i5-4460 CPU @ 3.20GHz" {
		t.Errorf("unexpected CPU: %s", info.CPU)
	}
	if info.GPU != "NVIDIA GeForce GT 710" {
		t.Errorf("unexpected GPU: %s", info.GPU)
	}
	if info.Antivirus != "Windows Defender, Avast Antivirus" {
		t.Errorf("unexpected antivirus: %s", info.Antivirus)
	}
	if info.LogDate != "2022-12-04" || info.LogTime != "10:30:57" {
		t.Errorf("unexpected log date/time: %s %s", info.LogDate, info.LogTime)
	}
}

func TestParser_EmptyContent(t *testing.T) {
	if _, err := NewParser().Parse("no labels here", "UserInformation.txt"); err == nil {
		t.Fatal("Expected error for content without fields")
	}
}
