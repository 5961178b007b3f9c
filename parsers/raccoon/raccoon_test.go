package raccoon

import "testing"

const sample = `Raccoon Stealer log
- System Language: en-US
- System TimeZone: UTC-05:00
- IP: 102.44.17.9
- Location: Cairo, Egypt
- ComputerName: DESKTOP-9XK2
- Username: WORKGROUP\sara
- Product name: Windows 10 Pro
- CPU: Intel(R) Core(TM) i7-8700 (6 cores)
- RAM: 16384 MB
- Display devices:
- 0) NVIDIA GeForce GTX 1060

`

func TestParser_FullSample(t *testing.T) {
	info, err := NewParser().Parse(sample, "System Info.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if info.IPAddress != "102.44.17.9" {
		t.Errorf("Expected IP 102.44.17.9, got %s", info.IPAddress)
	}
	if info.Country != "EG" {
		t.Errorf("Expected country EG, got %s", info.Country)
	}
	if info.ComputerName != "DESKTOP-9XK2" {
		t.Errorf("Expected computer name DESKTOP-9XK2, got %s", info.ComputerName)
	}
	if info.Username != "sara" {
		t.Errorf("Expected domain-stripped username sara, got %s", info.Username)
	}
	if info.OS != "Windows 10 Pro" {
		t.Errorf("unexpected OS: %s", info.OS)
	}
	if info.CPU != "Intel(R) Core(TM) i7-8700 (6 cores)" {
		t.Errorf("unexpected CPU: %s", info.CPU)
	}
	if info.RAM != "16384 MB" {
		t.Errorf("unexpected RAM: %s", info.RAM)
	}
	if info.GPU != "0) NVIDIA GeForce GTX 1060" {
		t.Errorf("unexpected GPU: %s", info.GPU)
	}
}
