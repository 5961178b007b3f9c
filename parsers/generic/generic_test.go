package generic

import "testing"

func TestParser_SynonymCoverage(t *testing.T) {
	content := `Operation System: Windows 8.1
External IP: 77.13.2.200
Login: DOMAIN\pete
Hostname: WIN-PETE
Processor: AMD Ryzen 5 3600
Memory: 16 GB
Graphics Card: AMD Radeon RX 570
Country Code: DE
Machine ID: 11AA22BB
Execution Path: C:\tmp\a.exe
Log Date: 01/02/2024
`
	info, err := NewParser().Parse(content, "system.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if info.OS != "Windows 8.1" {
		t.Errorf("unexpected OS: %s", info.OS)
	}
	if info.IPAddress != "77.13.2.200" {
		t.Errorf("unexpected IP: %s", info.IPAddress)
	}
	if info.Username != "pete" {
		t.Errorf("unexpected username: %s", info.Username)
	}
	if info.ComputerName != "WIN-PETE" {
		t.Errorf("unexpected computer name: %s", info.ComputerName)
	}
	if info.CPU != "AMD Ryzen 5 3600" {
		t.Errorf("unexpected CPU: %s", info.CPU)
	}
	if info.RAM != "16 GB" {
		t.Errorf("unexpected RAM: %s", info.RAM)
	}
	if info.GPU != "AMD Radeon RX 570" {
		t.Errorf("unexpected GPU: %s", info.GPU)
	}
	if info.Country != "DE" {
		t.Errorf("unexpected country: %s", info.Country)
	}
	if info.HWID != "11AA22BB" {
		t.Errorf("unexpected HWID: %s", info.HWID)
	}
	if info.FilePath != `C:\tmp\a.exe` {
		t.Errorf("unexpected file path: %s", info.FilePath)
	}
	// Ambiguous numeric date defaults to day-first.
	if info.LogDate != "2024-02-01" {
		t.Errorf("unexpected log date: %s", info.LogDate)
	}
}

// One family's builds put the host IP on the country line; the value must be
// skipped, not relocated.
func TestParser_IPShapedCountryRejected(t *testing.T) {
	content := "Username: kay\nCountry: 10.20.30.40\n"
	info, err := NewParser().Parse(content, "userinfo.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if info.Country != "" {
		t.Errorf("Expected IP-shaped country rejected, got %s", info.Country)
	}
	if info.IPAddress != "" {
		t.Errorf("Expected value not relocated to IP, got %s", info.IPAddress)
	}
}

func TestParser_NoFields(t *testing.T) {
	if _, err := NewParser().Parse("nothing recognizable", "info.txt"); err == nil {
		t.Fatal("Expected error for empty extraction")
	}
}
