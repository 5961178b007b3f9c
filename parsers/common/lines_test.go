package common

import "testing"

func TestIsSeparatorLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"========", true},
		{"--------------------", true},
		{"=======", false},  // only 7
		{"=-=-=-=-", false}, // mixed run
		{"=== Network ===", true},
		{"---[ Hardware ]---", true},
		{"=== URL: http://x.com ===", false}, // label field inside banner
		{"IP: 1.2.3.4", false},
	}
	for _, c := range cases {
		if got := IsSeparatorLine(c.line); got != c.want {
			t.Errorf("IsSeparatorLine(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestExtractSectionFromSeparator(t *testing.T) {
	if got := ExtractSectionFromSeparator("=== Network ==="); got != "Network" {
		t.Errorf("Expected Network, got %q", got)
	}
	if got := ExtractSectionFromSeparator("========"); got != "" {
		t.Errorf("Expected empty for pure run, got %q", got)
	}
}

func TestExtractValue(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"IP: 1.2.3.4", "1.2.3.4"},
		{"RAM = 8192 MB", "8192 MB"},
		{"CPU - Intel i5", "Intel i5"},
		{"-no other separator here", "-no other separator here"},
		{"no separator at all", "no separator at all"},
	}
	for _, c := range cases {
		if got := ExtractValue(c.line); got != c.want {
			t.Errorf("ExtractValue(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestNormalizeLine(t *testing.T) {
	if got := NormalizeLine("  - IP: 1.2.3.4"); got != "IP: 1.2.3.4" {
		t.Errorf("Expected dash prefix stripped, got %q", got)
	}
	if got := NormalizeLine("\tCPU: x"); got != "CPU: x" {
		t.Errorf("Expected whitespace stripped, got %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\rc\n")
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "b" || lines[2] != "c" {
		t.Errorf("unexpected lines: %#v", lines)
	}
}

func TestIsContinuationLine(t *testing.T) {
	if !IsContinuationLine("  item") || !IsContinuationLine("- item") {
		t.Error("indented and dash-prefixed lines should continue a list")
	}
	if IsContinuationLine("item") || IsContinuationLine("   ") {
		t.Error("flush-left and blank lines should not continue a list")
	}
}
