package common

import "testing"

func TestCleanValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Windows 10  ", "Windows 10"},
		{"unknown", ""},
		{"UNKNOWN", ""},
		{"[Redacted]", ""},
		{"n/a", ""},
		{"None", ""},
		{"null", ""},
		{"", ""},
		{"Nonexistent Corp", "Nonexistent Corp"}, // prefix of a junk token is not junk
	}
	for _, c := range cases {
		if got := CleanValue(c.in); got != c.want {
			t.Errorf("CleanValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUsernameFromDomain(t *testing.T) {
	if got := UsernameFromDomain(`DESKTOP-1A2B\john`); got != "john" {
		t.Errorf("Expected john, got %q", got)
	}
	if got := UsernameFromDomain("plainuser"); got != "plainuser" {
		t.Errorf("Expected plainuser, got %q", got)
	}
}

func TestRejectIPShaped(t *testing.T) {
	if got := RejectIPShaped("192.168.1.10"); got != "" {
		t.Errorf("Expected IP rejected, got %q", got)
	}
	if got := RejectIPShaped("Germany"); got != "Germany" {
		t.Errorf("Expected Germany kept, got %q", got)
	}
}

func TestCountryValue(t *testing.T) {
	if got := CountryValue("United States"); got != "US" {
		t.Errorf("Expected US, got %q", got)
	}
	if got := CountryValue("Atlantis"); got != "Atlantis" {
		t.Errorf("Expected raw value on table miss, got %q", got)
	}
}

func TestExtractOneIP(t *testing.T) {
	if got := ExtractOneIP("IP: 85.12.4.9 (DE)"); got != "85.12.4.9" {
		t.Errorf("Expected 85.12.4.9, got %q", got)
	}
	if got := ExtractOneIP("999.999.999.999"); got != "" {
		t.Errorf("Expected no IP from invalid octets, got %q", got)
	}
}
