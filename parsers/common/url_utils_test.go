package common

import "testing"

func TestExtractURLInfo(t *testing.T) {
	cases := []struct {
		url    string
		domain string
		tld    string
	}{
		{"https://www.example.com/login", "example.com", "com"},
		{"http://mail.google.com:8080/inbox", "google.com", "com"},
		{"ftp://files.example.co.uk/pub", "co.uk", "uk"},
		{"192.168.0.1/admin", "192.168.0.1", ""},
		{"http://192.168.0.1:8443", "192.168.0.1", ""},
		{"localhost", "localhost", ""},
		{"example.com", "example.com", "com"},
	}
	for _, c := range cases {
		info := ExtractURLInfo(c.url)
		if info.Domain != c.domain || info.TLD != c.tld {
			t.Errorf("ExtractURLInfo(%q) = {%q %q}, want {%q %q}",
				c.url, info.Domain, info.TLD, c.domain, c.tld)
		}
	}
}

func TestExtractURLInfo_Empty(t *testing.T) {
	info := ExtractURLInfo("   ")
	if info.Domain != "" || info.TLD != "" {
		t.Errorf("Expected empty info, got %+v", info)
	}
}
