package credentials

import "testing"

func TestExtractCredentials_Blocks(t *testing.T) {
	content := `URL: https://www.example.com/login
Username: alice@example.com
Password: s3cret!
Browser: Chrome
================================
URL: http://185.22.1.4:8080/admin
Login: admin
Pass:
Soft: Firefox
`
	creds := ExtractCredentials(content, "passwords.txt")
	if len(creds) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(creds))
	}

	first := creds[0]
	if first.URL != "https://www.example.com/login" {
		t.Errorf("unexpected URL: %s", first.URL)
	}
	if first.Username != "alice@example.com" || first.Password != "s3cret!" {
		t.Errorf("unexpected credentials: %s / %s", first.Username, first.Password)
	}
	if first.Browser != "Chrome" {
		t.Errorf("unexpected browser: %s", first.Browser)
	}
	if first.Domain != "example.com" || first.TLD != "com" {
		t.Errorf("unexpected domain/tld: %s / %s", first.Domain, first.TLD)
	}
	if first.FilePath != "passwords.txt" {
		t.Errorf("unexpected file path: %s", first.FilePath)
	}

	second := creds[1]
	if second.Password != "" {
		t.Errorf("Expected explicitly empty password kept, got %q", second.Password)
	}
	if second.Domain != "185.22.1.4" || second.TLD != "" {
		t.Errorf("Expected IP domain with no TLD, got %s / %s", second.Domain, second.TLD)
	}
}

func TestExtractCredentials_ImplicitBoundary(t *testing.T) {
	// No separator between entries: a second URL label flushes the first.
	content := `URL: https://a.example.org
Username: u1
Password: p1
URL: https://b.example.org
Username: u2
Password: p2
`
	creds := ExtractCredentials(content, "AllPasswords.txt")
	if len(creds) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(creds))
	}
	if creds[0].Username != "u1" || creds[1].Username != "u2" {
		t.Errorf("unexpected usernames: %s / %s", creds[0].Username, creds[1].Username)
	}
}

func TestExtractCredentials_IncompleteDropped(t *testing.T) {
	// Password label absent entirely: the block is silently dropped.
	content := `URL: https://a.example.org
Username: u1

URL: https://b.example.org
Username: u2
Password: p2
`
	creds := ExtractCredentials(content, "passwords.txt")
	if len(creds) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(creds))
	}
	if creds[0].URL != "https://b.example.org" {
		t.Errorf("unexpected survivor: %s", creds[0].URL)
	}
}

func TestExtractCredentials_BrandedBanner(t *testing.T) {
	// A branded banner line is a separator; a banner containing a field
	// label is not.
	content := `====Daisy====
URL: https://shop.example.net
User: dave
Password: pw
`
	creds := ExtractCredentials(content, "passwords.txt")
	if len(creds) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(creds))
	}
	if creds[0].Username != "dave" {
		t.Errorf("unexpected username: %s", creds[0].Username)
	}
}
