package country

import "testing"

func TestCode(t *testing.T) {
	cases := []struct {
		name string
		code string
		ok   bool
	}{
		{"United States", "US", true},
		{"germany", "DE", true},
		{"  France ", "FR", true},
		{"Norway", "NO", true},
		{"us", "US", true}, // alpha-2 passthrough
		{"GB", "GB", true},
		{"Atlantis", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		code, ok := Code(c.name)
		if code != c.code || ok != c.ok {
			t.Errorf("Code(%q) = %q/%v, want %q/%v", c.name, code, ok, c.code, c.ok)
		}
	}
}
