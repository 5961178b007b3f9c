package records

import "testing"

func TestSystemInfo_SetFirstWriteWins(t *testing.T) {
	info := NewSystemInfo("redline")

	if !info.Set(FieldOS, "Windows 10 Pro") {
		t.Fatal("first Set should succeed")
	}
	if info.Set(FieldOS, "Windows 7") {
		t.Error("second Set for the same field should be ignored")
	}
	if info.OS != "Windows 10 Pro" {
		t.Errorf("Expected Windows 10 Pro, got %s", info.OS)
	}
}

func TestSystemInfo_SetRejectsEmptyAndUnknown(t *testing.T) {
	info := NewSystemInfo("generic")

	if info.Set(FieldCPU, "") {
		t.Error("empty value should not be written")
	}
	if info.Set("no_such_field", "x") {
		t.Error("unknown field should not be written")
	}
	if !info.IsEmpty() {
		t.Error("record should still be empty")
	}
}

func TestSystemInfo_CleanFields(t *testing.T) {
	info := NewSystemInfo("generic")
	info.Set(FieldCountry, "unknown")
	info.Set(FieldUsername, "  john  ")

	info.CleanFields(func(v string) string {
		if v == "unknown" {
			return ""
		}
		return v
	})

	if info.Country != "" {
		t.Errorf("Expected country cleared, got %q", info.Country)
	}
	if info.Username != "  john  " {
		t.Errorf("Expected username untouched by this cleaner, got %q", info.Username)
	}
}

func TestSystemInfo_Defaults(t *testing.T) {
	info := NewSystemInfo("vidar")
	if info.StealerType != "vidar" {
		t.Errorf("Expected stealer type vidar, got %s", info.StealerType)
	}
	if info.LogTime != "00:00:00" {
		t.Errorf("Expected default log time 00:00:00, got %s", info.LogTime)
	}
	if !info.IsEmpty() {
		t.Error("new record should be empty")
	}
}

func TestBatchResult_Merge(t *testing.T) {
	a := &BatchResult{}
	a.AddSuccess()
	a.AddSuccess()

	b := &BatchResult{}
	b.AddFailure("bad.txt", &testError{"boom"})

	a.Merge(b)
	if a.Success != 2 || a.Failed != 1 {
		t.Errorf("Expected 2/1, got %d/%d", a.Success, a.Failed)
	}
	if len(a.Errors) != 1 || a.Errors[0].FileName != "bad.txt" {
		t.Errorf("Expected bad.txt in errors, got %+v", a.Errors)
	}
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
