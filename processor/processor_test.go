package processor

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/darkmeter/stealer-parsers/records"
)

// memStore collects saved records in memory.
type memStore struct {
	mu    sync.Mutex
	infos []*records.SystemInfo
	files []string
}

func (m *memStore) SaveSystemInformation(deviceID string, info *records.SystemInfo, sourceFileName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, info)
	m.files = append(m.files, sourceFileName)
	return nil
}

func (m *memStore) SaveCredentials(deviceID string, creds []records.CredentialRecord) error {
	return nil
}

func (m *memStore) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessFiles_FaultIsolation(t *testing.T) {
	files := []records.RawFile{
		{FileName: "system_1.txt", Content: "IP: 1.2.3.1\nUsername: u1\n"},
		{FileName: "system_2.txt", Content: "IP: 1.2.3.2\nUsername: u2\n"},
		{FileName: "system_3.txt", Content: "completely unparseable noise"},
		{FileName: "system_4.txt", Content: "IP: 1.2.3.4\nUsername: u4\n"},
		{FileName: "system_5.txt", Content: "IP: 1.2.3.5\nUsername: u5\n"},
	}

	store := &memStore{}
	result := New(store, discardLogger(), 1).ProcessFiles("device-1", files)

	if result.Success != 4 || result.Failed != 1 {
		t.Fatalf("Expected 4/1, got %d/%d", result.Success, result.Failed)
	}
	if len(result.Errors) != 1 || result.Errors[0].FileName != "system_3.txt" {
		t.Errorf("Expected system_3.txt in errors, got %+v", result.Errors)
	}
	if len(store.infos) != 4 {
		t.Errorf("Expected 4 stored records, got %d", len(store.infos))
	}
}

func TestProcessFiles_FiltersByFileName(t *testing.T) {
	files := []records.RawFile{
		{FileName: "wallet.dat", Content: "IP: 1.2.3.4\n"},
		{FileName: "screenshot.png", Content: "IP: 1.2.3.4\n"},
		{FileName: "UserInformation.txt", Content: "IP: 1.2.3.4\nUsername: u\n"},
	}

	store := &memStore{}
	result := New(store, discardLogger(), 1).ProcessFiles("device-1", files)

	if result.Success != 1 || result.Failed != 0 {
		t.Fatalf("Expected only the info file processed, got %d/%d",
			result.Success, result.Failed)
	}
	if len(store.files) != 1 || store.files[0] != "UserInformation.txt" {
		t.Errorf("unexpected stored files: %v", store.files)
	}
}

func TestProcessFiles_Parallel(t *testing.T) {
	var files []records.RawFile
	for i := 0; i < 20; i++ {
		files = append(files, records.RawFile{
			FileName: "systeminfo.txt",
			Content:  "IP: 9.9.9.9\nUsername: worker\n",
		})
	}
	files = append(files, records.RawFile{FileName: "system_bad.txt", Content: "noise"})

	store := &memStore{}
	result := New(store, discardLogger(), 4).ProcessFiles("device-2", files)

	if result.Success != 20 || result.Failed != 1 {
		t.Fatalf("Expected 20/1, got %d/%d", result.Success, result.Failed)
	}
}

func TestIsSystemInfoFile(t *testing.T) {
	yes := []string{"System.txt", "information.txt", "userinfo.txt",
		"user_info.txt", "SystemInfo.txt", "system_info.txt", "info.log"}
	for _, name := range yes {
		if !IsSystemInfoFile(name) {
			t.Errorf("Expected %s to match", name)
		}
	}
	no := []string{"passwords.txt", "cookies.txt", "wallet.dat"}
	for _, name := range no {
		if IsSystemInfoFile(name) {
			t.Errorf("Expected %s not to match", name)
		}
	}
}

func TestProcessOne_CleansJunkFields(t *testing.T) {
	files := []records.RawFile{
		{FileName: "system.txt", Content: "Username: real\nCountry: unknown\nOS: Windows 7\n"},
	}
	store := &memStore{}
	New(store, discardLogger(), 1).ProcessFiles("device-3", files)

	if len(store.infos) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(store.infos))
	}
	info := store.infos[0]
	if info.Country != "" {
		t.Errorf("Expected junk country cleared, got %q", info.Country)
	}
	if info.Username != "real" || info.OS != "Windows 7" {
		t.Errorf("unexpected record: %+v", info)
	}
}
