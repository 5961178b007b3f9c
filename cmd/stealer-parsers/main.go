// Command stealer-parsers normalizes a directory of raw stealer log files
// into a SQLite database: system-information files go through family
// detection and the format adapters, password dumps through the credential
// extractor.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/darkmeter/stealer-parsers/credentials"
	"github.com/darkmeter/stealer-parsers/internal/config"
	"github.com/darkmeter/stealer-parsers/pkg/textenc"
	"github.com/darkmeter/stealer-parsers/processor"
	"github.com/darkmeter/stealer-parsers/records"
	"github.com/darkmeter/stealer-parsers/storage/sqlite"
)

func main() {
	inputDir := flag.String("input", "", "directory of extracted log files")
	deviceID := flag.String("device", "", "device identifier (random UUID when empty)")
	dbPath := flag.String("db", "", "database path (overrides config)")
	flag.Parse()

	if *inputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: stealer-parsers -input <dir> [-device <id>] [-db <path>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := config.SetupLogger(cfg.LogLevel)

	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *deviceID == "" {
		*deviceID = uuid.New().String()
	}

	if err := run(*inputDir, *deviceID, cfg, log); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(inputDir, deviceID string, cfg *config.Config, log *slog.Logger) error {
	store, err := sqlite.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer store.Close()

	files, passwordFiles, err := loadFiles(inputDir, log)
	if err != nil {
		return err
	}
	log.Info("loaded input",
		"device_id", deviceID,
		"files", len(files),
		"password_files", len(passwordFiles))

	proc := processor.New(store, log, cfg.Workers)
	result := proc.ProcessFiles(deviceID, files)
	for _, fe := range result.Errors {
		log.Warn("parse failure", "file", fe.FileName, "error", fe.Error)
	}

	credCount := 0
	for _, f := range passwordFiles {
		creds := credentials.ExtractCredentials(f.Content, f.FileName)
		if len(creds) == 0 {
			continue
		}
		if err := store.SaveCredentials(deviceID, creds); err != nil {
			log.Warn("credential save failed", "file", f.FileName, "error", err)
			continue
		}
		credCount += len(creds)
	}

	fmt.Printf("processed %d files: %d ok, %d failed, %d credentials\n",
		result.Success+result.Failed, result.Success, result.Failed, credCount)
	return nil
}

// loadFiles walks the input directory, decodes every regular file to UTF-8
// and splits the set into system-information candidates and password dumps.
func loadFiles(dir string, log *slog.Logger) (files, passwordFiles []records.RawFile, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Warn("unreadable file skipped", "file", path, "error", readErr)
			return nil
		}
		f := records.RawFile{
			FileName: d.Name(),
			Content:  textenc.Decode(raw),
		}
		if strings.Contains(strings.ToLower(f.FileName), "password") {
			passwordFiles = append(passwordFiles, f)
			return nil
		}
		files = append(files, f)
		return nil
	})
	return files, passwordFiles, err
}
