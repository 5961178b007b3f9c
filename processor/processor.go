// Package processor is the batch dispatch layer: it filters input files,
// routes each through detection and the matching adapter, and isolates
// per-file failures so one bad file never aborts a batch.
package processor

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/darkmeter/stealer-parsers/parsers/base"
	"github.com/darkmeter/stealer-parsers/parsers/common"
	"github.com/darkmeter/stealer-parsers/parsers/detect"
	"github.com/darkmeter/stealer-parsers/records"
	"github.com/darkmeter/stealer-parsers/storage"

	"github.com/darkmeter/stealer-parsers/parsers/arkei"
	"github.com/darkmeter/stealer-parsers/parsers/atomic"
	"github.com/darkmeter/stealer-parsers/parsers/aurora"
	"github.com/darkmeter/stealer-parsers/parsers/azorult"
	"github.com/darkmeter/stealer-parsers/parsers/bandit"
	"github.com/darkmeter/stealer-parsers/parsers/blackguard"
	"github.com/darkmeter/stealer-parsers/parsers/darkcrystal"
	"github.com/darkmeter/stealer-parsers/parsers/ficker"
	"github.com/darkmeter/stealer-parsers/parsers/generic"
	"github.com/darkmeter/stealer-parsers/parsers/lumma"
	"github.com/darkmeter/stealer-parsers/parsers/mars"
	"github.com/darkmeter/stealer-parsers/parsers/meta"
	"github.com/darkmeter/stealer-parsers/parsers/mystic"
	"github.com/darkmeter/stealer-parsers/parsers/oski"
	"github.com/darkmeter/stealer-parsers/parsers/phemedrone"
	"github.com/darkmeter/stealer-parsers/parsers/predator"
	"github.com/darkmeter/stealer-parsers/parsers/raccoon"
	"github.com/darkmeter/stealer-parsers/parsers/redline"
	"github.com/darkmeter/stealer-parsers/parsers/rhadamanthys"
	"github.com/darkmeter/stealer-parsers/parsers/risepro"
	"github.com/darkmeter/stealer-parsers/parsers/stealc"
	"github.com/darkmeter/stealer-parsers/parsers/stealerium"
	"github.com/darkmeter/stealer-parsers/parsers/taurus"
	"github.com/darkmeter/stealer-parsers/parsers/titan"
	"github.com/darkmeter/stealer-parsers/parsers/vidar"
	"github.com/darkmeter/stealer-parsers/parsers/whitesnake"
)

// systemInfoTokens route a file into metadata parsing when its name
// contains any of them.
var systemInfoTokens = []string{
	"system_info",
	"systeminfo",
	"user_info",
	"userinfo",
	"information",
	"system",
	"info",
}

// IsSystemInfoFile reports whether a file name matches the system
// information naming conventions used across families.
func IsSystemInfoFile(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, tok := range systemInfoTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// adapterFor returns the adapter for a family tag. The switch is exhaustive
// over the closed family set; anything else falls back to the generic
// adapter.
func adapterFor(t base.StealerType) base.Adapter {
	switch t {
	case base.TypeRedLine:
		return redline.NewParser()
	case base.TypeRaccoon:
		return raccoon.NewParser()
	case base.TypeVidar:
		return vidar.NewParser()
	case base.TypeAzorult:
		return azorult.NewParser()
	case base.TypeLumma:
		return lumma.NewParser()
	case base.TypeStealc:
		return stealc.NewParser()
	case base.TypeMeta:
		return meta.NewParser()
	case base.TypeMars:
		return mars.NewParser()
	case base.TypeAurora:
		return aurora.NewParser()
	case base.TypeRhadamanthys:
		return rhadamanthys.NewParser()
	case base.TypeWhiteSnake:
		return whitesnake.NewParser()
	case base.TypeMystic:
		return mystic.NewParser()
	case base.TypeDarkCrystal:
		return darkcrystal.NewParser()
	case base.TypeTaurus:
		return taurus.NewParser()
	case base.TypeFicker:
		return ficker.NewParser()
	case base.TypeBlackGuard:
		return blackguard.NewParser()
	case base.TypeArkei:
		return arkei.NewParser()
	case base.TypeOski:
		return oski.NewParser()
	case base.TypePredator:
		return predator.NewParser()
	case base.TypeTitan:
		return titan.NewParser()
	case base.TypeBandit:
		return bandit.NewParser()
	case base.TypePhemedrone:
		return phemedrone.NewParser()
	case base.TypeRisePro:
		return risepro.NewParser()
	case base.TypeStealerium:
		return stealerium.NewParser()
	case base.TypeAtomic:
		return atomic.NewParser()
	case base.TypeGeneric:
		return generic.NewParser()
	default:
		return generic.NewParser()
	}
}

// Processor runs batches of decoded files through the parsing pipeline.
type Processor struct {
	Store storage.Store
	Log   *slog.Logger
	// Workers > 1 fans files out across goroutines. Parses share no state;
	// only result aggregation needs merging.
	Workers int
}

func New(store storage.Store, log *slog.Logger, workers int) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{Store: store, Log: log, Workers: workers}
}

// ProcessFiles parses every system-information file in the batch and
// persists the results. Per-file failures are recorded and counted; the
// batch always runs to completion.
func (p *Processor) ProcessFiles(deviceID string, files []records.RawFile) *records.BatchResult {
	selected := files[:0:0]
	for _, f := range files {
		if IsSystemInfoFile(f.FileName) {
			selected = append(selected, f)
		}
	}

	result := &records.BatchResult{}
	if p.Workers <= 1 || len(selected) < 2 {
		for _, f := range selected {
			p.processOne(deviceID, f, result)
		}
	} else {
		result = p.processParallel(deviceID, selected)
	}

	p.Log.Info("batch processed",
		"device_id", deviceID,
		"files", len(selected),
		"success", result.Success,
		"failed", result.Failed)
	return result
}

// processParallel fans files out over Workers goroutines, each accumulating
// its own BatchResult, merged at the end.
func (p *Processor) processParallel(deviceID string, files []records.RawFile) *records.BatchResult {
	jobs := make(chan records.RawFile)
	results := make([]records.BatchResult, p.Workers)
	var wg sync.WaitGroup

	for w := 0; w < p.Workers; w++ {
		wg.Add(1)
		go func(res *records.BatchResult) {
			defer wg.Done()
			for f := range jobs {
				p.processOne(deviceID, f, res)
			}
		}(&results[w])
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	merged := &records.BatchResult{}
	for i := range results {
		merged.Merge(&results[i])
	}
	return merged
}

// processOne parses and stores a single file, converting any error or panic
// into a recorded failure.
func (p *Processor) processOne(deviceID string, file records.RawFile, result *records.BatchResult) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic while parsing: %v", r)
			}
		}()

		family := detect.Detect(file.Content, file.FileName)
		info, err := adapterFor(family).Parse(file.Content, file.FileName)
		if err != nil {
			return err
		}
		info.CleanFields(common.CleanValue)
		if info.LogTime == "" {
			info.LogTime = "00:00:00"
		}
		return p.Store.SaveSystemInformation(deviceID, info, file.FileName)
	}()

	if err != nil {
		p.Log.Warn("file failed", "file", file.FileName, "error", err)
		result.AddFailure(file.FileName, err)
		return
	}
	result.AddSuccess()
}
