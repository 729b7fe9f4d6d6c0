package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wordlens/internal/domain"
	"wordlens/internal/port"
)

// ReportAnalyzer produces a report for raw text. The bool is true when the
// report came from a cache.
type ReportAnalyzer interface {
	Analyze(raw string) (domain.Report, bool)
}

// IDSource issues report ids.
type IDSource interface {
	New(t time.Time) string
}

// ProgressFunc is called after each file with the number processed so far.
type ProgressFunc func(processed, total int, currentFile string)

// BatchUseCase analyzes every selected document under a root and stores
// one report per distinct text.
type BatchUseCase struct {
	store    port.ReportStore
	walker   port.FileWalker
	reader   port.DocumentReader
	analyzer ReportAnalyzer
	ids      IDSource
	language string
	now      func() time.Time
}

func NewBatchUseCase(
	store port.ReportStore,
	walker port.FileWalker,
	reader port.DocumentReader,
	analyzer ReportAnalyzer,
	ids IDSource,
	language string,
) *BatchUseCase {
	return &BatchUseCase{
		store:    store,
		walker:   walker,
		reader:   reader,
		analyzer: analyzer,
		ids:      ids,
		language: language,
		now:      time.Now,
	}
}

// BatchResult contains the results of a batch run.
type BatchResult struct {
	FilesAnalyzed int
	FilesSkipped  int
	Reports       []domain.StoredReport
	Errors        []string
}

// Run analyzes the documents under root. Documents whose text already has
// a stored report are skipped unless force is set.
func (u *BatchUseCase) Run(root string, force bool, progress ProgressFunc) (*BatchResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &BatchResult{}
	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.RelPath)
		}

		stored, skipped, err := u.analyzeFile(file, force)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.RelPath, err))
			continue
		}
		if skipped {
			result.FilesSkipped++
		} else {
			result.FilesAnalyzed++
		}
		result.Reports = append(result.Reports, stored)
	}
	if progress != nil {
		progress(len(files), len(files), "")
	}

	return result, nil
}

func (u *BatchUseCase) analyzeFile(file port.FileInfo, force bool) (domain.StoredReport, bool, error) {
	text, err := u.reader.ReadText(file.Path)
	if err != nil {
		return domain.StoredReport{}, false, fmt.Errorf("failed to read document: %w", err)
	}

	hash := ContentHash(text)
	if !force {
		existing, found, err := u.store.FindByHash(hash)
		if err != nil {
			return domain.StoredReport{}, false, fmt.Errorf("failed to look up report: %w", err)
		}
		if found {
			log.Debug().Str("path", file.RelPath).Str("id", existing.ID).Msg("unchanged, reusing report")
			return existing, true, nil
		}
	}

	report, _ := u.analyzer.Analyze(text)
	created := u.now()
	stored := domain.StoredReport{
		ID:        u.ids.New(created),
		Path:      file.Path,
		Hash:      hash,
		CreatedAt: created,
		Language:  u.language,
		Report:    report,
		Text:      text,
	}
	if err := u.store.PutReport(stored); err != nil {
		return domain.StoredReport{}, false, fmt.Errorf("failed to store report: %w", err)
	}
	return stored, false, nil
}

// ContentHash identifies a document's text.
func ContentHash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}
