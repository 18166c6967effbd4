// Package usecase wires the domain ports into application services.
package usecase

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/TanujTlaxmanna/trendreport/internal/domain"
)

// Preview row counts shown on the index page and the preview endpoint.
const (
	TopicPreviewRows = 5
	WordPreviewRows  = 10
)

// ReportService renders the report from the startup-loaded datasets and keeps
// the last successful artifact for download. One render runs at a time;
// concurrent triggers serialize on the mutex.
type ReportService struct {
	Datasets   domain.Datasets
	Renderer   domain.ReportRenderer
	OutputPath string

	mu   sync.RWMutex
	last *domain.Artifact
}

// NewReportService constructs a ReportService over immutable datasets.
func NewReportService(ds domain.Datasets, r domain.ReportRenderer, outputPath string) *ReportService {
	return &ReportService{Datasets: ds, Renderer: r, OutputPath: outputPath}
}

// Generate renders the report, persists it atomically to the configured
// output path, and retains the bytes for download. On any failure no partial
// artifact is written or retained.
func (s *ReportService) Generate(ctx domain.Context) (domain.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	art, err := s.Renderer.Render(ctx, s.Datasets)
	if err != nil {
		return domain.Artifact{}, err
	}
	art.Name = filepath.Base(s.OutputPath)

	if err := writeAtomic(s.OutputPath, art.Bytes); err != nil {
		return domain.Artifact{}, fmt.Errorf("op=usecase.Generate persist: %w: %v", domain.ErrInternal, err)
	}

	if art.DroppedChars > 0 {
		slog.Warn("sanitizer dropped unrepresentable characters",
			slog.String("artifact_id", art.ID),
			slog.Int("dropped_chars", art.DroppedChars))
	}
	slog.Info("report generated",
		slog.String("artifact_id", art.ID),
		slog.Int("pages", art.Pages),
		slog.Int("size_bytes", len(art.Bytes)))

	s.last = &art
	return art, nil
}

// Latest returns the last successfully generated artifact, if any.
func (s *ReportService) Latest() (domain.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.Artifact{}, false
	}
	return *s.last, true
}

// TopicPreview returns the first rows of the trending-topics dataset.
func (s *ReportService) TopicPreview() []domain.TrendingTopic {
	return headSlice(s.Datasets.Topics, TopicPreviewRows)
}

// WordPreview returns the first rows of the word-frequency dataset.
func (s *ReportService) WordPreview() []domain.WordFrequency {
	return headSlice(s.Datasets.Words, WordPreviewRows)
}

func headSlice[T any](sl []T, n int) []T {
	if len(sl) < n {
		n = len(sl)
	}
	return sl[:n]
}

// writeAtomic writes to a sibling temp file and renames it over path so a
// failed render can never leave a truncated artifact at the well-known name.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
