// Package csvds loads the input tables from CSV files on local disk.
package csvds

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/TanujTlaxmanna/trendreport/internal/domain"
)

// Loader reads both datasets once; callers keep the result for the process
// lifetime. Implements domain.DatasetLoader.
type Loader struct {
	TopicsPath string
	WordsPath  string
	vld        *validator.Validate
}

// New constructs a Loader over the two CSV paths.
func New(topicsPath, wordsPath string) *Loader {
	return &Loader{TopicsPath: topicsPath, WordsPath: wordsPath, vld: validator.New()}
}

// Load reads and validates both tables. A missing file maps to
// domain.ErrNotFound, anything structurally wrong to domain.ErrDatasetInvalid.
func (l *Loader) Load(ctx domain.Context) (domain.Datasets, error) {
	topics, err := l.loadTopics(ctx)
	if err != nil {
		return domain.Datasets{}, err
	}
	words, err := l.loadWords(ctx)
	if err != nil {
		return domain.Datasets{}, err
	}
	return domain.Datasets{Topics: topics, Words: words}, nil
}

func (l *Loader) loadTopics(_ domain.Context) ([]domain.TrendingTopic, error) {
	rows, header, err := readTable(l.TopicsPath)
	if err != nil {
		return nil, err
	}
	titleIdx, ok := columnIndex(header, "title")
	if !ok {
		return nil, fmt.Errorf("op=csvds.loadTopics: %w: %s has no title column", domain.ErrDatasetInvalid, l.TopicsPath)
	}
	topics := make([]domain.TrendingTopic, 0, len(rows))
	for _, row := range rows {
		if titleIdx >= len(row) {
			return nil, fmt.Errorf("op=csvds.loadTopics: %w: short row in %s", domain.ErrDatasetInvalid, l.TopicsPath)
		}
		topics = append(topics, domain.TrendingTopic{Title: row[titleIdx]})
	}
	return topics, nil
}

func (l *Loader) loadWords(_ domain.Context) ([]domain.WordFrequency, error) {
	rows, header, err := readTable(l.WordsPath)
	if err != nil {
		return nil, err
	}
	wordIdx, okW := columnIndex(header, "word")
	freqIdx, okF := columnIndex(header, "frequency")
	if !okW || !okF {
		return nil, fmt.Errorf("op=csvds.loadWords: %w: %s must have word and frequency columns", domain.ErrDatasetInvalid, l.WordsPath)
	}
	words := make([]domain.WordFrequency, 0, len(rows))
	for i, row := range rows {
		if wordIdx >= len(row) || freqIdx >= len(row) {
			return nil, fmt.Errorf("op=csvds.loadWords: %w: short row %d in %s", domain.ErrDatasetInvalid, i+1, l.WordsPath)
		}
		freq, err := strconv.Atoi(strings.TrimSpace(row[freqIdx]))
		if err != nil {
			return nil, fmt.Errorf("op=csvds.loadWords: %w: row %d frequency %q is not an integer", domain.ErrDatasetInvalid, i+1, row[freqIdx])
		}
		wf := domain.WordFrequency{Word: row[wordIdx], Frequency: freq}
		if err := l.vld.Struct(wf); err != nil {
			return nil, fmt.Errorf("op=csvds.loadWords: %w: row %d: %v", domain.ErrDatasetInvalid, i+1, err)
		}
		words = append(words, wf)
	}
	return words, nil
}

// readTable opens a CSV file, rejects non-text content, and returns the data
// rows plus the header row.
func readTable(path string) ([][]string, []string, error) {
	if err := sniff(path); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("op=csvds.readTable: %w: %s", domain.ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("op=csvds.readTable: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("op=csvds.readTable: %w: %s is empty", domain.ErrDatasetInvalid, path)
		}
		return nil, nil, fmt.Errorf("op=csvds.readTable: %w: %v", domain.ErrDatasetInvalid, err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("op=csvds.readTable: %w: %v", domain.ErrDatasetInvalid, err)
	}
	return rows, header, nil
}

// sniff rejects files whose content is not textual (someone pointing a
// dataset path at a binary) before the CSV reader produces a confusing error.
func sniff(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("op=csvds.sniff: %w: %s", domain.ErrNotFound, path)
		}
		return fmt.Errorf("op=csvds.sniff: %w", err)
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") || m.Is("text/csv") {
			return nil
		}
	}
	return fmt.Errorf("op=csvds.sniff: %w: %s detected as %s, want CSV", domain.ErrDatasetInvalid, path, mt.String())
}

func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, true
		}
	}
	return 0, false
}
