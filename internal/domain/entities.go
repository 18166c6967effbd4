package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrDatasetInvalid  = errors.New("dataset invalid")
	ErrRenderFailed    = errors.New("render failed")
	ErrInternal        = errors.New("internal error")
)

// TrendingTopic is one row of the trending-topics dataset. Rendering only
// consumes the title; any other columns in the source file are ignored.
type TrendingTopic struct {
	Title string
}

// WordFrequency is one row of the word-frequency dataset.
// Invariants: Word non-empty, Frequency >= 0 (enforced at load time).
type WordFrequency struct {
	Word      string `validate:"required"`
	Frequency int    `validate:"gte=0"`
}

// Datasets bundles both input tables. Loaded once at startup and treated as
// immutable for the process lifetime.
type Datasets struct {
	Topics []TrendingTopic
	Words  []WordFrequency
}

// Artifact is a rendered report held in memory plus its metadata.
type Artifact struct {
	ID           string
	Name         string
	ContentType  string
	Bytes        []byte
	Pages        int
	DroppedChars int
	GeneratedAt  time.Time
}

// Ports

// DatasetLoader reads both input tables from their configured sources.
type DatasetLoader interface {
	Load(ctx Context) (Datasets, error)
}

// ReportRenderer lays the datasets out into a paginated document.
// Implementations must pass every free-text value through the sanitizer
// before it reaches a draw operation.
type ReportRenderer interface {
	Render(ctx Context, ds Datasets) (Artifact, error)
}

// Context aliases context.Context so adapters and usecases pass the standard
// context through without the domain importing adapter concerns.
type Context = context.Context
