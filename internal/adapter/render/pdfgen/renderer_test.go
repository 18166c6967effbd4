package pdfgen_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanujTlaxmanna/trendreport/internal/adapter/render/pdfgen"
	"github.com/TanujTlaxmanna/trendreport/internal/config"
	"github.com/TanujTlaxmanna/trendreport/internal/domain"
)

func renderText(t *testing.T, art domain.Artifact) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(art.Bytes), int64(len(art.Bytes)))
	require.NoError(t, err)
	rd, err := r.GetPlainText()
	require.NoError(t, err)
	b, err := io.ReadAll(rd)
	require.NoError(t, err)
	return string(b)
}

func fixtureDatasets() domain.Datasets {
	topics := []domain.TrendingTopic{
		{Title: "Budget 2024 — markets rally as ₹ crosses record"},
		{Title: "Global sports roundup"},
		{Title: "Elections ‘ahead’"},
	}
	words := make([]domain.WordFrequency, 0, 25)
	for i := 1; i <= 25; i++ {
		words = append(words, domain.WordFrequency{Word: fmt.Sprintf("word%02d", i), Frequency: 100 - i})
	}
	return domain.Datasets{Topics: topics, Words: words}
}

func TestRender_FourPages(t *testing.T) {
	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), fixtureDatasets())
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", art.ContentType)
	assert.NotEmpty(t, art.ID)
	assert.Equal(t, 4, art.Pages)

	reader, err := pdf.NewReader(bytes.NewReader(art.Bytes), int64(len(art.Bytes)))
	require.NoError(t, err)
	assert.Equal(t, 4, reader.NumPage())
}

func TestRender_SummaryCountsTopics(t *testing.T) {
	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), fixtureDatasets())
	require.NoError(t, err)

	text := renderText(t, art)
	assert.Contains(t, text, "Total articles analyzed: 3")
	assert.Contains(t, text, "Executive Summary")
}

func TestRender_WordTableLimitedToTwenty(t *testing.T) {
	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), fixtureDatasets())
	require.NoError(t, err)

	text := renderText(t, art)
	for i := 1; i <= 20; i++ {
		assert.Contains(t, text, fmt.Sprintf("word%02d", i))
	}
	for i := 21; i <= 25; i++ {
		assert.NotContains(t, text, fmt.Sprintf("word%02d", i))
	}
}

func TestRender_AppendixSanitizesTitles(t *testing.T) {
	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), fixtureDatasets())
	require.NoError(t, err)

	text := renderText(t, art)
	assert.Contains(t, text, "- Budget 2024 - markets rally as Rs crosses record")
	assert.Contains(t, text, "- Global sports roundup")
	assert.Contains(t, text, "- Elections 'ahead'")
}

func TestRender_CountsDroppedRunes(t *testing.T) {
	ds := fixtureDatasets()
	ds.Topics = append(ds.Topics, domain.TrendingTopic{Title: "世界 news"})

	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, 2, art.DroppedChars)
}

func TestRender_EmptyDatasets(t *testing.T) {
	r := pdfgen.New(config.DefaultReportTemplate())
	art, err := r.Render(context.Background(), domain.Datasets{})
	require.NoError(t, err)
	// All four pages are always present, even with nothing to list.
	assert.Equal(t, 4, art.Pages)

	text := renderText(t, art)
	assert.Contains(t, text, "Total articles analyzed: 0")
}
