package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadReportTemplate_Defaults(t *testing.T) {
	tpl, err := LoadReportTemplate("")
	require.NoError(t, err)
	assert.Equal(t, "Trending Topics NLP Analysis Report", tpl.HeaderTitle)
	assert.Len(t, tpl.SummaryBullets, 3)
	assert.Contains(t, tpl.SummaryBullets[0], "%d")
}

func Test_LoadReportTemplate_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cover_title: Quarterly Trends\n"), 0o600))

	tpl, err := LoadReportTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Trends", tpl.CoverTitle)
	// Untouched fields keep their defaults.
	assert.Equal(t, "Executive Summary", tpl.SummaryTitle)
}

func Test_LoadReportTemplate_MissingFile(t *testing.T) {
	_, err := LoadReportTemplate(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func Test_LoadReportTemplate_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-bad"), 0o600))
	_, err := LoadReportTemplate(path)
	require.Error(t, err)
}
