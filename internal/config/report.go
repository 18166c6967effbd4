package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportTemplate carries the report copy. The page sequence itself is fixed;
// only the wording can be overridden from a YAML file.
type ReportTemplate struct {
	HeaderTitle    string   `yaml:"header_title"`
	CoverTitle     string   `yaml:"cover_title"`
	CoverParagraph string   `yaml:"cover_paragraph"`
	SummaryTitle   string   `yaml:"summary_title"`
	SummaryBullets []string `yaml:"summary_bullets"`
	TableTitle     string   `yaml:"table_title"`
	AppendixTitle  string   `yaml:"appendix_title"`
}

// DefaultReportTemplate returns the built-in report copy.
// The first summary bullet interpolates the dataset-A row count via %d.
func DefaultReportTemplate() ReportTemplate {
	return ReportTemplate{
		HeaderTitle: "Trending Topics NLP Analysis Report",
		CoverTitle:  "NLP Based Trending Topics Report",
		CoverParagraph: "This report presents an end to end Natural Language Processing analysis " +
			"of trending news data using API based collection, TF IDF analysis, and " +
			"statistical techniques.",
		SummaryTitle: "Executive Summary",
		SummaryBullets: []string{
			"- Total articles analyzed: %d",
			"- Finance, sports, and global news dominate trends",
			"- TF IDF highlights article specific relevance",
		},
		TableTitle:    "Word Frequency Analysis",
		AppendixTitle: "Appendix: Top Headlines",
	}
}

// LoadReportTemplate reads a YAML override from path, falling back to the
// defaults for any field left empty. An empty path returns the defaults.
func LoadReportTemplate(path string) (ReportTemplate, error) {
	tpl := DefaultReportTemplate()
	if path == "" {
		return tpl, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ReportTemplate{}, fmt.Errorf("op=config.LoadReportTemplate: %w", err)
	}
	var over ReportTemplate
	if err := yaml.Unmarshal(b, &over); err != nil {
		return ReportTemplate{}, fmt.Errorf("op=config.LoadReportTemplate parse: %w", err)
	}
	if over.HeaderTitle != "" {
		tpl.HeaderTitle = over.HeaderTitle
	}
	if over.CoverTitle != "" {
		tpl.CoverTitle = over.CoverTitle
	}
	if over.CoverParagraph != "" {
		tpl.CoverParagraph = over.CoverParagraph
	}
	if over.SummaryTitle != "" {
		tpl.SummaryTitle = over.SummaryTitle
	}
	if len(over.SummaryBullets) > 0 {
		tpl.SummaryBullets = over.SummaryBullets
	}
	if over.TableTitle != "" {
		tpl.TableTitle = over.TableTitle
	}
	if over.AppendixTitle != "" {
		tpl.AppendixTitle = over.AppendixTitle
	}
	return tpl, nil
}
