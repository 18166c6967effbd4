package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/TanujTlaxmanna/trendreport/internal/adapter/observability"
	"github.com/TanujTlaxmanna/trendreport/internal/config"
	"github.com/TanujTlaxmanna/trendreport/internal/domain"
	"github.com/TanujTlaxmanna/trendreport/internal/usecase"
)

//go:embed templates/*
var templateFiles embed.FS

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Reports   *usecase.ReportService
	templates *template.Template
}

// NewServer constructs an HTTP server with the UI templates parsed.
func NewServer(cfg config.Config, reports *usecase.ReportService) (*Server, error) {
	tpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("op=httpserver.NewServer: %w", err)
	}
	return &Server{Cfg: cfg, Reports: reports, templates: tpl}, nil
}

type artifactView struct {
	Name         string
	Pages        int
	SizeKB       string
	DroppedChars int
	GeneratedAt  string
}

type indexData struct {
	Title       string
	Description string
	Topics      []domain.TrendingTopic
	Words       []domain.WordFrequency
	Artifact    *artifactView
	Failed      bool
}

// IndexHandler renders the single-page UI: dataset previews, the generate
// trigger, and the download link once a report exists.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := indexData{
			Title:       "NLP Trending Topics Report Generator",
			Description: "Generate an ASCII-safe NLP PDF report from trending news data.",
			Topics:      s.Reports.TopicPreview(),
			Words:       s.Reports.WordPreview(),
			Failed:      r.URL.Query().Get("failed") == "1",
		}
		if art, ok := s.Reports.Latest(); ok {
			data.Artifact = &artifactView{
				Name:         art.Name,
				Pages:        art.Pages,
				SizeKB:       fmt.Sprintf("%.1f", float64(len(art.Bytes))/1024),
				DroppedChars: art.DroppedChars,
				GeneratedAt:  art.GeneratedAt.Format(time.RFC3339),
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
			LoggerFrom(r).Error("render index", slog.Any("error", err))
		}
	}
}

// GenerateHandler triggers one synchronous render and reports the artifact
// metadata as JSON.
func (s *Server) GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		art, err := s.generate(r)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":            art.ID,
			"pages":         art.Pages,
			"size_bytes":    len(art.Bytes),
			"dropped_chars": art.DroppedChars,
			"generated_at":  art.GeneratedAt.Format(time.RFC3339),
			"download_url":  "/v1/report/download",
		})
	}
}

// GenerateFormHandler backs the UI button: render, then redirect back to the
// index page so the download link appears without any client-side script.
func (s *Server) GenerateFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.generate(r); err != nil {
			http.Redirect(w, r, "/?failed=1", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) generate(r *http.Request) (domain.Artifact, error) {
	start := time.Now()
	art, err := s.Reports.Generate(r.Context())
	if err != nil {
		observability.ObserveGeneration("error", time.Since(start), 0)
		LoggerFrom(r).Error("report generation failed", slog.Any("error", err))
		return domain.Artifact{}, err
	}
	observability.ObserveGeneration("success", time.Since(start), art.DroppedChars)
	return art, nil
}

// DownloadHandler serves the latest artifact as an attachment. Before the
// first successful generate there is nothing to download.
func (s *Server) DownloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		art, ok := s.Reports.Latest()
		if !ok {
			writeError(w, r, fmt.Errorf("%w: no report generated yet", domain.ErrNotFound), nil)
			return
		}
		w.Header().Set("Content-Type", art.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+art.Name+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(art.Bytes)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(art.Bytes)
	}
}

// PreviewHandler returns the first rows of both datasets as JSON.
func (s *Server) PreviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		topics := make([]map[string]any, 0, usecase.TopicPreviewRows)
		for _, tp := range s.Reports.TopicPreview() {
			topics = append(topics, map[string]any{"title": tp.Title})
		}
		words := make([]map[string]any, 0, usecase.WordPreviewRows)
		for _, wf := range s.Reports.WordPreview() {
			words = append(words, map[string]any{"word": wf.Word, "frequency": wf.Frequency})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"trending_topics": topics,
			"word_frequency":  words,
		})
	}
}

// ReadyzHandler reports readiness: datasets are loaded at startup, so the
// remaining concern is that the artifact destination stays writable.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir := filepath.Dir(s.Reports.OutputPath)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"reason": fmt.Sprintf("output directory %s not available", dir),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ready",
			"topics": len(s.Reports.Datasets.Topics),
			"words":  len(s.Reports.Datasets.Words),
		})
	}
}
