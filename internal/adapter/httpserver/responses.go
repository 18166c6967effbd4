// Package httpserver contains HTTP handlers and middleware.
//
// It provides the report API endpoints (generate, download, preview) and the
// single-page UI, keeping HTTP concerns separate from the rendering logic.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TanujTlaxmanna/trendreport/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
		codeStr = "NOT_FOUND"
	case errors.Is(err, domain.ErrDatasetInvalid):
		code = http.StatusUnprocessableEntity
		codeStr = "DATASET_INVALID"
	case errors.Is(err, domain.ErrRenderFailed):
		code = http.StatusInternalServerError
		codeStr = "RENDER_FAILED"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}
