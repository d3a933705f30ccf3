package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msomdec/storefront/internal/domain"
	"github.com/msomdec/storefront/internal/store"
)

const maxBodyBytes = 1 << 20

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readJSON decodes the request body into dst. Unknown fields, trailing data
// and bodies over 1MB are rejected.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		slog.Debug("decode request body", "path", r.URL.Path, "error", err)
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON body", domain.ErrInvalidInput)
	}
	return nil
}

// errorStatuses maps sentinel errors to a status and a default message.
var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrInvalidInput, http.StatusBadRequest, "Invalid request body"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "Not found"},
	{domain.ErrDuplicateEmail, http.StatusConflict, "Email already exists"},
	{domain.ErrMisconfigured, http.StatusInternalServerError, "Server misconfigured"},
}

// writeServiceError maps err to an HTTP response. Known sentinels report the
// detail attached to them; anything else is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
		writeError(w, e.status, errorDetail(err, e.err, e.message))
		return
	}

	if errors.Is(err, store.ErrIO) {
		slog.ErrorContext(r.Context(), "storage failure", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		slog.ErrorContext(r.Context(), "unexpected error", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// errorDetail returns the text a service attached after the sentinel, as in
// "invalid input: missing required fields", capitalised.
func errorDetail(err, sentinel error, fallback string) string {
	_, detail, ok := strings.Cut(err.Error(), sentinel.Error()+": ")
	if !ok || detail == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(detail)
	return string(unicode.ToUpper(r)) + detail[size:]
}
