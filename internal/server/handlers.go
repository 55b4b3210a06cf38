package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/errors"
	"github.com/matzehuels/guestcard/pkg/layout"
	"github.com/matzehuels/guestcard/pkg/observability"
	"github.com/matzehuels/guestcard/pkg/pipeline"
	"github.com/matzehuels/guestcard/pkg/rows"
)

var contentTypes = map[string]string{
	pipeline.FormatJSON:    "application/json",
	pipeline.FormatDOT:     "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:     "image/svg+xml",
	pipeline.FormatPreview: "image/svg+xml",
}

type layoutRequest struct {
	ViewportWidth float64    `json:"viewport_width,omitempty"`
	Entry         deck.Entry `json:"entry"`
}

type layoutResponse struct {
	RequestID     string      `json:"request_id"`
	ViewportWidth float64     `json:"viewport_width"`
	ID            string      `json:"id"`
	Cached        bool        `json:"cached"`
	Plan          layout.Plan `json:"plan"`
}

type deckResponse struct {
	RequestID     string               `json:"request_id"`
	ViewportWidth float64              `json:"viewport_width"`
	Cached        int                  `json:"cached"`
	Plans         []pipeline.EntryPlan `json:"plans"`
}

type matrixResponse struct {
	Rows []rows.MatrixRow `json:"rows"`
}

type errorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, matrixResponse{Rows: rows.Matrix()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Entry.ID == "" {
		req.Entry.ID = deck.EntryID(0, req.Entry.Record.Name)
	}
	if err := req.Entry.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := s.options(req.ViewportWidth)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}
	plan, cached, err := s.runner.Resolve(r.Context(), req.Entry, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layoutResponse{
		RequestID:     middleware.GetReqID(r.Context()),
		ViewportWidth: opts.ViewportWidth,
		ID:            req.Entry.ID,
		Cached:        cached,
		Plan:          plan,
	})
}

// handleDeck resolves a JSON deck. Query parameters:
//
//	viewport  overrides the deck's viewport width
//	format    renders one artifact instead of returning plans
//	refresh   bypasses cache reads
func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	d, err := deck.Read(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes), deck.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	viewport := d.ViewportWidth
	if v := q.Get("viewport"); v != "" {
		viewport, err = strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidViewport, err, "viewport %q", v))
			return
		}
	}
	opts := s.options(viewport)
	opts.Refresh, _ = strconv.ParseBool(q.Get("refresh"))
	format := strings.TrimSpace(q.Get("format"))
	if format != "" {
		opts.Formats = []string{format}
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}

	plans, hits, err := s.runner.ResolveDeck(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format == "" {
		s.writeJSON(w, http.StatusOK, deckResponse{
			RequestID:     middleware.GetReqID(r.Context()),
			ViewportWidth: opts.ViewportWidth,
			Cached:        hits,
			Plans:         plans,
		})
		return
	}

	artifacts, _, err := s.runner.Render(r.Context(), plans, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) options(viewport float64) pipeline.Options {
	if viewport == 0 {
		viewport = s.opts.ViewportWidth
	}
	return pipeline.Options{
		ViewportWidth: viewport,
		Workers:       s.opts.Workers,
		Logger:        s.logger,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

// writeError answers with the status of err's code. Internal errors are
// logged with their cause and reported without it.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if stderrors.Is(err, context.DeadlineExceeded) {
		status, code, msg = http.StatusGatewayTimeout, errors.ErrCodeTimeout, "request timed out"
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		if code == errors.ErrCodeInternal {
			msg = "internal error"
		}
	}

	s.writeJSON(w, status, errorResponse{
		RequestID: middleware.GetReqID(r.Context()),
		Code:      code,
		Message:   msg,
	})
}
