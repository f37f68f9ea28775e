// Package httpapi exposes triage conversations as a JSON HTTP API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	conversations service.TriageService
	assessments   service.AssessmentService
	logger        *slog.Logger
}

func NewHandler(conversations service.TriageService, assessments service.AssessmentService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{conversations: conversations, assessments: assessments, logger: logger}
}

// Routes builds the router with request id, logging and panic recovery.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Post("/score", h.score)
	r.Route("/conversations", func(r chi.Router) {
		r.Post("/", h.start)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Delete("/", h.delete)
			r.Post("/answers", h.answer)
			r.Get("/result", h.result)
			r.Post("/reset", h.reset)
		})
	})
	return r
}

// Serve runs the API on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http_listen", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !h.decode(w, r, &req) {
		return
	}
	step, err := h.conversations.Start(r.Context(), contract.NewStartRequest(req.Category))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toStepResponse(step))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	conv, err := h.conversations.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	step, err := h.conversations.Next(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	history, err := h.conversations.History(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConversationResponse(conv, step, history))
}

func (h *Handler) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !h.decode(w, r, &req) {
		return
	}
	step, err := h.conversations.Answer(r.Context(), contract.NewAnswerRequest(chi.URLParam(r, "id"), req.Reply))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStepResponse(step))
}

func (h *Handler) result(w http.ResponseWriter, r *http.Request) {
	res, err := h.conversations.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(*res))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	step, err := h.conversations.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStepResponse(step))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.conversations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !h.decode(w, r, &req) {
		return
	}
	tokens := make([]domain.SymptomToken, len(req.Tokens))
	for i, t := range req.Tokens {
		tokens[i] = domain.SymptomToken(t)
	}
	res, err := h.assessments.Assess(r.Context(), tokens)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(*res))
}

// decode reads a single JSON value into v. An empty body leaves v at its
// zero value; anything after the value is rejected.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errors.New("body must contain a single JSON object")
		}
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "INVALID_REQUEST",
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var te *contract.TriageError
	if !errors.As(err, &te) {
		h.logger.ErrorContext(r.Context(), "http_internal_error", "path", r.URL.Path, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    string(contract.ErrInternalError),
			Message: "internal error",
		})
		return
	}
	writeJSON(w, statusFor(te.Code), errorResponse{
		Code:    string(te.Code),
		Message: te.Message,
		Step:    toStepResponse(te.Step),
	})
}

func statusFor(code contract.TriageErrorCode) int {
	switch code {
	case contract.ErrInvalidChoice:
		return http.StatusUnprocessableEntity
	case contract.ErrConversationNotFound:
		return http.StatusNotFound
	case contract.ErrConversationCompleted:
		return http.StatusConflict
	case contract.ErrInvalidCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
