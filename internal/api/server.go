// Package api serves the ranking pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/intake"
	"github.com/sells-group/leadrank/internal/metrics"
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/pipeline"
	"github.com/sells-group/leadrank/internal/report"
)

// RunIDHeader carries the pipeline run id on /v1/rank responses.
const RunIDHeader = "X-Run-ID"

const maxBodyBytes = 10 << 20

// Ranker runs the pipeline over a batch of raw leads.
type Ranker interface {
	Run(ctx context.Context, raw []model.RawLead) *pipeline.State
}

type handler struct {
	ranker   Ranker
	maxLeads int
}

// NewRouter builds the HTTP routes.
func NewRouter(ranker Ranker, cfg config.ServerConfig) http.Handler {
	h := &handler{ranker: ranker, maxLeads: cfg.MaxLeads}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{RunIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)
	r.Post("/v1/rank", h.rank)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) rank(w http.ResponseWriter, r *http.Request) {
	raw, err := intake.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: expected a JSON array of leads")
		return
	}
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "no leads found")
		return
	}
	if h.maxLeads > 0 && len(raw) > h.maxLeads {
		writeError(w, http.StatusRequestEntityTooLarge, "too many leads in one request")
		return
	}

	st := h.ranker.Run(r.Context(), raw)
	w.Header().Set(RunIDHeader, st.RunID)
	if st.Failed() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  st.Error,
			"run_id": st.RunID,
		})
		return
	}

	writeJSON(w, http.StatusOK, report.Build(st))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.L().Info("api: request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
