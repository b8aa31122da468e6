package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cratchit-dev/cratchit/internal/accounts"
)

const maxBodyBytes = 1 << 20

// NewRouter creates the HTTP router over store.
func NewRouter(store *Store, metrics *Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(zapLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(durations(metrics))

	r.Get("/healthz", healthzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1/accounts", func(r chi.Router) {
		r.Get("/", listAccountsHandler(store))
		r.Post("/", addAccountHandler(store, logger))
		r.Get("/{id}", getAccountHandler(store, metrics))
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func listAccountsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := store.IDs()
		writeJSON(w, http.StatusOK, listResponse{IDs: ids, Count: len(ids)})
	}
}

func getAccountHandler(store *Store, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		acct, ok := store.Get(id)
		metrics.RecordLookup(ok)
		if !ok {
			writeError(w, http.StatusNotFound, "account not found: "+id)
			return
		}
		writeJSON(w, http.StatusOK, accounts.ToDocument(acct))
	}
}

func addAccountHandler(store *Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var node map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&node); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		acct, err := accounts.AccountFromDocument(node)
		if err != nil {
			var fe *accounts.FieldError
			if errors.As(err, &fe) {
				writeError(w, http.StatusBadRequest, fe.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		store.AddTopLevelAccount(acct)
		logger.Info("top-level account added",
			zap.String("account_id", acct.ID()),
			zap.Int("descendants", len(acct.Descendants())),
		)
		writeJSON(w, http.StatusCreated, accounts.ToDocument(acct))
	}
}

// zapLogger logs requests: Warn for 4xx, Error for 5xx, Info otherwise.
func zapLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Duration("latency", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				}

				switch {
				case status >= 500:
					logger.Error("http request", fields...)
				case status >= 400:
					logger.Warn("http request", fields...)
				default:
					logger.Info("http request", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func durations(metrics *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.RecordRequestDuration(route, time.Since(start))
		})
	}
}
