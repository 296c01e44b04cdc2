package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/charturl/charturl/pkg/errors"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// =============================================================================
// serve command
// =============================================================================

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chart encoding API",
		Long: `Run the HTTP chart encoding API.

The serve command starts an HTTP server that accepts chart descriptions
as JSON and returns the encoded chart URL:

  POST /v1/url      encode a chart description
  GET  /healthz     liveness check

The request body mirrors the description file format, wrapped with the
encoding options:

  {"chart": {...}, "width": 300, "height": 200, "enhanced": false}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// runServe blocks serving HTTP until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: newRouter(logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Router
// =============================================================================

// newRouter builds the HTTP routes with request IDs and logging attached.
func newRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))

	r.Get("/healthz", handleHealth)
	r.Post("/v1/url", handleEncode)

	return r
}

// ctxRequestIDKey is the context key for the per-request ID.
const ctxRequestIDKey ctxKey = 1

// requestID assigns each request a UUID and echoes it in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestIDKey, id)))
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger logs one line per request with method, path, status, and
// elapsed time.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			id, _ := r.Context().Value(ctxRequestIDKey).(string)
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

// =============================================================================
// Handlers
// =============================================================================

// encodeRequest is the POST /v1/url body.
type encodeRequest struct {
	Chart    ChartFile         `json:"chart"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Enhanced bool              `json:"enhanced"`
	Plain    bool              `json:"plain"`
	BaseURL  string            `json:"base_url,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// encodeResponse is the POST /v1/url success body.
type encodeResponse struct {
	URL string `json:"url"`
}

// errorResponse is the body for all error statuses.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}
	if req.Width == 0 {
		req.Width = defaultWidth
	}
	if req.Height == 0 {
		req.Height = defaultHeight
	}

	e, err := req.Chart.Encoder()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	e.Enhanced = req.Enhanced
	e.Plain = req.Plain
	if req.BaseURL != "" {
		e.BaseURL = req.BaseURL
	}
	if len(req.Extra) > 0 {
		e.Extra = req.Extra
	}

	u, err := e.URL(req.Width, req.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeResponse{URL: u})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a structured error body, surfacing the error code
// when the error carries one.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
