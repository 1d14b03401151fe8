// Package server implements the HTTP maze API.
//
// One endpoint does the work: GET /v1/maze generates a maze from query
// parameters and returns it as JSON, text, or SVG. Generation is
// deterministic, so responses are aggressively cacheable; the server
// stores rendered artifacts in the shared cache and tags every response
// with a request ID for log correlation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blastbay/mazelib/pkg/cache"
	"github.com/blastbay/mazelib/pkg/maze"
	"github.com/blastbay/mazelib/pkg/render"
)

// DefaultMaxDim bounds maze dimensions when Options.MaxDim is zero.
// A 500x500 request is already a ~1MB text response.
const DefaultMaxDim = 500

// Options configures a Server.
type Options struct {
	Addr   string      // listen address, e.g. ":8080"
	Logger *log.Logger // request logger; nil uses log.Default
	Cache  cache.Cache // artifact cache; nil disables caching
	MaxDim uint32      // largest accepted width or height; 0 means DefaultMaxDim
}

// Server serves generated mazes over HTTP.
type Server struct {
	opts   Options
	router chi.Router
}

// New creates a Server with its routes mounted.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.MaxDim == 0 {
		opts.MaxDim = DefaultMaxDim
	}

	s := &Server{opts: opts}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/maze", s.handleMaze)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns every request a UUID, echoed in the X-Request-ID
// header and attached to the context for logging.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// logRequests logs one line per request with method, path, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(requestIDKey).(string)
		s.opts.Logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// mazeQuery holds the parsed and validated /v1/maze parameters.
type mazeQuery struct {
	params render.Params
	format string
}

// Formats accepted by the maze endpoint, mapped to their content types.
var contentTypes = map[string]string{
	"json": "application/json",
	"text": "text/plain; charset=utf-8",
	"svg":  "image/svg+xml",
}

// parseMazeQuery validates the query string of a maze request.
func (s *Server) parseMazeQuery(r *http.Request) (mazeQuery, error) {
	q := r.URL.Query()

	width, err := parseDim(q.Get("width"), s.opts.MaxDim)
	if err != nil {
		return mazeQuery{}, fmt.Errorf("width: %w", err)
	}
	height, err := parseDim(q.Get("height"), s.opts.MaxDim)
	if err != nil {
		return mazeQuery{}, fmt.Errorf("height: %w", err)
	}

	var seed uint64
	if v := q.Get("seed"); v != "" {
		if seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return mazeQuery{}, fmt.Errorf("seed: %w", err)
		}
	}

	threshold := 30
	if v := q.Get("threshold"); v != "" {
		if threshold, err = strconv.Atoi(v); err != nil {
			return mazeQuery{}, fmt.Errorf("threshold: %w", err)
		}
		if threshold < -1 || threshold > 100 {
			return mazeQuery{}, fmt.Errorf("threshold must be between -1 and 100, got %d", threshold)
		}
	}

	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	if _, ok := contentTypes[format]; !ok {
		return mazeQuery{}, fmt.Errorf("unknown format %q (want json, text or svg)", format)
	}

	return mazeQuery{
		params: render.Params{
			Width:     width,
			Height:    height,
			Seed:      seed,
			Threshold: int8(threshold),
			Blockwise: format != "json",
		},
		format: format,
	}, nil
}

func parseDim(v string, max uint32) (uint32, error) {
	if v == "" {
		return 0, errors.New("required")
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 || n > uint64(max) {
		return 0, fmt.Errorf("must be between 1 and %d", max)
	}
	return uint32(n), nil
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	query, err := s.parseMazeQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cache.Key(query.format, query.params)
	if data, hit, cacheErr := s.opts.Cache.Get(r.Context(), key); cacheErr == nil && hit {
		s.writeArtifact(w, query.format, data)
		return
	}

	data, err := s.renderMaze(query)
	if err != nil {
		id, _ := r.Context().Value(requestIDKey).(string)
		s.opts.Logger.Error("maze generation failed", "id", id, "err", err)
		http.Error(w, "maze generation failed", http.StatusInternalServerError)
		return
	}

	if err := s.opts.Cache.Set(r.Context(), key, data, 0); err != nil {
		s.opts.Logger.Debug("artifact cache write failed", "err", err)
	}

	s.writeArtifact(w, query.format, data)
}

func (s *Server) writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	_, _ = w.Write(data)
}

// renderMaze generates a maze per the validated query and renders it in
// the requested format.
func (s *Server) renderMaze(q mazeQuery) ([]byte, error) {
	p := q.params

	size := maze.RequiredBufferSize(p.Width, p.Height, p.Blockwise)
	buf := make([]byte, size)
	if maze.Generate(p.Width, p.Height, p.Seed, p.Threshold, p.Blockwise, buf) == 0 {
		return nil, fmt.Errorf("generation returned zero for %dx%d", p.Width, p.Height)
	}

	switch q.format {
	case "text":
		v, err := maze.NewBlockView(p.Width, p.Height, buf)
		if err != nil {
			return nil, err
		}
		return []byte(render.Text(v)), nil
	case "svg":
		v, err := maze.NewBlockView(p.Width, p.Height, buf)
		if err != nil {
			return nil, err
		}
		return render.SVG(v), nil
	default: // json
		v, err := maze.NewView(p.Width, p.Height, buf)
		if err != nil {
			return nil, err
		}
		return render.JSON(v, p)
	}
}
