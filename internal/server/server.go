// Package server exposes the palette tables and color conversions over
// HTTP, with prometheus metrics on a separate listener.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"colorfy"
	"colorfy/internal/config"
	"colorfy/internal/ui"
	"colorfy/palette"
)

// Server serves the palette API.
type Server struct {
	cfg    *config.Config
	server *http.Server
	ln     net.Listener
}

// NewServer creates a palette API server with the given configuration.
func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /api/themes", s.instrument("themes", s.handleThemes))
	mux.Handle("GET /api/themes/{theme}", s.instrument("theme", s.handleTheme))
	mux.Handle("GET /api/css/{theme}", s.instrument("css", s.handleCSS))
	mux.Handle("GET /api/convert", s.instrument("convert", s.handleConvert))
	mux.Handle("GET /api/blend", s.instrument("blend", s.handleBlend))

	s.server = &http.Server{
		Addr:         cfg.Listen,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens and serves until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	s.ln = ln
	ui.LogStatus("success", "Palette API listening on "+ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// instrument wraps a handler with token auth, request counting and timing.
func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if !s.authorize(r) {
			MetricAuthFailures.Inc()
			MetricRequests.WithLabelValues(route, "401").Inc()
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		h(rec, r)

		MetricRequests.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
		MetricDuration.Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	type themeInfo struct {
		Name   string `json:"name"`
		Colors int    `json:"colors"`
	}
	out := make([]themeInfo, 0, len(palette.Themes))
	for _, name := range palette.ThemeNames() {
		out = append(out, themeInfo{Name: name, Colors: len(palette.Themes[name])})
	}
	writeJSON(w, http.StatusOK, map[string]any{"themes": out})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("theme")
	theme, ok := palette.Themes[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown theme " + name})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "colors": theme})
}

// handleCSS renders a theme as a CSS custom-property sheet. Entries come out
// as both the raw hex value and an rgba() form.
func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("theme")
	theme, ok := palette.Themes[name]
	if !ok {
		http.Error(w, "unknown theme "+name, http.StatusNotFound)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":root {\n")
	for _, colorName := range theme.Names() {
		c, err := colorfy.FromHex(theme[colorName])
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", name, colorName, c.Hex())
		fmt.Fprintf(&b, "  --%s-%s-rgba: %s;\n", name, colorName, c.CSS())
	}
	fmt.Fprintf(&b, "}\n")

	MetricConversions.WithLabelValues("css").Inc()
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, b.String())
}

// conversion is the convert endpoint's response shape.
type conversion struct {
	Hex        string  `json:"hex"`
	R          int     `json:"r"`
	G          int     `json:"g"`
	B          int     `json:"b"`
	A          int     `json:"a"`
	H          float64 `json:"h"`
	S          float64 `json:"s"`
	L          float64 `json:"l"`
	CSS        string  `json:"css"`
	Bright     bool    `json:"bright"`
	Gray       string  `json:"gray"`
	Complement string  `json:"complement"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	c, err := colorfy.Parse(r.URL.Query().Get("color"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	MetricConversions.WithLabelValues("convert").Inc()
	writeJSON(w, http.StatusOK, describe(c))
}

func (s *Server) handleBlend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := colorfy.Parse(q.Get("from"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from: " + err.Error()})
		return
	}
	to, err := colorfy.Parse(q.Get("to"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to: " + err.Error()})
		return
	}

	ratio := 0.5
	if raw := q.Get("ratio"); raw != "" {
		ratio, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ratio: " + err.Error()})
			return
		}
	}

	blended, err := from.Blend(to, ratio)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	MetricConversions.WithLabelValues("blend").Inc()
	writeJSON(w, http.StatusOK, describe(blended))
}

func describe(c colorfy.Color) conversion {
	r, g, b, a := c.RGBA()
	h, s, l := c.HSL()
	return conversion{
		Hex:        c.Hex(),
		R:          r,
		G:          g,
		B:          b,
		A:          a,
		H:          h,
		S:          s,
		L:          l,
		CSS:        c.CSS(),
		Bright:     c.IsBright(),
		Gray:       c.Gray().Hex(),
		Complement: c.Complement().Hex(),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
