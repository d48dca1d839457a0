// Package web serves the dashboard over HTTP: the page, the chart images, JSON views
// and a websocket that pushes re-rendered charts.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/panel"
	"StockDashboard/internal/selector"
	"StockDashboard/internal/state"
)

// Server is the HTTP surface of one dashboard.
type Server struct {
	Dashboard *state.Dashboard
	Selector  *selector.Selector
	Symbol    string

	mux *http.ServeMux
}

// New creates a Server bound to dash.
func New(dash *state.Dashboard, symbol string) *Server {
	s := &Server{
		Dashboard: dash,
		Selector:  selector.New(dash),
		Symbol:    symbol,
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /select", s.handleSelect)
	s.mux.HandleFunc("GET /chart.png", s.handleChart(chart.FormatPNG))
	s.mux.HandleFunc("GET /chart.svg", s.handleChart(chart.FormatSVG))
	s.mux.HandleFunc("GET /api/chart", s.handleAPIChart)
	s.mux.HandleFunc("GET /api/metrics", s.handleAPIMetrics)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] web server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown web server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}
	log.Println("[INFO] web server stopped")
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, s.page()); err != nil {
		log.Printf("[ERROR] render page: %v", err)
		http.Error(w, "render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	key, err := s.Selector.Change(r.FormValue("series"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[INFO] series selected: %s", key)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleChart(f chart.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width := chart.DefaultWidth
		if v := r.URL.Query().Get("width"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 4000 {
				http.Error(w, fmt.Sprintf("bad width %q", v), http.StatusBadRequest)
				return
			}
			width = n
		}

		var buf bytes.Buffer
		if err := chart.Draw(&buf, s.Dashboard.Chart(), f, width); err != nil {
			log.Printf("[ERROR] draw chart: %v", err)
			http.Error(w, "draw chart", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", f.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}

func (s *Server) handleAPIChart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Dashboard.Chart())
}

// metricsView is the body of /api/metrics.
type metricsView struct {
	Symbol    string      `json:"symbol"`
	Status    string      `json:"status"`
	LoadError string      `json:"load_error,omitempty"`
	Rows      []panel.Row `json:"rows"`
}

func (s *Server) handleAPIMetrics(w http.ResponseWriter, r *http.Request) {
	cur := s.Dashboard.Current()
	writeJSON(w, metricsView{
		Symbol:    s.Symbol,
		Status:    cur.Status.String(),
		LoadError: cur.LoadError,
		Rows:      panel.Format(cur.Metrics),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] encode json: %v", err)
		http.Error(w, "encode json", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}
