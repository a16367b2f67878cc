// Package api provides a read-only HTTP view of the farm and the season
// rules: current date, per-location crop counts, and the last sweep summary.
// Handlers never touch the live farm; they serve a snapshot published from
// the engine's logic goroutine after each day.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/talgya/cropwarden/internal/farm"
	"github.com/talgya/cropwarden/internal/warden"
)

// Server serves the farm state over HTTP.
type Server struct {
	Farm   *farm.Farm
	Warden *warden.Warden
	Port   int

	mu     sync.Mutex
	latest statusResponse
}

// Start begins serving the HTTP API in a goroutine. A zero port disables it.
func (s *Server) Start() {
	if s.Port == 0 {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)

	addr := fmt.Sprintf(":%d", s.Port)
	go func() {
		slog.Info("status API listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("status API stopped", "error", err)
		}
	}()
}

// Update rebuilds the published snapshot from the live farm. Must run on the
// engine's logic goroutine: it walks the location feature maps the engine
// mutates, so it can never overlap a day step.
func (s *Server) Update() {
	resp := statusResponse{
		Day:       s.Farm.Day,
		Date:      s.Farm.Date(),
		Season:    s.Farm.Season().String(),
		LastSweep: s.Warden.Last,
	}

	total := 0
	for _, loc := range s.Farm.Locations() {
		ls := locationStatus{Name: loc.Name()}
		for _, f := range loc.Features() {
			if !f.IsSoil() {
				continue
			}
			c := f.Crop()
			if c == nil {
				continue
			}
			ls.Crops++
			if c.Growth().Dead {
				ls.Dead++
			}
		}
		total += ls.Crops
		resp.Locations = append(resp.Locations, ls)
	}
	resp.Crops = humanize.Comma(int64(total))

	s.mu.Lock()
	s.latest = resp
	s.mu.Unlock()
}

type statusResponse struct {
	Day       int               `json:"day"`
	Date      string            `json:"date"`
	Season    string            `json:"season"`
	Crops     string            `json:"crops"` // humanized total
	Locations []locationStatus  `json:"locations"`
	LastSweep warden.SweepStats `json:"last_sweep"`
}

type locationStatus struct {
	Name  string `json:"name"`
	Crops int    `json:"crops"`
	Dead  int    `json:"dead"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	resp := s.latest
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode status", "error", err)
	}
}
