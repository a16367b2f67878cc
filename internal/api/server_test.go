package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/talgya/cropwarden/internal/config"
	"github.com/talgya/cropwarden/internal/farm"
	"github.com/talgya/cropwarden/internal/host"
	"github.com/talgya/cropwarden/internal/warden"
)

func newTestServer(t *testing.T) (*Server, *farm.Engine) {
	t.Helper()
	f := farm.Generate(farm.SmallTestConfig())
	w := warden.New(f, warden.AnnotationStore{}, config.Default())

	eng := farm.NewEngine(f)
	eng.OnDayStarted = func() { w.OnDayStarted() }
	eng.OnTerrainChanged = func(added map[host.Point]host.TerrainFeature) { w.OnTerrainChanged(added) }

	srv := &Server{Farm: f, Warden: w}
	eng.OnDayEnded = srv.Update
	return srv, eng
}

func TestHandleStatus(t *testing.T) {
	srv, eng := newTestServer(t)
	eng.Step()

	rec := httptest.NewRecorder()
	srv.handleStatus(rec, httptest.NewRequest("GET", "/api/v1/status", nil))

	if rec.Code != 200 {
		t.Fatalf("status %d", rec.Code)
	}

	var resp statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Season != srv.Farm.Season().String() {
		t.Errorf("season %q, want %q", resp.Season, srv.Farm.Season().String())
	}
	if len(resp.Locations) != len(srv.Farm.Locations()) {
		t.Errorf("got %d locations, want %d", len(resp.Locations), len(srv.Farm.Locations()))
	}
	if resp.LastSweep.Crops == 0 {
		t.Error("last sweep should report crops after a day sweep")
	}
}

func TestHandleStatusRejectsPost(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleStatus(rec, httptest.NewRequest("POST", "/api/v1/status", nil))

	if rec.Code != 405 {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

// Status requests must stay safe while the engine advances days on its own
// goroutine: handlers only ever read the published snapshot, never the live
// feature maps.
func TestHandleStatusConcurrentWithEngine(t *testing.T) {
	srv, eng := newTestServer(t)
	srv.Update()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			eng.Step()
		}
	}()

	for {
		rec := httptest.NewRecorder()
		srv.handleStatus(rec, httptest.NewRequest("GET", "/api/v1/status", nil))
		if rec.Code != 200 {
			t.Fatalf("status %d", rec.Code)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
