// The day engine drives the farm forward and delivers the three host
// notifications the season rules subscribe to. All callbacks run on the
// engine's single logic goroutine; a day is fully processed before the next
// notification fires.
package farm

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/talgya/cropwarden/internal/host"
)

// Engine advances the farm one day at a time.
type Engine struct {
	Farm     *Farm
	Interval time.Duration // Real time per farm day

	// Notification hooks, fired in host order: save loaded once at startup,
	// then per day the host's own new-day pass, day started, and terrain
	// changes from new plantings. OnDayEnded fires after the day's
	// notifications settle, for publishing snapshots off the logic
	// goroutine.
	OnSaveLoaded     func()
	OnDayStarted     func()
	OnTerrainChanged func(added map[host.Point]host.TerrainFeature)
	OnDayEnded       func()

	running atomic.Bool
}

// NewEngine creates an engine over a farm with default pacing.
func NewEngine(f *Farm) *Engine {
	return &Engine{
		Farm:     f,
		Interval: 2 * time.Second,
	}
}

// Run fires the save-loaded notification and then advances days until Stop.
// Blocks until stopped.
func (e *Engine) Run() {
	e.running.Store(true)
	slog.Info("farm engine started", "date", e.Farm.Date(), "interval", e.Interval)

	if e.OnSaveLoaded != nil {
		e.OnSaveLoaded()
	}

	for e.running.Load() {
		start := time.Now()

		e.Step()

		if elapsed := time.Since(start); elapsed < e.Interval {
			time.Sleep(e.Interval - elapsed)
		}
	}

	slog.Info("farm engine stopped", "date", e.Farm.Date())
}

// Stop halts the day loop after the current day completes. Safe to call from
// another goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Step advances the farm by one day: the host's native pass first, then the
// day-started notification, then any new plantings with their terrain-change
// notification.
func (e *Engine) Step() {
	e.Farm.Day++
	e.Farm.processNewDay()

	if e.OnDayStarted != nil {
		e.OnDayStarted()
	}

	added := e.Farm.plantDaily()
	if len(added) > 0 && e.OnTerrainChanged != nil {
		e.OnTerrainChanged(added)
	}

	if e.OnDayEnded != nil {
		e.OnDayEnded()
	}
}
