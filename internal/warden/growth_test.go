package warden

import (
	"testing"

	"github.com/talgya/cropwarden/internal/farm"
	"github.com/talgya/cropwarden/internal/host"
)

// testCrop plants a crop with the given schedule into a standalone plot.
func testCrop(days []int, regrows bool) host.Crop {
	plot := &farm.Plot{}
	return plot.Plant(farm.Variety{Name: "test", PhaseDays: days, Regrows: regrows})
}

func TestAdvanceInSeasonLeavesCountersAlone(t *testing.T) {
	c := testCrop([]int{1, 2, 3}, false)
	g := c.Growth()
	g.Phase = 1
	g.DayOfPhase = 1

	Advance(c, false, false)

	if g.Phase != 1 || g.DayOfPhase != 1 {
		t.Errorf("in-season advance mutated counters: phase=%d day=%d", g.Phase, g.DayOfPhase)
	}
	if g.FullyGrown {
		t.Error("crop below final phase should not be fully grown")
	}
}

func TestAdvanceInSeasonPromotesFinalPhase(t *testing.T) {
	c := testCrop([]int{1, 2, 3}, false)
	g := c.Growth()
	g.Phase = 2
	g.DayOfPhase = 1

	Advance(c, false, false)

	if !g.FullyGrown {
		t.Error("crop at final phase should be marked fully grown")
	}
	if g.Phase != 2 || g.DayOfPhase != 1 {
		t.Errorf("counters should be untouched: phase=%d day=%d", g.Phase, g.DayOfPhase)
	}
}

func TestAdvanceOutOfSeasonRollsPhases(t *testing.T) {
	c := testCrop([]int{2, 2, 3}, false)
	g := c.Growth()
	g.Phase = 0
	g.DayOfPhase = 1

	Advance(c, true, false)

	if g.Phase != 1 || g.DayOfPhase != 0 {
		t.Errorf("expected rollover to phase 1 day 0, got phase=%d day=%d", g.Phase, g.DayOfPhase)
	}
	if g.FullyGrown {
		t.Error("mid-schedule crop should not be fully grown")
	}
}

func TestAdvanceOutOfSeasonKeepsInvariant(t *testing.T) {
	days := []int{1, 1, 2, 2, 2}
	c := testCrop(days, false)
	g := c.Growth()

	for i := 0; i < 50; i++ {
		Advance(c, true, false)
		if g.Phase < 0 || g.Phase >= len(days) {
			t.Fatalf("phase %d out of range after %d days", g.Phase, i+1)
		}
		if g.DayOfPhase >= days[g.Phase] {
			t.Fatalf("day %d >= schedule %d at phase %d", g.DayOfPhase, days[g.Phase], g.Phase)
		}
	}
}

func TestRegrowableHeldShortOfHarvest(t *testing.T) {
	days := []int{1, 1, 2, 2, 2}
	c := testCrop(days, true)
	g := c.Growth()
	g.Phase = 3
	g.DayOfPhase = 1
	g.FullyGrown = true

	// Any number of consecutive out-of-season days must never present the
	// crop as harvest-ready.
	for i := 0; i < 90; i++ {
		Advance(c, true, false)
		if g.Phase > len(days)-2 {
			t.Fatalf("held crop reached phase %d after %d days", g.Phase, i+1)
		}
		if g.FullyGrown {
			t.Fatalf("held crop marked fully grown after %d days", i+1)
		}
		if g.DayOfPhase >= days[g.Phase] {
			t.Fatalf("day %d >= schedule %d at phase %d", g.DayOfPhase, days[g.Phase], g.Phase)
		}
	}
}

func TestRegrowableYearRoundNotHeld(t *testing.T) {
	c := testCrop([]int{1, 1}, true)
	g := c.Growth()

	Advance(c, true, true)

	if g.Phase != 1 {
		t.Errorf("year-round regrowable should roll normally, got phase %d", g.Phase)
	}
}

func TestFinalPhaseRolloverClamps(t *testing.T) {
	c := testCrop([]int{4, 4, 4, 4, 5}, false)
	g := c.Growth()
	g.Phase = 4
	g.DayOfPhase = 4

	Advance(c, true, false)

	if g.Phase != 4 || g.DayOfPhase != 0 {
		t.Errorf("expected clamp to final phase day 0, got phase=%d day=%d", g.Phase, g.DayOfPhase)
	}
	if !g.FullyGrown {
		t.Error("crop that finished its final phase should read fully grown")
	}
}

func TestAdvanceEmptySchedule(t *testing.T) {
	c := testCrop(nil, false)
	Advance(c, true, false) // must not panic
	if g := c.Growth(); g.Phase != 0 || g.DayOfPhase != 0 {
		t.Errorf("empty schedule mutated: %+v", g)
	}
}
