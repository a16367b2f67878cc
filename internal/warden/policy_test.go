package warden

import (
	"testing"

	"github.com/talgya/cropwarden/internal/config"
	"github.com/talgya/cropwarden/internal/farm"
)

func TestYearRound(t *testing.T) {
	cfg := config.Default() // contains "Greenhouse"
	f := farm.New(1)

	if !YearRound(f.AddLocation("greenhouse", 2, true), cfg) {
		t.Error("matching should be case-insensitive")
	}
	if YearRound(f.AddLocation("Farm", 2, false), cfg) {
		t.Error("Farm should not be year-round")
	}
	if YearRound(nil, cfg) {
		t.Error("nil location should never be year-round")
	}
}
