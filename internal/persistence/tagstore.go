package persistence

import (
	"log/slog"

	"github.com/talgya/cropwarden/internal/almanac"
	"github.com/talgya/cropwarden/internal/host"
)

// TagStore is a warden tag store backed by the SQLite side table, with an
// in-memory read cache. Used on the host's single logic thread only.
type TagStore struct {
	db    *DB
	cache map[string]almanac.Season
}

// NewTagStore creates a tag store over an open database.
func NewTagStore(db *DB) *TagStore {
	return &TagStore{
		db:    db,
		cache: make(map[string]almanac.Season),
	}
}

// EnsureTagged records the season for a crop unless a tag already exists.
// Database errors leave the crop untagged for the next backfill.
func (s *TagStore) EnsureTagged(c host.Crop, season almanac.Season) {
	if _, ok := s.PlantedSeason(c); ok {
		return
	}
	if err := s.db.TagCrop(c.ID(), season.String()); err != nil {
		slog.Warn("season tag write failed", "crop", c.ID(), "error", err)
		return
	}
	s.cache[c.ID()] = season
}

// PlantedSeason returns the recorded tag, if any.
func (s *TagStore) PlantedSeason(c host.Crop) (almanac.Season, bool) {
	if season, ok := s.cache[c.ID()]; ok {
		return season, true
	}
	raw, ok, err := s.db.PlantedSeason(c.ID())
	if err != nil {
		slog.Warn("season tag read failed", "crop", c.ID(), "error", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}
	season, ok := almanac.ParseSeason(raw)
	if !ok {
		return 0, false
	}
	s.cache[c.ID()] = season
	return season, true
}
