// Command cropwarden runs the demo farm with the season rules attached:
// crops are tagged with their planted season, out-of-season crops survive
// and keep growing, and regrowable crops wait out the off-season one stage
// short of harvest.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/talgya/cropwarden/internal/api"
	"github.com/talgya/cropwarden/internal/config"
	"github.com/talgya/cropwarden/internal/farm"
	"github.com/talgya/cropwarden/internal/host"
	"github.com/talgya/cropwarden/internal/persistence"
	"github.com/talgya/cropwarden/internal/warden"
)

func main() {
	configPath := envOrDefault("CROPWARDEN_CONFIG", "config.json")
	dbPath := os.Getenv("CROPWARDEN_DB")
	apiPort := envIntOrDefault("CROPWARDEN_API_PORT", 8080)
	seed := int64(envIntOrDefault("CROPWARDEN_SEED", 0))
	daySeconds := envIntOrDefault("CROPWARDEN_DAY_SECONDS", 2)

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.DebugLogging {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Info("cropwarden starting",
		"config", configPath,
		"year_round", cfg.YearRoundLocations,
		"winter_kills", cfg.WinterKillsCrops,
	)

	// ── Tag store ─────────────────────────────────────────────────────
	var tags warden.TagStore = warden.AnnotationStore{}
	if dbPath != "" {
		db, err := persistence.Open(dbPath)
		if err != nil {
			slog.Error("failed to open tag database", "path", dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		tags = persistence.NewTagStore(db)
		slog.Info("tag side table opened", "path", dbPath)
	}

	// ── Farm world ────────────────────────────────────────────────────
	genCfg := farm.DefaultGenConfig()
	genCfg.Seed = seed
	f := farm.Generate(genCfg)
	slog.Info("farm generated", "date", f.Date(), "locations", len(f.Locations()))

	// ── Rules over the farm ───────────────────────────────────────────
	w := warden.New(f, tags, cfg)

	eng := farm.NewEngine(f)
	eng.Interval = time.Duration(daySeconds) * time.Second
	eng.OnSaveLoaded = w.OnSaveLoaded
	eng.OnDayStarted = func() { w.OnDayStarted() }
	eng.OnTerrainChanged = func(added map[host.Point]host.TerrainFeature) { w.OnTerrainChanged(added) }

	srv := &api.Server{Farm: f, Warden: w, Port: apiPort}
	eng.OnDayEnded = srv.Update
	srv.Update() // initial snapshot before the engine starts
	srv.Start()

	go eng.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
	eng.Stop()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
