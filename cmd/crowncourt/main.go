// Command crowncourt runs the dynasty diplomacy simulation.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/crowncourt/internal/api"
	"github.com/talgya/crowncourt/internal/diplomacy"
	"github.com/talgya/crowncourt/internal/engine"
	"github.com/talgya/crowncourt/internal/entropy"
	"github.com/talgya/crowncourt/internal/persistence"
	"github.com/talgya/crowncourt/internal/treasury"
	"github.com/talgya/crowncourt/internal/worldmap"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Crowncourt — Dynasty Diplomacy Simulation")

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	store, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Realm Map (always regenerated — deterministic from seed) ──────
	mapCfg := worldmap.DefaultGenConfig()
	mapCfg.Seed = cfg.Seed
	mapCfg.Radius = cfg.MapRadius
	realmMap := worldmap.Generate(mapCfg)
	slog.Info("realm map generated", "radius", realmMap.Radius, "hexes", realmMap.HexCount())

	// ── Randomness ────────────────────────────────────────────────────
	var rng entropy.Source
	if client := entropy.NewClient(cfg.RandomOrgKey); client != nil {
		slog.Info("entropy: random.org enabled")
		rng = client
	} else {
		slog.Info("entropy: seeded", "seed", cfg.Seed)
		rng = entropy.NewSeeded(cfg.Seed)
	}

	// ── Core ──────────────────────────────────────────────────────────
	ledger := treasury.NewLedger(cfg.StartingGold)

	core := diplomacy.New(diplomacy.Config{
		RNG:      rng,
		Treasury: ledger,
		Store:    store,
		Map:      realmMap,
	})
	core.Subscribe(&persistence.EventLogger{Store: store})
	core.LoadState()

	stats := core.StatsSnapshot()
	if stats.TotalKingdoms == 0 {
		slog.Info("no saved state found, seeding kingdoms", "count", cfg.SeedKingdoms)
		core.SeedKingdoms(cfg.SeedKingdoms)
	} else {
		slog.Info("resuming",
			"day", stats.Day,
			"sim_date", engine.SimDate(stats.Day),
			"active_kingdoms", stats.ActiveKingdoms,
		)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Day = core.Day()
	eng.Interval = cfg.DayInterval

	eng.OnDay = func(day int) {
		if err := core.ProcessDaily(day, cfg.ThreatLevel, cfg.DiplomacyBonus); err != nil {
			slog.Error("daily persistence failed", "day", day, "error", err)
		}
		store.SaveMeta("last_day", strconv.Itoa(day))

		if day%engine.DaysPerYear == 0 {
			st := core.StatsSnapshot()
			slog.Info("yearly report",
				"sim_date", engine.SimDate(day),
				"active_kingdoms", st.ActiveKingdoms,
				"living_royals", st.LivingRoyals,
				"average_relation", fmt.Sprintf("%.1f", st.AverageRelation),
				"treasury_gold", humanize.Comma(int64(ledger.Balance())),
			)
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("CROWNCOURT_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}
	apiServer := &api.Server{
		Core:     core,
		Eng:      eng,
		Store:    store,
		Map:      realmMap,
		Port:     cfg.APIPort,
		AdminKey: cfg.AdminKey,
		SeekerID: "player-sovereign",
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	st := core.StatsSnapshot()
	fmt.Printf("\nThe court convenes: %d rival kingdoms, %s gold in the treasury.\n",
		st.ActiveKingdoms, humanize.Comma(int64(ledger.Balance())))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	if err := core.Flush(); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. State saved.")
}
