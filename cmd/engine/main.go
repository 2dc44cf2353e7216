package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"prospect-engine/internal/audit"
	"prospect-engine/internal/config"
	"prospect-engine/internal/enrich"
	"prospect-engine/internal/events"
	"prospect-engine/internal/httpapi"
	"prospect-engine/internal/notify"
	"prospect-engine/internal/pipeline"
	"prospect-engine/internal/rotation"
	"prospect-engine/internal/secrets"
	"prospect-engine/internal/serp"
	"prospect-engine/internal/store"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("PROSPECT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !vr.OK() {
		log.Fatalf("[config] invalid: %s", strings.Join(vr.Errors, "; "))
	}

	serpKey := mustSecret(secrets.SerpAPIKey)
	geminiKey := mustSecret(secrets.GeminiAPIKey)
	leadToken := mustSecret(secrets.LeadBotToken)
	logToken := mustSecret(secrets.LogBotToken)

	db, err := store.Open(filepath.Join(dataDir, "prospect.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	csvPath := cfg.Output.LeadsCSV
	if !filepath.IsAbs(csvPath) {
		csvPath = filepath.Join(dataDir, csvPath)
	}
	leadStore := store.NewLeadCSV(csvPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	search := serp.New(serpKey, cfg.Provider.RequestsPerSecond, cfg.Provider.Burst)
	resolver := enrich.NewResolver(search, enrich.Options{
		CacheSize:      cfg.Enrich.CacheSize,
		DeepScan:       cfg.Enrich.DeepScan,
		PageFetchLimit: cfg.Enrich.PageFetchLimit,
	})

	generator, err := audit.NewGeminiGenerator(ctx, geminiKey, cfg.Audit.Model)
	if err != nil {
		log.Fatal(err)
	}
	defer generator.Close()

	sink, err := notify.NewTelegramSink(leadToken, logToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	metrics := pipeline.NewMetrics()

	orch := &pipeline.Orchestrator{
		Rotator:   rotation.New(cfg.Scan.Locations, cfg.Scan.Categories),
		Search:    search,
		Enrich:    resolver,
		Generator: generator,
		Store:     leadStore,
		DB:        db,
		Sink:      sink,
		Hub:       hub,
		Metrics:   metrics,
		MinRating: cfg.Filters.MinRating,
	}
	runner := &pipeline.Runner{
		Orch:     orch,
		Interval: time.Duration(cfg.Scan.IntervalSeconds) * time.Second,
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db,
		Hub:          hub,
		LeadsCSVPath: csvPath,
		Status:       runner.Status,
		TriggerScan:  runner.TryStartAsync,
		Metrics:      promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
	})

	port := cfg.App.Port
	if p := os.Getenv("PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := sink.Send(ctx, notify.Lead, "🚀 **Lead Sniper Started!** Overnight hunting begins now."); err != nil {
		log.Printf("[engine] startup notice failed: %v", err)
	}
	if err := sink.Send(ctx, notify.Log, "🛠️ **Log Sniper Started!** System is monitoring..."); err != nil {
		log.Printf("[engine] startup notice failed: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		sink.ListenCommands(gctx, csvPath)
		return nil
	})
	g.Go(func() error {
		log.Printf("[engine] listening on %s (db=%s, csv=%s)", addr, filepath.Join(dataDir, "prospect.db"), csvPath)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("[engine] stopped")
}

func mustSecret(account string) string {
	v, err := secrets.Get(account)
	if err != nil {
		log.Fatal(err)
	}
	return v
}
