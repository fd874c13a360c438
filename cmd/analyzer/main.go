package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/config"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/agents"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/api"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/cache"
	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/database"
	slackpkg "github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/slack"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("🚀 TikTok Virality Analyzer Starting...")

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	// Storage: Postgres when configured, memory otherwise
	var store database.AnalysisStore
	var dbHealth api.HealthChecker
	if cfg.DatabaseURL != "" {
		db, err := database.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.CreateTables(ctx); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}

		log.Println("✅ Database connected and ready")
		store = database.NewAnalysisRepository(db)
		dbHealth = db
	} else {
		log.Println("⚠️ DATABASE_URL not set, keeping analyses in memory")
		store = database.NewMemoryStore()
	}

	var sessions cache.SessionCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisSessionCache(ctx, cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		sessions = redisCache
	} else {
		sessions = cache.NewMemorySessionCache(cfg.SessionTTL)
	}

	rules := agents.DefaultRules
	if cfg.CategoryRulesPath != "" {
		loaded, err := agents.LoadRules(cfg.CategoryRulesPath)
		if err != nil {
			log.Fatalf("Failed to load category rules: %v", err)
		}
		log.Printf("📚 Loaded %d category rules from %s", len(loaded), cfg.CategoryRulesPath)
		rules = loaded
	}

	// Agents
	rng := agents.NewRandomSource(0)
	analyzer := agents.NewAnalyzerAgent(
		agents.NewCategorizerAgent(rules),
		agents.NewContentGeneratorAgent(rng),
		agents.NewMetricsGenerator(rng),
		agents.NewSchedulerAgent(cfg.Timezone),
		agents.NewWhisperTranscriber(cfg.PythonBin, cfg.ScriptsDir, cfg.WhisperModel),
	)

	metrics := api.NewMetrics()
	handler := api.NewAnalysisHandler(analyzer, store, sessions, metrics, cfg.UploadDir, cfg.DefaultProfile)

	opts := api.RouterOptions{
		Logger:     api.NewLogger(os.Stdout, cfg.LogLevel),
		Metrics:    metrics,
		SessionTTL: cfg.SessionTTL,
		Database:   dbHealth,
	}

	if cfg.SlackEnabled() {
		slackClient, err := slackpkg.NewClient(cfg.SlackToken)
		if err != nil {
			log.Fatalf("Failed to start Slack bot: %v", err)
		}

		tracker := slackpkg.NewSummaryTracker()
		commandHandler := slackpkg.NewCommandHandler(slackClient, analyzer, store, tracker, cfg.DefaultProfile)
		slackServer := slackpkg.NewServer(
			slackpkg.NewMessageHandler(slackClient, commandHandler),
			slackpkg.NewReactionHandler(commandHandler, tracker),
			cfg.SlackSigningSecret,
		)
		opts.SlackEvents = slackServer.Handler()
		log.Println("💬 Slack: Connected and listening on /slack/events")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Setup(handler, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🌐 HTTP API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Println("✅ System initialized successfully")
	log.Printf("🎛️ Default profile: %s", cfg.DefaultProfile)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}
}
