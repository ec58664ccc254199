package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"puckline/internal/ai"
	"puckline/internal/client/newsfeed"
	"puckline/internal/client/nhl"
	"puckline/internal/client/sportsbook"
	"puckline/internal/config"
	cronrunner "puckline/internal/cron"
	"puckline/internal/db"
	"puckline/internal/handler"
	"puckline/internal/logger"
	gormrepository "puckline/internal/repository/gorm"
	"puckline/internal/service"

	_ "puckline/docs"
)

func main() {
	cfgPath := os.Getenv("PL_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("PL_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	scheduleHTTP := &http.Client{Timeout: cfg.Schedule.Timeout}
	scheduleClient := nhl.NewClient(scheduleHTTP, cfg.Schedule.BaseURL)
	books := buildBooks(cfg.Sportsbook, logger)
	feedClient := newsfeed.NewClient(&http.Client{Timeout: cfg.News.Timeout})
	completer := buildCompleter(cfg.AI, logger)

	syncSvc := &service.SportsbookSyncService{
		Repo:     store,
		Schedule: scheduleClient,
		Books:    books,
		Config:   cfg.Schedule,
		Logger:   logger,
	}
	newsSvc := &service.NewsSyncService{
		Repo:   store,
		Feeds:  feedClient,
		Config: cfg.News,
		Logger: logger,
	}
	analysisSvc := &service.AnalysisService{
		Repo:     store,
		AI:       completer,
		CacheTTL: cfg.AI.CacheTTL,
		Logger:   logger,
	}
	parlaySvc := &service.ParlayService{Repo: store, Logger: logger}
	oddsQuerySvc := &service.OddsQueryService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)
	(&handler.TeamsHandler{Repo: store}).Register(engine)
	(&handler.GamesHandler{Repo: store, Sync: syncSvc, Logger: logger}).Register(engine)
	(&handler.OddsHandler{Repo: store, Query: oddsQuerySvc, Sync: syncSvc, Logger: logger}).Register(engine)
	(&handler.PropsHandler{Repo: store, Sync: syncSvc, Logger: logger}).Register(engine)
	(&handler.NewsHandler{Repo: store, Sync: newsSvc, Logger: logger}).Register(engine)
	(&handler.ParlaysHandler{Repo: store, Parlays: parlaySvc, Logger: logger}).Register(engine)
	(&handler.AnalysisHandler{Analysis: analysisSvc, Logger: logger}).Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := syncSvc.EnsureTeams(ctx); err != nil {
		logger.Fatal("team seed failed", zap.Error(err))
	}

	// Warm the schedule and rosters so the API has data before the first
	// cron tick.
	if _, err := syncSvc.RefreshGames(ctx); err != nil {
		logger.Warn("initial schedule refresh failed (continuing)", zap.Error(err))
	}
	if _, err := syncSvc.RefreshRosters(ctx); err != nil {
		logger.Warn("initial roster refresh failed (continuing)", zap.Error(err))
	}

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		jobs := &cronrunner.Jobs{
			Sync:     syncSvc,
			News:     newsSvc,
			Analysis: analysisSvc,
			Logger:   logger,
		}
		if err := jobs.Register(cronRunner, cfg.Cron); err != nil {
			logger.Fatal("cron register failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	if cfg.Settlement.Enabled {
		settlement := &service.SettlementService{
			Parlays:  parlaySvc,
			Sync:     syncSvc,
			Interval: cfg.Settlement.ScanInterval,
			Logger:   logger,
		}
		go settlement.Run(ctx)
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// buildBooks constructs one provider per configured sportsbook. Books
// without an API key fall back to the deterministic simulator so the rest
// of the pipeline stays usable in development.
func buildBooks(cfg config.SportsbookConfig, logger *zap.Logger) []sportsbook.Provider {
	configured := cfg.Books
	if len(configured) == 0 {
		configured = []config.BookConfig{
			{Name: sportsbook.BookDraftKings},
			{Name: sportsbook.BookFanDuel},
		}
	}
	books := make([]sportsbook.Provider, 0, len(configured))
	for _, book := range configured {
		apiKey := ""
		if book.APIKeyEnv != "" {
			apiKey = strings.TrimSpace(os.Getenv(book.APIKeyEnv))
		}
		if apiKey == "" || book.BaseURL == "" {
			logger.Info("sportsbook running simulated", zap.String("book", book.Name))
			books = append(books, sportsbook.NewSimulated(book.Name))
			continue
		}
		timeout := book.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		books = append(books, sportsbook.NewClient(
			&http.Client{Timeout: timeout}, book.Name, book.BaseURL, apiKey))
	}
	return books
}

// buildCompleter picks the live Anthropic client when a key is present and
// the canned fallback otherwise.
func buildCompleter(cfg config.AIConfig, logger *zap.Logger) ai.Completer {
	apiKey := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if apiKey == "" {
		logger.Info("ai running with fallback completions", zap.String("key_env", cfg.APIKeyEnv))
		return ai.Fallback{}
	}
	return ai.NewAnthropicClient(apiKey, cfg.Model, cfg.MaxTokens, cfg.Temperature)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
