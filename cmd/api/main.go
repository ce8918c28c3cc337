package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsdesk/internal/config"
	"newsdesk/internal/infra/adapter/persistence/memory"
	"newsdesk/internal/infra/adapter/persistence/sqlstore"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/seed"
	"newsdesk/internal/infra/worker"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/slo"
	"newsdesk/internal/observability/tracing"
	envcfg "newsdesk/internal/pkg/config"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/circuitbreaker"

	adminUC "newsdesk/internal/usecase/admin"
	artUC "newsdesk/internal/usecase/article"
	catUC "newsdesk/internal/usecase/category"
	commentUC "newsdesk/internal/usecase/comment"

	hhttp "newsdesk/internal/handler/http"
	hadmin "newsdesk/internal/handler/http/admin"
	harticle "newsdesk/internal/handler/http/article"
	hauth "newsdesk/internal/handler/http/auth"
	hcategory "newsdesk/internal/handler/http/category"
	hcomment "newsdesk/internal/handler/http/comment"
	"newsdesk/internal/handler/http/middleware"
	"newsdesk/internal/handler/http/requestid"
	hrss "newsdesk/internal/handler/http/rss"
	authservice "newsdesk/internal/service/auth"

	_ "newsdesk/docs" // swagger docs
)

// @title           Newsdesk API
// @version         1.0
// @description     News publishing backend: articles, categories, moderated comments and an RSS feed.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by /api/admin/login, sent as "Bearer {token}".

func main() {
	logger := initLogger()
	cfg := loadConfig(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		SampleRatio: cfg.Tracing.SampleRatio,
		Version:     cfg.Version,
	}, logger)
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := initStorage(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to initialise storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	if cfg.Storage.Seed {
		seedData(ctx, logger, store)
	}

	components := setupServer(ctx, logger, cfg, store)
	runServer(ctx, cancel, logger, cfg, components)

	if err := shutdownTracing(context.Background()); err != nil {
		logger.Warn("tracing shutdown failed", slog.Any("error", err))
	}
}

// initLogger installs the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.FromEnv()
	slog.SetDefault(logger)
	return logger
}

// loadConfig resolves and validates the configuration, exiting on errors.
// Environment fallbacks are logged and counted, not fatal.
func loadConfig(logger *slog.Logger) config.AppConfig {
	cfg, report, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	for _, w := range report.Warnings {
		logger.Warn("configuration fallback", slog.String("warning", w))
	}
	envcfg.NewConfigMetrics("newsdesk", prometheus.DefaultRegisterer).RecordLoad(report.FallbackFields)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("config_file", report.File),
		slog.String("storage", cfg.Storage.Backend),
		slog.Bool("admin_auth_required", cfg.Auth.Required),
		slog.Bool("tokens_enabled", cfg.TokensEnabled()),
		slog.Bool("tracing", cfg.Tracing.Enabled))
	if !cfg.Auth.Required {
		logger.Warn("admin endpoints are NOT protected; set ADMIN_AUTH_REQUIRED=true and JWT_SECRET in production")
	}
	return cfg
}

// Storage bundles the repositories of one backend.
type Storage struct {
	Admins     repository.AdminRepository
	Categories repository.CategoryRepository
	Articles   repository.ArticleRepository
	Comments   repository.CommentRepository

	Pinger       hhttp.Pinger
	DB           *sql.DB
	BreakerState func() string
	Close        func() error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// initStorage builds the configured backend. SQL backends are migrated and
// every query runs through the DB circuit breaker.
func initStorage(ctx context.Context, logger *slog.Logger, cfg config.AppConfig) (*Storage, error) {
	if cfg.Storage.Backend == config.BackendMemory {
		s := memory.NewStore()
		logger.Info("using in-memory storage; data is lost on restart")
		return &Storage{
			Admins:     memory.NewAdminRepo(s),
			Categories: memory.NewCategoryRepo(s),
			Articles:   memory.NewArticleRepo(s),
			Comments:   memory.NewCommentRepo(s),
			Pinger:     s,
			Close:      func() error { return nil },
		}, nil
	}

	dialect, err := db.ParseDialect(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}
	dsn := cfg.Storage.DatabaseURL
	if dialect == db.SQLite {
		dsn = cfg.Storage.SQLitePath
	}

	conn, err := db.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(ctx, conn, dialect); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	cb := circuitbreaker.NewDBCircuitBreakerWithConfig(conn, sqlstore.BreakerConfig())
	return &Storage{
		Admins:       sqlstore.NewAdminRepo(cb, dialect),
		Categories:   sqlstore.NewCategoryRepo(cb, dialect),
		Articles:     sqlstore.NewArticleRepo(cb, dialect),
		Comments:     sqlstore.NewCommentRepo(cb, dialect),
		Pinger:       pingFunc(cb.PingContext),
		DB:           conn,
		BreakerState: func() string { return cb.State().String() },
		Close:        conn.Close,
	}, nil
}

// seedData loads the demo data set. Failures are logged; the server still
// starts with whatever was written.
func seedData(ctx context.Context, logger *slog.Logger, store *Storage) {
	err := seed.Seed(ctx, seed.Repos{
		Admins:     store.Admins,
		Categories: store.Categories,
		Articles:   store.Articles,
	}, seed.Options{})
	if err != nil {
		logger.Error("failed to seed demo data", slog.Any("error", err))
		return
	}
	logger.Info("demo data seeded")
}

// ServerComponents holds what runServer needs to serve and clean up.
type ServerComponents struct {
	Handler      http.Handler
	LoginLimiter *hhttp.RateLimiter
	Scheduler    *worker.Scheduler
}

// setupServer wires services, routes, middleware and the stats scheduler.
func setupServer(ctx context.Context, logger *slog.Logger, cfg config.AppConfig, store *Storage) *ServerComponents {
	catSvc := &catUC.Service{Repo: store.Categories}
	artSvc := &artUC.Service{Repo: store.Articles, Categories: store.Categories, Logger: logger}
	commentSvc := &commentUC.Service{Repo: store.Comments, Articles: store.Articles, Logger: logger}
	adminSvc := &adminUC.Service{Admins: store.Admins, Articles: store.Articles, Comments: store.Comments, Logger: logger}
	authSvc := authservice.NewAuthService(adminSvc, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	var loginLimiter *hhttp.RateLimiter
	if cfg.Auth.LoginRateLimit > 0 {
		loginLimiter = hhttp.NewRateLimiter(cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow)
	} else {
		logger.Warn("login rate limiting is DISABLED")
	}

	mux := setupRoutes(cfg, store, loginLimiter, catSvc, artSvc, commentSvc, adminSvc, authSvc)
	handler := applyMiddleware(logger, cfg, mux, authSvc)

	scheduler := worker.NewScheduler(ctx, logger, worker.NewMetrics(prometheus.DefaultRegisterer))
	statsJob := worker.StatsRefreshJob(cfg.Stats.RefreshSchedule, adminSvc)
	if err := scheduler.Add(statsJob); err != nil {
		logger.Error("failed to schedule stats refresh", slog.Any("error", err))
		os.Exit(1)
	}
	// prime the gauges so /metrics is populated before the first tick
	_ = scheduler.RunOnce(statsJob)

	sloJob := worker.SLORefreshJob(cfg.Stats.SLORefreshSchedule, slo.NewTracker(prometheus.DefaultGatherer))
	if err := scheduler.Add(sloJob); err != nil {
		logger.Error("failed to schedule SLO refresh", slog.Any("error", err))
		os.Exit(1)
	}

	return &ServerComponents{
		Handler:      handler,
		LoginLimiter: loginLimiter,
		Scheduler:    scheduler,
	}
}

// setupRoutes registers every public, admin and operational route.
func setupRoutes(
	cfg config.AppConfig,
	store *Storage,
	loginLimiter *hhttp.RateLimiter,
	catSvc *catUC.Service,
	artSvc *artUC.Service,
	commentSvc *commentUC.Service,
	adminSvc *adminUC.Service,
	authSvc *authservice.AuthService,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Store:        store.Pinger,
		Backend:      cfg.Storage.Backend,
		DB:           store.DB,
		BreakerState: store.BreakerState,
		Limiter:      loginLimiter,
		Version:      cfg.Version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store.Pinger})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	hcategory.Register(mux, catSvc)
	harticle.Register(mux, artSvc, cfg.PaginationParams())
	hcomment.Register(mux, commentSvc)
	hadmin.Register(mux, adminSvc)
	hrss.Register(mux, artSvc, hrss.Site{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		URL:         cfg.Site.URL,
		Language:    cfg.Site.Language,
		ItemLimit:   cfg.Site.RSSItemLimit,
	})

	var login http.Handler = hauth.LoginHandler(authSvc)
	if loginLimiter != nil {
		login = loginLimiter.Limit(login)
	}
	mux.Handle("POST /api/admin/login", login)

	return mux
}

// applyMiddleware wraps the router with the middleware chain.
// Order, outermost first: CORS → Request ID → Tracing → Recovery → Logging →
// Metrics → Input validation → Body limit → Timeout → Admin guard.
func applyMiddleware(logger *slog.Logger, cfg config.AppConfig, handler http.Handler, authSvc *authservice.AuthService) http.Handler {
	logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.HTTP.AllowedOrigins))

	chain := handler
	if cfg.Auth.Required {
		chain = hauth.Authz(authSvc)(chain)
	}
	chain = hhttp.Timeout(cfg.HTTP.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.HTTP.RequestBodyLimit)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxAge:         600,
		Logger:         logger,
	})(chain)
	return chain
}

// runServer serves until SIGINT/SIGTERM, then drains requests and jobs.
func runServer(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, cfg config.AppConfig, components *ServerComponents) {
	if components.LoginLimiter != nil {
		go hhttp.StartRateLimitCleanup(ctx, components.LoginLimiter,
			hhttp.DefaultCleanupInterval, 2*cfg.Auth.LoginRateWindow, logger)
	}
	components.Scheduler.Start()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := components.Scheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduled jobs did not finish", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
