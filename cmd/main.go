package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/espresso-tracker/internal/handlers"
	"github.com/sbilibin2017/espresso-tracker/internal/jwt"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/metrics"
	"github.com/sbilibin2017/espresso-tracker/internal/middlewares"
	"github.com/sbilibin2017/espresso-tracker/internal/migrations"
	"github.com/sbilibin2017/espresso-tracker/internal/repositories"
	"github.com/sbilibin2017/espresso-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/espresso-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title espresso-tracker API
// @version 1.0.0
// @description Tracker for espresso brewing sessions: beans, extraction records and per-user equipment defaults
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Empty RedisHost disables the identity cache.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	JWTSecretKey string
	JWTExp       time.Duration

	AllowedOrigins []string

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

func (c *config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, JWT, CORS and rate limit configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "espresso")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	redisExpSecond, err := getInt("REDIS_EXP_SECOND", "300")
	if err != nil {
		return nil, err
	}
	cfg.RedisExp = time.Duration(redisExpSecond) * time.Second

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY must be set")
	}
	jwtExpSecond, err := getInt("JWT_EXP_SECOND", "1800")
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// CORS config
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))

	// Rate limit config
	if cfg.AuthRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.AuthRateLimitBurst, err = getInt("AUTH_RATE_LIMIT_BURST", "10"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// routes holds everything the HTTP router dispatches to.
type routes struct {
	registerer handlers.Registerer
	loginer    handlers.Loginer
	tokener    middlewares.Tokener
	resolver   middlewares.IdentityResolver
	beans      handlers.BeanManager
	records    handlers.RecordManager
	settings   handlers.SettingsManager
	limiter    *middlewares.RateLimiter
	metrics    *metrics.Metrics
	cors       *middlewares.CORS
	swaggerURL string
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(rt.metrics.Middleware)
	r.Use(rt.cors.Handler)

	r.Get("/", handlers.NewRootHandler())

	authenticated := middlewares.AuthMiddleware(rt.tokener, rt.resolver)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(rt.limiter.Handler).Post("/register", handlers.NewRegisterHandler(rt.registerer))
			r.With(rt.limiter.Handler).Post("/login", handlers.NewLoginHandler(rt.loginer))
			r.With(authenticated).Get("/me", handlers.NewMeHandler())
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Route("/beans", func(r chi.Router) {
				r.Post("/", handlers.NewCreateBeanHandler(rt.beans))
				r.Get("/", handlers.NewListBeansHandler(rt.beans))
				r.Get("/{id}", handlers.NewGetBeanHandler(rt.beans))
				r.Put("/{id}", handlers.NewUpdateBeanHandler(rt.beans))
				r.Delete("/{id}", handlers.NewDeleteBeanHandler(rt.beans))
			})

			r.Route("/records", func(r chi.Router) {
				r.Post("/", handlers.NewCreateRecordHandler(rt.records))
				r.Get("/", handlers.NewListRecordsHandler(rt.records))
				r.Get("/{id}", handlers.NewGetRecordHandler(rt.records))
				r.Put("/{id}", handlers.NewUpdateRecordHandler(rt.records))
				r.Delete("/{id}", handlers.NewDeleteRecordHandler(rt.records))
			})

			r.Get("/users/settings", handlers.NewGetSettingsHandler(rt.settings))
			r.Put("/users/settings", handlers.NewUpdateSettingsHandler(rt.settings))
		})
	})

	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swaggerURL)))

	return r
}

// run initializes the logger, database, optional Redis cache and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping PostgreSQL: %w", err)
	}

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis when configured
	var userCache services.UserCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()
		userCache = repositories.NewUserCacheRepository(rdb, cfg.RedisExp)
		logger.Log.Infow("identity cache enabled", "addr", rdb.Options().Addr, "ttl", cfg.RedisExp)
	} else {
		logger.Log.Info("identity cache disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	userReadRepo := repositories.NewUserReadRepository(db, repositories.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	settingsRepo := repositories.NewSettingsRepository(db, repositories.GetTxFromContext)
	beanRepo := repositories.NewBeanRepository(db, repositories.GetTxFromContext)
	recordRepo := repositories.NewRecordRepository(db, repositories.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, settingsRepo, userCache, tokens, txManager)
	beanService := services.NewBeanService(beanRepo, txManager)
	recordService := services.NewRecordService(recordRepo, beanRepo, settingsRepo, txManager)
	settingsService := services.NewSettingsService(settingsRepo, txManager)

	limiter := middlewares.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	limiter.StartCleanup(time.Minute, stopCleanup)

	handler := newRouter(routes{
		registerer: authService,
		loginer:    authService,
		tokener:    tokens,
		resolver:   authService,
		beans:      beanService,
		records:    recordService,
		settings:   settingsService,
		limiter:    limiter,
		metrics:    metrics.New(),
		cors:       middlewares.NewCORS(cfg.AllowedOrigins),
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
