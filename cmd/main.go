package main

import (
	"context"
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
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-game-catalog/internal/handlers"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/migrations"
	"github.com/sbilibin2017/gw-game-catalog/internal/repositories"
	"github.com/sbilibin2017/gw-game-catalog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sbilibin2017/gw-game-catalog/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	DBDriver       string
	DBDSN          string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBMigrate      bool

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-game-catalog API
// @version 1.0.0
// @description Microservice for managing a catalog of games
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// application, database, Redis, Kafka and logging configuration.
func parseConfig(path string) (cfg config, err error) {
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

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// Database config
	cfg.DBDriver = getEnv("DATABASE_DRIVER", "pgx")
	pgPort, err := getInt("POSTGRES_PORT", "5432")
	if err != nil {
		return cfg, err
	}
	cfg.DBDSN = getEnv("DATABASE_DSN", fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "database"),
	))
	if cfg.DBMaxOpenConns, err = getInt("DATABASE_MAX_OPEN_CONNS", "16"); err != nil {
		return cfg, err
	}
	if cfg.DBMaxIdleConns, err = getInt("DATABASE_MAX_IDLE_CONNS", "8"); err != nil {
		return cfg, err
	}
	if cfg.DBMigrate, err = strconv.ParseBool(getEnv("DATABASE_MIGRATE", "true")); err != nil {
		return cfg, fmt.Errorf("DATABASE_MIGRATE: %w", err)
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return cfg, err
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return cfg, err
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "games.events")

	return cfg, nil
}

// run initializes the logger, database, optional Redis cache and Kafka writer,
// and the HTTP server. It blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to database
	log.Infow("Connecting to database", "driver", cfg.DBDriver)
	db, err := sqlx.ConnectContext(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Errorw("Database connection error", "error", err)
		return err
	}
	defer db.Close()
	maxOpen, maxIdle := poolLimits(cfg)
	if maxOpen != cfg.DBMaxOpenConns {
		log.Infow("In-memory SQLite database, using a single connection", "dsn", cfg.DBDSN)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("Database ping failed", "error", err)
		return err
	}

	if cfg.DBMigrate {
		if err := migrations.Up(db, cfg.DBDSN); err != nil {
			log.Errorw("Database migration failed", "error", err)
			return err
		}
	}

	// Connect to Redis
	var cache services.GameCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		cache = repositories.NewGameCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	} else {
		log.Info("REDIS_HOST is empty, game cache disabled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kw.Close()
		kafkaWriter = kw
	} else {
		log.Info("KAFKA_BROKERS is empty, event publishing disabled")
	}

	// Initialize repositories and services
	gameService := services.NewGameService(
		repositories.NewGameReadRepository(db),
		repositories.NewGameWriteRepository(db),
		cache,
		kafkaWriter,
	)

	r := newRouter(gameService, log)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// poolLimits returns the connection pool sizing for cfg. An in-memory SQLite
// database exists per connection, so it is pinned to a single one.
func poolLimits(cfg config) (maxOpen, maxIdle int) {
	if isMemorySQLite(cfg.DBDriver, cfg.DBDSN) {
		return 1, 1
	}
	return cfg.DBMaxOpenConns, cfg.DBMaxIdleConns
}

func isMemorySQLite(driver, dsn string) bool {
	if driver != "sqlite3" {
		return false
	}
	return dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// kafkaBatchTimeout bounds how long a synchronous WriteMessages waits for a
// batch to fill. Each request publishes one event.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter returns a synchronous writer for game lifecycle events.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: kafkaBatchTimeout,
	}
}

// newRouter wires the game endpoints onto a chi router.
func newRouter(svc *services.GameService, log *zap.SugaredLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORSMiddleware())

	r.Get("/", handlers.NewWelcomeHandler())

	r.Route("/games", func(r chi.Router) {
		r.Post("/", handlers.NewCreateGameHandler(svc))
		r.Get("/", handlers.NewListGamesHandler(svc))
		r.Get("/{id}", handlers.NewGetGameHandler(svc))
		r.Put("/{id}", handlers.NewUpdateGameHandler(svc))
		r.Delete("/{id}", handlers.NewDeleteGameHandler(svc))
	})

	return r
}
