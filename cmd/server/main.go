package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"igreja-digital/secretaria/internal/api"
	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/config"
	"igreja-digital/secretaria/internal/db"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/metrics"
	"igreja-digital/secretaria/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Secretaria starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)

	// sqlx connection, used by the raw reporting queries
	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if err := db.SeedPastor(gormDB); err != nil {
		log.Fatalf("Failed to seed initial pastor account: %v", err)
	}

	var sessions common.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		sessions = common.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionTTL)
		logging.Info("Session store: redis", "addr", cfg.RedisAddr)
	default:
		sessions = common.NewMemorySessionStore(cfg.SessionTTL)
		logging.Info("Session store: in-memory")
	}
	defer sessions.Close()

	signer := common.NewExportSigner([]byte(cfg.ExportSigningSecret))
	metricsReg := metrics.NewMetricsRegistry()

	deps := api.InitDependencies(gormDB, db.DB, sessions, signer, metricsReg)
	router := routes.RegisterRoutes(deps)

	// /metrics lives outside the chi router so it skips the request
	// middleware chain
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
