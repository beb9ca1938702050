package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Chrisvtg92/the-hive-dashboard/internal/auth"
	budgetexcel "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/infrastructure/excel"
	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	historymemory "github.com/Chrisvtg92/the-hive-dashboard/internal/history/infrastructure/memory"
	historypostgres "github.com/Chrisvtg92/the-hive-dashboard/internal/history/infrastructure/postgres"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/observability/metrics"
	recoapp "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/application"
	recohttp "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/interfaces/http"
	reportapp "github.com/Chrisvtg92/the-hive-dashboard/internal/report/application"
	reportexcel "github.com/Chrisvtg92/the-hive-dashboard/internal/report/infrastructure/excel"
	reporthttp "github.com/Chrisvtg92/the-hive-dashboard/internal/report/interfaces/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	var historyRepo history.Repository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("db open error: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("db ping error: %v", err)
		}
		historyRepo = historypostgres.NewRepository(db)
	} else {
		logger.Printf("DATABASE_URL not set, history kept in memory")
		historyRepo = historymemory.NewRepository()
	}

	metrics.Init()

	parserCfg, err := reportapp.LoadParserConfig()
	if err != nil {
		logger.Fatalf("parser config error: %v", err)
	}
	parser, err := reportexcel.NewDailyParser(reportexcel.NewLocator(parserCfg.DateSearchRows, parserCfg.DateSearchCols))
	if err != nil {
		logger.Fatalf("daily parser error: %v", err)
	}

	reportService, err := reportapp.NewService(parser, historyRepo, logger, systemClock{})
	if err != nil {
		logger.Fatalf("report service error: %v", err)
	}
	reportHandler, err := reporthttp.NewHandler(reportService)
	if err != nil {
		logger.Fatalf("report handler error: %v", err)
	}

	merger, err := recoapp.NewPriorYearMerger(parser, logger)
	if err != nil {
		logger.Fatalf("prior-year merger error: %v", err)
	}
	recoHandler, err := recohttp.NewHandler(parser, budgetexcel.NewLoader(), merger, recoapp.NewService(), historyRepo)
	if err != nil {
		logger.Fatalf("reconciliation handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/reports/daily", reportHandler)
	mux.Handle("/api/v1/history", reportHandler)
	mux.Handle("/api/v1/reconciliation", recoHandler)
	mux.Handle("/api/v1/exports/report.xlsx", recoHandler)
	mux.Handle("/api/v1/exports/daily-summary.pdf", recoHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
