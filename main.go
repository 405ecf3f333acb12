package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/finpulse/src/config"
	"github.com/username/finpulse/src/database"
	"github.com/username/finpulse/src/handlers"
	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/parsers"
	"github.com/username/finpulse/src/processors"
	"github.com/username/finpulse/src/security"
	"github.com/username/finpulse/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Finpulse backend server starting...")

	if config.Cfg.JWTSecret == "" || len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid. Must be at least 32 bytes.")
		os.Exit(1)
	}

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing report cache...")
	reportCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	authService := security.NewAuthService(config.Cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(authService)

	pipeline := parsers.NewPipeline(parsers.NewNormalizer(parsers.DefaultSynonyms()))
	scoreProcessor := processors.NewScoreProcessor()
	seriesProcessor := processors.NewTimeSeriesProcessor()

	uploadService := services.NewUploadService(pipeline, reportCache)
	analysisService := services.NewAnalysisService(scoreProcessor, seriesProcessor, reportCache)
	businessService := services.NewBusinessService(reportCache)

	uploadHandler := handlers.NewUploadHandler(uploadService, businessService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, businessService)
	businessHandler := handlers.NewBusinessHandler(businessService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/auth/register", userHandler.RegisterUserHandler)
	apiRouter.HandleFunc("POST /api/auth/login", userHandler.LoginUserHandler)

	applyAuth := func(handler http.HandlerFunc) http.Handler {
		return userHandler.AuthMiddleware(handler)
	}

	apiRouter.Handle("POST /api/business", applyAuth(businessHandler.HandleCreateBusiness))
	apiRouter.Handle("GET /api/business", applyAuth(businessHandler.HandleListBusinesses))
	apiRouter.Handle("GET /api/business/{businessID}", applyAuth(businessHandler.HandleGetBusiness))
	apiRouter.Handle("PATCH /api/business/{businessID}/industry", applyAuth(businessHandler.HandleUpdateIndustry))
	apiRouter.Handle("POST /api/business/{businessID}/upload", applyAuth(uploadHandler.HandleUpload))
	apiRouter.Handle("GET /api/business/{businessID}/score", applyAuth(analysisHandler.HandleGetHealthScore))
	apiRouter.Handle("GET /api/business/{businessID}/timeseries", applyAuth(analysisHandler.HandleGetCashFlowSeries))
	apiRouter.Handle("GET /api/business/{businessID}/transactions", applyAuth(analysisHandler.HandleGetTransactions))
	apiRouter.Handle("DELETE /api/business/{businessID}/transactions", applyAuth(analysisHandler.HandleDeleteTransactions))

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Finpulse backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
