package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"acronym-finder/internal/config"
	"acronym-finder/internal/managers"
	"acronym-finder/internal/routing"

	log "github.com/sirupsen/logrus"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func Init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	SetLogLevel(cfg.LogLevel)

	// Connect to database
	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	databaseMgr, err := managers.ConnectDatabase(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	// Initialize JWT manager
	jwtMgr, err := managers.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal("Error initializing JWT manager: ", err)
	}

	// Initialize password manager
	passwordMgr := managers.NewPasswordManager(cfg.BcryptCost)

	// Initialize router
	r := routing.InitRouter(databaseMgr, jwtMgr, passwordMgr, cfg.CORSOrigins)
	log.Info("Initialized router")

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle interrupt signal gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on port %d...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Error starting server: ", err)
		}
	}()

	<-ctx.Done()
	log.Info("Server shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error draining connections: ", err)
	}
	if err := databaseMgr.Close(shutdownCtx); err != nil {
		log.Error("Error closing database: ", err)
	}
	log.Info("Server stopped")
}

// SetLogLevel configures the global logrus logger; unknown levels fall back to INFO.
func SetLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		log.SetLevel(log.DebugLevel)
	case "INFO":
		log.SetLevel(log.InfoLevel)
	case "WARN":
		log.SetLevel(log.WarnLevel)
	case "ERROR":
		log.SetLevel(log.ErrorLevel)
	case "FATAL":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.SetReportCaller(true)

	log.SetOutput(os.Stdout)
}
