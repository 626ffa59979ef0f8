package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/YohanChabiduPerera/leasing-calculator/internal/server"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	addressFlag := flag.String("address", "", "listen address override (e.g. :8080)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}
	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(logger, cfg, version)

	// Browser clients served by a separate frontend need CORS headers.
	handler := cors.Default().Handler(router)

	logger.Info("starting lease calculation API",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server terminated",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func buildLogger(cfg *server.Config) (*zap.Logger, error) {
	if cfg.Logging.Format == "console" {
		return zap.NewDevelopment()
	}
	zapConfig := zap.NewProductionConfig()
	switch cfg.Logging.Level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn", "warning":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	if cfg.Logging.OutputFile != "" {
		zapConfig.OutputPaths = []string{cfg.Logging.OutputFile}
		zapConfig.ErrorOutputPaths = []string{cfg.Logging.OutputFile}
	}
	return zapConfig.Build()
}
