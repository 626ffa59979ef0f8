package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YohanChabiduPerera/leasing-calculator/internal/config"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/amortize"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/output"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	modelFlag := flag.String("model", "", "amortization model override: fixed-rate, declining-balance")
	principalFlag := flag.Float64("principal", 0, "lease amount override (LKR)")
	yearsFlag := flag.Int("years", 0, "lease duration override (years)")
	rateFlag := flag.Float64("rate", -1, "annual interest rate override (percent, fixed-rate model)")
	ratePerLakhFlag := flag.Float64("rate-per-lakh", -1, "monthly charge per lakh override (declining-balance model)")
	previewFlag := flag.Int("preview", -1, "schedule rows to display override (0 shows all)")
	flag.Parse()

	// Load the config file to get calculation defaults and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Apply calculation overrides from flags
	if *modelFlag != "" {
		conf.Calculation.Model = *modelFlag
	}
	if *principalFlag > 0 {
		conf.Calculation.Principal = *principalFlag
	}
	if *yearsFlag > 0 {
		conf.Calculation.Years = *yearsFlag
	}
	if *rateFlag >= 0 {
		conf.Calculation.AnnualRatePercent = *rateFlag
	}
	if *ratePerLakhFlag >= 0 {
		conf.Calculation.RatePerLakhPerMonth = *ratePerLakhFlag
	}
	previewMonths := conf.Calculation.PreviewMonths
	if *previewFlag >= 0 {
		previewMonths = *previewFlag
	}

	// Build and validate the lease terms before invoking the engine.
	terms, err := conf.Terms()
	if err != nil {
		logger.Fatal("failed to resolve lease terms",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if err := validation.ValidateTerms(terms); err != nil {
		logger.Fatal("lease terms rejected",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Run the calculation.
	calc := amortize.NewCalculator(logger)
	result, err := calc.Compute(terms)
	if err != nil {
		logger.Fatal("failed to compute repayment schedule",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(terms, result, previewMonths)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}

}
