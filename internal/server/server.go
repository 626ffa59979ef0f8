// Package server exposes the lease calculation engine over an HTTP JSON API.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/amortize"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/format"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	calc    *amortize.Calculator
	version string
}

// NewRouter constructs the gin engine that serves the calculation API.
func NewRouter(logger *zap.Logger, cfg *Config, version string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = LoadConfig("")
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:  logger,
		calc:    amortize.NewCalculator(logger),
		version: trimmedVersion,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	limiter := NewRateLimiter(cfg.RateLimit.Capacity,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		api.POST("/schedule", h.handleSchedule)
		api.GET("/version", h.handleVersion)
	}

	return router
}

type scheduleRequest struct {
	Model               string  `json:"model"`
	Principal           float64 `json:"principal"`
	Years               int     `json:"years"`
	AnnualRatePercent   float64 `json:"annualRatePercent"`
	RatePerLakhPerMonth float64 `json:"ratePerLakhPerMonth"`

	// PreviewMonths limits how many schedule rows are returned; the summary
	// totals always cover the full term.
	PreviewMonths int `json:"previewMonths"`
}

type scheduleResponse struct {
	Model                  string        `json:"model"`
	MonthlyPayment         float64       `json:"monthlyPayment"`
	MonthlyPaymentDisplay  string        `json:"monthlyPaymentDisplay"`
	TotalPaid              float64       `json:"totalPaid"`
	TotalPaidDisplay       string        `json:"totalPaidDisplay"`
	TotalInterest          float64       `json:"totalInterest"`
	TotalInterestDisplay   string        `json:"totalInterestDisplay"`
	InterestPctOfPrincipal float64       `json:"interestPctOfPrincipal"`
	MonthsToPayoff         int           `json:"monthsToPayoff"`
	Truncated              bool          `json:"truncated"`
	Schedule               []scheduleRow `json:"schedule"`
	Duration               string        `json:"duration"`
}

type scheduleRow struct {
	Month          int     `json:"month"`
	Payment        float64 `json:"payment"`
	Principal      float64 `json:"principal"`
	Interest       float64 `json:"interest"`
	Balance        float64 `json:"balance"`
	PaymentDisplay string  `json:"paymentDisplay"`
	BalanceDisplay string  `json:"balanceDisplay"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *handler) handleSchedule(c *gin.Context) {
	start := time.Now()

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: errorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	model, err := amortize.ParseModel(req.Model)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: errorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	terms := amortize.LeaseTerms{
		Model:             model,
		Principal:         req.Principal,
		Years:             req.Years,
		AnnualRatePercent: req.AnnualRatePercent,
		RatePerLakh:       req.RatePerLakhPerMonth,
	}

	if err := validation.ValidateTerms(terms); err != nil {
		code := "INVALID_INPUT"
		if !errors.Is(err, validation.ErrInvalidInput) {
			code = "INVALID_REQUEST"
		}
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: errorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.calc.Compute(terms)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: errorDetail{
				Code:    "CALCULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	h.logger.Debug("computed lease schedule",
		zap.String("op", "server.handleSchedule"),
		zap.String("model", string(model)),
		zap.Float64("principal", terms.Principal),
		zap.Int("years", terms.Years),
		zap.Int("months", result.MonthsToPayoff),
	)

	c.JSON(http.StatusOK, h.buildResponse(terms, result, req.PreviewMonths, time.Since(start)))
}

func (h *handler) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *handler) buildResponse(terms amortize.LeaseTerms, result amortize.Result,
	previewMonths int, elapsed time.Duration) scheduleResponse {

	rows := result.Schedule
	truncated := false
	if previewMonths > 0 && previewMonths < len(rows) {
		rows = rows[:previewMonths]
		truncated = true
	}

	schedule := make([]scheduleRow, len(rows))
	for i, entry := range rows {
		schedule[i] = scheduleRow{
			Month:          entry.Month,
			Payment:        entry.Payment,
			Principal:      entry.Principal,
			Interest:       entry.Interest,
			Balance:        entry.RemainingBalance,
			PaymentDisplay: format.Currency(entry.Payment),
			BalanceDisplay: format.Currency(entry.RemainingBalance),
		}
	}

	return scheduleResponse{
		Model:                  string(terms.Model),
		MonthlyPayment:         result.MonthlyPayment,
		MonthlyPaymentDisplay:  format.Currency(result.MonthlyPayment),
		TotalPaid:              result.TotalPaid,
		TotalPaidDisplay:       format.Currency(result.TotalPaid),
		TotalInterest:          result.TotalInterest,
		TotalInterestDisplay:   format.Currency(result.TotalInterest),
		InterestPctOfPrincipal: result.InterestShareOfPrincipal(terms.Principal),
		MonthsToPayoff:         result.MonthsToPayoff,
		Truncated:              truncated,
		Schedule:               schedule,
		Duration:               elapsed.String(),
	}
}
