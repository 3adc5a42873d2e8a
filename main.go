package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"loan-amortizer/cli"
	"loan-amortizer/config"
	"loan-amortizer/logger"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

const configPath = "config.toml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger, err := logger.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	historyRepo := repository.NewHistoryRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Cache.Backend == "redis" {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	limits := service.Limits{
		MaxPrincipal:         decimal.NewFromFloat(cfg.Loan.MaxPrincipal),
		MaxAnnualRatePercent: decimal.NewFromFloat(cfg.Loan.MaxRatePercent),
	}

	amortizationService := service.NewAmortizationService(limits, historyRepo, cache, appLogger)
	detailService := service.NewQuarterDetailService(limits)
	rateSearchService := service.NewRateSearchService(
		limits,
		decimal.NewFromFloat(cfg.Search.MaxRatePercent),
		historyRepo,
		appLogger,
	)
	explanationService := service.NewExplanationService()

	scheduleHandler := cli.NewScheduleHandler(amortizationService, explanationService)
	detailHandler := cli.NewDetailHandler(detailService)
	rateHandler := cli.NewRateHandler(rateSearchService, explanationService)

	session := cli.NewSession(
		os.Stdin,
		os.Stdout,
		scheduleHandler,
		detailHandler,
		rateHandler,
		historyRepo,
		appLogger,
	)

	done := make(chan struct{})
	go func() {
		appLogger.Info("session started", "cache_backend", cfg.Cache.Backend)
		session.Run()
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-done:
		appLogger.Info("session finished")
	case <-quit:
		appLogger.Info("shutting down")
	}
}
