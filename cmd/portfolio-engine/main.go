package main

import (
	"fmt"
	"os"

	"github.com/omranyar/portfolio-engine/internal/auth"
	"github.com/omranyar/portfolio-engine/internal/config"
	"github.com/omranyar/portfolio-engine/internal/db"
	"github.com/omranyar/portfolio-engine/internal/excel"
	httphandler "github.com/omranyar/portfolio-engine/internal/http"
	"github.com/omranyar/portfolio-engine/internal/http/middleware"
	"github.com/omranyar/portfolio-engine/internal/logger"
	"github.com/omranyar/portfolio-engine/internal/pdf"
	"github.com/omranyar/portfolio-engine/internal/repository"
	"github.com/omranyar/portfolio-engine/internal/service"
	"github.com/omranyar/portfolio-engine/internal/sms"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	programRepo := repository.NewProgramRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	subProjectRepo := repository.NewSubProjectRepository(database)
	documentRepo := repository.NewDocumentRepository(database)
	fundingRepo := repository.NewFundingRepository(database)
	historyRepo := repository.NewHistoryRepository(database)
	userRepo := repository.NewUserRepository(database)

	var dispatcher sms.Dispatcher = sms.NoopDispatcher{}
	if cfg.SMS.Enabled {
		dispatcher = sms.NewGatewayDispatcher(cfg.SMS)
	}
	dispatcher = sms.NewRecordingDispatcher(dispatcher, database)
	dispatcher = sms.NewLoggingDispatcher(dispatcher, log)

	identifiers := service.NewIdentifierService()
	portfolioService := service.NewPortfolioService(
		database, programRepo, projectRepo, subProjectRepo, documentRepo,
		historyRepo, identifiers, log,
	)
	reviewService := service.NewReviewService(
		database, programRepo, projectRepo, subProjectRepo, historyRepo,
		userRepo, dispatcher, log,
	)
	fundingService := service.NewFundingService(
		fundingRepo, projectRepo, userRepo, dispatcher, log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		portfolioService, reviewService, fundingService,
		excel.NewGenerator(), pdf.NewGenerator(), log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORSOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting portfolio engine")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
