package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/omranyar/portfolio-engine/internal/config"
	"github.com/omranyar/portfolio-engine/internal/db"
	"github.com/omranyar/portfolio-engine/internal/logger"
	"github.com/omranyar/portfolio-engine/internal/repository"
	"github.com/omranyar/portfolio-engine/internal/service"
)

// portfolio-recompute rebuilds the denormalized state from first principles.
// Needed after out-of-band data fixes; a normal save already keeps the
// caches current.
func main() {
	schedules := flag.Bool("relationships", false, "recompute dependency-driven subproject schedules")
	finances := flag.Bool("financial-caches", false, "recompute payment sums, debts and project caches")
	openingDates := flag.Bool("opening-dates", false, "recompute program opening dates and progress")
	flag.Parse()

	if !*schedules && !*finances && !*openingDates {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -relationships, -financial-caches or -opening-dates")
		os.Exit(2)
	}

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

	portfolioService := service.NewPortfolioService(
		database,
		repository.NewProgramRepository(database),
		repository.NewProjectRepository(database),
		repository.NewSubProjectRepository(database),
		repository.NewDocumentRepository(database),
		repository.NewHistoryRepository(database),
		service.NewIdentifierService(),
		log,
	)

	ctx := context.Background()

	if *schedules {
		if err := portfolioService.RecomputeAllSchedules(ctx); err != nil {
			log.Fatal().Err(err).Msg("schedule recompute failed")
		}
		log.Info().Msg("schedules recomputed")
	}
	if *finances {
		if err := portfolioService.RecomputeAllFinancialCaches(ctx); err != nil {
			log.Fatal().Err(err).Msg("financial recompute failed")
		}
		log.Info().Msg("financial caches recomputed")
	}
	if *openingDates {
		if err := portfolioService.RecomputeAllProgramOpeningDates(ctx); err != nil {
			log.Fatal().Err(err).Msg("opening date recompute failed")
		}
		log.Info().Msg("program opening dates recomputed")
	}
}
