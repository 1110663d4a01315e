package application

import (
	"context"

	"github.com/LexRes-Go/GoLexNorm/internal/domain/contracts"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
	"github.com/google/uuid"
)

type App struct {
	Fetcher    contracts.PhraseFetcher
	Normalizer contracts.PhraseNormalizer
	Logger     pkg.Logger
	Db         contracts.StorePostgres
	Reporter   contracts.Reporter
}

func NewApp(fetcher contracts.PhraseFetcher, normalizer contracts.PhraseNormalizer, logger pkg.Logger, db contracts.StorePostgres, reporter contracts.Reporter) *App {
	return &App{
		Fetcher:    fetcher,
		Normalizer: normalizer,
		Logger:     logger,
		Db:         db,
		Reporter:   reporter,
	}
}

func (a *App) Run(ctx context.Context) {
	stored, err := a.Db.CountPhrases(ctx)
	if err != nil {
		a.Logger.Error("Failed to count stored phrases", "err", err)
		return
	}

	runID := uuid.New()
	a.Logger.Info("Starting normalization run", "run_id", runID.String(), "already_stored", stored)

	if err := a.readAndSave(ctx, runID); err != nil {
		return
	}

	if err := a.Reporter.GenerateSummaryReport(ctx, runID); err != nil {
		a.Logger.Error("Failed to generate report", "err", err)
		return
	}
}

func (a *App) readAndSave(ctx context.Context, runID uuid.UUID) error {
	outFromRead := a.Fetcher.RunReadPipeline(ctx)
	outFromNormalize := a.Normalizer.RunNormalizePipeline(ctx, outFromRead)

	if err := a.Db.SaveBatch(ctx, runID, outFromNormalize); err != nil {
		a.Logger.Error("Failed to save phrases", "err", err)
		return err
	}
	return nil
}
