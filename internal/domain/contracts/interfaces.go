package contracts

import (
	"context"

	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	"github.com/google/uuid"
)

type PhraseFetcher interface {
	RunReadPipeline(ctx context.Context) <-chan *model.Phrase
}

type PhraseNormalizer interface {
	RunNormalizePipeline(ctx context.Context, in <-chan *model.Phrase) <-chan *model.Phrase
}

type StorePostgres interface {
	SaveBatch(ctx context.Context, runID uuid.UUID, in <-chan *model.Phrase) error
	GetPhrasesByRun(ctx context.Context, runID uuid.UUID) ([]*model.Phrase, error)
	CountPhrases(ctx context.Context) (int64, error)
}

type Reporter interface {
	GenerateSummaryReport(ctx context.Context, runID uuid.UUID) error
}
