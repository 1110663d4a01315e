package normalizer

import (
	"context"

	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
)

type NormalizePhraseWorker interface {
	Run(ctx context.Context, in <-chan *model.Phrase, out chan<- *model.Phrase)
}

type VocabCreator interface {
	CreateVocab() Vocab
}
