package normalizer

import (
	"context"
	"sync"

	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
)

type PhrasePipeline struct {
	Log     pkg.Logger
	Workers []NormalizePhraseWorker
}

func NewPhrasePipeline(log pkg.Logger, workers []NormalizePhraseWorker) *PhrasePipeline {
	return &PhrasePipeline{
		Log:     log,
		Workers: workers,
	}
}

func (p *PhrasePipeline) RunNormalizePipeline(ctx context.Context, in <-chan *model.Phrase) <-chan *model.Phrase {
	out := make(chan *model.Phrase)
	var wg sync.WaitGroup

	for _, worker := range p.Workers {
		wg.Add(1)
		go func(w NormalizePhraseWorker) {
			defer wg.Done()
			w.Run(ctx, in, out)
		}(worker)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
