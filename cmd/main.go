package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LexRes-Go/GoLexNorm/application"
	"github.com/LexRes-Go/GoLexNorm/internal/config"
	"github.com/LexRes-Go/GoLexNorm/internal/infra/database"
	fetcher "github.com/LexRes-Go/GoLexNorm/internal/infra/textfile"
	"github.com/LexRes-Go/GoLexNorm/internal/service/langres"
	"github.com/LexRes-Go/GoLexNorm/internal/service/normalizer"
	"github.com/LexRes-Go/GoLexNorm/internal/service/reporter"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
)

func main() {
	configPath := "./internal/config/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	config, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("error load config %v", err)
	}

	zaplogger, err := pkg.NewZapLogger(config.Logger)
	if err != nil {
		log.Fatalf("error initialize logger: %v", err)
	}

	if zaplogger != nil {
		defer zaplogger.Sync()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	resourceFile, err := os.Open(config.Resource.Path)
	if err != nil {
		zaplogger.Error("failed to open language description", "path", config.Resource.Path, "err", err)
		return
	}
	resource, err := langres.Load(resourceFile)
	resourceFile.Close()
	if err != nil {
		zaplogger.Error("failed to load language description", "err", err)
		return
	}
	stats := resource.Stats()
	zaplogger.Info("Language description loaded",
		"aliases", stats.Aliases,
		"multiword", stats.Multiword,
		"numbers", stats.Numbers,
		"stopwords", stats.Stopwords,
		"lines", stats.Lines,
	)

	fileFetcher, err := fetcher.NewFileFetcher(zaplogger, config.Input)
	if err != nil {
		zaplogger.Error("filefetcher init error", "err", err)
		return
	}

	workerCount := config.Normalizer.Workers
	if workerCount <= 0 {
		workerCount = 5
	}
	workers := make([]normalizer.NormalizePhraseWorker, 0, workerCount)
	for i := 0; i < workerCount; i++ {
		vocabCreator := normalizer.NewVocabCreator(resource, config.Normalizer.Terms)
		worker := normalizer.NewPhraseWorker(vocabCreator, resource, zaplogger)
		workers = append(workers, worker)
	}

	phrasePipeline := normalizer.NewPhrasePipeline(zaplogger, workers)

	db, err := database.NewPostgresPool(zaplogger, config.Database)
	if err != nil {
		zaplogger.Error("failed to init DB", "err", err)
		return
	}
	defer db.Pool.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		zaplogger.Error("failed to ensure DB schema", "err", err)
		return
	}

	newReporter := reporter.NewReporter(zaplogger, db, stats, config.Report)

	app := application.NewApp(fileFetcher, phrasePipeline, zaplogger, db, newReporter)

	app.Run(ctx)
}
