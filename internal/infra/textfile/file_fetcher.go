package fetcher

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/LexRes-Go/GoLexNorm/internal/config"
	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
)

type FileFetcher struct {
	path         string
	log          pkg.Logger
	totalRead    int
	totalSkipped int
}

func NewFileFetcher(log pkg.Logger, cfg config.InputConfig) (*FileFetcher, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input path %q is a directory", cfg.Path)
	}
	log.Info("Input file found", "path", cfg.Path, "size", info.Size())
	log.Info("New FileFetcher was created")
	return &FileFetcher{
		path: cfg.Path,
		log:  log,
	}, nil
}

func (f *FileFetcher) RunReadPipeline(ctx context.Context) <-chan *model.Phrase {
	out := make(chan *model.Phrase)
	go func() {
		defer close(out)

		file, err := os.Open(f.path)
		if err != nil {
			f.log.Error("Failed to open input file", "path", f.path, "err", err)
			return
		}
		defer file.Close()

		f.log.Info("Read pipeline started", "path", f.path)

		scanner := bufio.NewScanner(file)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			phrase, ok := f.ValidateLine(lineNo, scanner.Text())
			if !ok {
				f.totalSkipped++
				continue
			}
			select {
			case <-ctx.Done():
				f.log.Warn("Context canceled while reading input")
				return
			case out <- phrase:
				f.totalRead++
			}
		}
		if err := scanner.Err(); err != nil {
			f.log.Error("Failed reading input file", "path", f.path, "err", err)
			return
		}
		f.log.Info("Input file processed", "total_read", f.totalRead, "total_skipped", f.totalSkipped)
	}()
	return out
}

func (f *FileFetcher) ValidateLine(lineNo int, raw string) (*model.Phrase, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}
	return &model.Phrase{
		LineNo: lineNo,
		Raw:    text,
	}, true
}
