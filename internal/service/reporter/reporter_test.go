package reporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LexRes-Go/GoLexNorm/internal/config"
	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	"github.com/LexRes-Go/GoLexNorm/internal/service/langres"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) WithPackage(name string) pkg.Logger           { return l }
func (nopLogger) Sync() error                                    { return nil }

func samplePhrases() []*model.Phrase {
	qty := int64(2)
	return []*model.Phrase{
		{LineNo: 1, Raw: "two spuds", Normalized: "spud", Terms: []string{"potato"}, Quantity: &qty},
		{LineNo: 2, Raw: "a spud", Normalized: "spud", Terms: []string{"potato"}},
		{LineNo: 3, Raw: "carrot", Normalized: "carrot", Terms: []string{"carrot"}},
		{LineNo: 4, Raw: "the the", Normalized: "", ErrorType: "empty after normalization"},
		{LineNo: 5, Raw: "gravel", Normalized: "gravel", ErrorType: "no term matched"},
		{LineNo: 6, Raw: "mystery", Normalized: "mystery"}, // no terms, no error type set
	}
}

func TestProcess(t *testing.T) {
	rd := NewReportData(nopLogger{}, langres.Stats{}, t.TempDir())
	rd.Process(samplePhrases())

	if len(rd.terms) != 2 {
		t.Fatalf("processed %d terms, want 2", len(rd.terms))
	}
	byName := map[string]*TermCounter{}
	for _, entry := range rd.terms {
		byName[entry.TermName] = entry
	}
	potato := byName["potato"]
	if potato == nil || potato.PlainCounter != 1 || potato.QuantifiedCounter != 1 {
		t.Errorf("potato counters = %+v, want 1 plain and 1 quantified", potato)
	}
	carrot := byName["carrot"]
	if carrot == nil || carrot.PlainCounter != 1 || carrot.QuantifiedCounter != 0 {
		t.Errorf("carrot counters = %+v, want 1 plain", carrot)
	}

	if got := len(rd.rejects["empty after normalization"]); got != 1 {
		t.Errorf("empty bucket holds %d phrases, want 1", got)
	}
	// Line 5 carried its error type; line 6 had none and must be classified.
	if got := len(rd.rejects["no term matched"]); got != 2 {
		t.Errorf("no-term bucket holds %d phrases, want 2", got)
	}
}

func TestCheckError_DerivesMissingType(t *testing.T) {
	phrase := &model.Phrase{Normalized: "   "}
	if !checkError(phrase) || phrase.ErrorType != "empty after normalization" {
		t.Errorf("blank normalized: ErrorType = %q", phrase.ErrorType)
	}

	phrase = &model.Phrase{Normalized: "gravel"}
	if !checkError(phrase) || phrase.ErrorType != "no term matched" {
		t.Errorf("no terms: ErrorType = %q", phrase.ErrorType)
	}

	phrase = &model.Phrase{Normalized: "spud", Terms: []string{"potato"}}
	if checkError(phrase) {
		t.Error("valid phrase flagged as error")
	}
}

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	stats := langres.Stats{Aliases: 3, Multiword: 1, Numbers: 4, Stopwords: 2, Lines: 9}

	rd := NewReportData(nopLogger{}, stats, dir)
	rd.Process(samplePhrases())
	if err := rd.SaveAll(); err != nil {
		t.Fatalf("SaveAll() returned error: %v", err)
	}

	docInfo, err := os.Stat(filepath.Join(dir, "rejects.docx"))
	if err != nil {
		t.Fatalf("rejects.docx was not written: %v", err)
	}
	if docInfo.Size() == 0 {
		t.Error("rejects.docx is empty")
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "summary.xlsx"))
	if err != nil {
		t.Fatalf("summary.xlsx was not written: %v", err)
	}
	defer f.Close()

	// Terms are sorted by name, so carrot comes first.
	name, err := f.GetCellValue("Summary", "A2")
	if err != nil || name != "carrot" {
		t.Errorf("Summary A2 = %q (%v), want carrot", name, err)
	}
	name, _ = f.GetCellValue("Summary", "A3")
	if name != "potato" {
		t.Errorf("Summary A3 = %q, want potato", name)
	}
	quantified, _ := f.GetCellValue("Summary", "C3")
	if quantified != "1" {
		t.Errorf("Summary C3 = %q, want 1", quantified)
	}
	processed, _ := f.GetCellValue("Resource", "B1")
	if processed != "6" {
		t.Errorf("Resource B1 = %q, want 6", processed)
	}
	stopwords, _ := f.GetCellValue("Resource", "B6")
	if stopwords != "2" {
		t.Errorf("Resource B6 = %q, want 2", stopwords)
	}
	lines, _ := f.GetCellValue("Resource", "B7")
	if lines != "9" {
		t.Errorf("Resource B7 = %q, want 9", lines)
	}
}

type fakeStore struct {
	phrases []*model.Phrase
	byRun   uuid.UUID
}

func (s *fakeStore) SaveBatch(ctx context.Context, runID uuid.UUID, in <-chan *model.Phrase) error {
	for range in {
	}
	return nil
}

func (s *fakeStore) GetPhrasesByRun(ctx context.Context, runID uuid.UUID) ([]*model.Phrase, error) {
	s.byRun = runID
	return s.phrases, nil
}

func (s *fakeStore) CountPhrases(ctx context.Context) (int64, error) {
	return int64(len(s.phrases)), nil
}

func TestGenerateSummaryReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := &fakeStore{phrases: samplePhrases()}
	r := NewReporter(nopLogger{}, store, langres.Stats{}, config.ReportConfig{Dir: dir})

	runID := uuid.New()
	if err := r.GenerateSummaryReport(context.Background(), runID); err != nil {
		t.Fatalf("GenerateSummaryReport() returned error: %v", err)
	}
	if store.byRun != runID {
		t.Errorf("reporter queried run %v, want %v", store.byRun, runID)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.xlsx")); err != nil {
		t.Errorf("summary.xlsx was not written: %v", err)
	}
}

func TestGenerateSummaryReport_NoPhrases(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := NewReporter(nopLogger{}, &fakeStore{}, langres.Stats{}, config.ReportConfig{Dir: dir})

	if err := r.GenerateSummaryReport(context.Background(), uuid.New()); err != nil {
		t.Fatalf("GenerateSummaryReport() on empty run returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.xlsx")); err == nil {
		t.Error("summary.xlsx written for an empty run")
	}
}
