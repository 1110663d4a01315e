package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
	"github.com/LexRes-Go/GoLexNorm/internal/config"
	"github.com/LexRes-Go/GoLexNorm/internal/domain/contracts"
	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	"github.com/LexRes-Go/GoLexNorm/internal/service/langres"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type Reporter struct {
	log   pkg.Logger
	db    contracts.StorePostgres
	stats langres.Stats
	dir   string
}

func NewReporter(log pkg.Logger, db contracts.StorePostgres, stats langres.Stats, cfg config.ReportConfig) *Reporter {
	return &Reporter{
		log:   log,
		db:    db,
		stats: stats,
		dir:   cfg.Dir,
	}
}

func (r *Reporter) GenerateSummaryReport(ctx context.Context, runID uuid.UUID) error {
	r.log.Info("Generating summary report", "run_id", runID.String())

	phrases, err := r.db.GetPhrasesByRun(ctx, runID)
	if err != nil {
		r.log.Error("Failed to fetch phrases from DB by run", "err", err)
		return err
	}

	if len(phrases) == 0 {
		r.log.Warn("No phrases found for report run", "run_id", runID.String())
		return nil
	}

	rd := NewReportData(r.log, r.stats, r.dir)
	rd.Process(phrases)

	if err := rd.SaveAll(); err != nil {
		r.log.Error("Failed to save report", "err", err)
		return err
	}

	r.log.Info("Report generation completed successfully")
	return nil
}

type ReportData struct {
	log     pkg.Logger
	stats   langres.Stats
	dir     string
	terms   []*TermCounter
	rejects map[string][]*model.Phrase
	total   int
}

type TermCounter struct {
	TermName          string
	PlainCounter      int
	QuantifiedCounter int
}

func NewReportData(log pkg.Logger, stats langres.Stats, dir string) *ReportData {
	return &ReportData{
		log:     log,
		stats:   stats,
		dir:     dir,
		rejects: make(map[string][]*model.Phrase),
	}
}

func (r *ReportData) Process(phrases []*model.Phrase) {
	r.log.Info("Processing phrases", "total", len(phrases))
	r.total = len(phrases)
	for _, phrase := range phrases {
		if checkError(phrase) {
			r.rejects[phrase.ErrorType] = append(r.rejects[phrase.ErrorType], phrase)
			continue
		}
		for _, term := range phrase.Terms {
			r.addTerm(term, phrase.Quantity != nil)
		}
	}
	r.log.Info("Finished processing phrases", "terms", len(r.terms), "reject_buckets", len(r.rejects))
}

func checkError(phrase *model.Phrase) bool {
	if phrase.ErrorType != "" {
		return true
	}
	if strings.TrimSpace(phrase.Normalized) == "" {
		phrase.ErrorType = "empty after normalization"
		return true
	}
	if len(phrase.Terms) == 0 {
		phrase.ErrorType = "no term matched"
		return true
	}
	return false
}

func (r *ReportData) addTerm(term string, quantified bool) {
	for _, entry := range r.terms {
		if entry.TermName == term {
			if quantified {
				entry.QuantifiedCounter++
			} else {
				entry.PlainCounter++
			}
			return
		}
	}
	e := &TermCounter{TermName: term}
	if quantified {
		e.QuantifiedCounter++
	} else {
		e.PlainCounter++
	}
	r.terms = append(r.terms, e)
}

func (r *ReportData) SaveAll() error {
	r.log.Info("Saving all report files")
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}
	if err := r.saveRejectsDoc(); err != nil {
		r.log.Error("Failed to save rejects.docx", "err", err)
		return err
	}
	if err := r.saveExcel(); err != nil {
		r.log.Error("Failed to save Excel report", "err", err)
		return err
	}
	r.log.Info("All report files saved successfully")
	return nil
}

func (r *ReportData) saveRejectsDoc() error {
	doc := document.New()
	for errType, phrases := range r.rejects {
		para := doc.AddParagraph()
		run := para.AddRun()
		para.SetStyle("Heading1")
		run.Properties().SetBold(true)
		run.AddText(errType)

		sort.Slice(phrases, func(i, j int) bool {
			return phrases[i].LineNo < phrases[j].LineNo
		})

		for _, phrase := range phrases {
			para := doc.AddParagraph()
			para.Properties().SetAlignment(wml.ST_JcBoth)
			para.AddRun().AddText(fmt.Sprintf("line %d: %s", phrase.LineNo, phrase.Raw))
		}
		doc.AddParagraph().AddRun().AddText("----------")
	}
	return doc.SaveToFile(filepath.Join(r.dir, "rejects.docx"))
}

func (r *ReportData) saveExcel() error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Summary"
	f.SetSheetName("Sheet1", sheet)
	f.SetCellValue(sheet, "A1", "Term")
	f.SetCellValue(sheet, "B1", "Plain")
	f.SetCellValue(sheet, "C1", "Quantified")
	f.SetCellValue(sheet, "D1", "Total")

	sort.Slice(r.terms, func(i, j int) bool {
		return r.terms[i].TermName < r.terms[j].TermName
	})
	for idx, entry := range r.terms {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.TermName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.PlainCounter)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.QuantifiedCounter)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.PlainCounter+entry.QuantifiedCounter)
	}

	resourceSheet := "Resource"
	if _, err := f.NewSheet(resourceSheet); err != nil {
		return err
	}
	rejected := 0
	for _, phrases := range r.rejects {
		rejected += len(phrases)
	}
	rows := [][]interface{}{
		{"Phrases processed", r.total},
		{"Phrases rejected", rejected},
		{"Alias entries", r.stats.Aliases},
		{"Phrase alias entries", r.stats.Multiword},
		{"Number entries", r.stats.Numbers},
		{"Stop words", r.stats.Stopwords},
		{"Resource data lines", r.stats.Lines},
	}
	for idx, pair := range rows {
		f.SetCellValue(resourceSheet, fmt.Sprintf("A%d", idx+1), pair[0])
		f.SetCellValue(resourceSheet, fmt.Sprintf("B%d", idx+1), pair[1])
	}

	return f.SaveAs(filepath.Join(r.dir, "summary.xlsx"))
}
