package coachplan

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/christiangobet/coachplan/config"
	"github.com/christiangobet/coachplan/glossary"
	"github.com/christiangobet/coachplan/metrics"
	"github.com/christiangobet/coachplan/model"
	"github.com/christiangobet/coachplan/pages"
	"github.com/christiangobet/coachplan/segment"
	"github.com/christiangobet/coachplan/tables"
)

// Extractor provides a fluent interface for extracting a training plan from
// a PDF. Each configuration method returns a new Extractor instance, making
// chains safe to fork and reuse.
type Extractor struct {
	// Source
	filename string

	// Document lifecycle
	doc       *pages.Document
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options, so each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
		warnings:  append([]Warning(nil), e.warnings...),
	}
}

// ProgramName sets the program name recorded in the extracted plan.
func (e *Extractor) ProgramName(name string) *Extractor {
	newExt := e.clone()
	if name != "" {
		newExt.options.programName = name
	}
	return newExt
}

// Heuristics overrides the extraction heuristics (bare-"m" resolution,
// glossary vocabulary).
func (e *Extractor) Heuristics(cfg config.Config) *Extractor {
	newExt := e.clone()
	newExt.options.heuristics = cfg
	newExt.options = newExt.options.clone() // detach the caller's slices
	return newExt
}

// StrategyConfig overrides the geometric tolerances of the grid strategies.
func (e *Extractor) StrategyConfig(cfg tables.StrategyConfig) *Extractor {
	newExt := e.clone()
	newExt.options.strategy = cfg
	return newExt
}

// ensureDoc opens the document if not already open.
func (e *Extractor) ensureDoc() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	doc, err := pages.Open(e.filename)
	if err != nil {
		return fmt.Errorf("opening plan document: %w", err)
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases the document if this Extractor owns it. It is safe to call
// Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		return err
	}
	return nil
}

// Plan extracts the complete plan: assembled weeks plus the glossary. This
// is a terminal operation that closes the document (when owned).
//
// Returns the plan, any warnings encountered, and an error if extraction
// failed. Warnings indicate non-fatal issues (a skipped unparseable page, a
// table with an unrecognized header) where extraction succeeded but results
// may be incomplete.
func (e *Extractor) Plan() (*model.Plan, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	doc := e.doc
	weeks := e.extractWeeks(doc)
	gloss := e.extractGlossary(doc)

	plan := &model.Plan{
		SourcePDF:   filepath.Base(doc.Path()),
		ProgramName: e.options.programName,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Weeks:       weeks,
		Glossary:    gloss,
	}
	return plan, e.warnings, nil
}

// Weeks extracts only the assembled week records. Terminal operation.
func (e *Extractor) Weeks() ([]*model.Week, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()
	return e.extractWeeks(e.doc), e.warnings, nil
}

// Glossary extracts only the glossary from the document's closing page.
// Terminal operation.
func (e *Extractor) Glossary() (*model.Glossary, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()
	return e.extractGlossary(e.doc), e.warnings, nil
}

// extractWeeks runs the two-tier grid extraction over every page and folds
// the grids through the week assembler. The text-positional strategy runs
// on a page only when the ruled-line strategy yielded no new weeks there.
func (e *Extractor) extractWeeks(doc *pages.Document) []*model.Week {
	asm := tables.NewAssembler()
	lineStrategy := tables.NewLineStrategy()
	textStrategy := tables.NewTextStrategy()

	for n := 1; n <= doc.PageCount(); n++ {
		content, err := doc.Page(n)
		if err != nil {
			e.warn("page", err.Error())
			continue
		}

		before := asm.WeekCount()
		for _, grid := range lineStrategy.Extract(content, e.options.strategy) {
			asm.ProcessGrid(grid)
		}
		if asm.WeekCount() == before {
			for _, grid := range textStrategy.Extract(content, e.options.strategy) {
				asm.ProcessGrid(grid)
			}
		}
	}

	for _, msg := range asm.Warnings() {
		code := "table"
		if strings.Contains(msg, "continuation row") {
			code = "row"
		}
		e.warn(code, msg)
	}

	parser := segment.NewCellParserWith(metrics.NewExtractorWithConfig(metrics.Config{
		MeterValueFloor: e.options.heuristics.MeterValueFloor,
		MeterCues:       e.options.heuristics.MeterCues,
	}))

	raw := asm.Weeks()
	weeks := make([]*model.Week, 0, len(raw))
	for i, rw := range raw {
		weeks = append(weeks, tables.BuildWeek(i+1, rw, parser.ParseCell))
	}
	return weeks
}

// extractGlossary splits the last page into two reading columns and
// resolves the glossary from their text.
func (e *Extractor) extractGlossary(doc *pages.Document) *model.Glossary {
	ge := glossary.NewExtractorWithLabels(e.options.heuristics.GlossaryLabels)
	if m := e.options.heuristics.DisclaimerMarker; m != "" {
		ge.DisclaimerMarker = m
	}

	content, err := doc.Page(doc.PageCount())
	if err != nil {
		e.warn("page", "glossary page: "+err.Error())
		return ge.ExtractColumns("", "")
	}

	half := content.Width / 2
	tol := e.options.strategy.LineTolerance
	left := content.RegionText(pages.BBox{X: 0, Y: 0, Width: half, Height: content.Height}, tol)
	right := content.RegionText(pages.BBox{X: half, Y: 0, Width: content.Width - half, Height: content.Height}, tol)
	return ge.ExtractColumns(left, right)
}

func (e *Extractor) warn(code, message string) {
	e.warnings = append(e.warnings, Warning{Code: code, Message: message})
}
