// Package app orchestrates the analysis pipeline: one uploaded file in, one
// complete Report out. Control flow is strictly linear — load, inspect,
// clean, wrangle, filter, aggregate, render — and every intermediate table
// is scoped to the run.
package app

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"disasterscope/adapters/charts"
	"disasterscope/adapters/ingest"
	"disasterscope/domain/core"
	"disasterscope/domain/table"
	"disasterscope/internal"
	"disasterscope/internal/aggregate"
	"disasterscope/internal/clean"
	"disasterscope/internal/config"
	"disasterscope/internal/inspect"
	"disasterscope/internal/wrangle"
	"disasterscope/ports"
)

// Well-known dataset columns. All optional: each dependent stage degrades
// on absence instead of failing the run.
const (
	ColCountry      = "country"
	ColDisasterType = "disastertype"
	ColLocation     = "location"
	ColContinent    = "continent"

	ColLocationLength   = "location_length"
	ColDisasterTypeCode = "disastertype_code"

	filterContinent = "Asia"
)

// AnalysisService runs the full pipeline for each upload
type AnalysisService struct {
	reader   ports.DatasetReader
	renderer ports.ChartRenderer
	cfg      config.PipelineConfig
	log      *internal.Logger

	noticeMu sync.Mutex
}

// NewAnalysisService creates the pipeline orchestrator with the default
// CSV/Excel reader and go-chart renderer
func NewAnalysisService(cfg config.PipelineConfig, log *internal.Logger) *AnalysisService {
	return &AnalysisService{
		reader:   ingest.NewReader(),
		renderer: charts.NewRenderer(),
		cfg:      cfg,
		log:      log,
	}
}

// NewAnalysisServiceWith wires explicit reader and renderer collaborators
func NewAnalysisServiceWith(reader ports.DatasetReader, renderer ports.ChartRenderer, cfg config.PipelineConfig, log *internal.Logger) *AnalysisService {
	return &AnalysisService{
		reader:   reader,
		renderer: renderer,
		cfg:      cfg,
		log:      log,
	}
}

// Analyze executes one complete run. Ingestion failure is the only fatal
// condition; every later stage either transforms, no-ops, or records a
// notice. The returned Report is self-contained.
func (s *AnalysisService) Analyze(ctx context.Context, filename string, src io.Reader) (*Report, error) {
	started := core.Now()
	runID := core.NewRunID()
	s.log.Info("[analyze] run %s starting for %q", runID, filename)

	raw, err := s.reader.Load(filename, src)
	if err != nil {
		s.log.Error("[analyze] run %s ingestion failed: %v", runID, err)
		return nil, err
	}
	s.log.Info("[analyze] run %s loaded %d rows, %d columns", runID, raw.NumRows(), raw.NumCols())

	report := &Report{
		RunID:       runID,
		Filename:    filename,
		RowCount:    raw.NumRows(),
		ColumnCount: raw.NumCols(),
		StartedAt:   started,
	}

	// Inspection: read-only views of the raw table
	report.Preview = NewGrid(raw.Head(s.cfg.PreviewRows))
	report.Summary = inspect.Describe(raw)
	report.TypeInfo = inspect.TypeInfo(raw)
	report.NullCounts = inspect.NullCounts(raw)

	// Cleaning: sentinel-fill then title-case the geographic origin
	cleaned := clean.FillNulls(raw, s.cfg.Sentinel)
	cleaned = clean.NormalizeCategory(cleaned, s.cfg.CategoryColumn)
	report.Cleaned = NewGrid(cleaned)

	if vals, err := aggregate.Distinct(cleaned, ColCountry); err == nil {
		report.UniqueCountries = vals
	}
	if vals, err := aggregate.Distinct(cleaned, ColDisasterType); err == nil {
		report.UniqueDisasters = vals
	}

	// Wrangling: sorted view, derived length, categorical encoding
	report.Sorted = NewGrid(wrangle.SortBy(cleaned, ColCountry))

	withLength := wrangle.DeriveLength(cleaned, ColLocation, ColLocationLength)
	report.WithLength = NewGrid(withLength)

	encoded := wrangle.EncodeCategory(withLength, ColDisasterType, ColDisasterTypeCode)
	report.Encoded = NewGrid(encoded)

	// Filtering and aggregation degrade to notices on absent columns
	filtered, err := aggregate.FilterEquals(cleaned, ColContinent, filterContinent)
	if err != nil {
		report.addNotice("Continent column not found; filter unavailable.")
	}
	report.FilteredAsia = NewGrid(filtered)

	countryCounts, err := aggregate.CountByGroup(cleaned, ColCountry)
	if err != nil {
		report.addNotice("Country column not found; per-country counts unavailable.")
	}
	report.CountryCounts = countryCounts

	s.renderCharts(ctx, report, cleaned, withLength, countryCounts)

	report.Duration = time.Since(started.Time())
	s.log.Info("[analyze] run %s completed in %s", runID, report.Duration)
	return report, nil
}

// renderCharts draws the chart set. The renders are pure and independent,
// so they fan out on an errgroup; the run still completes atomically
// because Analyze waits for the whole group.
func (s *AnalysisService) renderCharts(ctx context.Context, report *Report, cleaned, withLength table.Table, countryCounts []aggregate.GroupCount) {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if len(countryCounts) == 0 {
			report.Charts.CountryBar = nil
			return nil
		}
		img, err := s.renderer.CategoryBar(aggregate.SortByCountDesc(countryCounts), "Disasters by Country")
		if err != nil {
			s.log.Warn("[analyze] bar chart skipped: %v", err)
			return nil
		}
		report.Charts.CountryBar = img
		return nil
	})

	g.Go(func() error {
		counts, err := aggregate.CountByGroup(cleaned, ColDisasterType)
		if err != nil {
			s.addNoticeLocked(report, "Disaster type column not found; donut chart unavailable.")
			return nil
		}
		img, err := s.renderer.Donut(aggregate.SortByCountDesc(counts), "Disaster Type Distribution")
		if err != nil {
			s.log.Warn("[analyze] donut chart skipped: %v", err)
			return nil
		}
		report.Charts.DisasterDonut = img
		return nil
	})

	g.Go(func() error {
		col, ok := withLength.Column(ColLocationLength)
		if !ok {
			s.addNoticeLocked(report, "Location column not found; length distribution unavailable.")
			return nil
		}
		img, err := s.renderer.HistogramDensity(col.Floats(), "Location Name Length Distribution", "Location Name Length")
		if err != nil {
			s.log.Warn("[analyze] histogram skipped: %v", err)
			return nil
		}
		report.Charts.LocationHistogram = img
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("[analyze] chart rendering failed: %v", err)
	}
}

func (r *Report) addNotice(msg string) {
	r.Notices = append(r.Notices, msg)
}

// addNoticeLocked serializes notice appends from the render goroutines
func (s *AnalysisService) addNoticeLocked(report *Report, msg string) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	report.addNotice(msg)
}
