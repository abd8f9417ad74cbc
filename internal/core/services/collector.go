package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// Collector loads every configured source and normalises it into records.
// A failing source contributes no records; the others are unaffected.
type Collector struct {
	loader      driven.ContentLoader
	normalisers driven.NormaliserRegistry
	sources     []domain.SourceConfig
}

// NewCollector creates a collector for the given sources.
func NewCollector(
	loader driven.ContentLoader,
	normalisers driven.NormaliserRegistry,
	sources []domain.SourceConfig,
) *Collector {
	return &Collector{
		loader:      loader,
		normalisers: normalisers,
		sources:     sources,
	}
}

// Sources returns the configured sources.
func (c *Collector) Sources() []domain.SourceConfig {
	return c.sources
}

// Collect loads all sources concurrently and returns the published records,
// sorted most recent first, plus one report per source in configuration order.
// The error is non-nil only when ctx is cancelled.
func (c *Collector) Collect(ctx context.Context) ([]domain.ContentRecord, []domain.LoadReport, error) {
	logger.Section("Content Loading")

	perSource := make([][]domain.ContentRecord, len(c.sources))
	reports := make([]domain.LoadReport, len(c.sources))

	var g errgroup.Group
	for i, src := range c.sources {
		g.Go(func() error {
			perSource[i], reports[i] = c.collectSource(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var records []domain.ContentRecord
	for i := range perSource {
		records = append(records, perSource[i]...)
	}
	if records == nil {
		records = []domain.ContentRecord{}
	}
	SortRecords(records)

	logger.Info("collected %d records from %d sources", len(records), len(c.sources))
	return records, reports, nil
}

// collectSource loads and normalises one source. Panics are recovered into
// a failed report so one bad source cannot take down a rebuild.
func (c *Collector) collectSource(ctx context.Context, src domain.SourceConfig) (records []domain.ContentRecord, report domain.LoadReport) {
	report = domain.LoadReport{SourceType: src.Type, Root: src.Root}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("loading %s source panicked: %v", src.Type, r)
			records = []domain.ContentRecord{}
			report.Records = 0
			report.Err = fmt.Errorf("loading %s source: panic: %v", src.Type, r)
		}
	}()

	result, err := c.loader.Load(ctx, src)
	if err != nil {
		logger.Error("%s source unavailable: %v", src.Type, err)
		report.Err = err
		return []domain.ContentRecord{}, report
	}

	report.Drafts = result.Drafts
	report.Warnings = append(report.Warnings, result.Warnings...)

	seen := make(map[string]string, len(result.Files))
	records = make([]domain.ContentRecord, 0, len(result.Files))
	for i := range result.Files {
		file := &result.Files[i]
		rec, err := c.normalisers.Normalise(file)
		if err != nil {
			logger.Warn("skipping %s: %v", file.Path, err)
			report.Warnings = append(report.Warnings, domain.LoadWarning{Path: file.Path, Err: err})
			continue
		}
		if rec.Draft {
			report.Drafts++
			continue
		}
		if prev, dup := seen[rec.ID]; dup {
			err := fmt.Errorf("%w: slug %q already used by %s", domain.ErrInvalidInput, rec.ID, prev)
			logger.Warn("skipping %s: %v", file.Path, err)
			report.Warnings = append(report.Warnings, domain.LoadWarning{Path: file.Path, Err: err})
			continue
		}
		seen[rec.ID] = file.Path
		records = append(records, rec)
	}

	report.Records = len(records)
	logger.Debug("%s: %d records, %d drafts, %d warnings",
		src.Type, report.Records, report.Drafts, len(report.Warnings))
	return records, report
}

// SortRecords orders records most recently modified first. Ties are broken
// by ID, then by source type, so the order is total.
func SortRecords(records []domain.ContentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		ta, tb := a.LastModified(), b.LastModified()
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.SourceType.Order() < b.SourceType.Order()
	})
}
