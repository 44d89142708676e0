package report

import (
	"context"
	"fmt"
	"time"

	"premarket-report/internal/digest"
	"premarket-report/internal/interfaces"
	"premarket-report/internal/logger"
	"premarket-report/internal/store"
	"premarket-report/internal/trace"
	"premarket-report/internal/types"
)

// Composer runs the report pipeline once: fetch both providers, format
// the digest, interpolate the prompt, and invoke the generator. It never
// panics or errors past its boundary — every failure ends up in the
// result's error field.
type Composer struct {
	cfg       *store.Config
	quoteNews interfaces.QuoteNewsFetcher
	snapshots interfaces.SnapshotFetcher
	generator interfaces.Generator
	now       func() time.Time
}

func New(cfg *store.Config, qn interfaces.QuoteNewsFetcher, sf interfaces.SnapshotFetcher, gen interfaces.Generator) *Composer {
	return &Composer{
		cfg:       cfg,
		quoteNews: qn,
		snapshots: sf,
		generator: gen,
		now:       time.Now,
	}
}

// Generate produces the pre-market report for today.
func (c *Composer) Generate(ctx context.Context) types.ReportResult {
	ctx, span := trace.StartSpan(ctx, "report.Generate")
	defer span.End()

	date := c.reportDate()

	if err := c.cfg.CredentialError(); err != nil {
		logger.ErrorWithErr(ctx, "configuration incomplete", err)
		return types.ReportResult{Success: false, Err: err.Error(), Date: date}
	}

	logger.Info(ctx, "fetching quote/news data")
	qn := c.quoteNews.Fetch(ctx)

	logger.Info(ctx, "fetching market snapshot")
	snap := c.snapshots.Snapshot(ctx)

	summary := digest.Build(qn, snap)
	prompt := fmt.Sprintf(reportPromptTemplate, date, summary)

	content, err := c.generator.Complete(ctx, analystSystemPrompt, prompt)
	if err != nil {
		logger.ErrorWithErr(ctx, "report generation failed", err)
		return types.ReportResult{Success: false, Err: err.Error(), Date: date}
	}

	return types.ReportResult{
		Success: true,
		Content: content,
		Date:    date,
		Raw: &types.RawData{
			QuoteNews: qn,
			Snapshot:  snap,
		},
	}
}

// reportDate is today's date in US Eastern time, e.g. "August 30, 2026".
func (c *Composer) reportDate() string {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}
	return c.now().In(loc).Format("January 02, 2006")
}
