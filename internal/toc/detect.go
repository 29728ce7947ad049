package toc

import (
	"context"
	"log/slog"
	"strings"
)

// Detector flags pages that plausibly hold table-of-contents listings.
//
// A keyword hit alone is cheap and noisy ("see Contents" in a preface), so
// a page only counts once its own text parses into enough entries.
type Detector struct {
	cfg    Config
	parser *Parser
	log    *slog.Logger
}

// NewDetector builds a detector sharing the run's config.
func NewDetector(cfg Config, log *slog.Logger) *Detector {
	cfg = cfg.withDefaults()
	if log == nil {
		log = slog.Default()
	}
	return &Detector{cfg: cfg, parser: NewParser(cfg), log: log}
}

// DetectPages scans pages 0..min(pageCount, MaxSearchPages)-1 and returns
// the ascending indices that look like ToC pages. It never stops at the
// first hit; contents listings regularly span consecutive pages.
func (d *Detector) DetectPages(ctx context.Context, doc PageTextProvider, pageCount int) []int {
	limit := pageCount
	if d.cfg.MaxSearchPages < limit {
		limit = d.cfg.MaxSearchPages
	}

	var anchors []int
	for i := 0; i < limit; i++ {
		text := doc.PageText(ctx, i)
		if text == "" || !d.hasKeyword(text) {
			continue
		}
		n := len(d.parser.Parse(text))
		if n < d.cfg.MinEntries {
			d.log.Debug("keyword page below entry threshold", "page", i, "entries", n)
			continue
		}
		d.log.Debug("toc candidate page", "page", i, "entries", n)
		anchors = append(anchors, i)
	}
	return anchors
}

// hasKeyword checks the raw page text for any configured keyword.
// Detection runs on raw text; script stripping only happens inside the
// parser for Latin-only runs.
func (d *Detector) hasKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range d.cfg.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
