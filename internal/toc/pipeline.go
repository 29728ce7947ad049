package toc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Pipeline runs detection, range expansion, text gathering, and parsing for
// one document. Each Extract call owns its own buffers; a single Pipeline
// may serve concurrent runs as long as each provider instance is not shared.
type Pipeline struct {
	cfg Config
	log *slog.Logger
}

// NewPipeline builds a pipeline with the run's heuristics.
func NewPipeline(cfg Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg.withDefaults(), log: log}
}

// Extract returns the ordered ToC entries for doc. An empty result is a
// valid outcome. The only error is a document whose page count cannot be
// obtained; every per-page failure degrades to empty text inside the
// provider and processing continues.
func (p *Pipeline) Extract(ctx context.Context, doc PageTextProvider) ([]Entry, error) {
	pageCount, err := doc.PageCount()
	if err != nil {
		return nil, fmt.Errorf("reading document structure: %w", err)
	}

	anchors := NewDetector(p.cfg, p.log).DetectPages(ctx, doc, pageCount)

	var pages []int
	if len(anchors) == 0 {
		// No page looked like a ToC; parse the whole document rather
		// than give up on recall.
		p.log.Debug("no anchor pages, scanning full document", "pages", pageCount)
		pages = make([]int, pageCount)
		for i := range pages {
			pages[i] = i
		}
	} else {
		pages = ExpandPageRange(anchors, p.cfg.ExtraPages, pageCount)
		p.log.Debug("expanded anchor pages", "anchors", anchors, "pages", pages)
	}

	var b strings.Builder
	for _, i := range pages {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(doc.PageText(ctx, i))
	}

	entries := NewParser(p.cfg).Parse(b.String())
	p.log.Debug("parse complete", "entries", len(entries))
	return entries, nil
}
