package toc

import (
	"context"
	"regexp"
)

// Entry is one table-of-contents row: a chapter title and the page label it
// points at. Page holds ASCII digits only, already normalized.
type Entry struct {
	Chapter string `json:"chapter"`
	Page    string `json:"page"`
}

// Mode selects which script heuristics the parser applies.
type Mode int

const (
	// ModeLatin strips Devanagari runs before parsing and matches the common
	// pattern table.
	ModeLatin Mode = iota
	// ModeBilingual keeps both scripts, matches the hindi pattern table, and
	// accepts Devanagari page digits.
	ModeBilingual
)

// Config carries the injectable heuristics for one extraction run.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	Mode Mode

	// MaxSearchPages bounds the detector scan over the front of the document.
	MaxSearchPages int
	// MinEntries is how many parsed entries a keyword page must yield before
	// it counts as a ToC anchor.
	MinEntries int
	// ExtraPages grows each anchor forward to catch listings that overflow
	// onto following pages.
	ExtraPages int

	// Keywords mark pages worth parsing at all. Matched case-insensitively
	// as substrings of the raw page text.
	Keywords []string
	// SkipTerms disqualify Latin lines (case-insensitive substring match).
	SkipTerms []string
	// SkipTermsHindi disqualify Devanagari-dominated lines (verbatim
	// substring match).
	SkipTermsHindi []string

	// Patterns overrides the mode's pattern table when non-nil. Each pattern
	// must capture exactly two groups: chapter text and page label.
	Patterns []*regexp.Regexp
}

// PageTextProvider supplies a best-effort transcription of single pages,
// using OCR or not as it sees fit. PageText returns an empty string for any
// page it cannot read; PageCount failing is the one fatal condition.
type PageTextProvider interface {
	PageCount() (int, error)
	PageText(ctx context.Context, page int) string
}

// DefaultConfig returns the stock heuristics for a mode. The keyword and
// skip-term tables follow what bilingual scanned books actually print on
// their contents pages.
func DefaultConfig(mode Mode) Config {
	cfg := Config{
		Mode:           mode,
		MaxSearchPages: 20,
		MinEntries:     2,
		ExtraPages:     2,
		Keywords:       []string{"contents", "table of contents", "foreword", "preface"},
		SkipTerms:      []string{"table of contents", "contents", "page", "toc"},
		SkipTermsHindi: []string{"विषय सूची", "अनुक्रमणिका", "सामग्री", "पृष्ठ", "अध्याय"},
	}
	if mode == ModeBilingual {
		cfg.Keywords = append(cfg.Keywords, "विषय सूची", "अनुक्रमणिका", "सामग्री")
	}
	return cfg
}

// withDefaults backfills unset numeric fields so a partially filled Config
// still behaves.
func (c Config) withDefaults() Config {
	if c.MaxSearchPages <= 0 {
		c.MaxSearchPages = 20
	}
	if c.MinEntries < 1 {
		c.MinEntries = 2
	}
	if c.ExtraPages < 0 {
		c.ExtraPages = 0
	}
	if len(c.Keywords) == 0 {
		c.Keywords = DefaultConfig(c.Mode).Keywords
	}
	return c
}
