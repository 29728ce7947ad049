package toc

import (
	"regexp"
	"strings"
)

// Pattern tables for ToC lines. Each pattern captures the chapter text and
// the page label. Order matters: first match wins.
var (
	commonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(.*?)[\s.\-]+(\d+)\s*$`),
		regexp.MustCompile(`^(.*?)[\s\-_]+(\d+)\s*$`),
		regexp.MustCompile(`^\s*(\d+\..*?)[\s.\-]+(\d+)\s*$`),
	}
	hindiPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\s*([०-९]+\.\s+.*?)[\s.\-]*([०-९0-9]+)\s*$`),
		regexp.MustCompile(`^(.*?)[\s\-—]+([०-९0-9]+)\s*$`),
		regexp.MustCompile(`^(.*?)[\s.]+([०-९0-9]+)\s*$`),
		regexp.MustCompile(`^(.*?(?:अध्याय|खंड|परिशिष्ट|प्रस्तावना|भाग|अनुभाग|प्रकरण)\s*[०-९]*[.:\-]?\s*.*?)[\s.\-]*([०-९0-9]+)\s*$`),
		regexp.MustCompile(`^(.*?)\s+([०-९0-9]+)$`),
	}

	// Last resort: take the trailing digit run as the page and everything
	// before it as the title. Catches titles whose punctuation defeats the
	// tables above.
	trailingDigitsRe = regexp.MustCompile(`([0-9०-९]+)\s*$`)
)

// minLineLen is the shortest trimmed line that can still carry a title and
// a page digit.
const minLineLen = 3

// Parser turns raw page text into ordered ToC entries.
type Parser struct {
	cfg Config
}

// NewParser builds a parser for one extraction run.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg.withDefaults()}
}

// Parse scans text line by line and returns entries in reading order.
//
// Lines that do not end in a digit run are buffered as wrapped title
// fragments and joined onto the next terminating line. A buffer left over
// at the end of input never produced a page number and is dropped.
func (p *Parser) Parse(text string) []Entry {
	var entries []Entry
	var buffer []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if p.cfg.Mode == ModeLatin {
			line = strings.TrimSpace(StripDevanagari(line))
		}
		if len([]rune(line)) < minLineLen {
			continue
		}
		if p.skip(line) {
			continue
		}
		if !endsInDigit(line) {
			buffer = append(buffer, line)
			continue
		}
		candidate := line
		if len(buffer) > 0 {
			candidate = strings.Join(append(buffer, line), " ")
			buffer = buffer[:0]
		}
		// A wrapped fragment joined with its terminating line can
		// reassemble a heading; test the combined text again.
		if p.skip(candidate) {
			continue
		}
		if e, ok := p.match(candidate); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// skip reports whether a line is disqualified by the skip-term tables.
// Bilingual lines dominated by Devanagari check the hindi table verbatim;
// everything else checks the Latin table case-insensitively.
func (p *Parser) skip(line string) bool {
	if p.cfg.Mode == ModeBilingual && devanagariDominates(line) {
		for _, term := range p.cfg.SkipTermsHindi {
			if strings.Contains(line, term) {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(line)
	for _, term := range p.cfg.SkipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// match runs the pattern table over a candidate line, falling back to the
// trailing-digit pattern when no table entry yields a valid page label.
func (p *Parser) match(line string) (Entry, bool) {
	for _, re := range p.patterns() {
		m := re.FindStringSubmatch(line)
		if len(m) != 3 {
			continue
		}
		if e, ok := p.makeEntry(m[1], m[2]); ok {
			return e, true
		}
		// Pattern matched but the page label was junk; let the
		// trailing-digit fallback have the whole line.
		break
	}
	loc := trailingDigitsRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return Entry{}, false
	}
	return p.makeEntry(line[:loc[2]], line[loc[2]:loc[3]])
}

func (p *Parser) patterns() []*regexp.Regexp {
	if len(p.cfg.Patterns) > 0 {
		return p.cfg.Patterns
	}
	if p.cfg.Mode == ModeBilingual {
		return hindiPatterns
	}
	return commonPatterns
}

// makeEntry validates the captured pair and normalizes the page digits.
func (p *Parser) makeEntry(chapter, page string) (Entry, bool) {
	chapter = strings.TrimSpace(chapter)
	page = strings.TrimSpace(page)
	if chapter == "" || !validPageNumber(page) {
		return Entry{}, false
	}
	return Entry{Chapter: chapter, Page: NormalizeDigits(page)}, true
}

// validPageNumber accepts labels made entirely of ASCII or Devanagari
// digits. Anything else (e.g. "12a") is rejected, not repaired.
func validPageNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < devanagariZero || r > devanagariNine) {
			return false
		}
	}
	return true
}

// endsInDigit reports whether a trimmed line terminates in a page digit.
func endsInDigit(line string) bool {
	rs := []rune(line)
	r := rs[len(rs)-1]
	return (r >= '0' && r <= '9') || (r >= devanagariZero && r <= devanagariNine)
}

// devanagariDominates reports whether a line holds more Devanagari runes
// than Latin letters.
func devanagariDominates(line string) bool {
	var deva, latin int
	for _, r := range line {
		switch {
		case r >= devanagariLo && r <= devanagariHi:
			deva++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	return deva > latin
}
