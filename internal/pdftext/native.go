package pdftext

import (
	"sort"
	"strings"
)

// lineYTolerance groups text items whose baselines sit within this many
// points into one physical line.
const lineYTolerance = 2.0

// nativeText assembles a page's text objects into newline-separated lines,
// top to bottom, left to right.
func (d *Document) nativeText(pageNr int) (text string) {
	if d.reader == nil {
		return ""
	}
	// rsc.io/pdf panics on content streams it does not understand.
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("native text extraction panicked", "page", pageNr, "cause", r)
			text = ""
		}
	}()

	page := d.reader.Page(pageNr)
	if page.V.IsNull() {
		return ""
	}
	items := page.Content().Text
	if len(items) == 0 {
		return ""
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Y != items[j].Y {
			return items[i].Y > items[j].Y
		}
		return items[i].X < items[j].X
	})

	var b strings.Builder
	lastY := items[0].Y
	lastEnd := items[0].X
	for _, t := range items {
		switch {
		case lastY-t.Y > lineYTolerance:
			b.WriteByte('\n')
		case t.X-lastEnd > wordGap(t.FontSize):
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		lastY = t.Y
		lastEnd = t.X + t.W
	}
	return b.String()
}

// wordGap is the horizontal distance that separates two words rather than
// two glyphs of the same word.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.5
	}
	return fontSize * 0.25
}
