// Package export serializes extracted entries for the review/download
// surface. The corpus settled on plain two-column CSV with a header row.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/thywilljoshua/pdf-toc/internal/toc"
)

// WriteCSV writes entries as `chapter,page` rows with a header.
func WriteCSV(w io.Writer, entries []toc.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"chapter", "page"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Chapter, e.Page}); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVName derives the output filename from the source PDF, keeping the base
// name the way the original download did.
func CSVName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}
