// Package pdftext supplies best-effort per-page text for PDF documents.
//
// Three arms, tried in order per page: native text objects via rsc.io/pdf,
// raw content-stream parsing via pdfcpu, and OCR through a Transcriber for
// scanned pages. Every per-page failure degrades to an empty string; the
// only fatal condition is a document whose structure cannot be read at all.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	rpdf "rsc.io/pdf"

	"github.com/thywilljoshua/pdf-toc/internal/ocr"
)

// Document is a PageTextProvider over one PDF file. Not safe for concurrent
// use; open one Document per extraction run.
type Document struct {
	data   []byte
	pages  int
	reader *rpdf.Reader
	pctx   *model.Context
	ocr    ocr.Transcriber
	lang   string
	log    *slog.Logger

	// cache keeps each page's transcription for the run. Detection and
	// gathering both visit the same pages, and OCR is far too slow to do
	// twice.
	cache map[int]string
}

// Option configures a Document at open time.
type Option func(*Document)

// WithOCR enables the OCR arm for pages with no extractable text. lang is
// the tesseract-style hint ("eng", "hin", "eng+hin") forwarded to the
// transcriber.
func WithOCR(t ocr.Transcriber, lang string) Option {
	return func(d *Document) {
		d.ocr = t
		d.lang = lang
	}
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Document) { d.log = log }
}

// Open reads the whole file and prepares both PDF readers. It fails only
// when neither reader can make sense of the document; a file one library
// chokes on often still yields pages through the other.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d := &Document{
		data:  data,
		ocr:   ocr.Noop{},
		lang:  "eng",
		log:   slog.Default(),
		cache: make(map[int]string),
	}
	for _, opt := range opts {
		opt(d)
	}

	if r := openNative(data); r != nil {
		d.reader = r
		d.pages = r.NumPage()
	}
	if ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration()); err == nil {
		d.pctx = ctx
		if d.pages == 0 {
			d.pages = ctx.PageCount
		}
	} else {
		d.log.Debug("pdfcpu could not read document", "error", err)
	}

	if d.reader == nil && d.pctx == nil {
		return nil, errors.New("document structure unreadable by any backend")
	}
	return d, nil
}

// openNative wraps rsc.io/pdf, which panics rather than returning errors on
// some malformed files.
func openNative(data []byte) (r *rpdf.Reader) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	r, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	return r
}

// PageCount reports the number of pages. Open already failed if the count
// was unobtainable, so this never errors on a live Document.
func (d *Document) PageCount() (int, error) {
	if d.pages <= 0 {
		return 0, errors.New("page count unavailable")
	}
	return d.pages, nil
}

// PageText returns the best transcription available for a zero-based page
// index, or an empty string. It never fails the run.
func (d *Document) PageText(ctx context.Context, page int) string {
	if page < 0 || page >= d.pages {
		return ""
	}
	if text, ok := d.cache[page]; ok {
		return text
	}
	pageNr := page + 1 // both backends number pages from 1

	text := d.nativeText(pageNr)
	if strings.TrimSpace(text) == "" {
		text = d.streamText(pageNr)
	}
	if strings.TrimSpace(text) == "" {
		text = d.ocrText(ctx, pageNr)
	}
	d.cache[page] = text
	return text
}

// ocrText slices out a single-page PDF and hands it to the transcriber.
func (d *Document) ocrText(ctx context.Context, pageNr int) string {
	if _, isNoop := d.ocr.(ocr.Noop); isNoop {
		return ""
	}
	var buf bytes.Buffer
	if err := api.Trim(bytes.NewReader(d.data), &buf, []string{strconv.Itoa(pageNr)}, model.NewDefaultConfiguration()); err != nil {
		d.log.Warn("page slice for ocr failed", "page", pageNr, "error", err)
		return ""
	}
	text, err := d.ocr.TranscribePage(ctx, buf.Bytes(), d.lang)
	if err != nil {
		d.log.Warn("ocr failed", "page", pageNr, "error", err)
		return ""
	}
	return text
}
