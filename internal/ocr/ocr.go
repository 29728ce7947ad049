package ocr

import "context"

// Transcriber turns a single-page PDF into plain text. Implementations own
// their own retry policy; callers treat an error or empty string as an
// unreadable page and move on.
type Transcriber interface {
	TranscribePage(ctx context.Context, page []byte, lang string) (string, error)
}

// Noop is the transcriber for OCR-disabled runs.
type Noop struct{}

func (Noop) TranscribePage(ctx context.Context, page []byte, lang string) (string, error) {
	return "", nil
}
