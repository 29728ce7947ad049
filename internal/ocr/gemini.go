package ocr

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
	genai "google.golang.org/genai"
)

// langNames maps the tesseract-style language hints the CLI accepts onto
// wording the model understands.
var langNames = map[string]string{
	"eng":     "English",
	"hin":     "Hindi (Devanagari script)",
	"eng+hin": "English and Hindi (Devanagari script)",
}

// Gemini transcribes scanned pages with a multimodal model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a transcriber against the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

// TranscribePage sends one single-page PDF to the model and returns its
// plain-text transcription. The call is retried a few times; transient API
// failures are common enough that a page should not go blank on the first.
func (g *Gemini) TranscribePage(ctx context.Context, page []byte, lang string) (string, error) {
	if g.client == nil || len(page) == 0 {
		return "", nil
	}
	name, ok := langNames[lang]
	if !ok {
		name = "English"
	}
	prompt := "Transcribe ALL text on this scanned page, in " + name + ". " +
		"Preserve line breaks exactly as printed, one physical line per output line. " +
		"Output ONLY the transcription, no commentary, no code fences."
	content := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: prompt},
				{InlineData: &genai.Blob{MIMEType: "application/pdf", Data: page}},
			},
		},
	}
	return retry.DoWithData(
		func() (string, error) {
			res, err := g.client.Models.GenerateContent(ctx, g.model, content, nil)
			if err != nil {
				return "", err
			}
			return res.Text(), nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
}
