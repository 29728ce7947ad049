package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/pdf-toc/internal/config"
	"github.com/thywilljoshua/pdf-toc/internal/export"
	"github.com/thywilljoshua/pdf-toc/internal/ocr"
	"github.com/thywilljoshua/pdf-toc/internal/pdftext"
	"github.com/thywilljoshua/pdf-toc/internal/toc"
)

func extractCmd() *cobra.Command {
	var out string
	var language string
	var cfgFile string
	var extraPages int
	var maxSearchPages int
	var minEntries int
	var useOCR bool
	var ocrModel string
	var asJSON bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract the ToC into a chapter/page CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath := args[0]

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg, lang, err := config.Load(cfgFile, language)
			if err != nil {
				return err
			}
			// Flags beat the config file.
			if cmd.Flags().Changed("extra-pages") {
				cfg.ExtraPages = extraPages
			}
			if cmd.Flags().Changed("max-search-pages") {
				cfg.MaxSearchPages = maxSearchPages
			}
			if cmd.Flags().Changed("min-entries") {
				cfg.MinEntries = minEntries
			}

			var transcriber ocr.Transcriber = ocr.Noop{}
			if useOCR {
				g, err := ocr.NewGemini(cmd.Context(), os.Getenv("GOOGLE_API_KEY"), ocrModel)
				if err != nil {
					return fmt.Errorf("enabling ocr: %w", err)
				}
				transcriber = g
			}

			doc, err := pdftext.Open(pdfPath,
				pdftext.WithOCR(transcriber, lang),
				pdftext.WithLogger(log),
			)
			if err != nil {
				return fmt.Errorf("opening %s: %w", pdfPath, err)
			}

			entries, err := toc.NewPipeline(cfg, log).Extract(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				log.Warn("no toc entries detected", "pdf", pdfPath)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if out == "" {
				out = export.CSVName(pdfPath)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := export.WriteCSV(f, entries); err != nil {
				return err
			}
			log.Info("wrote toc", "entries", len(entries), "path", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV path (default: <pdf name>.csv)")
	cmd.Flags().StringVarP(&language, "lang", "l", "eng", "document language: eng, hin, or both")
	cmd.Flags().StringVar(&cfgFile, "config", "", "heuristics config file (yaml)")
	cmd.Flags().IntVar(&extraPages, "extra-pages", 2, "pages to include after each detected ToC page")
	cmd.Flags().IntVar(&maxSearchPages, "max-search-pages", 20, "how many leading pages to scan for the ToC")
	cmd.Flags().IntVar(&minEntries, "min-entries", 2, "entries a keyword page must parse into before it counts")
	cmd.Flags().BoolVar(&useOCR, "ocr", false, "transcribe pages with no extractable text via Gemini (needs GOOGLE_API_KEY)")
	cmd.Flags().StringVar(&ocrModel, "ocr-model", "gemini-2.5-flash", "Gemini model for page transcription")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON to stdout instead of writing CSV")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
