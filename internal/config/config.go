// Package config layers an optional YAML file and environment variables
// over the built-in detection heuristics, so keyword and skip-term tables
// are tunable without a rebuild.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/thywilljoshua/pdf-toc/internal/toc"
)

// Load builds the detection config for a language selector ("eng", "hin",
// "both") and returns it together with the OCR language hint. cfgFile may
// be empty; then only ./pdftoc.yaml and PDFTOC_ env vars are consulted.
func Load(cfgFile, language string) (toc.Config, string, error) {
	mode, lang, err := resolveLanguage(language)
	if err != nil {
		return toc.Config{}, "", err
	}
	cfg := toc.DefaultConfig(mode)

	v := viper.New()
	// Register every key so PDFTOC_ env vars resolve even without a file.
	v.SetDefault("max_search_pages", 0)
	v.SetDefault("min_entries", 0)
	v.SetDefault("extra_pages", -1)
	v.SetDefault("keywords", []string{})
	v.SetDefault("skip_terms", []string{})
	v.SetDefault("skip_terms_hindi", []string{})
	v.SetEnvPrefix("PDFTOC")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pdftoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	// A missing default file is fine; an explicitly named one is not, and
	// neither is a malformed file.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return toc.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	if n := v.GetInt("max_search_pages"); n > 0 {
		cfg.MaxSearchPages = n
	}
	if n := v.GetInt("min_entries"); n > 0 {
		cfg.MinEntries = n
	}
	if n := v.GetInt("extra_pages"); n >= 0 {
		cfg.ExtraPages = n
	}
	if kw := v.GetStringSlice("keywords"); len(kw) > 0 {
		cfg.Keywords = kw
	}
	if terms := v.GetStringSlice("skip_terms"); len(terms) > 0 {
		cfg.SkipTerms = terms
	}
	if terms := v.GetStringSlice("skip_terms_hindi"); len(terms) > 0 {
		cfg.SkipTermsHindi = terms
	}
	return cfg, lang, nil
}

// resolveLanguage maps the UI language selector onto parser mode and OCR
// language hint, the way the upstream tool's selector behaved.
func resolveLanguage(language string) (toc.Mode, string, error) {
	switch language {
	case "", "eng":
		return toc.ModeLatin, "eng", nil
	case "hin":
		return toc.ModeBilingual, "hin", nil
	case "both":
		return toc.ModeBilingual, "eng+hin", nil
	}
	return 0, "", fmt.Errorf("unknown language %q (want eng, hin, or both)", language)
}
