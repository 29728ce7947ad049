package toc

import (
	"context"
	"reflect"
	"testing"
)

// fakeDoc is an in-memory PageTextProvider.
type fakeDoc struct {
	pages []string
	err   error
}

func (f *fakeDoc) PageCount() (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.pages), nil
}

func (f *fakeDoc) PageText(_ context.Context, page int) string {
	if page < 0 || page >= len(f.pages) {
		return ""
	}
	return f.pages[page]
}

const tocPage = "Table of Contents\nChapter One .... 1\nChapter Two .... 15"

func TestDetectPages(t *testing.T) {
	ctx := context.Background()
	d := NewDetector(DefaultConfig(ModeLatin), nil)

	t.Run("keyword plus enough entries", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{"cover art", tocPage, "chapter body text"}}
		got := d.DetectPages(ctx, doc, 3)
		if !reflect.DeepEqual(got, []int{1}) {
			t.Errorf("expected [1], got %v", got)
		}
	})

	t.Run("keyword alone is not enough", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{"see the Contents listing later\nOnly One .... 3"}}
		if got := d.DetectPages(ctx, doc, 1); len(got) != 0 {
			t.Errorf("expected no anchors, got %v", got)
		}
	})

	t.Run("scan continues past the first hit", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{tocPage, "plain prose", tocPage}}
		got := d.DetectPages(ctx, doc, 3)
		if !reflect.DeepEqual(got, []int{0, 2}) {
			t.Errorf("expected [0 2], got %v", got)
		}
	})

	t.Run("search window is bounded", func(t *testing.T) {
		cfg := DefaultConfig(ModeLatin)
		cfg.MaxSearchPages = 1
		bounded := NewDetector(cfg, nil)
		doc := &fakeDoc{pages: []string{"prose", tocPage}}
		if got := bounded.DetectPages(ctx, doc, 2); len(got) != 0 {
			t.Errorf("expected no anchors inside window, got %v", got)
		}
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		cfg := DefaultConfig(ModeLatin)
		cfg.MinEntries = 3
		strict := NewDetector(cfg, nil)
		doc := &fakeDoc{pages: []string{tocPage}}
		if got := strict.DetectPages(ctx, doc, 1); len(got) != 0 {
			t.Errorf("expected 2 entries to miss a threshold of 3, got %v", got)
		}
	})
}
