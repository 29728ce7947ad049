package toc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPipelineExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("end to end on a synthetic document", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{
			"My Book\nby An Author",
			tocPage,
			"It was a dark and stormy night.",
			"The plot thickened considerably.",
			"And so it ended.",
		}}
		entries, err := NewPipeline(DefaultConfig(ModeLatin), nil).Extract(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
		}
		if entries[0].Chapter != "Chapter One" || entries[0].Page != "1" {
			t.Errorf("unexpected first entry: %+v", entries[0])
		}
		if entries[1].Chapter != "Chapter Two" || entries[1].Page != "15" {
			t.Errorf("unexpected second entry: %+v", entries[1])
		}
	})

	t.Run("falls back to the whole document without anchors", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{
			"the front page of the book",
			"",
			"Hidden Chapter .... 7",
		}}
		entries, err := NewPipeline(DefaultConfig(ModeLatin), nil).Extract(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].Chapter != "Hidden Chapter" || entries[0].Page != "7" {
			t.Errorf("expected the full-document scan to find the entry, got %v", entries)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		doc := &fakeDoc{pages: []string{"nothing here", "or here"}}
		entries, err := NewPipeline(DefaultConfig(ModeLatin), nil).Extract(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected no entries, got %v", entries)
		}
	})

	t.Run("unreadable page count is fatal", func(t *testing.T) {
		cause := errors.New("broken xref table")
		doc := &fakeDoc{err: cause}
		_, err := NewPipeline(DefaultConfig(ModeLatin), nil).Extract(ctx, doc)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected wrapped cause, got %v", err)
		}
		if !strings.Contains(err.Error(), "document structure") {
			t.Errorf("unexpected message: %v", err)
		}
	})

	t.Run("blank pages degrade silently", func(t *testing.T) {
		// Page 2 would be inside the expanded range but reads as empty;
		// the run must still return the anchored entries.
		doc := &fakeDoc{pages: []string{tocPage, "", ""}}
		entries, err := NewPipeline(DefaultConfig(ModeLatin), nil).Extract(ctx, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %v", entries)
		}
	})
}
