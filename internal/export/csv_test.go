package export

import (
	"strings"
	"testing"

	"github.com/thywilljoshua/pdf-toc/internal/toc"
)

func TestWriteCSV(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		var b strings.Builder
		entries := []toc.Entry{
			{Chapter: "Chapter One", Page: "1"},
			{Chapter: "Notes, Asides", Page: "88"},
		}
		if err := WriteCSV(&b, entries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "chapter,page\nChapter One,1\n\"Notes, Asides\",88\n"
		if b.String() != want {
			t.Errorf("expected %q, got %q", want, b.String())
		}
	})

	t.Run("empty result writes just the header", func(t *testing.T) {
		var b strings.Builder
		if err := WriteCSV(&b, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.String() != "chapter,page\n" {
			t.Errorf("unexpected output: %q", b.String())
		}
	})
}

func TestCSVName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"book.pdf", "book.csv"},
		{"/tmp/uploads/my book.PDF", "my book.csv"},
		{"noext", "noext.csv"},
	}
	for _, tt := range tests {
		if got := CSVName(tt.in); got != tt.want {
			t.Errorf("CSVName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
