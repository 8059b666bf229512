package table

// Shared test helpers for the table package.

import (
	"testing"

	"github.com/tidytable/pdftidy/document"
)

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

// lineRecords numbers texts 1..n on the given page.
func lineRecords(page int, texts ...string) []document.LineRecord {
	out := make([]document.LineRecord, len(texts))
	for i, text := range texts {
		out[i] = document.LineRecord{Page: page, Line: i + 1, Text: text}
	}
	return out
}

func assertRow(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row = %v, want %v", got, want)
		}
	}
}
