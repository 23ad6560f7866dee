package digest

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, sampleArticles()); err != nil {
		t.Fatalf("WriteCSV returned unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}

	wantHeader := []string{"title", "source", "published", "link", "authors"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	first := rows[1]
	if first[0] != "Big Model News" || first[1] != "Lab Blog" {
		t.Errorf("row = %v", first)
	}
	if first[2] != "2024-06-02T09:30:00Z" {
		t.Errorf("published = %q, want ISO-8601", first[2])
	}
	if first[4] != "Ada, Grace" {
		t.Errorf("authors = %q", first[4])
	}

	second := rows[2]
	if second[3] != "" || second[4] != "" {
		t.Errorf("absent link/authors should be empty cells, got %v", second)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil); err != nil {
		t.Fatalf("WriteCSV returned unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should contain only the header, got %d line(s)", len(lines))
	}
}
