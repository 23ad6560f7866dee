package digest

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// csvHeader fixes the export column contract.
var csvHeader = []string{"title", "source", "published", "link", "authors"}

// WriteCSV writes one row per article with a header row. Published
// times are ISO-8601.
func WriteCSV(w io.Writer, articles []types.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, a := range articles {
		row := []string{
			a.Title,
			a.Source,
			a.Published.Format(time.RFC3339),
			a.Link,
			a.Authors,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
