package summarize

import (
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"

	readability "github.com/go-shiori/go-readability"
)

const extractTimeout = 30 * time.Second

// ArticleText chooses the text to summarize: the feed summary when one
// exists, otherwise the readable full text extracted from the link.
// Empty means nothing usable was found.
func ArticleText(a types.Article) string {
	if a.Summary != "" {
		return a.Summary
	}
	if a.Link == "" {
		return ""
	}
	extracted, err := readability.FromURL(a.Link, extractTimeout)
	if err != nil {
		return ""
	}
	return extracted.TextContent
}
