package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

const metaTimeLayout = "2006-01-02 15:04"

var pageTemplate = template.Must(template.New("digest").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>AI Articles Digest</title>
  <style>
  body { background: #FFFFFF; color: #000000; font-family: -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; }
  .container { max-width: 1080px; margin: 0 auto; padding: 24px 16px; }
  .header { border-bottom: 2px solid #009ddf; padding-bottom: 8px; margin-bottom: 20px; }
  .header h1 { margin: 0; color: #009ddf; }
  .meta { color: #333; opacity: 0.8; }
  .card { border: 1px solid #009ddf; border-radius: 10px; padding: 14px 16px; margin: 14px 0; background: #f9f9f9; }
  .card h3 { margin: 0 0 6px 0; color: #000; }
  .card .meta { font-size: 0.9rem; margin-bottom: 8px; }
  .card .summary { margin: 6px 0 10px 0; }
  .btn { display: inline-block; background: #009ddf; color: #fff; padding: 6px 10px; border-radius: 6px; text-decoration: none; }
  .btn:hover { background: #008cc8; }
  .small { font-size: 0.9rem; color: #333; }
  .footer { margin-top: 24px; border-top: 1px solid #e5e5e5; padding-top: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>AI Articles Digest</h1>
      <div class="meta">Generated on {{.GeneratedAt}} · Last {{.PeriodDays}} days</div>
    </div>
    {{if .Cards}}
    <p class="small">{{.Lead}}</p>
    {{range .Cards}}
    <div class="card">
      <h3>{{.Title}}</h3>
      <div class="meta">{{.Meta}}</div>
      <div class="summary">{{.Summary}}</div>
      <a class="btn" href="{{.Link}}" target="_blank">Read</a>
    </div>
    {{end}}
    {{else}}
    <p>No articles found for this period.</p>
    {{end}}
    <div class="footer small">Aggregated from curated AI/ML sources.</div>
  </div>
</body>
</html>
`))

type card struct {
	Title   string
	Meta    string
	Summary string
	Link    string
}

type page struct {
	GeneratedAt string
	PeriodDays  int
	Lead        string
	Cards       []card
}

// Render produces the digest HTML: a header with the generation time
// and lookback length, a lead summary sentence, then one card per
// article, newest first.
func Render(articles []types.Article, periodDays int, lead string, now time.Time) (string, error) {
	cards := make([]card, 0, len(articles))
	for _, a := range articles {
		meta := fmt.Sprintf("%s · %s", a.Source, a.Published.Format(metaTimeLayout))
		if a.Authors != "" {
			meta += " · " + a.Authors
		}
		cards = append(cards, card{
			Title:   a.Title,
			Meta:    meta,
			Summary: strings.TrimSpace(a.Summary),
			Link:    a.Link,
		})
	}

	var sb strings.Builder
	err := pageTemplate.Execute(&sb, page{
		GeneratedAt: now.Format(metaTimeLayout),
		PeriodDays:  periodDays,
		Lead:        lead,
		Cards:       cards,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return sb.String(), nil
}

// LeadSummary builds the top-of-page sentence naming the leading
// titles of the window.
func LeadSummary(articles []types.Article) string {
	if len(articles) == 0 {
		return "No articles available for this period."
	}
	top := articles
	if len(top) > 3 {
		top = top[:3]
	}
	titles := make([]string, len(top))
	for i, a := range top {
		titles[i] = a.Title
	}
	return fmt.Sprintf(
		"This week's AI digest highlights the top advancements and discussions in the field. "+
			"Key topics include %s. "+
			"Stay updated with the latest breakthroughs and insights from the AI community.",
		strings.Join(titles, ", "))
}
