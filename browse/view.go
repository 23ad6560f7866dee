package browse

import (
	"fmt"
	"strings"
)

const metaTimeLayout = "2006-01-02 15:04"

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("AI Articles Digest"))
	b.WriteString("\n")

	if m.Searching {
		b.WriteString(PromptStyle.Render("Search: " + m.SearchInput + "▌"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(MetaStyle.Render(m.filterLine()))
		b.WriteString("\n\n")
	}

	switch {
	case m.Err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
		b.WriteString("\n")
	case m.Loading:
		b.WriteString(MetaStyle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.Articles) == 0:
		b.WriteString(MetaStyle.Render("No articles match the current filters."))
		b.WriteString("\n")
	default:
		for _, a := range m.Articles {
			meta := fmt.Sprintf("%s · %s", a.Source, a.Published.Format(metaTimeLayout))
			if a.Authors != "" {
				meta += " · " + a.Authors
			}
			card := HeadlineStyle.Render(a.Title) + "\n" + MetaStyle.Render(meta)
			if a.Link != "" {
				card += "\n" + MetaStyle.Render(a.Link)
			}
			b.WriteString(CardStyle.Render(card))
			b.WriteString("\n")
		}
	}

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(MetaStyle.Render(m.Status))
	}

	b.WriteString("\n")
	b.WriteString(MetaStyle.Render(fmt.Sprintf("Page %d of %d · %d result(s)", m.Page, max(m.TotalPages, 1), m.Total)))
	b.WriteString("\n")
	b.WriteString(MetaStyle.Render("←/→ page · / search · tab region · r refresh · g first page · q quit"))
	return b.String()
}

func (m Model) filterLine() string {
	parts := []string{}
	if m.Query != "" {
		parts = append(parts, fmt.Sprintf("query %q", m.Query))
	}
	if region := m.region(); region != "" {
		parts = append(parts, "region "+region)
	}
	if len(parts) == 0 {
		return "All articles"
	}
	return "Filters: " + strings.Join(parts, " · ")
}
