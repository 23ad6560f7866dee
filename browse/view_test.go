package browse

import (
	"strings"
	"testing"
)

func TestView_PageCounterFloorsAtOne(t *testing.T) {
	m := NewModel("http://localhost:8080")
	m.Loading = false

	out := m.View()
	if !strings.Contains(out, "Page 1 of 1") {
		t.Errorf("empty collection should render as page 1 of 1, got:\n%s", out)
	}
	if !strings.Contains(out, "No articles match the current filters.") {
		t.Errorf("empty collection should render the empty state, got:\n%s", out)
	}
}
