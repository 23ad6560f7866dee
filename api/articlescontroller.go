package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/aggregate"
	"github.com/arthuhr-heslault/ai-newsletter/config"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers the article listing and refresh
// endpoints.
func RegisterArticleRoutes(r *gin.Engine, deps Deps) {
	r.GET("/api/articles", func(c *gin.Context) { handleListArticles(c, deps) })
	r.POST("/api/refresh", func(c *gin.Context) { handleRefresh(c, deps) })
}

// ViewState is the explicit filter and pagination state of one
// interactive request, echoed back in every listing response. Only
// page is URL-addressable by contract; the rest travels with it for
// convenience.
type ViewState struct {
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Sources string `json:"sources,omitempty"`
	Regions string `json:"regions,omitempty"`
	Query   string `json:"q,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// handleListArticles serves one page of the filtered collection from
// the aggregation cache. Filtering and pagination never touch the
// network; only an expired cache triggers refetching.
func handleListArticles(c *gin.Context, deps Deps) {
	state := ViewState{
		Start:   c.Query("start"),
		End:     c.Query("end"),
		Sources: c.Query("sources"),
		Regions: c.Query("regions"),
		Query:   c.Query("q"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "per_page", config.DefaultPerPage),
	}
	if state.PerPage < 1 {
		state.PerPage = config.DefaultPerPage
	}

	criteria := aggregate.Criteria{
		Sources: parseSet(state.Sources),
		Regions: parseSet(state.Regions),
		Query:   state.Query,
	}
	var ok bool
	if criteria.Start, ok = parseWindowTime(state.Start, false); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
		return
	}
	if criteria.End, ok = parseWindowTime(state.End, true); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
		return
	}

	articles := deps.Cache.GetOrRefresh(c.Request.Context())
	filtered := aggregate.Filter(articles, criteria, deps.Registry.RegionOf)

	total := len(filtered)
	totalPages := (total + state.PerPage - 1) / state.PerPage
	if totalPages < 1 {
		totalPages = 1
	}
	// Clamp the requested page into range rather than 404ing
	if state.Page < 1 {
		state.Page = 1
	}
	if state.Page > totalPages {
		state.Page = totalPages
	}

	start := (state.Page - 1) * state.PerPage
	end := start + state.PerPage
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":    filtered[start:end],
		"total":       total,
		"total_pages": totalPages,
		"state":       state,
	})
}

// handleRefresh forces a cache refresh in the background and returns
// 202 Accepted immediately.
func handleRefresh(c *gin.Context, deps Deps) {
	go func() {
		deps.Cache.Refresh(context.Background())
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseSet(csv string) map[string]bool {
	set := make(map[string]bool)
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			set[item] = true
		}
	}
	return set
}

// parseWindowTime accepts RFC 3339 timestamps or bare dates. A bare
// end date extends to the end of that day so the window stays
// inclusive.
func parseWindowTime(s string, endOfDay bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, true
}
