package api

import (
	"net/http"

	"github.com/arthuhr-heslault/ai-newsletter/summarize"
	"github.com/arthuhr-heslault/ai-newsletter/types"

	"github.com/gin-gonic/gin"
)

// RegisterSummarizeRoutes registers the optional summarization endpoint.
func RegisterSummarizeRoutes(r *gin.Engine, deps Deps) {
	r.POST("/api/summarize", func(c *gin.Context) { handleSummarize(c, deps) })
}

// SummarizeRequest carries either raw text or an article link to pull
// text from.
type SummarizeRequest struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// handleSummarize produces a best-effort summary. An unavailable
// capability is reported as 503; a capability that produces nothing is
// an empty summary, never an error.
func handleSummarize(c *gin.Context, deps Deps) {
	if deps.Summarizer == nil || !deps.Summarizer.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summarization is not available"})
		return
	}

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := req.Text
	if text == "" && req.Link != "" {
		text = summarize.ArticleText(types.Article{Link: req.Link})
	}

	summary, ok := deps.Summarizer.Summarize(c.Request.Context(), text)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"summary": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
