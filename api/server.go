package api

import (
	"github.com/arthuhr-heslault/ai-newsletter/aggregate"
	"github.com/arthuhr-heslault/ai-newsletter/feeds"
	"github.com/arthuhr-heslault/ai-newsletter/summarize"

	"github.com/gin-gonic/gin"
)

// Deps are the constructed dependencies behind the HTTP surface.
type Deps struct {
	Registry   *feeds.Registry
	Cache      *aggregate.Cache
	Summarizer summarize.Capability
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterSourceRoutes(r, deps)
	RegisterArticleRoutes(r, deps)
	RegisterSummarizeRoutes(r, deps)
	return r
}
