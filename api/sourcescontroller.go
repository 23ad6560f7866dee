package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSourceRoutes registers registry inspection endpoints.
func RegisterSourceRoutes(r *gin.Engine, deps Deps) {
	r.GET("/api/sources", func(c *gin.Context) {
		sources := deps.Registry.Sources()
		out := make([]gin.H, 0, len(sources))
		for _, s := range sources {
			out = append(out, gin.H{
				"name":   s.Name,
				"url":    s.URL,
				"region": deps.Registry.RegionOf(s.Name),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"sources": out,
			"regions": deps.Registry.Regions(),
		})
	})
}
