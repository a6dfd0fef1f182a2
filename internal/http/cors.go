package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// probeCORS lets status dashboards on the given origins read /health and /ping.
// Catalog pages stay same-origin.
func probeCORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	})
}

// registerProbes mounts /ping, and /health when health is non-nil.
func registerProbes(router *gin.Engine, health *HealthController, origins []string) {
	probes := router.Group("")
	if len(origins) > 0 {
		probes.Use(probeCORS(origins))
		preflight := func(c *gin.Context) { c.Status(http.StatusNoContent) }
		probes.OPTIONS("/ping", preflight)
		if health != nil {
			probes.OPTIONS("/health", preflight)
		}
	}

	if health != nil {
		probes.GET("/health", health.Status)
	}
	probes.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
}
