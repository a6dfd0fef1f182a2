package http

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mrlokans/locallibrary/internal/entities"
	"github.com/mrlokans/locallibrary/web"
)

// statusClass maps a copy's status to the css class used to color it.
func statusClass(status entities.BookInstanceStatus) string {
	switch status {
	case entities.BookInstanceStatusAvailable:
		return "text-success"
	case entities.BookInstanceStatusMaintenance:
		return "text-danger"
	default:
		return "text-warning"
	}
}

// LoadTemplates parses the views from templatesPath, or the embedded views
// when templatesPath is empty.
func LoadTemplates(templatesPath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"statusClass": statusClass,
	}

	tmpl := template.New("").Funcs(funcMap)
	if templatesPath != "" {
		return tmpl.ParseGlob(filepath.Join(templatesPath, "*.html"))
	}
	return tmpl.ParseFS(web.Templates(), web.TemplatesPattern)
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	tmpl := template.Must(LoadTemplates(cfg.TemplatesPath))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	} else {
		router.StaticFS("/static", http.FS(web.Static()))
	}

	catalogController := NewCatalogController(cfg.Catalog)

	// Health endpoints
	var health *HealthController
	if cfg.Database != nil {
		health = NewHealthController(cfg.Database, cfg.Version)
	}
	registerProbes(router, health, cfg.CORSOrigins)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, entities.CatalogPrefix)
	})

	catalogController.RegisterRoutes(router.Group(entities.CatalogPrefix))

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"title":   "Not Found",
			"message": "Not Found",
			"status":  http.StatusNotFound,
		})
	})

	return router
}
