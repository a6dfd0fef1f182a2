package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/locallibrary/internal/catalog"
)

// renderError is the generic error handler for catalog pages. The status comes
// from the error itself: 400 for malformed ids, 404 for missing records, 500
// for everything else. The message is the tagged error's own, without any
// wrapping context. Details of 500s are logged, not shown.
func renderError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := catalog.StatusCode(err)
	message := err.Error()
	var tagged interface {
		error
		StatusCode() int
	}
	if errors.As(err, &tagged) {
		message = tagged.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Printf("Internal error (%s %s): %v", c.Request.Method, c.Request.URL.Path, err)
		message = http.StatusText(status)
	}

	c.HTML(status, "error", gin.H{
		"title":   message,
		"message": message,
		"status":  status,
	})
}

// notImplemented responds with a fixed placeholder for catalog mutations.
// It never touches the store.
func notImplemented(entity, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "NOT IMPLEMENTED: %s %s", entity, action)
	}
}
