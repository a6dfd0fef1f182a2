package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const storePingTimeout = 2 * time.Second

// StoreCheck is the outcome of pinging the catalog store.
type StoreCheck struct {
	OK      bool   `json:"ok"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string     `json:"status"`
	Time    string     `json:"time"`
	Version string     `json:"version,omitempty"`
	Store   StoreCheck `json:"store"`
}

// HealthController reports whether the catalog store answers. It is only
// mounted when a store is configured.
type HealthController struct {
	store       Pinger
	version     string
	pingTimeout time.Duration
}

func NewHealthController(store Pinger, version string) *HealthController {
	return &HealthController{
		store:       store,
		version:     version,
		pingTimeout: storePingTimeout,
	}
}

func (h *HealthController) checkStore(ctx context.Context) StoreCheck {
	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()

	started := time.Now()
	err := h.store.Ping(ctx)
	check := StoreCheck{OK: err == nil, Latency: time.Since(started).Round(time.Microsecond).String()}
	if err != nil {
		check.Error = err.Error()
	}
	return check
}

func (h *HealthController) Status(c *gin.Context) {
	resp := HealthResponse{
		Status:  "ok",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.version,
		Store:   h.checkStore(c.Request.Context()),
	}

	code := http.StatusOK
	if !resp.Store.OK {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
