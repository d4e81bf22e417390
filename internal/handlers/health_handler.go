package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreDiagnostics is the introspection surface the /test endpoint needs.
type StoreDiagnostics interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context, max int) ([]string, error)
	DatabaseName() string
}

type HealthHandler struct {
	// Store is nil when the database is not configured.
	Store StoreDiagnostics
}

func NewHealthHandler(store StoreDiagnostics) *HealthHandler {
	return &HealthHandler{Store: store}
}

// @Summary      Liveness message
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Microcredit Companies Backend is running"})
}

// @Summary      Store connectivity diagnostic
// @Description  Best-effort report of store configuration and reachability; never fails
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /test [get]
func (h *HealthHandler) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.Store != nil {
		resp["database"] = "available"
		resp["database_name"] = h.Store.DatabaseName()
		resp["connection_status"] = "connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else if names, err := h.Store.Collections(ctx, 10); err == nil {
			resp["database"] = "connected and working"
			resp["collections"] = names
		}
	}

	c.JSON(http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

// truncate cuts on a rune boundary so the diagnostic JSON stays valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
