package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"microcredit/internal/handlers"
	"microcredit/internal/routes"
	"microcredit/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiagnostics struct {
	pingErr     error
	collections []string
}

func (f *fakeDiagnostics) Ping(context.Context) error { return f.pingErr }

func (f *fakeDiagnostics) Collections(_ context.Context, max int) ([]string, error) {
	if max > 0 && len(f.collections) > max {
		return f.collections[:max], nil
	}
	return f.collections, nil
}

func (f *fakeDiagnostics) DatabaseName() string { return "app" }

func newHealthRouter(diag handlers.StoreDiagnostics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return routes.SetupRoutes(r, handlers.NewCompanyHandler(services.NewCompanyService(nil)), handlers.NewHealthHandler(diag))
}

func TestRootLiveness(t *testing.T) {
	r := newHealthRouter(nil)

	w := doRequest(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Microcredit Companies Backend is running")
}

func TestDiagnosticWithoutStore(t *testing.T) {
	r := newHealthRouter(nil)

	w := doRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "running", got["backend"])
	assert.Equal(t, "not available", got["database"])
	assert.Equal(t, "not connected", got["connection_status"])
}

func TestDiagnosticConnectedStore(t *testing.T) {
	diag := &fakeDiagnostics{collections: []string{"company", "audit"}}
	r := newHealthRouter(diag)

	w := doRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "connected and working", got["database"])
	assert.Equal(t, "app", got["database_name"])
	assert.Equal(t, "connected", got["connection_status"])
	assert.Len(t, got["collections"], 2)
}

func TestDiagnosticPingFailureNeverErrors(t *testing.T) {
	diag := &fakeDiagnostics{pingErr: errors.New("server selection timeout")}
	r := newHealthRouter(diag)

	w := doRequest(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "connected but error")
}
