package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"microcredit/internal/handlers"
	"microcredit/internal/routes"
	"microcredit/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memStore struct {
	docs     []bson.M
	inserted []any
}

func (m *memStore) Insert(_ context.Context, doc any) (string, error) {
	m.inserted = append(m.inserted, doc)
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	stored["_id"] = id
	m.docs = append(m.docs, stored)
	return id.Hex(), nil
}

func (m *memStore) Find(_ context.Context, _ bson.M, limit int64) ([]bson.M, error) {
	if limit > 0 && int64(len(m.docs)) > limit {
		return m.docs[:limit], nil
	}
	return m.docs, nil
}

func (m *memStore) FindAll(ctx context.Context) ([]bson.M, error) {
	return m.Find(ctx, bson.M{}, 0)
}

func newTestRouter(store services.CompanyStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCompanyService(store)
	r := gin.New()
	return routes.SetupRoutes(r, handlers.NewCompanyHandler(svc), handlers.NewHealthHandler(nil))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListCompanies(t *testing.T) {
	store := &memStore{docs: []bson.M{
		{"name": "One", "country": "KZ"},
		{"name": "Two", "country": "KE"},
	}}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/api/companies", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListCompaniesRespectsLimit(t *testing.T) {
	store := &memStore{docs: []bson.M{
		{"name": "One"}, {"name": "Two"}, {"name": "Three"},
	}}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/api/companies?limit=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListCompaniesRejectsBadLimit(t *testing.T) {
	r := newTestRouter(&memStore{})

	for _, limit := range []string{"0", "501", "-3", "abc"} {
		w := doRequest(r, http.MethodGet, "/api/companies?limit="+limit, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "limit=%s", limit)
	}
}

func TestListCompaniesStoreUnavailable(t *testing.T) {
	r := newTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/api/companies", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database not configured")
}

func TestCreateCompany(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/companies",
		`{"name":"Acme","country":"GH","portfolio_usd":100}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got["id"])
	assert.Len(t, store.inserted, 1)
}

func TestCreateCompanyValidationFailure(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/companies",
		`{"name":"Acme","country":"GH","portfolio_usd":-5}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio_usd")
	assert.Empty(t, store.inserted)
}

func TestCreateCompanyMissingRequiredFields(t *testing.T) {
	r := newTestRouter(&memStore{})

	w := doRequest(r, http.MethodPost, "/api/companies", `{"portfolio_usd":10}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "name")
	assert.Contains(t, w.Body.String(), "country")
}

func TestCreateCompanyMalformedBody(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/companies", `{"name":`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, store.inserted)
}

func TestCreateCompanyTypeMismatch(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/companies",
		`{"name":"Acme","country":"GH","portfolio_usd":"not-a-number"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, store.inserted)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodPost, "/api/companies",
		`{"name":"Acme Microfinance","country":"GH","portfolio_usd":1500.25,"active_borrowers":120,"par30":3.4,"avg_interest_rate":24}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(r, http.MethodGet, "/api/companies", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, created["id"], rec["id"])
	assert.NotEmpty(t, rec["id"])
	assert.NotContains(t, rec, "_id")
	assert.Equal(t, "Acme Microfinance", rec["name"])
	assert.Equal(t, "GH", rec["country"])
	assert.EqualValues(t, 1500.25, rec["portfolio_usd"])
	assert.EqualValues(t, 120, rec["active_borrowers"])
	assert.EqualValues(t, 3.4, rec["par30"])
	assert.EqualValues(t, 24, rec["avg_interest_rate"])
	assert.Equal(t, "active", rec["status"])
}

func TestStatsEmptyCollection(t *testing.T) {
	r := newTestRouter(&memStore{})

	w := doRequest(r, http.MethodGet, "/api/companies/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 0, got["total_companies"])
	assert.EqualValues(t, 0, got["total_portfolio_usd"])
	assert.EqualValues(t, 0, got["avg_par30"])
	assert.EqualValues(t, 0, got["active_borrowers"])
	assert.EqualValues(t, 0, got["countries_count"])
}

func TestStatsAggregates(t *testing.T) {
	store := &memStore{docs: []bson.M{
		{"country": "KZ", "portfolio_usd": 100.0, "par30": 10.0, "active_borrowers": 2},
		{"country": "KE", "portfolio_usd": 200.555, "par30": 20.0, "active_borrowers": 3},
		{"country": "KZ", "portfolio_usd": 0.0, "par30": 0.0, "active_borrowers": 0},
	}}
	r := newTestRouter(store)

	w := doRequest(r, http.MethodGet, "/api/companies/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.EqualValues(t, 3, got["total_companies"])
	assert.EqualValues(t, 300.56, got["total_portfolio_usd"])
	assert.EqualValues(t, 10.0, got["avg_par30"])
	assert.EqualValues(t, 5, got["active_borrowers"])
	assert.EqualValues(t, 2, got["countries_count"])
}
