package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
	Meta    *struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
		PerPage     int `json:"per_page"`
		Total       int `json:"total"`
	} `json:"meta"`
	Errors map[string][]string `json:"errors"`
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(values.HeaderRequestSource, values.RequestSource)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	rec, env := do(t, h, http.MethodPost, "/admin/login", "", map[string]string{"email": "admin@trailhead.test", "password": "password"})
	require.Equal(t, http.StatusOK, rec.Code)

	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))
	return token
}

func TestRequestSourceIsRequired(t *testing.T) {
	h := New(&config.Config{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/admin/trails", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	h := New(&config.Config{}).Handler()

	rec, env := do(t, h, http.MethodGet, "/admin/trails", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthenticated.", env.Message)

	rec, _ = do(t, h, http.MethodGet, "/admin/trails", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginAndPaginatedList(t *testing.T) {
	api := New(&config.Config{AdminEmail: "ops@trailhead.test", AdminPassword: "hunter22"})
	api.Backend.Seed()
	h := api.Handler()

	rec, env := do(t, h, http.MethodPost, "/admin/login", "", map[string]string{"email": "ops@trailhead.test", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/admin/login", "", map[string]string{"email": "ops@trailhead.test"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "password")

	rec, env = do(t, h, http.MethodPost, "/admin/login", "", map[string]string{"email": "ops@trailhead.test", "password": "hunter22"})
	require.Equal(t, http.StatusOK, rec.Code)
	var token string
	require.NoError(t, json.Unmarshal(env.Data["token"], &token))

	rec, env = do(t, h, http.MethodGet, "/admin/trails?per_page=1&page=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.CurrentPage)
	assert.Equal(t, 2, env.Meta.LastPage)
	assert.Equal(t, 2, env.Meta.Total)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data["trails"], &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Karura Forest Loop", rows[0]["name"])
}

func TestAmenitiesAreNotPaginated(t *testing.T) {
	api := New(&config.Config{})
	api.Backend.Seed()
	h := api.Handler()
	token := login(t, h)

	rec, env := do(t, h, http.MethodGet, "/admin/amenities", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.Meta)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data["amenities"], &rows))
	assert.Len(t, rows, 4)
}

func TestSoftDeletedTrailsNeedWithDeleted(t *testing.T) {
	api := New(&config.Config{})
	api.Backend.Seed()
	h := api.Handler()
	token := login(t, h)

	rec, _ := do(t, h, http.MethodDelete, "/admin/trails/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env := do(t, h, http.MethodGet, "/admin/trails", token, nil)
	assert.Equal(t, 1, env.Meta.Total)
	_, env = do(t, h, http.MethodGet, "/admin/trails?with_deleted=1", token, nil)
	assert.Equal(t, 2, env.Meta.Total)

	rec, _ = do(t, h, http.MethodPost, "/admin/trails/1/restore", token, map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)
	_, env = do(t, h, http.MethodGet, "/admin/trails", token, nil)
	assert.Equal(t, 2, env.Meta.Total)

	_, env = do(t, h, http.MethodGet, "/admin/activity-logs?event=restored", token, nil)
	assert.Equal(t, 1, env.Meta.Total)
}

func TestFailNextAndHits(t *testing.T) {
	api := New(&config.Config{})
	h := api.Handler()
	token := login(t, h)

	api.Backend.FailNext(http.MethodGet, "/admin/roles", http.StatusServiceUnavailable, "maintenance")
	rec, _ := do(t, h, http.MethodGet, "/admin/roles", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/admin/roles", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, env.Data, "roles")
	assert.Equal(t, 2, api.Backend.Hits(http.MethodGet, "/admin/roles"))
}
