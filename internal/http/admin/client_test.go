package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeErrorMessage(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		status  int
		want    string
	}{
		{"Network", "dial tcp refused", 0, values.NetworkErrorFallback},
		{"Server error hides body", "SQLSTATE[42S02]: Base table not found in vendor/laravel/framework", 500, values.ServerErrorFallback},
		{"Server error plain", "Maintenance", 503, values.ServerErrorFallback},
		{"Missing message", "", 400, values.ServerErrorFallback},
		{"SQL fragment", "select * from users where id = 1", 400, values.ServerErrorFallback},
		{"Stack frame", "boom at handler (app.js:10:4)", 404, values.ServerErrorFallback},
		{"PHP path", "Error in /var/www/app/Http/Kernel.php", 400, values.ServerErrorFallback},
		{"Exception class", "Illuminate\\Database\\QueryException", 409, values.ServerErrorFallback},
		{"Connection leak", "Connection: close, Host: db.internal", 400, values.ServerErrorFallback},
		{"Safe 4xx passes", "The email has already been taken.", 422, "The email has already been taken."},
		{"Safe 403 passes", "You do not have permission to delete trails.", 403, "You do not have permission to delete trails."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeErrorMessage(tc.message, tc.status))
		})
	}
}

func TestClientSendsHeadersAndDecodesEnvelope(t *testing.T) {
	var gotAuth, gotRequestID, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(values.HeaderRequestID)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"trails":[{"id":1,"name":"Ngong Hills","distance_km":"12.4"}]},"meta":{"current_page":2,"last_page":3,"per_page":10,"total":25},"message":"ok","status":"success"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	c.Token = func() string { return "tok" }

	env, err := c.Get(context.Background(), "/admin/trails", Query(model.TrailFilters{Page: 2}))
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "page=2", gotQuery)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 25, env.Meta.Total)

	var trails []model.Trail
	require.NoError(t, env.Decode("trails", &trails))
	require.Len(t, trails, 1)
	assert.Equal(t, 12.4, trails[0].DistanceKm.Value)

	var missing []model.Trail
	assert.Error(t, env.Decode("group_hikes", &missing))
}

func TestClientAnonymousRequestHasNoAuthorization(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"data":{},"message":"ok","status":"success"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	c.Token = func() string { return "" }

	_, err := c.Post(context.Background(), "/admin/login", map[string]string{"email": "a@b.co"})
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestClientValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "The given data was invalid.",
			"errors": map[string][]string{
				"slug":  {"The slug has already been taken.", "The slug is too long."},
				"title": {"The title field is required."},
			},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Put(context.Background(), "/admin/group-hikes/1", map[string]string{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)

	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "The given data was invalid.", apiErr.Message)
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, map[string]string{
		"slug":  "The slug has already been taken.",
		"title": "The title field is required.",
	}, apiErr.FieldErrors())
}

func TestClientServerErrorNeverLeaksBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"SQLSTATE[42S02]: table missing in vendor/laravel"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Delete(context.Background(), "/admin/trails/3")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, values.ServerErrorFallback, apiErr.Message)
	assert.Equal(t, 500, apiErr.Status)
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).Get(context.Background(), "/admin/trails", nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, values.NetworkErrorFallback, apiErr.Message)
	assert.Equal(t, values.NetworkErrorFallback, Message(err, "Failed to load trails"))
}

func TestUploadReportsProgress(t *testing.T) {
	var gotAlt, gotName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotAlt = r.FormValue("alt_text")
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		b, _ := io.ReadAll(f)
		gotName, gotContent = hdr.Filename, string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"media":{"id":9,"filename":"peak.jpg"}},"status":"created"}`))
	}))
	defer srv.Close()

	var progress []int
	env, err := NewClient(srv.URL, srv.Client()).Upload(context.Background(), "/admin/media", "peak.jpg",
		strings.NewReader(strings.Repeat("x", 64*1024)), map[string]string{"alt_text": "Summit"},
		func(p int) { progress = append(progress, p) })
	require.NoError(t, err)

	var media model.Media
	require.NoError(t, env.Decode("media", &media))
	assert.Equal(t, int64(9), media.ID)
	assert.Equal(t, "Summit", gotAlt)
	assert.Equal(t, "peak.jpg", gotName)
	assert.Len(t, gotContent, 64*1024)
	require.NotEmpty(t, progress)
	assert.Equal(t, 100, progress[len(progress)-1])
	assert.IsNonDecreasing(t, progress)
}

func TestUploadCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, srv.Client()).Upload(ctx, "/admin/media", "a.gpx", strings.NewReader("<gpx/>"), nil, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, values.UploadCancelled, apiErr.Message)
	assert.Equal(t, 0, apiErr.Status)
}
