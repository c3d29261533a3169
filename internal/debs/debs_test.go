package deps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/internal/http/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) (*rest.Backend, *config.Config) {
	t.Helper()

	api := rest.New(&config.Config{})
	api.Backend.Seed()
	api.Backend.AddAccount("content@trailhead.test", "password", "content_manager")
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return api.Backend, &config.Config{
		APIURL:            srv.URL,
		HTTPTimeout:       5 * time.Second,
		StaleAfter:        time.Minute,
		InactivityTimeout: time.Hour,
	}
}

func TestPrefetchAllAsSuperAdmin(t *testing.T) {
	backend, cfg := newBackend(t)
	ctx := context.Background()

	d := New(ctx, cfg)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Auth.Login(ctx, "admin@trailhead.test", "password"))

	d.PrefetchAll(ctx)

	assert.Equal(t, 2, d.Trails.Len())
	assert.True(t, d.Trails.Counties.Initialized())
	assert.Equal(t, 4, d.Amenities.Len())
	assert.True(t, d.Users.Initialized())
	assert.NotEmpty(t, d.Users.Roles.Items())
	assert.Len(t, d.Users.Companies.Items(), 2)
	assert.True(t, d.Media.Initialized())

	d.PrefetchAll(ctx)
	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/trails"))
	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/roles"))
}

func TestPrefetchAllFollowsPermissions(t *testing.T) {
	backend, cfg := newBackend(t)
	ctx := context.Background()

	d := New(ctx, cfg)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Auth.Login(ctx, "content@trailhead.test", "password"))

	d.PrefetchAll(ctx)

	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/trails"))
	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/trails/counties"))
	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/amenities"))
	assert.Equal(t, 1, backend.Hits(http.MethodGet, "/admin/media"))
	assert.Equal(t, 0, backend.Hits(http.MethodGet, "/admin/users"))
	assert.Equal(t, 0, backend.Hits(http.MethodGet, "/admin/roles"))
	assert.False(t, d.Users.Initialized())
}

func TestPrefetchAllSettlesFailures(t *testing.T) {
	backend, cfg := newBackend(t)
	ctx := context.Background()

	d := New(ctx, cfg)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Auth.Login(ctx, "admin@trailhead.test", "password"))

	backend.FailNext(http.MethodGet, "/admin/trails", http.StatusInternalServerError, "boom")
	d.PrefetchAll(ctx)

	assert.False(t, d.Trails.Initialized())
	assert.NotEmpty(t, d.Trails.Err())
	assert.Equal(t, 4, d.Amenities.Len())
	assert.True(t, d.Media.Initialized())
}

func TestLogoutResetsStores(t *testing.T) {
	_, cfg := newBackend(t)
	ctx := context.Background()

	d := New(ctx, cfg)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Auth.Login(ctx, "admin@trailhead.test", "password"))
	d.PrefetchAll(ctx)
	d.Inactivity.Start()
	d.Toasts.Success("Saved")
	require.True(t, d.Inactivity.Running())

	d.Auth.Logout(ctx)

	assert.False(t, d.Auth.IsAuthenticated())
	assert.False(t, d.Trails.Initialized())
	assert.Zero(t, d.Amenities.Len())
	assert.False(t, d.Users.Roles.Initialized())
	assert.False(t, d.Inactivity.Running())
	assert.Empty(t, d.Toasts.List())
}

func TestSessionSurvivesRestartWithRedis(t *testing.T) {
	_, cfg := newBackend(t)
	mr := miniredis.RunT(t)
	cfg.RedisAddr = mr.Addr()
	cfg.SessionID = "console-1"
	ctx := context.Background()

	first := New(ctx, cfg)
	require.NoError(t, first.Auth.Login(ctx, "admin@trailhead.test", "password"))
	require.NoError(t, first.Close())
	assert.True(t, mr.Exists("admin:session:console-1:token"))

	second := New(ctx, cfg)
	t.Cleanup(func() { _ = second.Close() })
	assert.True(t, second.Auth.IsAuthenticated())
	assert.Equal(t, first.Auth.Token(), second.Auth.Token())

	second.PrefetchAll(ctx)
	assert.Equal(t, 2, second.Trails.Len())
}

func TestFormsFollowMapsConfig(t *testing.T) {
	_, cfg := newBackend(t)
	d := New(context.Background(), cfg)
	t.Cleanup(func() { _ = d.Close() })

	assert.Nil(t, d.places())
	assert.Nil(t, d.Cloudinary)

	cfg.GoogleMapsAPIKey = "key"
	assert.NotNil(t, d.places())
	assert.NotNil(t, d.NewTrailForm())
	assert.False(t, d.NewGroupHikeForm().IsEditMode())
}
