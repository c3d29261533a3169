package form

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/http/rest"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"github.com/bwise1/trailhead_admin/internal/store"
	"github.com/bwise1/trailhead_admin/internal/toast"
	"github.com/stretchr/testify/require"
)

type stub struct {
	backend    *rest.Backend
	trails     *store.TrailStore
	groupHikes *store.GroupHikeStore
	toasts     *toast.Notifier
}

// newStub serves the seeded in-memory backend and signs in as the super admin.
func newStub(t *testing.T) *stub {
	t.Helper()

	api := rest.New(&config.Config{})
	api.Backend.Seed()
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	var token string
	client := admin.NewClient(srv.URL, srv.Client())
	client.Token = func() string { return token }

	resp, err := service.NewAuthService(client).Login(context.Background(), model.LoginRequest{Email: "admin@trailhead.test", Password: "password"})
	require.NoError(t, err)
	token = resp.Token

	toasts := toast.New()
	t.Cleanup(toasts.Clear)

	return &stub{
		backend:    api.Backend,
		trails:     store.NewTrailStore(service.NewTrailService(client), time.Minute),
		groupHikes: store.NewGroupHikeStore(service.NewGroupHikeService(client), time.Minute),
		toasts:     toasts,
	}
}

func messages(n *toast.Notifier) []string {
	var out []string
	for _, t := range n.List() {
		out = append(out, string(t.Kind)+": "+t.Message)
	}
	return out
}
