package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
)

// API is the slice of the admin client the services use.
type API interface {
	Get(ctx context.Context, path string, params url.Values) (*admin.Envelope, error)
	Post(ctx context.Context, path string, body interface{}) (*admin.Envelope, error)
	Put(ctx context.Context, path string, body interface{}) (*admin.Envelope, error)
	Patch(ctx context.Context, path string, body interface{}) (*admin.Envelope, error)
	Delete(ctx context.Context, path string) (*admin.Envelope, error)
	Upload(ctx context.Context, path, filename string, file io.Reader, fields map[string]string, onProgress admin.ProgressFunc) (*admin.Envelope, error)
}

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items []T
	// Meta is nil when the endpoint is not paginated.
	Meta *model.PaginationMeta
}

func list[T any](ctx context.Context, api API, path, key string, filters interface{}) (Page[T], error) {
	env, err := api.Get(ctx, path, admin.Query(filters))
	if err != nil {
		return Page[T]{}, err
	}
	var items []T
	if err := env.Decode(key, &items); err != nil {
		return Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Meta: env.Meta}, nil
}

func one[T any](env *admin.Envelope, err error, key string) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	err = env.Decode(key, &out)
	return out, err
}

func itemPath(base string, id int64, suffix ...string) string {
	p := fmt.Sprintf("%s/%d", base, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
