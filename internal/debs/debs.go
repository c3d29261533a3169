package deps

import (
	"context"
	"log"
	"net/http"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/internal/activity"
	"github.com/bwise1/trailhead_admin/internal/form"
	"github.com/bwise1/trailhead_admin/internal/http/admin"
	googlemaps "github.com/bwise1/trailhead_admin/internal/http/google"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"github.com/bwise1/trailhead_admin/internal/store"
	"github.com/bwise1/trailhead_admin/internal/toast"
	"github.com/bwise1/trailhead_admin/util/storage"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Dependencies is the application context: one instance of every store
// for the life of the process.
type Dependencies struct {
	Config *config.Config

	Storage    storage.Storage
	Redis      *redis.Client
	Admin      *admin.Client
	Cloudinary *storage.Cloudinary
	Maps       *googlemaps.GoogleMapsClient
	MapsLoader *googlemaps.Loader
	Toasts     *toast.Notifier
	Inactivity *activity.Watcher

	Auth         *store.AuthStore
	Trails       *store.TrailStore
	GroupHikes   *store.GroupHikeStore
	Users        *store.UserStore
	Companies    *store.CompanyStore
	Media        *store.MediaStore
	Amenities    *store.AmenityStore
	ActivityLogs *store.ActivityLogStore
}

func New(ctx context.Context, cfg *config.Config) *Dependencies {
	d := &Dependencies{Config: cfg, Toasts: toast.New()}

	if client := storage.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword); client != nil {
		d.Redis = client
		d.Storage = storage.NewRedis(client, cfg.SessionID, cfg.SessionTTL)
	} else {
		d.Storage = storage.NewMemory()
	}

	if cfg.CloudinaryEnabled() {
		cld, err := storage.NewCloudinary(cfg)
		if err != nil {
			log.Printf("[Deps]: cloudinary disabled: %v", err)
		} else {
			d.Cloudinary = cld
		}
	}

	d.Admin = admin.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout})
	d.Maps = googlemaps.NewGoogleMapsClient(cfg.GoogleMapsAPIKey, cfg.GoogleMapsBaseURL)
	d.MapsLoader = googlemaps.NewLoader(cfg.GoogleMapsAPIKey, cfg.GoogleMapsMapID, cfg.GoogleMapsBaseURL, nil)

	d.Auth = store.NewAuthStore(ctx, service.NewAuthService(d.Admin), d.Storage)
	d.Admin.Token = d.Auth.Token

	d.Trails = store.NewTrailStore(service.NewTrailService(d.Admin), cfg.StaleAfter)
	d.GroupHikes = store.NewGroupHikeStore(service.NewGroupHikeService(d.Admin), cfg.StaleAfter)
	d.Users = store.NewUserStore(service.NewUserService(d.Admin), cfg.StaleAfter)
	d.Companies = store.NewCompanyStore(service.NewCompanyService(d.Admin), cfg.StaleAfter)
	d.Media = store.NewMediaStore(service.NewMediaService(d.Admin), d.Cloudinary, cfg.StaleAfter)
	d.Amenities = store.NewAmenityStore(service.NewAmenityService(d.Admin), cfg.StaleAfter)
	d.ActivityLogs = store.NewActivityLogStore(service.NewActivityLogService(d.Admin), cfg.StaleAfter)

	d.Inactivity = activity.NewWatcher(d.Auth, cfg.InactivityTimeout)
	d.Auth.OnLogout(func() {
		d.Inactivity.Stop()
		d.ResetAll()
	})

	return d
}

// places is nil without a maps key so the trail form reports it.
func (d *Dependencies) places() form.Places {
	if !d.Config.MapsEnabled() {
		return nil
	}
	return d.Maps
}

func (d *Dependencies) NewTrailForm() *form.TrailForm {
	return form.NewTrailForm(d.Trails, d.places())
}

func (d *Dependencies) NewGroupHikeForm() *form.GroupHikeForm {
	return form.NewGroupHikeForm(d.GroupHikes, d.Toasts)
}

func (d *Dependencies) NewGroupHikeActions() *form.GroupHikeActions {
	return form.NewGroupHikeActions(d.GroupHikes, d.Toasts)
}

// PrefetchAll warms every cache the signed in user may read. Each load
// runs on its own; a failure is logged and does not stop the others.
func (d *Dependencies) PrefetchAll(ctx context.Context) {
	var g errgroup.Group
	run := func(name string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(ctx); err != nil {
				log.Printf("[Prefetch]: %s: %v", name, err)
			}
			return nil
		})
	}
	lookup := func(fn func(context.Context)) func(context.Context) error {
		return func(ctx context.Context) error {
			fn(ctx)
			return nil
		}
	}

	if d.Auth.HasAnyPermission("trails.view", "trails.create", "trails.update") {
		run("trails", func(ctx context.Context) error { return d.Trails.Ensure(ctx, model.TrailFilters{}) })
		run("counties", lookup(d.Trails.Counties.Ensure))
	}
	if d.Auth.HasAnyPermission("amenities.view", "amenities.create", "amenities.update") {
		run("amenities", func(ctx context.Context) error { return d.Amenities.Ensure(ctx, model.AmenityFilters{}) })
	}
	if d.Auth.HasAnyPermission("users.view", "users.create", "users.update") {
		run("users", func(ctx context.Context) error { return d.Users.Ensure(ctx, model.UserFilters{}) })
		run("roles", lookup(d.Users.Roles.Ensure))
		run("companies", lookup(d.Users.Companies.Ensure))
	}
	if d.Auth.HasAnyPermission("media.view", "media.create", "media.update") {
		run("media", func(ctx context.Context) error { return d.Media.Ensure(ctx, model.MediaFilters{}) })
	}

	_ = g.Wait()
}

// ResetAll empties every store cache.
func (d *Dependencies) ResetAll() {
	d.Trails.Reset()
	d.GroupHikes.Reset()
	d.Users.Reset()
	d.Companies.Reset()
	d.Media.Reset()
	d.Amenities.Reset()
	d.ActivityLogs.Reset()
	d.Toasts.Clear()
}

func (d *Dependencies) Close() error {
	d.Inactivity.Stop()
	if d.Redis != nil {
		return d.Redis.Close()
	}
	return nil
}
