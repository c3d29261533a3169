package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingAPIKey = errors.New("GOOGLE_MAPS_API_KEY is not set")
	ErrScriptLoad    = errors.New("Failed to load Google Maps script")
)

// Default map view: Kenya.
var DefaultCenter = LatLng{Lat: 0.0236, Lng: 37.9062}

const DefaultZoom = 7

type MapOptions struct {
	Zoom              int    `json:"zoom"`
	Center            LatLng `json:"center"`
	MapID             string `json:"mapId,omitempty"`
	MapTypeControl    bool   `json:"mapTypeControl"`
	StreetViewControl bool   `json:"streetViewControl"`
}

// Loader makes sure the Maps JavaScript API is reachable with the
// configured key. Concurrent Load calls share one probe; a failed load is
// remembered in LoadError and retried on the next call.
type Loader struct {
	apiKey  string
	mapID   string
	baseURL string
	client  *http.Client

	mu      sync.Mutex
	loaded  bool
	loadErr error
	group   singleflight.Group
}

func NewLoader(apiKey, mapID, baseURL string, client *http.Client) *Loader {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Loader{
		apiKey:  apiKey,
		mapID:   mapID,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (l *Loader) ScriptURL() string {
	params := url.Values{}
	params.Set("key", l.apiKey)
	params.Set("libraries", "places")
	return fmt.Sprintf("%s/maps/api/js?%s", l.baseURL, params.Encode())
}

func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.loaded {
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()

	_, err, _ := l.group.Do("script", func() (interface{}, error) {
		if l.Loaded() {
			return nil, nil
		}
		err := l.probe(context.WithoutCancel(ctx))

		l.mu.Lock()
		defer l.mu.Unlock()
		l.loaded = err == nil
		l.loadErr = err
		return nil, err
	})
	return err
}

func (l *Loader) probe(ctx context.Context) error {
	if l.apiKey == "" {
		log.Println("[Maps]: ", ErrMissingAPIKey)
		return ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.ScriptURL(), nil)
	if err != nil {
		return ErrScriptLoad
	}
	resp, err := l.client.Do(req)
	if err != nil {
		log.Printf("[Maps]: script request failed: %v", err)
		return ErrScriptLoad
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Maps]: script request returned %d", resp.StatusCode)
		return ErrScriptLoad
	}
	return nil
}

func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *Loader) LoadError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadErr
}

// MapOptions loads the script and returns the default view with the
// configured map id. Zero fields in override are ignored.
func (l *Loader) MapOptions(ctx context.Context, override MapOptions) (MapOptions, error) {
	if err := l.Load(ctx); err != nil {
		return MapOptions{}, err
	}
	opts := MapOptions{
		Zoom:              DefaultZoom,
		Center:            DefaultCenter,
		MapID:             l.mapID,
		MapTypeControl:    true,
		StreetViewControl: true,
	}
	if override.Zoom != 0 {
		opts.Zoom = override.Zoom
	}
	if override.Center != (LatLng{}) {
		opts.Center = override.Center
	}
	if override.MapID != "" {
		opts.MapID = override.MapID
	}
	return opts, nil
}
