package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type ServerResponse struct {
	Message    string                `json:"message"`
	Status     string                `json:"status"`
	StatusCode int                   `json:"-"`
	Data       interface{}           `json:"data,omitempty"`
	Meta       *model.PaginationMeta `json:"meta,omitempty"`
	Errors     map[string][]string   `json:"errors,omitempty"`
}

// API is an in-memory admin backend. It serves the same routes and
// envelopes as the real admin API so the console can run and be tested
// without one.
type API struct {
	Server  *http.Server
	Config  *config.Config
	Backend *Backend
}

func New(cfg *config.Config) *API {
	return &API{Config: cfg, Backend: NewBackend(cfg)}
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.MockPort),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.Handler(),
	}
	return api.Server.ListenAndServe()
}

// Handler returns the routed backend, for use with httptest.
func (api *API) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)
	mux.Use(api.Backend.Intercept)

	mux.Method(http.MethodPost, "/admin/login", Handler(api.Login))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodPost, "/admin/logout", Handler(api.Logout))
		r.Method(http.MethodGet, "/admin/roles", Handler(api.ListRoles))

		r.Mount("/admin/trails", api.TrailRoutes())
		r.Mount("/admin/group-hikes", api.GroupHikeRoutes())
		r.Mount("/admin/companies", api.resourceRoutes(companies, http.MethodPut))
		r.Mount("/admin/users", api.resourceRoutes(users, http.MethodPatch))
		r.Mount("/admin/amenities", api.resourceRoutes(amenities, http.MethodPut))
		r.Mount("/admin/media", api.MediaRoutes())
		r.Mount("/admin/activity-logs", api.ActivityLogRoutes())
	})

	return mux
}

func (api *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	return api.Server.Shutdown(ctx)
}

func writeJSONResponse(w http.ResponseWriter, content []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(content)
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	resp := respondWithError(err, message, status)
	respByte, _ := json.Marshal(resp)
	writeJSONResponse(w, respByte, resp.StatusCode)
}
