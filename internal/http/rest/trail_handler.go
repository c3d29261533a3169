package rest

import (
	"net/http"

	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) TrailRoutes() chi.Router {
	mux := api.resourceRoutes(trails, http.MethodPatch)

	mux.Method(http.MethodGet, "/counties", Handler(api.ListCounties))
	mux.Method(http.MethodPost, "/{id}/restore", Handler(api.RestoreTrail))

	return mux
}

func (api *API) ListCounties(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	return respondWithData("fetched", values.Success, map[string]interface{}{"counties": stubCounties})
}

func (api *API) RestoreTrail(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	id, err := idParam(r)
	if err != nil {
		return respondWithError(err, "invalid id", values.BadRequestBody)
	}
	restored, ok := api.Backend.restore(trails, id, currentUserID(r))
	if !ok {
		return respondWithError(nil, "trail not found", values.NotFound)
	}
	return respondWithData("trail restored", values.Success, map[string]interface{}{"trail": restored})
}
