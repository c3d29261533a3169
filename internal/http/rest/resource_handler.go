package rest

import (
	"net/http"

	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
)

// resourceRoutes serves list, show, create, update and delete for res.
// updateMethod is PUT or PATCH, matching the real endpoint.
func (api *API) resourceRoutes(res resource, updateMethod string) chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.listHandler(res)))
	mux.Method(http.MethodPost, "/", Handler(api.createHandler(res)))
	mux.Method(http.MethodGet, "/{id}", Handler(api.showHandler(res)))
	mux.Method(updateMethod, "/{id}", Handler(api.updateHandler(res)))
	mux.Method(http.MethodDelete, "/{id}", Handler(api.deleteHandler(res)))

	return mux
}

func (api *API) listHandler(res resource) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		rows, meta := api.Backend.list(res, r.URL.Query())
		if !res.paginated {
			return respondWithData("fetched", values.Success, map[string]interface{}{res.key: rows})
		}
		return respondWithPage(res.key, rows, meta)
	}
}

func (api *API) showHandler(res resource) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		id, err := idParam(r)
		if err != nil {
			return respondWithError(err, "invalid id", values.BadRequestBody)
		}
		found, ok := api.Backend.get(res, id)
		if !ok {
			return respondWithError(nil, res.singular+" not found", values.NotFound)
		}
		return respondWithData("fetched", values.Success, map[string]interface{}{res.singular: found})
	}
}

func (api *API) createHandler(res resource) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		body, err := decodeRow(r)
		if err != nil {
			return respondWithError(err, "invalid request body", values.BadRequestBody)
		}
		created, fieldErrors := api.Backend.create(res, body, currentUserID(r))
		if fieldErrors != nil {
			return respondWithValidation(fieldErrors)
		}
		return respondWithData(res.singular+" created", values.Created, map[string]interface{}{res.singular: created})
	}
}

func (api *API) updateHandler(res resource) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		id, err := idParam(r)
		if err != nil {
			return respondWithError(err, "invalid id", values.BadRequestBody)
		}
		body, err := decodeRow(r)
		if err != nil {
			return respondWithError(err, "invalid request body", values.BadRequestBody)
		}
		updated, fieldErrors, ok := api.Backend.update(res, id, body, currentUserID(r))
		if !ok {
			return respondWithError(nil, res.singular+" not found", values.NotFound)
		}
		if fieldErrors != nil {
			return respondWithValidation(fieldErrors)
		}
		return respondWithData(res.singular+" updated", values.Success, map[string]interface{}{res.singular: updated})
	}
}

func (api *API) deleteHandler(res resource) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		id, err := idParam(r)
		if err != nil {
			return respondWithError(err, "invalid id", values.BadRequestBody)
		}
		if !api.Backend.remove(res, id, currentUserID(r)) {
			return respondWithError(nil, res.singular+" not found", values.NotFound)
		}
		return respondWithData(res.singular+" deleted", values.Success, nil)
	}
}

func (api *API) ActivityLogRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/", Handler(api.listHandler(activityLogs)))
	mux.Method(http.MethodGet, "/{id}", Handler(api.showHandler(activityLogs)))

	return mux
}
