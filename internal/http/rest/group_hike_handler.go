package rest

import (
	"net/http"
	"strings"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
)

var groupHikeStatusLabels = map[model.GroupHikeStatus]string{
	model.GroupHikeDraft:     "Draft",
	model.GroupHikePublished: "Published",
	model.GroupHikeCancelled: "Cancelled",
}

func (api *API) GroupHikeRoutes() chi.Router {
	mux := api.resourceRoutes(groupHikes, http.MethodPut)

	mux.Method(http.MethodPatch, "/{id}/publish", Handler(api.setGroupHikeStatus(model.GroupHikePublished)))
	mux.Method(http.MethodPatch, "/{id}/unpublish", Handler(api.setGroupHikeStatus(model.GroupHikeDraft)))
	mux.Method(http.MethodPatch, "/{id}/cancel", Handler(api.CancelGroupHike))

	return mux
}

func (api *API) setGroupHikeStatus(status model.GroupHikeStatus) Handler {
	return func(_ http.ResponseWriter, r *http.Request) *ServerResponse {
		id, err := idParam(r)
		if err != nil {
			return respondWithError(err, "invalid id", values.BadRequestBody)
		}
		updated, _, ok := api.Backend.update(groupHikes, id, row{
			"status":       string(status),
			"status_label": groupHikeStatusLabels[status],
		}, currentUserID(r))
		if !ok {
			return respondWithError(nil, "group hike not found", values.NotFound)
		}
		return respondWithData("group hike "+string(status), values.Success, map[string]interface{}{"group_hike": updated})
	}
}

func (api *API) CancelGroupHike(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	id, err := idParam(r)
	if err != nil {
		return respondWithError(err, "invalid id", values.BadRequestBody)
	}
	body, err := decodeRow(r)
	if err != nil {
		return respondWithError(err, "invalid request body", values.BadRequestBody)
	}
	reason, _ := body["cancellation_reason"].(string)
	if strings.TrimSpace(reason) == "" {
		return respondWithValidation(map[string][]string{
			"cancellation_reason": {"The cancellation reason field is required."},
		})
	}

	updated, _, ok := api.Backend.update(groupHikes, id, row{
		"status":              string(model.GroupHikeCancelled),
		"status_label":        groupHikeStatusLabels[model.GroupHikeCancelled],
		"cancellation_reason": reason,
		"cancelled_at":        api.Backend.now().UTC().Format("2006-01-02T15:04:05Z"),
	}, currentUserID(r))
	if !ok {
		return respondWithError(nil, "group hike not found", values.NotFound)
	}
	return respondWithData("group hike cancelled", values.Success, map[string]interface{}{"group_hike": updated})
}
