package rest

import (
	"log"
	"net/http"
	"strconv"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func respondWithError(err error, message, status string) *ServerResponse {
	if err != nil {
		log.Printf("[Stub]: %s: %v", message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func respondWithData(message, status string, data interface{}) *ServerResponse {
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       data,
	}
}

func respondWithPage(key string, rows []row, meta model.PaginationMeta) *ServerResponse {
	resp := respondWithData("fetched", values.Success, map[string]interface{}{key: rows})
	resp.Meta = &meta
	return resp
}

func respondWithValidation(fieldErrors map[string][]string) *ServerResponse {
	return &ServerResponse{
		Message:    "The given data was invalid.",
		Status:     values.Unprocessable,
		StatusCode: util.StatusCode(values.Unprocessable),
		Errors:     fieldErrors,
	}
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid id")
	}
	return id, nil
}

func decodeRow(r *http.Request) (row, error) {
	body := row{}
	if r.ContentLength == 0 {
		return body, nil
	}
	if err := util.DecodeJSONBody(r.Body, &body); err != nil {
		return nil, err
	}
	return body, nil
}
