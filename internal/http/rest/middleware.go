package rest

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/lucsky/cuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			errM := errors.New("X-Request-Source is empty")

			writeErrorResponse(w, errM, values.BadRequestBody, errM.Error())
			return
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}
		w.Header().Set(values.HeaderRequestID, requestID)

		log.Printf("[Stub]: %s %s source=%s id=%s", r.Method, r.URL.Path, requestSource, requestID)

		ctx = context.WithValue(ctx, requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// RequireLogin rejects requests without a live bearer token.
func (api *API) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeErrorResponse(w, errors.New(values.NotAuthorised), values.NotAuthorised, "Unauthenticated.")
			return
		}

		userID, err := api.Backend.verifyToken(token)
		if err != nil {
			writeErrorResponse(w, err, values.NotAuthorised, "Unauthenticated.")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authorization := strings.Split(r.Header.Get("Authorization"), " ")
	if len(authorization) != 2 || authorization[0] != "Bearer" {
		return ""
	}
	return authorization[1]
}

func currentUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}
