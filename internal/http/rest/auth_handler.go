package rest

import (
	"net/http"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const tokenTTL = 12 * time.Hour

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	var req model.LoginRequest
	if err := util.DecodeJSONBody(r.Body, &req); err != nil {
		return respondWithError(err, "invalid request body", values.BadRequestBody)
	}

	if fieldErrors := util.FieldErrors(req, nil); fieldErrors != nil {
		out := map[string][]string{}
		for field, msg := range fieldErrors {
			out[field] = []string{msg}
		}
		return respondWithValidation(out)
	}

	token, user, err := api.Backend.login(req.Email, req.Password)
	if err != nil {
		return respondWithError(err, "These credentials do not match our records.", values.NotAuthorised)
	}

	return respondWithData("login successful", values.Success, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (api *API) Logout(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	api.Backend.revoke(bearerToken(r))
	return respondWithData("logged out", values.Success, nil)
}

func (b *Backend) login(email, password string) (string, row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[email]
	if !ok || acct.password != password {
		return "", nil, errors.New("invalid credentials")
	}

	id := rowID(acct.user)
	now := b.now()
	claims := jwt.MapClaims{
		"sub": id,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"typ": "access",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(b.secret))
	if err != nil {
		return "", nil, errors.Wrap(err, "error signing token")
	}

	b.tokens[token] = id
	return token, copyRow(acct.user), nil
}

func (b *Backend) revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.tokens, token)
}

// verifyToken returns the user id the token was issued to.
func (b *Backend) verifyToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(b.secret), nil
	})
	if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
		return 0, errors.New("token expired")
	}
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.tokens[tokenString]
	if !ok {
		return 0, errors.New("token revoked")
	}
	return id, nil
}
