package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/internal/service"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/bwise1/trailhead_admin/util/storage"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

var loginMessages = util.Messages{
	"email.required":    "Email is required",
	"email.email":       "Must be a valid email",
	"password.required": "Password is required",
}

// AuthStore owns the session: token, profile and flattened permissions.
// The session is restored from storage when the store is built.
type AuthStore struct {
	svc     *service.AuthService
	storage storage.Storage
	now     func() time.Time

	mu          sync.RWMutex
	token       string
	user        *model.User
	permissions []string
	onLogout    []func()
}

func NewAuthStore(ctx context.Context, svc *service.AuthService, st storage.Storage) *AuthStore {
	a := &AuthStore{svc: svc, storage: st, now: time.Now}
	a.restore(ctx)
	return a
}

func (a *AuthStore) restore(ctx context.Context) {
	token, ok, err := a.storage.Get(ctx, values.SessionToken)
	if err != nil {
		log.Printf("[Auth]: unable to read session: %v", err)
		return
	}
	if !ok || token == "" {
		return
	}

	var user *model.User
	if raw, ok, _ := a.storage.Get(ctx, values.SessionUser); ok {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			log.Printf("[Auth]: dropping unreadable stored user: %v", err)
			user = nil
		}
	}
	var perms []string
	if raw, ok, _ := a.storage.Get(ctx, values.SessionPermissions); ok {
		if err := json.Unmarshal([]byte(raw), &perms); err != nil {
			log.Printf("[Auth]: dropping unreadable stored permissions: %v", err)
			perms = nil
		}
	}

	a.mu.Lock()
	a.token, a.user, a.permissions = token, user, perms
	a.mu.Unlock()

	if a.expired() {
		log.Println("[Auth]: stored session has expired")
		a.clear(ctx)
	}
}

// Token is handed to the admin client for the Authorization header.
func (a *AuthStore) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *AuthStore) IsAuthenticated() bool {
	return a.Token() != "" && !a.expired()
}

// ExpiresAt reads the exp claim of a JWT token without verifying it.
// Opaque tokens report false.
func (a *AuthStore) ExpiresAt() (time.Time, bool) {
	token := a.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

func (a *AuthStore) expired() bool {
	exp, ok := a.ExpiresAt()
	return ok && !a.now().Before(exp)
}

func (a *AuthStore) User() *model.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func (a *AuthStore) Permissions() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.permissions...)
}

// Role is the slug of the signed in user's role.
func (a *AuthStore) Role() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil || a.user.Role == nil {
		return ""
	}
	return a.user.Role.Slug
}

func (a *AuthStore) IsSuperAdmin() bool {
	return a.Role() == values.SuperAdminRole
}

// HasPermission is true for an exact grant, a "resource.*" grant covering
// p, or a super admin.
func (a *AuthStore) HasPermission(p string) bool {
	if a.IsSuperAdmin() {
		return true
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	wildcard := ""
	if i := strings.Index(p, "."); i > 0 {
		wildcard = p[:i] + ".*"
	}
	for _, held := range a.permissions {
		if held == p || (wildcard != "" && held == wildcard) {
			return true
		}
	}
	return false
}

// HasAnyPermission is true for an empty list.
func (a *AuthStore) HasAnyPermission(perms ...string) bool {
	if len(perms) == 0 {
		return true
	}
	for _, p := range perms {
		if a.HasPermission(p) {
			return true
		}
	}
	return false
}

func (a *AuthStore) Login(ctx context.Context, email, password string) error {
	req := model.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if errs := util.FieldErrors(req, loginMessages); errs != nil {
		for _, field := range []string{"email", "password"} {
			if msg, ok := errs[field]; ok {
				return errors.New(msg)
			}
		}
	}

	resp, err := a.svc.Login(ctx, req)
	if err != nil {
		log.Printf("[Auth]: login failed: %v", err)
		return errors.New(admin.Message(err, "Login failed"))
	}

	var perms []string
	if resp.User.Role != nil {
		perms = append(perms, resp.User.Role.Permissions...)
	}
	user := resp.User

	a.mu.Lock()
	a.token, a.user, a.permissions = resp.Token, &user, perms
	a.mu.Unlock()

	a.persist(ctx)
	return nil
}

func (a *AuthStore) persist(ctx context.Context) {
	a.mu.RLock()
	token, user, perms := a.token, a.user, a.permissions
	a.mu.RUnlock()

	userJSON, _ := json.Marshal(user)
	permsJSON, _ := json.Marshal(perms)
	for key, val := range map[string]string{
		values.SessionToken:       token,
		values.SessionUser:        string(userJSON),
		values.SessionPermissions: string(permsJSON),
	} {
		if err := a.storage.Set(ctx, key, val); err != nil {
			log.Printf("[Auth]: unable to persist %s: %v", key, err)
		}
	}
}

// OnLogout registers fn to run after the session is cleared.
func (a *AuthStore) OnLogout(fn func()) {
	a.mu.Lock()
	a.onLogout = append(a.onLogout, fn)
	a.mu.Unlock()
}

// Logout tells the server (best effort), then clears the session and
// runs the logout hooks.
func (a *AuthStore) Logout(ctx context.Context) {
	if a.Token() != "" {
		if err := a.svc.Logout(ctx); err != nil {
			log.Printf("[Auth]: logout request failed: %v", err)
		}
	}
	a.clear(ctx)

	a.mu.RLock()
	hooks := append([]func(){}, a.onLogout...)
	a.mu.RUnlock()
	for _, fn := range hooks {
		fn()
	}
}

func (a *AuthStore) clear(ctx context.Context) {
	a.mu.Lock()
	a.token, a.user, a.permissions = "", nil, nil
	a.mu.Unlock()

	if err := a.storage.Delete(ctx, values.SessionToken, values.SessionUser, values.SessionPermissions); err != nil {
		log.Printf("[Auth]: unable to clear session: %v", err)
	}
}
