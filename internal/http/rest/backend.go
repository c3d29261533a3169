package rest

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/bwise1/trailhead_admin/util/values"
)

type row = map[string]interface{}

type resource struct {
	name     string
	key      string
	singular string
	perPage  int
	// paginated is false for endpoints that return every row without meta.
	paginated bool
	// required fields, validated on create and update.
	required []string
	// unique fields, validated on create and update.
	unique []string
	// softDelete marks rows with deleted_at instead of removing them.
	softDelete bool
	defaults   func(r row)
}

var (
	trails = resource{
		name: "trails", key: "trails", singular: "trail", perPage: 10, paginated: true,
		required: []string{"name"}, unique: []string{"slug"}, softDelete: true,
		defaults: func(r row) {
			setDefault(r, "status", string(model.TrailDraft))
		},
	}
	groupHikes = resource{
		name: "group-hikes", key: "group_hikes", singular: "group_hike", perPage: 15, paginated: true,
		required: []string{"title"}, unique: []string{"slug"},
		defaults: func(r row) {
			setDefault(r, "status", string(model.GroupHikeDraft))
			setDefault(r, "status_label", "Draft")
			setDefault(r, "is_featured", false)
			for _, flag := range []string{"can_edit", "can_delete", "can_publish", "can_cancel"} {
				setDefault(r, flag, true)
			}
			if s, _ := r["slug"].(string); s == "" {
				r["slug"] = util.GenerateSlug(fmt.Sprint(r["title"]))
			}
		},
	}
	companies = resource{
		name: "companies", key: "companies", singular: "company", perPage: 15, paginated: true,
		required: []string{"name"}, unique: []string{"slug"},
		defaults: func(r row) {
			setDefault(r, "is_verified", false)
			setDefault(r, "is_active", true)
			if s, _ := r["slug"].(string); s == "" {
				r["slug"] = util.GenerateSlug(fmt.Sprint(r["name"]))
			}
		},
	}
	users = resource{
		name: "users", key: "users", singular: "user", perPage: 15, paginated: true,
		required: []string{"email"}, unique: []string{"email"},
		defaults: func(r row) {
			delete(r, "password")
			delete(r, "password_confirmation")
			setDefault(r, "status", string(model.UserActive))
			if id, ok := r["role_id"].(float64); ok {
				r["role"] = roleByID(int64(id))
			}
		},
	}
	amenities = resource{
		name: "amenities", key: "amenities", singular: "amenity",
		required: []string{"name"},
	}
	media = resource{
		name: "media", key: "media", singular: "media", perPage: 15, paginated: true,
	}
	activityLogs = resource{
		name: "activity-logs", key: "activity_logs", singular: "activity_log", perPage: 10, paginated: true,
	}
)

type account struct {
	password string
	user     row
}

type failure struct {
	status  int
	message string
}

// Backend holds the stub's rows and the test hooks around them.
type Backend struct {
	mu       sync.Mutex
	now      func() time.Time
	secret   string
	tables   map[string][]row
	nextID   map[string]int64
	accounts map[string]account
	tokens   map[string]int64
	hits     map[string]int
	gates    map[string]chan struct{}
	failures map[string][]failure
}

func NewBackend(cfg *config.Config) *Backend {
	b := &Backend{
		now:      time.Now,
		secret:   "trailhead-stub",
		tables:   map[string][]row{},
		nextID:   map[string]int64{},
		accounts: map[string]account{},
		tokens:   map[string]int64{},
		hits:     map[string]int{},
		gates:    map[string]chan struct{}{},
		failures: map[string][]failure{},
	}

	email, password := "admin@trailhead.test", "password"
	if cfg != nil && cfg.AdminEmail != "" {
		email, password = cfg.AdminEmail, cfg.AdminPassword
	}
	b.AddAccount(email, password, values.SuperAdminRole)
	return b
}

// AddAccount registers a login with one of the stub roles and returns the
// user id.
func (b *Backend) AddAccount(email, password, roleSlug string) int64 {
	role := roleBySlug(roleSlug)
	user := row{
		"first_name": "Admin",
		"last_name":  role["name"],
		"email":      email,
		"status":     string(model.UserActive),
		"role":       role,
	}
	id := b.Insert(users.name, user)

	b.mu.Lock()
	b.accounts[email] = account{password: password, user: user}
	b.mu.Unlock()
	return id
}

// Insert stores a row as-is, assigning id and created_at.
func (b *Backend) Insert(table string, r row) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.insertLocked(table, r)
}

func (b *Backend) insertLocked(table string, r row) int64 {
	b.nextID[table]++
	id := b.nextID[table]
	r["id"] = id
	setDefault(r, "created_at", b.now().UTC().Format(time.RFC3339))
	b.tables[table] = append(b.tables[table], r)
	return id
}

// Hits is the number of requests received for method and path.
func (b *Backend) Hits(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.hits[method+" "+path]
}

// Gate holds requests for method and path until the returned release is
// called.
func (b *Backend) Gate(method, path string) (release func()) {
	ch := make(chan struct{})
	key := method + " " + path

	b.mu.Lock()
	b.gates[key] = ch
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.gates, key)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// FailNext makes the next request for method and path fail with status
// and message.
func (b *Backend) FailNext(method, path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := method + " " + path
	b.failures[key] = append(b.failures[key], failure{status: status, message: message})
}

// Intercept counts requests and applies gates and queued failures.
func (b *Backend) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		b.mu.Lock()
		b.hits[key]++
		gate := b.gates[key]
		var fail *failure
		if queued := b.failures[key]; len(queued) > 0 {
			fail = &queued[0]
			b.failures[key] = queued[1:]
		}
		b.mu.Unlock()

		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}

		if fail != nil {
			writeJSONResponse(w, []byte(fmt.Sprintf(`{"status":%q,"message":%q}`, values.Failed, fail.message)), fail.status)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) list(res resource, q map[string][]string) ([]row, model.PaginationMeta) {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	search := strings.ToLower(get("search"))
	withDeleted := get("with_deleted") == "1"

	var out []row
	for _, r := range b.tables[res.name] {
		if res.softDelete && r["deleted_at"] != nil && !withDeleted {
			continue
		}
		if search != "" && !matches(r, search, "name", "title", "email", "first_name", "last_name") {
			continue
		}
		if !equalsFilter(r, q, "status", "type", "difficulty", "county_slug", "is_verified", "log_name", "event", "causer_id", "company_id", "organizer_id") {
			continue
		}
		out = append(out, copyRow(r))
	}

	if dir := get("sort_dir"); get("sort_by") != "" {
		field := get("sort_by")
		sort.SliceStable(out, func(i, j int) bool {
			less := fmt.Sprint(out[i][field]) < fmt.Sprint(out[j][field])
			if dir == "desc" {
				return !less
			}
			return less
		})
	}

	if !res.paginated {
		return nonNil(out), model.PaginationMeta{}
	}

	perPage, _ := strconv.Atoi(get("per_page"))
	if perPage <= 0 {
		perPage = res.perPage
	}
	page, _ := strconv.Atoi(get("page"))
	if page <= 0 {
		page = 1
	}

	meta := model.PaginationMeta{
		CurrentPage: page,
		LastPage:    (len(out) + perPage - 1) / perPage,
		PerPage:     perPage,
		Total:       len(out),
	}
	if meta.LastPage == 0 {
		meta.LastPage = 1
	}

	start := (page - 1) * perPage
	if start > len(out) {
		start = len(out)
	}
	end := start + perPage
	if end > len(out) {
		end = len(out)
	}
	return nonNil(out[start:end]), meta
}

func (b *Backend) get(res resource, id int64) (row, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, _ := b.find(res.name, id)
	if r == nil {
		return nil, false
	}
	return copyRow(r), true
}

func (b *Backend) create(res resource, body row, causer int64) (row, map[string][]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if fieldErrors := b.validate(res, body, 0, true); fieldErrors != nil {
		return nil, fieldErrors
	}
	if res.defaults != nil {
		res.defaults(body)
	}
	id := b.insertLocked(res.name, body)
	b.logLocked(res, "created", id, causer)
	return copyRow(body), nil
}

func (b *Backend) update(res resource, id int64, body row, causer int64) (row, map[string][]string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, _ := b.find(res.name, id)
	if r == nil {
		return nil, nil, false
	}
	if fieldErrors := b.validate(res, body, id, false); fieldErrors != nil {
		return nil, fieldErrors, true
	}
	for k, v := range body {
		if k == "id" || k == "password" || k == "password_confirmation" {
			continue
		}
		r[k] = v
	}
	r["updated_at"] = b.now().UTC().Format(time.RFC3339)
	b.logLocked(res, "updated", id, causer)
	return copyRow(r), nil, true
}

func (b *Backend) remove(res resource, id int64, causer int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, i := b.find(res.name, id)
	if r == nil {
		return false
	}
	if res.softDelete {
		r["deleted_at"] = b.now().UTC().Format(time.RFC3339)
	} else {
		rows := b.tables[res.name]
		b.tables[res.name] = append(rows[:i:i], rows[i+1:]...)
	}
	b.logLocked(res, "deleted", id, causer)
	return true
}

// restore clears deleted_at on a soft-deleted row.
func (b *Backend) restore(res resource, id int64, causer int64) (row, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, _ := b.find(res.name, id)
	if r == nil {
		return nil, false
	}
	r["deleted_at"] = nil
	b.logLocked(res, "restored", id, causer)
	return copyRow(r), true
}

func (b *Backend) find(table string, id int64) (row, int) {
	for i, r := range b.tables[table] {
		if rowID(r) == id {
			return r, i
		}
	}
	return nil, -1
}

func (b *Backend) validate(res resource, body row, id int64, creating bool) map[string][]string {
	fieldErrors := map[string][]string{}
	for _, f := range res.required {
		v, present := body[f]
		if !present && !creating {
			continue
		}
		if s, ok := v.(string); v == nil || (ok && strings.TrimSpace(s) == "") {
			fieldErrors[f] = append(fieldErrors[f], fmt.Sprintf("The %s field is required.", strings.ReplaceAll(f, "_", " ")))
		}
	}
	for _, f := range res.unique {
		v, ok := body[f].(string)
		if !ok || v == "" {
			continue
		}
		for _, r := range b.tables[res.name] {
			if rowID(r) != id && strings.EqualFold(fmt.Sprint(r[f]), v) {
				fieldErrors[f] = append(fieldErrors[f], fmt.Sprintf("The %s has already been taken.", f))
				break
			}
		}
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (b *Backend) logLocked(res resource, event string, subjectID, causer int64) {
	if res.name == activityLogs.name {
		return
	}
	entry := row{
		"log_name":     res.key,
		"description":  fmt.Sprintf("%s %s", res.singular, event),
		"event":        event,
		"subject_type": res.singular,
		"subject_id":   subjectID,
		"properties":   map[string]interface{}{},
	}
	if causer > 0 {
		if u, _ := b.find(users.name, causer); u != nil {
			entry["causer"] = row{"id": causer, "name": strings.TrimSpace(fmt.Sprint(u["first_name"], " ", u["last_name"])), "email": u["email"]}
		}
		entry["causer_id"] = causer
	}
	b.insertLocked(activityLogs.name, entry)
}

func rowID(r row) int64 {
	switch id := r["id"].(type) {
	case int64:
		return id
	case float64:
		return int64(id)
	case int:
		return int64(id)
	}
	return 0
}

func setDefault(r row, key string, v interface{}) {
	if _, ok := r[key]; !ok {
		r[key] = v
	}
}

func copyRow(r row) row {
	out := make(row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func nonNil(rows []row) []row {
	if rows == nil {
		return []row{}
	}
	return rows
}

func matches(r row, needle string, fields ...string) bool {
	for _, f := range fields {
		if s, ok := r[f].(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func equalsFilter(r row, q map[string][]string, fields ...string) bool {
	for _, f := range fields {
		v := q[f]
		if len(v) == 0 || v[0] == "" {
			continue
		}
		if !sameValue(r[f], v[0]) {
			return false
		}
	}
	return true
}

func sameValue(have interface{}, want string) bool {
	switch h := have.(type) {
	case bool:
		return (want == "1" || want == "true") == h
	case nil:
		return false
	case float64:
		return strconv.FormatFloat(h, 'f', -1, 64) == want
	default:
		return fmt.Sprint(h) == want
	}
}
