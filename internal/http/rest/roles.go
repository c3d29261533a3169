package rest

import (
	"net/http"

	"github.com/bwise1/trailhead_admin/util/values"
)

var stubRoles = []row{
	{
		"id": 1, "name": "Super Admin", "slug": values.SuperAdminRole, "is_system": true,
		"permissions": []string{},
	},
	{
		"id": 2, "name": "Admin", "slug": "admin", "is_system": true,
		"permissions": []string{"trails.*", "group_hikes.*", "companies.*", "users.*", "media.*", "amenities.*", "activity_logs.view"},
	},
	{
		"id": 3, "name": "Content Manager", "slug": "content_manager", "is_system": false,
		"permissions": []string{"trails.view", "trails.create", "trails.edit", "media.*", "amenities.view"},
	},
	{
		"id": 4, "name": "Group Hike Organizer", "slug": "group_hike_organizer", "is_system": false,
		"permissions": []string{"group_hikes.view", "group_hikes.create", "group_hikes.edit", "media.view", "media.upload"},
	},
}

var stubCounties = map[string]map[string]string{
	"popular": {
		"nairobi": "Nairobi",
		"kajiado": "Kajiado",
		"nakuru":  "Nakuru",
		"nyeri":   "Nyeri",
	},
	"other": {
		"baringo":         "Baringo",
		"elgeyo-marakwet": "Elgeyo Marakwet",
		"kiambu":          "Kiambu",
		"laikipia":        "Laikipia",
		"meru":            "Meru",
		"narok":           "Narok",
	},
}

func roleBySlug(slug string) row {
	for _, r := range stubRoles {
		if r["slug"] == slug {
			return copyRow(r)
		}
	}
	return copyRow(stubRoles[len(stubRoles)-1])
}

func roleByID(id int64) row {
	for _, r := range stubRoles {
		if rowID(r) == id {
			return copyRow(r)
		}
	}
	return nil
}

func (api *API) ListRoles(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	roles := make([]row, 0, len(stubRoles))
	for _, r := range stubRoles {
		roles = append(roles, copyRow(r))
	}
	return respondWithData("fetched", values.Success, map[string]interface{}{"roles": roles})
}
