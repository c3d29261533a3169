package form

import (
	"strings"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/go-playground/validator/v10"
)

const (
	StepBasicInfo = iota
	StepStats
	StepLocation
	StepRoutes
	StepItinerary
	StepMedia
	StepReview
)

var TrailStepLabels = []string{
	"Basic Info",
	"Trail Stats",
	"Map & Location",
	"Routes",
	"Itinerary",
	"Media",
	"Review",
}

type basicInfoStep struct {
	Name             string `json:"name" validate:"required,max=255"`
	ShortDescription string `json:"short_description" validate:"max=200"`
	Description      string `json:"description" validate:"richtext_min=50"`
}

type statsStep struct {
	Difficulty     model.Difficulty `json:"difficulty" validate:"oneof=easy moderate difficult expert"`
	DistanceKm     *float64         `json:"distance_km" validate:"required,gt=0"`
	DurationMin    *float64         `json:"duration_min" validate:"omitempty,gt=0"`
	DurationMax    *float64         `json:"duration_max" validate:"omitempty,gt=0"`
	ElevationGainM *float64         `json:"elevation_gain_m" validate:"omitempty,min=0"`
	MaxAltitudeM   *float64         `json:"max_altitude_m" validate:"omitempty,min=0"`
}

type locationStep struct {
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	LocationName string   `json:"location_name" validate:"required"`
	CountyID     *int64   `json:"county_id" validate:"omitempty,gt=0"`
	CountySlug   string   `json:"county_slug" validate:"required"`
}

type routeAStep struct {
	Name string `json:"name" validate:"required"`
}

type routeBStep struct {
	Name string `json:"name"`
}

type routesStep struct {
	RouteA        routeAStep `json:"route_a"`
	RouteBEnabled bool       `json:"route_b_enabled"`
	RouteB        routeBStep `json:"route_b"`
}

type itineraryDayStep struct {
	Title string `json:"title" validate:"required,max=255"`
}

type itineraryStep struct {
	IsMultiDay bool               `json:"is_multi_day"`
	Days       []itineraryDayStep `json:"itinerary" validate:"dive"`
}

type mediaStep struct {
	FeaturedImageID *int64 `json:"featured_image_id" validate:"required,gt=0"`
}

type draftStep struct {
	Name string `json:"name" validate:"required"`
}

var trailMessages = util.Messages{
	"name.required":              "Trail name is required",
	"name.max":                   "Trail name must be 255 characters or less",
	"short_description":          "Short description must be 200 characters or less",
	"description":                "Description must be at least 50 characters",
	"difficulty":                 "Difficulty is required",
	"distance_km.required":       "Distance must be a number",
	"distance_km.gt":             "Distance must be greater than 0",
	"duration_min":               "Duration must be greater than 0",
	"duration_max":               "Duration must be greater than 0",
	"elevation_gain_m":           "Elevation gain cannot be negative",
	"max_altitude_m":             "Max altitude cannot be negative",
	"latitude.required":          "Latitude is required",
	"latitude.latitude":          "Latitude must be between -90 and 90",
	"longitude.required":         "Longitude is required",
	"longitude.longitude":        "Longitude must be between -180 and 180",
	"location_name":              "Location name is required",
	"county_id":                  "County is required",
	"county_slug":                "County is required",
	"route_a.name":               "Route name is required",
	"route_b.name":               "Route B name is required when enabled",
	"itinerary":                  "Add at least one day to the itinerary of a multi-day trail",
	"itinerary[].title.required": "Day title is required",
	"itinerary[].title.max":      "Day title must be 255 characters or less",
	"featured_image_id":          "Featured image is required",
}

var draftMessages = util.Messages{
	"name": "Trail name is required to save a draft",
}

func init() {
	util.RegisterStructValidation(routesRules, routesStep{})
	util.RegisterStructValidation(itineraryRules, itineraryStep{})
}

func routesRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(routesStep)
	if s.RouteBEnabled && strings.TrimSpace(s.RouteB.Name) == "" {
		sl.ReportError(s.RouteB.Name, "route_b.name", "Name", "required_when_enabled", "")
	}
}

func itineraryRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(itineraryStep)
	if s.IsMultiDay && len(s.Days) == 0 {
		sl.ReportError(s.Days, "itinerary", "Days", "min_days", "1")
	}
}

// stepData projects the form onto the fields one step validates. The
// review step validates nothing.
func stepData(step int, d *TrailFormData) interface{} {
	switch step {
	case StepBasicInfo:
		return basicInfoStep{Name: d.Name, ShortDescription: d.ShortDescription, Description: d.Description}
	case StepStats:
		return statsStep{
			Difficulty:     d.Difficulty,
			DistanceKm:     d.DistanceKm,
			DurationMin:    d.DurationMin,
			DurationMax:    d.DurationMax,
			ElevationGainM: d.ElevationGainM,
			MaxAltitudeM:   d.MaxAltitudeM,
		}
	case StepLocation:
		return locationStep{
			Latitude:     d.Latitude,
			Longitude:    d.Longitude,
			LocationName: d.LocationName,
			CountyID:     d.CountyID,
			CountySlug:   d.CountySlug,
		}
	case StepRoutes:
		return routesStep{
			RouteA:        routeAStep{Name: d.RouteA.Name},
			RouteBEnabled: d.RouteBEnabled,
			RouteB:        routeBStep{Name: d.RouteB.Name},
		}
	case StepItinerary:
		s := itineraryStep{IsMultiDay: d.IsMultiDay}
		if d.IsMultiDay {
			for _, day := range d.Itinerary {
				s.Days = append(s.Days, itineraryDayStep{Title: day.Title})
			}
		}
		return s
	case StepMedia:
		return mediaStep{FeaturedImageID: d.FeaturedImageID}
	default:
		return nil
	}
}

func validateStep(step int, d *TrailFormData) map[string]string {
	data := stepData(step, d)
	if data == nil {
		return map[string]string{}
	}
	errs := util.FieldErrors(data, trailMessages)
	if errs == nil {
		return map[string]string{}
	}
	return errs
}

// stepForField finds the step that owns a field reported by the server.
func stepForField(field string) int {
	root := field
	if i := strings.IndexAny(root, ".["); i >= 0 {
		root = root[:i]
	}
	switch root {
	case "name", "slug", "short_description", "description":
		return StepBasicInfo
	case "difficulty", "distance_km", "duration_min", "duration_max", "elevation_gain_m", "max_altitude_m",
		"is_year_round", "season_notes", "requires_guide", "requires_permit", "permit_info", "accessibility_info", "amenity_ids":
		return StepStats
	case "latitude", "longitude", "location_name", "county_id", "county_slug":
		return StepLocation
	case "route_a", "route_b":
		return StepRoutes
	case "is_multi_day", "itinerary":
		return StepItinerary
	case "featured_image_id", "gallery", "gpx_file_ids":
		return StepMedia
	default:
		return StepReview
	}
}
