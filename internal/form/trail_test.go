package form

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	googlemaps "github.com/bwise1/trailhead_admin/internal/http/google"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrails struct {
	trail   model.Trail
	err     error
	created []model.TrailPayload
	updated []model.TrailPayload
}

func (s *fakeTrails) FetchTrail(_ context.Context, _ int64) (model.Trail, error) {
	return s.trail, s.err
}

func (s *fakeTrails) Create(_ context.Context, p model.TrailPayload) (model.Trail, error) {
	if s.err != nil {
		return model.Trail{}, s.err
	}
	s.created = append(s.created, p)
	return model.Trail{ID: 42, Name: p.Name, Status: p.Status}, nil
}

func (s *fakeTrails) Update(_ context.Context, id int64, p model.TrailPayload) (model.Trail, error) {
	if s.err != nil {
		return model.Trail{}, s.err
	}
	s.updated = append(s.updated, p)
	return model.Trail{ID: id, Name: p.Name, Status: p.Status}, nil
}

type fakePlaces struct {
	place *googlemaps.PlaceDetailsResult
	err   error
}

func (p *fakePlaces) GetPlaceDetails(_ context.Context, _ string, _ []string) (*googlemaps.PlaceDetailsResult, error) {
	return p.place, p.err
}

func (p *fakePlaces) Autocomplete(_ context.Context, input string) ([]googlemaps.Prediction, error) {
	return []googlemaps.Prediction{{Description: input + ", Kenya", PlaceID: "abc"}}, p.err
}

func description(n int) string {
	return "<p>" + strings.Repeat("a", n) + "</p>"
}

func TestNextStepStaysOnInvalidStep(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)

	assert.False(t, f.NextStep())
	assert.Equal(t, StepBasicInfo, f.Step())
	assert.Equal(t, "Trail name is required", f.StepErrors(StepBasicInfo)["name"])
	assert.Equal(t, "Description must be at least 50 characters", f.StepErrors(StepBasicInfo)["description"])

	f.Data.Name = "Ngong Hills"
	f.Data.Description = description(49)
	assert.False(t, f.NextStep())
	assert.NotContains(t, f.StepErrors(StepBasicInfo), "name")

	f.Data.Description = description(50)
	assert.True(t, f.NextStep())
	assert.Equal(t, StepStats, f.Step())
	assert.Equal(t, "Trail Stats", f.StepLabel())
	assert.Empty(t, f.StepErrors(StepBasicInfo))
}

func TestStepValidationMessages(t *testing.T) {
	testCases := []struct {
		name  string
		step  int
		edit  func(d *TrailFormData)
		field string
		want  string
	}{
		{"missing difficulty", StepStats, func(d *TrailFormData) {}, "difficulty", "Difficulty is required"},
		{"missing distance", StepStats, func(d *TrailFormData) {}, "distance_km", "Distance must be a number"},
		{"zero distance", StepStats, func(d *TrailFormData) { d.DistanceKm = util.Float64Ptr(0) }, "distance_km", "Distance must be greater than 0"},
		{"negative elevation", StepStats, func(d *TrailFormData) { d.ElevationGainM = util.Float64Ptr(-1) }, "elevation_gain_m", "Elevation gain cannot be negative"},
		{"missing latitude", StepLocation, func(d *TrailFormData) {}, "latitude", "Latitude is required"},
		{"latitude out of range", StepLocation, func(d *TrailFormData) { d.Latitude = util.Float64Ptr(95) }, "latitude", "Latitude must be between -90 and 90"},
		{"missing county", StepLocation, func(d *TrailFormData) {}, "county_slug", "County is required"},
		{"missing route name", StepRoutes, func(d *TrailFormData) {}, "route_a.name", "Route name is required"},
		{"route b enabled without name", StepRoutes, func(d *TrailFormData) { d.RouteBEnabled = true }, "route_b.name", "Route B name is required when enabled"},
		{"multi-day without days", StepItinerary, func(d *TrailFormData) { d.IsMultiDay = true }, "itinerary", "Add at least one day to the itinerary of a multi-day trail"},
		{"untitled day", StepItinerary, func(d *TrailFormData) {
			d.IsMultiDay = true
			d.Itinerary = []ItineraryDayForm{{Title: "Day one"}, {}}
		}, "itinerary[1].title", "Day title is required"},
		{"missing featured image", StepMedia, func(d *TrailFormData) {}, "featured_image_id", "Featured image is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewTrailForm(&fakeTrails{}, nil)
			f.GoToStep(tc.step)
			tc.edit(&f.Data)

			assert.False(t, f.NextStep())
			assert.Equal(t, tc.step, f.Step())
			assert.Equal(t, tc.want, f.StepErrors(tc.step)[tc.field])
		})
	}
}

func TestOptionalStepsPass(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)

	f.GoToStep(StepRoutes)
	f.Data.RouteA.Name = "Main ridge"
	assert.True(t, f.NextStep())

	// a single day trail ignores the itinerary
	f.Data.Itinerary = []ItineraryDayForm{{}}
	assert.True(t, f.NextStep())
	assert.Equal(t, StepMedia, f.Step())

	f.Data.FeaturedImageID = util.Int64Ptr(7)
	assert.True(t, f.NextStep())
	assert.Equal(t, StepReview, f.Step())
	assert.True(t, f.NextStep())
	assert.Equal(t, StepReview, f.Step())
}

func TestStepNavigationBounds(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)

	f.PrevStep()
	assert.Equal(t, StepBasicInfo, f.Step())

	f.GoToStep(StepReview)
	assert.Equal(t, StepReview, f.Step())
	f.GoToStep(len(TrailStepLabels))
	f.GoToStep(-1)
	assert.Equal(t, StepReview, f.Step())

	f.PrevStep()
	assert.Equal(t, StepMedia, f.Step())
	assert.Empty(t, f.StepErrors(StepBasicInfo))
}

func TestDraftSaveNeedsOnlyAName(t *testing.T) {
	trails := &fakeTrails{}
	f := NewTrailForm(trails, nil)

	trail, err := f.Save(context.Background(), false)
	assert.Nil(t, trail)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Trail name is required to save a draft", f.StepErrors(StepBasicInfo)["name"])
	assert.Empty(t, trails.created)

	f.Data.Name = "Karura"
	trail, err = f.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), trail.ID)
	assert.Equal(t, model.TrailDraft, trails.created[0].Status)
	assert.True(t, f.IsEditMode())
	assert.False(t, f.IsDirty())

	f.Data.Name = "Karura Forest"
	_, err = f.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, trails.created, 1)
	assert.Len(t, trails.updated, 1)
}

// Publishing is not gated on the checklist.
func TestPublishDoesNotRequireReadyChecklist(t *testing.T) {
	trails := &fakeTrails{}
	f := NewTrailForm(trails, nil)
	f.Data.Name = "Hell's Gate"

	assert.False(t, f.IsReadyToPublish())
	trail, err := f.Save(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, model.TrailPublished, trail.Status)
	assert.Equal(t, model.TrailPublished, trails.created[0].Status)
}

func TestCompletionStatus(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)
	assert.Equal(t, CompletionStatus{Itinerary: true}, f.CompletionStatus())

	f.Data.Name = "Ngong Hills"
	f.Data.Description = "Ridge walk"
	f.Data.Difficulty = model.DifficultyModerate
	f.Data.DistanceKm = util.Float64Ptr(12.5)
	f.Data.Latitude = util.Float64Ptr(-1.39)
	f.Data.Longitude = util.Float64Ptr(36.64)
	f.Data.CountySlug = "kajiado"
	f.Data.LocationName = "Ngong"
	f.Data.RouteA.Name = "Main ridge"
	assert.False(t, f.IsReadyToPublish())

	f.Data.FeaturedImageID = util.Int64Ptr(3)
	assert.True(t, f.IsReadyToPublish())

	f.Data.IsMultiDay = true
	assert.False(t, f.CompletionStatus().Itinerary)
	f.AddItineraryDay("Ascent")
	assert.True(t, f.IsReadyToPublish())

	f.RemoveItineraryDay(5)
	assert.Len(t, f.Data.Itinerary, 1)
	f.RemoveItineraryDay(0)
	assert.Empty(t, f.Data.Itinerary)
	assert.False(t, f.IsReadyToPublish())
}

func TestDirtyTrackingIsStructural(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)
	assert.False(t, f.IsDirty())

	f.Data.Name = "Ngong"
	assert.True(t, f.IsDirty())
	f.Data.Name = ""
	assert.False(t, f.IsDirty())

	f.Data.DistanceKm = util.Float64Ptr(5)
	assert.True(t, f.IsDirty())
	f.Data.DistanceKm = nil
	assert.False(t, f.IsDirty())

	f.AddGalleryImage(model.Media{ID: 9})
	assert.True(t, f.IsDirty())
	f.RemoveGalleryImage(9)
	assert.False(t, f.IsDirty())

	f.Data.AmenityIDs = nil
	assert.False(t, f.IsDirty())
}

func TestLoadTrailCoercesNumbers(t *testing.T) {
	s := newStub(t)
	f := NewTrailForm(s.trails, nil)

	require.NoError(t, f.LoadTrail(context.Background(), 1))

	assert.True(t, f.IsEditMode())
	assert.False(t, f.IsDirty())
	assert.Equal(t, "Ngong Hills", f.Data.Name)
	require.NotNil(t, f.Data.DistanceKm)
	assert.Equal(t, 12.5, *f.Data.DistanceKm)
	require.NotNil(t, f.Data.ElevationGainM)
	assert.Equal(t, 620.0, *f.Data.ElevationGainM)
	assert.Nil(t, f.Data.MaxAltitudeM)
	assert.Equal(t, "kajiado", f.Data.CountySlug)
	assert.Equal(t, "Seven knuckles above the Rift.", f.Data.ShortDescription)
	assert.Equal(t, model.TrailPublished, f.Data.Status)

	f.Data.Name = "Ngong Hills Ridge"
	assert.True(t, f.IsDirty())
}

func TestLoadTrailFailure(t *testing.T) {
	f := NewTrailForm(&fakeTrails{err: &admin.APIError{Message: "Trail not found", Status: http.StatusNotFound}}, nil)

	err := f.LoadTrail(context.Background(), 99)
	assert.Error(t, err)
	assert.False(t, f.IsEditMode())
}

func TestSaveAgainstBackend(t *testing.T) {
	s := newStub(t)
	f := NewTrailForm(s.trails, nil)
	ctx := context.Background()

	f.Data.Name = "Mount Longonot"
	f.Data.DistanceKm = util.Float64Ptr(13.7)
	f.Data.RouteA.Name = "Crater rim"
	f.Data.IsMultiDay = true
	f.AddItineraryDay("Crater rim")

	trail, err := f.Save(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), trail.ID)
	assert.Equal(t, model.TrailDraft, trail.Status)
	require.NotNil(t, trail.RouteA)
	assert.Equal(t, "Crater rim", *trail.RouteA.Name)
	require.Len(t, trail.Itinerary, 1)
	assert.Equal(t, 1, trail.Itinerary[0].DayNumber)

	f.Data.Name = "Mount Longonot Crater"
	trail, err = f.Save(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, model.TrailPublished, trail.Status)
	assert.Equal(t, 1, s.backend.Hits(http.MethodPatch, "/admin/trails/3"))
	assert.False(t, f.IsDirty())
}

func TestServerFieldErrorsAreFiledByStep(t *testing.T) {
	trails := &fakeTrails{err: &admin.APIError{
		Message: "The given data was invalid.",
		Status:  http.StatusUnprocessableEntity,
		Data: &admin.ErrorBody{Errors: map[string][]string{
			"route_b.name": {"The route b name field is required.", "ignored"},
			"slug":         {"The slug has already been taken."},
			"weather":      {"Unknown field."},
		}},
	}}
	f := NewTrailForm(trails, nil)
	f.Data.Name = "Ngong"

	_, err := f.Save(context.Background(), false)
	require.Error(t, err)

	assert.Equal(t, "The route b name field is required.", f.StepErrors(StepRoutes)["route_b.name"])
	assert.Equal(t, "The slug has already been taken.", f.StepErrors(StepBasicInfo)["slug"])
	assert.Equal(t, "Unknown field.", f.StepErrors(StepReview)["weather"])
	assert.True(t, f.IsDirty())
}

func TestBuildPayload(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)
	f.Data.Name = "Ngong Hills"
	f.Data.DistanceKm = util.Float64Ptr(12.5)
	f.Data.RouteB = RouteForm{Name: "Back route"}
	f.AddGalleryImage(model.Media{ID: 5})
	f.AddGalleryImage(model.Media{ID: 6})
	f.AddGalleryImage(model.Media{ID: 7})
	f.MoveGalleryImage(2, 0)
	f.Data.Itinerary = []ItineraryDayForm{{Title: "ignored"}}

	p := f.BuildPayload()
	assert.Nil(t, p.RouteA)
	assert.Nil(t, p.RouteB)
	assert.Empty(t, p.Itinerary)
	require.Len(t, p.Gallery, 3)
	for i, want := range []int64{7, 5, 6} {
		assert.Equal(t, want, p.Gallery[i].MediaID)
		assert.Equal(t, i, p.Gallery[i].SortOrder)
	}

	body, err := json.Marshal(p)
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.NotContains(t, raw, "short_description")
	assert.NotContains(t, raw, "latitude")
	assert.NotContains(t, raw, "route_a")
	assert.Equal(t, 12.5, raw["distance_km"])
	assert.Equal(t, []interface{}{}, raw["amenity_ids"])

	f.Data.RouteA.Name = "Main ridge"
	f.Data.RouteBEnabled = true
	f.Data.IsMultiDay = true
	p = f.BuildPayload()
	require.NotNil(t, p.RouteA)
	require.NotNil(t, p.RouteB)
	assert.Equal(t, "Back route", p.RouteB.Name)
	require.Len(t, p.Itinerary, 1)
	assert.Equal(t, 1, p.Itinerary[0].DayNumber)
}

func TestGalleryEditing(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)
	for _, id := range []int64{1, 2, 3} {
		f.AddGalleryImage(model.Media{ID: id})
	}
	f.AddGalleryImage(model.Media{ID: 2})
	require.Len(t, f.Data.Gallery, 3)

	f.RemoveGalleryImage(2)
	require.Len(t, f.Data.Gallery, 2)
	assert.Equal(t, int64(3), f.Data.Gallery[1].MediaID)
	assert.Equal(t, 1, f.Data.Gallery[1].SortOrder)

	f.MoveGalleryImage(0, 5)
	assert.Equal(t, int64(1), f.Data.Gallery[0].MediaID)
}

func TestApplyPlace(t *testing.T) {
	place := &googlemaps.PlaceDetailsResult{Name: "Ngong Hills", Geometry: googlemaps.Geometry{Location: googlemaps.LatLng{Lat: -1.39, Lng: 36.64}}}
	f := NewTrailForm(&fakeTrails{}, &fakePlaces{place: place})
	f.GoToStep(StepLocation)
	f.NextStep()
	require.Contains(t, f.StepErrors(StepLocation), "latitude")

	require.NoError(t, f.ApplyPlace(context.Background(), "abc"))
	assert.Equal(t, -1.39, *f.Data.Latitude)
	assert.Equal(t, 36.64, *f.Data.Longitude)
	assert.Equal(t, "Ngong Hills", f.Data.LocationName)
	assert.NotContains(t, f.StepErrors(StepLocation), "latitude")
	assert.Contains(t, f.StepErrors(StepLocation), "county_slug")

	predictions, err := f.SearchPlaces(context.Background(), "Ngong")
	require.NoError(t, err)
	assert.Equal(t, "Ngong, Kenya", predictions[0].Description)
}

func TestPlacesNeedMaps(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)
	assert.ErrorIs(t, f.ApplyPlace(context.Background(), "abc"), googlemaps.ErrMissingAPIKey)

	f = NewTrailForm(&fakeTrails{}, &fakePlaces{err: errors.New("ZERO_RESULTS")})
	assert.Error(t, f.ApplyPlace(context.Background(), "abc"))
	assert.Nil(t, f.Data.Latitude)
}

func TestRoutePath(t *testing.T) {
	f := NewTrailForm(&fakeTrails{}, nil)

	coords, err := f.RoutePath(false)
	require.NoError(t, err)
	assert.Nil(t, coords)

	f.SetRoutePath(false, [][]float64{{-1.391, 36.64}, {-1.4, 36.652}})
	assert.NotEmpty(t, f.Data.RouteA.Path)
	assert.Equal(t, -1.391, *f.Data.RouteA.Latitude)

	coords, err = f.RoutePath(false)
	require.NoError(t, err)
	require.Len(t, coords, 2)
	assert.InDelta(t, -1.4, coords[1][0], 1e-5)
	assert.InDelta(t, 36.652, coords[1][1], 1e-5)

	f.Data.RouteA.Name = "Main ridge"
	assert.Equal(t, f.Data.RouteA.Path, f.BuildPayload().RouteA.Path)
}
