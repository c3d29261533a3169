package form

import (
	"context"
	"log"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	googlemaps "github.com/bwise1/trailhead_admin/internal/http/google"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
)

type RouteForm struct {
	Name       string   `json:"name"`
	Directions string   `json:"directions"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	ImageIDs   []int64  `json:"image_ids"`
	// Path is the encoded polyline of the route line.
	Path string `json:"path"`
}

type GalleryForm struct {
	MediaID   int64        `json:"media_id"`
	Media     *model.Media `json:"media"`
	Caption   string       `json:"caption"`
	SortOrder int          `json:"sort_order"`
}

type ItineraryDayForm struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DistanceKm        *float64 `json:"distance_km"`
	ElevationGainM    *float64 `json:"elevation_gain_m"`
	OvernightLocation string   `json:"overnight_location"`
}

type TrailFormData struct {
	Name              string             `json:"name"`
	ShortDescription  string             `json:"short_description"`
	Description       string             `json:"description"`
	Difficulty        model.Difficulty   `json:"difficulty"`
	DistanceKm        *float64           `json:"distance_km"`
	DurationMin       *float64           `json:"duration_min"`
	DurationMax       *float64           `json:"duration_max"`
	ElevationGainM    *float64           `json:"elevation_gain_m"`
	MaxAltitudeM      *float64           `json:"max_altitude_m"`
	IsYearRound       bool               `json:"is_year_round"`
	SeasonNotes       string             `json:"season_notes"`
	RequiresGuide     bool               `json:"requires_guide"`
	RequiresPermit    bool               `json:"requires_permit"`
	PermitInfo        string             `json:"permit_info"`
	AccessibilityInfo string             `json:"accessibility_info"`
	AmenityIDs        []int64            `json:"amenity_ids"`
	Latitude          *float64           `json:"latitude"`
	Longitude         *float64           `json:"longitude"`
	LocationName      string             `json:"location_name"`
	CountyID          *int64             `json:"county_id"`
	CountySlug        string             `json:"county_slug"`
	GpxFileIDs        []int64            `json:"gpx_file_ids"`
	RouteA            RouteForm          `json:"route_a"`
	RouteBEnabled     bool               `json:"route_b_enabled"`
	RouteB            RouteForm          `json:"route_b"`
	IsMultiDay        bool               `json:"is_multi_day"`
	Itinerary         []ItineraryDayForm `json:"itinerary"`
	FeaturedImageID   *int64             `json:"featured_image_id"`
	FeaturedImage     *model.Media       `json:"featured_image"`
	Gallery           []GalleryForm      `json:"gallery"`
	IsFeatured        bool               `json:"is_featured"`
	Status            model.TrailStatus  `json:"status"`
}

func emptyTrailForm() TrailFormData {
	return TrailFormData{
		AmenityIDs: []int64{},
		GpxFileIDs: []int64{},
		RouteA:     RouteForm{ImageIDs: []int64{}},
		RouteB:     RouteForm{ImageIDs: []int64{}},
		Itinerary:  []ItineraryDayForm{},
		Gallery:    []GalleryForm{},
		Status:     model.TrailDraft,
	}
}

// CompletionStatus drives the progress checklist. It does not gate
// navigation or saving.
type CompletionStatus struct {
	BasicInfo bool
	Stats     bool
	Location  bool
	Routes    bool
	Itinerary bool
	Media     bool
}

type TrailStore interface {
	FetchTrail(ctx context.Context, id int64) (model.Trail, error)
	Create(ctx context.Context, payload model.TrailPayload) (model.Trail, error)
	Update(ctx context.Context, id int64, payload model.TrailPayload) (model.Trail, error)
}

// Places looks up map places for the location step.
type Places interface {
	GetPlaceDetails(ctx context.Context, placeID string, fields []string) (*googlemaps.PlaceDetailsResult, error)
	Autocomplete(ctx context.Context, input string) ([]googlemaps.Prediction, error)
}

// TrailForm drives the trail wizard.
type TrailForm struct {
	Data TrailFormData

	store  TrailStore
	places Places

	step       int
	stepErrors map[int]map[string]string
	trailID    int64
	snapshot   snapshot[TrailFormData]
}

// NewTrailForm starts a create session. places may be nil when maps are
// not configured. Call LoadTrail to edit an existing trail.
func NewTrailForm(store TrailStore, places Places) *TrailForm {
	f := &TrailForm{
		Data:       emptyTrailForm(),
		store:      store,
		places:     places,
		stepErrors: make(map[int]map[string]string),
	}
	f.snapshot.take(f.Data)
	return f
}

func (f *TrailForm) Step() int { return f.step }

func (f *TrailForm) StepLabel() string { return TrailStepLabels[f.step] }

func (f *TrailForm) TrailID() int64 { return f.trailID }

func (f *TrailForm) IsEditMode() bool { return f.trailID != 0 }

func (f *TrailForm) IsDirty() bool { return f.snapshot.dirty(f.Data) }

// StepErrors returns the messages recorded for a step, keyed by field.
func (f *TrailForm) StepErrors(step int) map[string]string {
	return f.stepErrors[step]
}

func (f *TrailForm) LoadTrail(ctx context.Context, id int64) error {
	trail, err := f.store.FetchTrail(ctx, id)
	if err != nil {
		log.Printf("[TrailForm]: failed to load trail %d: %v", id, err)
		return err
	}
	f.Data = trailFormFromTrail(trail)
	f.trailID = id
	f.stepErrors = make(map[int]map[string]string)
	f.snapshot.take(f.Data)
	return nil
}

func (f *TrailForm) CompletionStatus() CompletionStatus {
	d := &f.Data
	return CompletionStatus{
		BasicInfo: d.Name != "" && d.Description != "",
		Stats:     d.Difficulty != "" && d.DistanceKm != nil && *d.DistanceKm != 0,
		Location:  d.Latitude != nil && d.Longitude != nil && (d.CountyID != nil || d.CountySlug != "") && d.LocationName != "",
		Routes:    d.RouteA.Name != "",
		Itinerary: !d.IsMultiDay || hasTitledDay(d.Itinerary),
		Media:     d.FeaturedImageID != nil,
	}
}

func (f *TrailForm) IsReadyToPublish() bool {
	s := f.CompletionStatus()
	return s.BasicInfo && s.Stats && s.Location && s.Routes && s.Itinerary && s.Media
}

func hasTitledDay(days []ItineraryDayForm) bool {
	for _, d := range days {
		if d.Title != "" {
			return true
		}
	}
	return false
}

// ValidateCurrentStep records and returns the current step's errors.
func (f *TrailForm) ValidateCurrentStep() map[string]string {
	errs := validateStep(f.step, &f.Data)
	f.stepErrors[f.step] = errs
	return errs
}

// NextStep advances only when the current step validates.
func (f *TrailForm) NextStep() bool {
	if len(f.ValidateCurrentStep()) > 0 {
		return false
	}
	if f.step < StepReview {
		f.step++
	}
	return true
}

func (f *TrailForm) PrevStep() {
	if f.step > 0 {
		f.step--
	}
}

// GoToStep jumps without validating the steps in between.
func (f *TrailForm) GoToStep(step int) {
	if step >= 0 && step <= StepReview {
		f.step = step
	}
}

// Save creates or updates the trail. Publishing sets the status first;
// a draft only needs a name. Server field errors are filed under the
// step that owns the field.
func (f *TrailForm) Save(ctx context.Context, publish bool) (*model.Trail, error) {
	if publish {
		f.Data.Status = model.TrailPublished
	} else if errs := util.FieldErrors(draftStep{Name: f.Data.Name}, draftMessages); errs != nil {
		f.stepErrors[StepBasicInfo] = errs
		return nil, ErrInvalid
	}

	payload := f.BuildPayload()

	var (
		trail model.Trail
		err   error
	)
	if f.IsEditMode() {
		trail, err = f.store.Update(ctx, f.trailID, payload)
	} else {
		trail, err = f.store.Create(ctx, payload)
	}
	if err != nil {
		log.Printf("[TrailForm]: save failed: %v", err)
		if apiErr, ok := admin.AsAPIError(err); ok && apiErr.IsValidation() {
			f.fileServerErrors(apiErr.FieldErrors())
		}
		return nil, err
	}

	if !f.IsEditMode() {
		f.trailID = trail.ID
	}
	f.snapshot.take(f.Data)
	return &trail, nil
}

func (f *TrailForm) fileServerErrors(fieldErrors map[string]string) {
	for field, msg := range fieldErrors {
		step := stepForField(field)
		if f.stepErrors[step] == nil {
			f.stepErrors[step] = make(map[string]string)
		}
		f.stepErrors[step][field] = msg
	}
}

// BuildPayload converts the form into the request body. Empty optional
// strings are omitted, routes are sent only when named (route B only
// when enabled) and list positions become the sort order.
func (f *TrailForm) BuildPayload() model.TrailPayload {
	d := &f.Data
	p := model.TrailPayload{
		Name:              d.Name,
		ShortDescription:  d.ShortDescription,
		Description:       d.Description,
		Difficulty:        d.Difficulty,
		DistanceKm:        d.DistanceKm,
		DurationMin:       d.DurationMin,
		DurationMax:       d.DurationMax,
		ElevationGainM:    d.ElevationGainM,
		MaxAltitudeM:      d.MaxAltitudeM,
		IsYearRound:       d.IsYearRound,
		SeasonNotes:       d.SeasonNotes,
		RequiresGuide:     d.RequiresGuide,
		RequiresPermit:    d.RequiresPermit,
		PermitInfo:        d.PermitInfo,
		AccessibilityInfo: d.AccessibilityInfo,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		LocationName:      d.LocationName,
		CountyID:          d.CountyID,
		CountySlug:        d.CountySlug,
		Status:            d.Status,
		IsFeatured:        d.IsFeatured,
		IsMultiDay:        d.IsMultiDay,
		FeaturedImageID:   d.FeaturedImageID,
		RouteA:            routePayload(d.RouteA),
		Gallery:           make([]model.GalleryItemPayload, 0, len(d.Gallery)),
		GpxFileIDs:        append([]int64{}, d.GpxFileIDs...),
		AmenityIDs:        append([]int64{}, d.AmenityIDs...),
		Itinerary:         []model.ItineraryDayPayload{},
	}
	if d.RouteBEnabled {
		p.RouteB = routePayload(d.RouteB)
	}
	for i, g := range d.Gallery {
		p.Gallery = append(p.Gallery, model.GalleryItemPayload{MediaID: g.MediaID, Caption: g.Caption, SortOrder: i})
	}
	if d.IsMultiDay {
		for i, day := range d.Itinerary {
			p.Itinerary = append(p.Itinerary, model.ItineraryDayPayload{
				DayNumber:         i + 1,
				Title:             day.Title,
				Description:       day.Description,
				DistanceKm:        day.DistanceKm,
				ElevationGainM:    day.ElevationGainM,
				OvernightLocation: day.OvernightLocation,
				SortOrder:         i,
			})
		}
	}
	return p
}

func routePayload(r RouteForm) *model.RoutePayload {
	if r.Name == "" {
		return nil
	}
	p := &model.RoutePayload{
		Name:       r.Name,
		Directions: r.Directions,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Path:       r.Path,
	}
	if len(r.ImageIDs) > 0 {
		p.ImageIDs = append([]int64{}, r.ImageIDs...)
	}
	return p
}

func trailFormFromTrail(t model.Trail) TrailFormData {
	d := emptyTrailForm()
	d.Name = t.Name
	d.ShortDescription = deref(t.ShortDescription)
	d.Description = t.Description
	d.Difficulty = t.Difficulty
	d.DistanceKm = t.DistanceKm.Ptr()
	d.DurationMin = t.DurationMin.Ptr()
	d.DurationMax = t.DurationMax.Ptr()
	d.ElevationGainM = t.ElevationGainM.Ptr()
	d.MaxAltitudeM = t.MaxAltitudeM.Ptr()
	d.IsYearRound = t.IsYearRound
	d.SeasonNotes = deref(t.SeasonNotes)
	d.RequiresGuide = t.RequiresGuide
	d.RequiresPermit = t.RequiresPermit
	d.PermitInfo = deref(t.PermitInfo)
	d.AccessibilityInfo = deref(t.AccessibilityInfo)
	d.AmenityIDs = ids(t.Amenities, func(a model.Amenity) int64 { return a.ID })
	d.Latitude = t.Latitude.Ptr()
	d.Longitude = t.Longitude.Ptr()
	d.LocationName = deref(t.LocationName)
	d.CountyID = t.CountyID
	if t.County != nil {
		d.CountySlug = t.County.Slug
	}
	d.GpxFileIDs = ids(t.GpxFiles, func(g model.TrailGpxFile) int64 { return g.MediaID })
	if t.RouteA != nil {
		d.RouteA = routeForm(*t.RouteA)
	}
	if t.RouteB != nil {
		d.RouteBEnabled = true
		d.RouteB = routeForm(*t.RouteB)
	}
	d.IsMultiDay = t.IsMultiDay
	for _, day := range t.Itinerary {
		d.Itinerary = append(d.Itinerary, ItineraryDayForm{
			Title:             day.Title,
			Description:       deref(day.Description),
			DistanceKm:        day.DistanceKm.Ptr(),
			ElevationGainM:    day.ElevationGainM.Ptr(),
			OvernightLocation: deref(day.OvernightLocation),
		})
	}
	if t.FeaturedImage != nil {
		d.FeaturedImageID = util.Int64Ptr(t.FeaturedImage.ID)
		d.FeaturedImage = t.FeaturedImage
	}
	for _, g := range t.Gallery {
		d.Gallery = append(d.Gallery, GalleryForm{
			MediaID:   g.MediaID,
			Media:     g.Media,
			Caption:   deref(g.Caption),
			SortOrder: g.SortOrder,
		})
	}
	d.IsFeatured = t.IsFeatured
	if t.Status != "" {
		d.Status = t.Status
	}
	return d
}

func routeForm(r model.TrailRoute) RouteForm {
	return RouteForm{
		Name:       deref(r.Name),
		Directions: deref(r.Directions),
		Latitude:   r.Latitude.Ptr(),
		Longitude:  r.Longitude.Ptr(),
		ImageIDs:   ids(r.Images, func(m model.Media) int64 { return m.ID }),
		Path:       r.Path,
	}
}

// AddGalleryImage appends media to the gallery; media already present
// is ignored.
func (f *TrailForm) AddGalleryImage(m model.Media) {
	for _, g := range f.Data.Gallery {
		if g.MediaID == m.ID {
			return
		}
	}
	media := m
	f.Data.Gallery = append(f.Data.Gallery, GalleryForm{MediaID: m.ID, Media: &media, SortOrder: len(f.Data.Gallery)})
}

func (f *TrailForm) RemoveGalleryImage(mediaID int64) {
	kept := f.Data.Gallery[:0]
	for _, g := range f.Data.Gallery {
		if g.MediaID != mediaID {
			kept = append(kept, g)
		}
	}
	f.Data.Gallery = kept
	reindexGallery(f.Data.Gallery)
}

// MoveGalleryImage moves the image at from to position to.
func (f *TrailForm) MoveGalleryImage(from, to int) {
	g := f.Data.Gallery
	if from < 0 || from >= len(g) || to < 0 || to >= len(g) || from == to {
		return
	}
	item := g[from]
	g = append(g[:from], g[from+1:]...)
	g = append(g[:to], append([]GalleryForm{item}, g[to:]...)...)
	f.Data.Gallery = g
	reindexGallery(f.Data.Gallery)
}

func reindexGallery(g []GalleryForm) {
	for i := range g {
		g[i].SortOrder = i
	}
}

func (f *TrailForm) AddItineraryDay(title string) {
	f.Data.Itinerary = append(f.Data.Itinerary, ItineraryDayForm{Title: title})
}

func (f *TrailForm) RemoveItineraryDay(i int) {
	if i < 0 || i >= len(f.Data.Itinerary) {
		return
	}
	f.Data.Itinerary = append(f.Data.Itinerary[:i], f.Data.Itinerary[i+1:]...)
}

func (f *TrailForm) route(routeB bool) *RouteForm {
	if routeB {
		return &f.Data.RouteB
	}
	return &f.Data.RouteA
}

// RoutePath decodes the drawn line of route A or B as [lat, lng] pairs.
func (f *TrailForm) RoutePath(routeB bool) ([][]float64, error) {
	r := f.route(routeB)
	if r.Path == "" {
		return nil, nil
	}
	return util.DecodePolyLines(r.Path)
}

// SetRoutePath stores a drawn line. The first point becomes the route's
// start coordinates when none are set.
func (f *TrailForm) SetRoutePath(routeB bool, coords [][]float64) {
	r := f.route(routeB)
	r.Path = util.EncodePolyLine(coords)
	if len(coords) > 0 && len(coords[0]) == 2 && r.Latitude == nil && r.Longitude == nil {
		r.Latitude = util.Float64Ptr(coords[0][0])
		r.Longitude = util.Float64Ptr(coords[0][1])
	}
}

func (f *TrailForm) SearchPlaces(ctx context.Context, input string) ([]googlemaps.Prediction, error) {
	if f.places == nil {
		return nil, googlemaps.ErrMissingAPIKey
	}
	return f.places.Autocomplete(ctx, input)
}

// ApplyPlace fills the location step from a picked place.
func (f *TrailForm) ApplyPlace(ctx context.Context, placeID string) error {
	if f.places == nil {
		return googlemaps.ErrMissingAPIKey
	}
	place, err := f.places.GetPlaceDetails(ctx, placeID, googlemaps.PlaceFields)
	if err != nil {
		log.Printf("[TrailForm]: place lookup failed: %v", err)
		return err
	}

	f.Data.Latitude = util.Float64Ptr(place.Geometry.Location.Lat)
	f.Data.Longitude = util.Float64Ptr(place.Geometry.Location.Lng)
	f.Data.LocationName = place.Name
	if f.Data.LocationName == "" {
		f.Data.LocationName = place.FormattedAddress
	}
	if errs := f.stepErrors[StepLocation]; errs != nil {
		delete(errs, "latitude")
		delete(errs, "longitude")
		delete(errs, "location_name")
	}
	return nil
}
