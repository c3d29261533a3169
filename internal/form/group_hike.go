package form

import (
	"context"
	"log"
	"strings"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util"
	"github.com/go-playground/validator/v10"
)

const defaultCurrency = "KES"

var groupHikeMessages = util.Messages{
	"title.min":                            "Title must be at least 3 characters",
	"title.max":                            "Title must be 255 characters or less",
	"slug.max":                             "Slug must be 255 characters or less",
	"slug.slug":                            "Slug must be lowercase letters, numbers, and hyphens only",
	"description.min":                      "Description must be at least 10 characters",
	"short_description.max":                "Short description must be 500 characters or less",
	"location_type":                        "Location type must be trail or custom",
	"custom_location_name.max":             "Location name must be 255 characters or less",
	"custom_location_name.required_custom": "Location name is required for custom locations",
	"trail_id":                             "Trail is required for trail locations",
	"region_id":                            "Region is required for custom locations",
	"difficulty.oneof":                     "Difficulty must be easy, moderate, difficult or expert",
	"difficulty.required_custom":           "Difficulty is required for custom locations",
	"latitude":                             "Latitude must be between -90 and 90",
	"longitude":                            "Longitude must be between -180 and 180",
	"meeting_point":                        "Meeting point must be 500 characters or less",
	"start_date":                           "Start date is required",
	"start_time":                           "Start time is required",
	"end_date":                             "End date is required for multi-day hikes",
	"max_participants":                     "Must be at least 1",
	"registration_url":                     "Must be a valid URL",
	"price.min":                            "Price cannot be negative",
	"price.required_paid":                  "Price is required for paid hikes",
	"price_currency":                       "Currency must be 3 characters",
	"price_notes":                          "Price notes must be 500 characters or less",
	"contact_name":                         "Contact name must be 255 characters or less",
	"contact_email":                        "Must be a valid email",
	"contact_phone":                        "Phone must be 50 characters or less",
	"contact_whatsapp":                     "WhatsApp must be 50 characters or less",
	"recurring_notes.max":                  "Recurring notes must be 255 characters or less",
	"recurring_notes.required_recurring":   "Recurring notes are required when recurring is enabled",
}

var draftHikeMessages = util.Messages{
	"title": "Title is required to save a draft",
}

type draftHike struct {
	Title string `json:"title" validate:"required"`
}

func init() {
	util.RegisterStructValidation(groupHikeRules, model.GroupHikeFormData{})
}

func groupHikeRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(model.GroupHikeFormData)

	switch d.LocationType {
	case model.LocationTrail:
		if d.TrailID == nil {
			sl.ReportError(d.TrailID, "trail_id", "TrailID", "required_trail", "")
		}
	case model.LocationCustom:
		if d.CustomLocationName == "" {
			sl.ReportError(d.CustomLocationName, "custom_location_name", "CustomLocationName", "required_custom", "")
		}
		if d.RegionID == nil {
			sl.ReportError(d.RegionID, "region_id", "RegionID", "required_custom", "")
		}
		if d.Difficulty == nil {
			sl.ReportError(d.Difficulty, "difficulty", "Difficulty", "required_custom", "")
		}
	}
	if d.IsMultiDay && d.EndDate == "" {
		sl.ReportError(d.EndDate, "end_date", "EndDate", "required_multi_day", "")
	}
	if !d.IsFree && (d.Price == nil || *d.Price < 0) {
		sl.ReportError(d.Price, "price", "Price", "required_paid", "")
	}
	if d.IsRecurring && d.RecurringNotes == "" {
		sl.ReportError(d.RecurringNotes, "recurring_notes", "RecurringNotes", "required_recurring", "")
	}
}

// ValidateGroupHike returns the first message per field; empty when valid.
func ValidateGroupHike(d model.GroupHikeFormData, draft bool) map[string]string {
	var errs map[string]string
	if draft {
		errs = util.FieldErrors(draftHike{Title: d.Title}, draftHikeMessages)
	} else {
		errs = util.FieldErrors(d, groupHikeMessages)
	}
	if errs == nil {
		return map[string]string{}
	}
	return errs
}

type GroupHikeStore interface {
	FetchGroupHike(ctx context.Context, id int64) (model.GroupHike, error)
	Create(ctx context.Context, data model.GroupHikeFormData) (model.GroupHike, error)
	Update(ctx context.Context, id int64, data model.GroupHikeFormData) (model.GroupHike, error)
}

// GroupHikeForm is the single page create/edit form for a group hike.
// Load and save failures are reported through the notifier.
type GroupHikeForm struct {
	Data model.GroupHikeFormData

	store  GroupHikeStore
	toasts Notifier

	errors   map[string]string
	hikeID   int64
	snapshot snapshot[model.GroupHikeFormData]
}

func NewGroupHikeForm(store GroupHikeStore, toasts Notifier) *GroupHikeForm {
	f := &GroupHikeForm{
		Data:   emptyGroupHikeForm(),
		store:  store,
		toasts: toasts,
		errors: map[string]string{},
	}
	f.snapshot.take(f.Data)
	return f
}

func emptyGroupHikeForm() model.GroupHikeFormData {
	return model.GroupHikeFormData{
		LocationType:  model.LocationTrail,
		PriceCurrency: defaultCurrency,
		Gallery:       []model.GroupHikeGalleryItem{},
	}
}

func (f *GroupHikeForm) HikeID() int64 { return f.hikeID }

func (f *GroupHikeForm) IsEditMode() bool { return f.hikeID != 0 }

func (f *GroupHikeForm) IsDirty() bool { return f.snapshot.dirty(f.Data) }

func (f *GroupHikeForm) Errors() map[string]string { return f.errors }

func (f *GroupHikeForm) ClearError(field string) {
	delete(f.errors, field)
}

func (f *GroupHikeForm) LoadHike(ctx context.Context, id int64) error {
	hike, err := f.store.FetchGroupHike(ctx, id)
	if err != nil {
		log.Printf("[GroupHikeForm]: failed to load group hike %d: %v", id, err)
		f.toasts.Error(admin.Message(err, "Failed to load group hike"))
		return err
	}
	f.hikeID = id
	f.Data = groupHikeFormFromHike(hike)
	f.errors = map[string]string{}
	f.snapshot.take(f.Data)
	return nil
}

// OnTitleInput keeps the slug in step with the title, except when an
// existing hike already has a slug.
func (f *GroupHikeForm) OnTitleInput() {
	if !f.IsEditMode() || f.Data.Slug == "" {
		f.Data.Slug = util.GenerateSlug(f.Data.Title)
	}
}

// Validate replaces the error map and reports whether the form is valid.
// A draft only needs a title.
func (f *GroupHikeForm) Validate(draft bool) bool {
	f.errors = ValidateGroupHike(f.Data, draft)
	return len(f.errors) == 0
}

// Save validates, then creates or updates the hike. It returns nil on
// any failure; server field errors are merged over the current ones.
func (f *GroupHikeForm) Save(ctx context.Context, draft bool) *model.GroupHike {
	if !f.Validate(draft) {
		return nil
	}

	var (
		hike model.GroupHike
		err  error
	)
	if f.IsEditMode() {
		hike, err = f.store.Update(ctx, f.hikeID, f.Data)
	} else {
		hike, err = f.store.Create(ctx, f.Data)
	}
	if err != nil {
		log.Printf("[GroupHikeForm]: save failed: %v", err)
		apiErr, ok := admin.AsAPIError(err)
		if !ok {
			f.toasts.Error("Failed to save group hike")
			return nil
		}
		f.toasts.Error(apiErr.Message)
		if apiErr.Status == 422 {
			for field, msg := range apiErr.FieldErrors() {
				f.errors[field] = msg
			}
		}
		return nil
	}

	if f.IsEditMode() {
		f.toasts.Success("Group hike updated successfully")
	} else {
		f.hikeID = hike.ID
		f.toasts.Success("Group hike created successfully")
	}
	f.snapshot.take(f.Data)
	return &hike
}

func groupHikeFormFromHike(h model.GroupHike) model.GroupHikeFormData {
	d := emptyGroupHikeForm()
	d.Title = h.Title
	d.Slug = h.Slug
	d.Description = h.Description
	d.ShortDescription = deref(h.ShortDescription)
	if h.Organizer != nil {
		d.OrganizerID = util.Int64Ptr(h.Organizer.ID)
	}
	if h.Company != nil {
		d.CompanyID = util.Int64Ptr(h.Company.ID)
	}
	if h.Location.Type != "" {
		d.LocationType = h.Location.Type
	}
	if h.Trail != nil {
		d.TrailID = util.Int64Ptr(h.Trail.ID)
	}
	if h.Location.Type == model.LocationCustom {
		d.CustomLocationName = h.Location.Name
	}
	d.Latitude = h.Location.Latitude.Ptr()
	d.Longitude = h.Location.Longitude.Ptr()
	if h.Location.Region != nil {
		d.RegionID = util.Int64Ptr(h.Location.Region.ID)
	}
	d.MeetingPoint = deref(h.MeetingPoint)

	d.StartDate = DateInput(h.Dates.StartDate)
	d.StartTime = TimeInput(h.Dates.StartTime)
	d.IsMultiDay = h.Dates.IsMultiDay
	d.EndDate = DateInput(deref(h.Dates.EndDate))
	d.EndTime = TimeInput(deref(h.Dates.EndTime))

	d.MaxParticipants = h.Capacity.MaxParticipants
	d.RegistrationURL = deref(h.Registration.URL)
	d.RegistrationDeadline = DateInput(deref(h.Registration.Deadline))
	d.RegistrationNotes = deref(h.Registration.Notes)

	d.IsFree = h.Pricing.IsFree
	d.Price = h.Pricing.Price.Ptr()
	if c := strings.TrimSpace(h.Pricing.Currency); c != "" {
		d.PriceCurrency = c
	}
	d.PriceNotes = deref(h.Pricing.Notes)

	d.ContactName = deref(h.Contact.Name)
	d.ContactEmail = deref(h.Contact.Email)
	d.ContactPhone = deref(h.Contact.Phone)
	d.ContactWhatsapp = deref(h.Contact.Whatsapp)

	if h.Difficulty != "" {
		difficulty := h.Difficulty
		d.Difficulty = &difficulty
	}
	if h.FeaturedImage != nil {
		d.FeaturedImageID = util.Int64Ptr(h.FeaturedImage.ID)
	}
	d.IsFeatured = h.IsFeatured
	d.IsRecurring = h.IsRecurring
	d.RecurringNotes = deref(h.RecurringNotes)
	for _, g := range h.Gallery {
		d.Gallery = append(d.Gallery, model.GroupHikeGalleryItem{
			MediaID:   g.MediaID,
			Caption:   deref(g.Caption),
			SortOrder: g.SortOrder,
		})
	}
	return d
}
