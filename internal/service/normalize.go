package service

import (
	"github.com/bwise1/trailhead_admin/internal/model"
)

// wireGroupHike accepts both group hike shapes the backend returns: the
// detail shape with nested objects (dates, location, pricing, ...) and
// the flat shape where the same values sit at the top level. Nested
// values win; flat ones fill the gaps.
type wireGroupHike struct {
	model.GroupHike

	Location     *model.GroupHikeLocation     `json:"location"`
	Dates        *model.GroupHikeDates        `json:"dates"`
	Capacity     *model.GroupHikeCapacity     `json:"capacity"`
	Registration *model.GroupHikeRegistration `json:"registration"`
	Pricing      *model.GroupHikePricing      `json:"pricing"`
	Contact      *model.GroupHikeContact      `json:"contact"`
	Difficulty   *model.Difficulty            `json:"difficulty"`

	LocationType         *model.LocationType `json:"location_type"`
	LocationName         *string             `json:"location_name"`
	CustomLocationName   *string             `json:"custom_location_name"`
	Region               *model.Ref          `json:"region"`
	Latitude             model.Decimal       `json:"latitude"`
	Longitude            model.Decimal       `json:"longitude"`
	StartDate            *string             `json:"start_date"`
	StartTime            *string             `json:"start_time"`
	EndDate              *string             `json:"end_date"`
	EndTime              *string             `json:"end_time"`
	IsMultiDay           *bool               `json:"is_multi_day"`
	MaxParticipants      *int                `json:"max_participants"`
	SpotsRemaining       *int                `json:"spots_remaining"`
	RegistrationURL      *string             `json:"registration_url"`
	RegistrationDeadline *string             `json:"registration_deadline"`
	RegistrationNotes    *string             `json:"registration_notes"`
	IsFree               *bool               `json:"is_free"`
	Price                model.Decimal       `json:"price"`
	PriceCurrency        *string             `json:"price_currency"`
	PriceFormatted       *string             `json:"price_formatted"`
	PriceNotes           *string             `json:"price_notes"`
	ContactName          *string             `json:"contact_name"`
	ContactEmail         *string             `json:"contact_email"`
	ContactPhone         *string             `json:"contact_phone"`
	ContactWhatsapp      *string             `json:"contact_whatsapp"`
}

const defaultCurrency = "KES"

func (w wireGroupHike) normalize() model.GroupHike {
	h := w.GroupHike

	if w.Location != nil {
		h.Location = *w.Location
	} else {
		h.Location = w.flatLocation()
	}

	if w.Dates != nil {
		h.Dates = *w.Dates
	} else {
		h.Dates = model.GroupHikeDates{
			StartDate:  deref(w.StartDate),
			StartTime:  deref(w.StartTime),
			EndDate:    w.EndDate,
			EndTime:    w.EndTime,
			IsMultiDay: derefBool(w.IsMultiDay),
		}
	}

	if w.Capacity != nil {
		h.Capacity = *w.Capacity
	} else {
		h.Capacity = model.GroupHikeCapacity{MaxParticipants: w.MaxParticipants, SpotsRemaining: w.SpotsRemaining}
	}

	if w.Registration != nil {
		h.Registration = *w.Registration
	} else {
		h.Registration = model.GroupHikeRegistration{
			URL:      w.RegistrationURL,
			Deadline: w.RegistrationDeadline,
			Notes:    w.RegistrationNotes,
		}
	}

	if w.Pricing != nil {
		h.Pricing = *w.Pricing
	} else {
		h.Pricing = model.GroupHikePricing{
			Price:     w.Price,
			Currency:  deref(w.PriceCurrency),
			Formatted: deref(w.PriceFormatted),
			Notes:     w.PriceNotes,
			IsFree:    derefBool(w.IsFree),
		}
	}
	if h.Pricing.Currency == "" {
		h.Pricing.Currency = defaultCurrency
	}

	if w.Contact != nil {
		h.Contact = *w.Contact
	} else {
		h.Contact = model.GroupHikeContact{
			Name:     w.ContactName,
			Email:    w.ContactEmail,
			Phone:    w.ContactPhone,
			Whatsapp: w.ContactWhatsapp,
		}
	}

	if w.Difficulty != nil {
		h.Difficulty = *w.Difficulty
	}
	if h.Gallery == nil {
		h.Gallery = []model.GroupHikeGalleryImage{}
	}
	return h
}

func (w wireGroupHike) flatLocation() model.GroupHikeLocation {
	loc := model.GroupHikeLocation{
		Type:      model.LocationTrail,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		Region:    w.Region,
	}
	if w.LocationType != nil {
		loc.Type = *w.LocationType
	} else if w.GroupHike.Trail == nil && (w.CustomLocationName != nil || w.LocationName != nil) {
		loc.Type = model.LocationCustom
	}

	switch {
	case w.CustomLocationName != nil:
		loc.Name = *w.CustomLocationName
	case w.LocationName != nil:
		loc.Name = *w.LocationName
	case w.GroupHike.Trail != nil:
		loc.Name = w.GroupHike.Trail.Name
	}
	if loc.Region == nil && w.GroupHike.Trail != nil {
		loc.Region = w.GroupHike.Trail.Region
	}
	return loc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
