package model

type GroupHikeStatus string

const (
	GroupHikeDraft     GroupHikeStatus = "draft"
	GroupHikePublished GroupHikeStatus = "published"
	GroupHikeCancelled GroupHikeStatus = "cancelled"
	GroupHikeCompleted GroupHikeStatus = "completed"
)

type LocationType string

const (
	LocationTrail  LocationType = "trail"
	LocationCustom LocationType = "custom"
)

type GroupHikeOrganizer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GroupHikeCompany struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	LogoThumbnail *string `json:"logo_thumbnail,omitempty"`
}

type GroupHikeTrail struct {
	ID         int64      `json:"id"`
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	Region     *Ref       `json:"region"`
}

type GroupHikeLocation struct {
	Type      LocationType `json:"type"`
	Name      string       `json:"name"`
	Latitude  Decimal      `json:"latitude"`
	Longitude Decimal      `json:"longitude"`
	Region    *Ref         `json:"region"`
}

type GroupHikeDates struct {
	StartDate  string  `json:"start_date"`
	StartTime  string  `json:"start_time"`
	EndDate    *string `json:"end_date"`
	EndTime    *string `json:"end_time"`
	IsMultiDay bool    `json:"is_multi_day"`
}

type GroupHikeCapacity struct {
	MaxParticipants *int `json:"max_participants"`
	SpotsRemaining  *int `json:"spots_remaining"`
}

type GroupHikeRegistration struct {
	URL      *string `json:"url"`
	Deadline *string `json:"deadline"`
	Notes    *string `json:"notes"`
	IsOpen   bool    `json:"is_open"`
}

type GroupHikePricing struct {
	Price     Decimal `json:"price"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
	Notes     *string `json:"notes"`
	IsFree    bool    `json:"is_free"`
}

type GroupHikeContact struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
}

type GroupHikeGalleryImage struct {
	ID        int64     `json:"id"`
	MediaID   int64     `json:"media_id"`
	URLs      MediaURLs `json:"urls"`
	Caption   *string   `json:"caption"`
	SortOrder int       `json:"sort_order"`
}

// GroupHike is the canonical detail shape. The service layer converts
// both wire shapes the backend emits into this one.
type GroupHike struct {
	ID                 int64                   `json:"id"`
	Title              string                  `json:"title"`
	Slug               string                  `json:"slug"`
	Description        string                  `json:"description"`
	ShortDescription   *string                 `json:"short_description"`
	Organizer          *GroupHikeOrganizer     `json:"organizer"`
	Company            *GroupHikeCompany       `json:"company"`
	Trail              *GroupHikeTrail         `json:"trail"`
	Location           GroupHikeLocation       `json:"location"`
	MeetingPoint       *string                 `json:"meeting_point"`
	Dates              GroupHikeDates          `json:"dates"`
	DateDisplay        string                  `json:"date_display"`
	TimeDisplay        string                  `json:"time_display"`
	Capacity           GroupHikeCapacity       `json:"capacity"`
	Registration       GroupHikeRegistration   `json:"registration"`
	Pricing            GroupHikePricing        `json:"pricing"`
	Contact            GroupHikeContact        `json:"contact"`
	Difficulty         Difficulty              `json:"difficulty"`
	DifficultyLabel    string                  `json:"difficulty_label"`
	FeaturedImage      *Media                  `json:"featured_image"`
	Gallery            []GroupHikeGalleryImage `json:"gallery"`
	Status             GroupHikeStatus         `json:"status"`
	StatusLabel        string                  `json:"status_label"`
	PublishedAt        *string                 `json:"published_at"`
	CancelledAt        *string                 `json:"cancelled_at"`
	CancellationReason *string                 `json:"cancellation_reason"`
	IsFeatured         bool                    `json:"is_featured"`
	IsRecurring        bool                    `json:"is_recurring"`
	RecurringNotes     *string                 `json:"recurring_notes"`
	IsPast             bool                    `json:"is_past"`
	CreatedBy          *Ref                    `json:"created_by"`
	CreatedAt          string                  `json:"created_at"`
	UpdatedAt          string                  `json:"updated_at"`
	CanEdit            bool                    `json:"can_edit"`
	CanDelete          bool                    `json:"can_delete"`
	CanPublish         bool                    `json:"can_publish"`
	CanCancel          bool                    `json:"can_cancel"`
}

type GroupHikeListCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GroupHikeListImage struct {
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
}

// GroupHikeListItem is the flat row the list endpoint returns.
type GroupHikeListItem struct {
	ID               int64                 `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	ShortDescription *string               `json:"short_description"`
	Organizer        *Ref                  `json:"organizer"`
	Company          *GroupHikeListCompany `json:"company"`
	LocationName     *string               `json:"location_name"`
	Region           *Ref                  `json:"region"`
	StartDate        *string               `json:"start_date"`
	StartTime        *string               `json:"start_time"`
	EndDate          *string               `json:"end_date"`
	DateDisplay      string                `json:"date_display"`
	IsMultiDay       bool                  `json:"is_multi_day"`
	MaxParticipants  *int                  `json:"max_participants"`
	PriceFormatted   *string               `json:"price_formatted"`
	IsFree           bool                  `json:"is_free"`
	Difficulty       *Difficulty           `json:"difficulty"`
	FeaturedImage    *GroupHikeListImage   `json:"featured_image"`
	Status           GroupHikeStatus       `json:"status"`
	StatusLabel      string                `json:"status_label"`
	IsFeatured       bool                  `json:"is_featured"`
	IsPast           bool                  `json:"is_past"`
	CreatedAt        string                `json:"created_at"`
	CanEdit          bool                  `json:"can_edit"`
	CanDelete        bool                  `json:"can_delete"`
}

type GroupHikeFilters struct {
	Page        int             `url:"page,omitempty"`
	PerPage     int             `url:"per_page,omitempty"`
	Search      string          `url:"search,omitempty"`
	Status      GroupHikeStatus `url:"status,omitempty"`
	OrganizerID int64           `url:"organizer_id,omitempty"`
	CompanyID   int64           `url:"company_id,omitempty"`
	RegionID    int64           `url:"region_id,omitempty"`
	DateFrom    string          `url:"date_from,omitempty"`
	DateTo      string          `url:"date_to,omitempty"`
	Sort        string          `url:"sort,omitempty"`
	Order       string          `url:"order,omitempty"`
}

type GroupHikeGalleryItem struct {
	MediaID   int64  `json:"media_id"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

// GroupHikeFormData is both the editable form state and the request body.
type GroupHikeFormData struct {
	Title                string                 `json:"title" validate:"min=3,max=255"`
	Slug                 string                 `json:"slug" validate:"omitempty,max=255,slug"`
	Description          string                 `json:"description" validate:"min=10"`
	ShortDescription     string                 `json:"short_description" validate:"max=500"`
	OrganizerID          *int64                 `json:"organizer_id"`
	CompanyID            *int64                 `json:"company_id"`
	LocationType         LocationType           `json:"location_type" validate:"oneof=trail custom"`
	TrailID              *int64                 `json:"trail_id"`
	CustomLocationName   string                 `json:"custom_location_name" validate:"max=255"`
	Latitude             *float64               `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *float64               `json:"longitude" validate:"omitempty,longitude"`
	RegionID             *int64                 `json:"region_id"`
	MeetingPoint         string                 `json:"meeting_point" validate:"max=500"`
	StartDate            string                 `json:"start_date" validate:"required"`
	StartTime            string                 `json:"start_time" validate:"required"`
	IsMultiDay           bool                   `json:"is_multi_day"`
	EndDate              string                 `json:"end_date"`
	EndTime              string                 `json:"end_time"`
	MaxParticipants      *int                   `json:"max_participants" validate:"omitempty,min=1"`
	RegistrationURL      string                 `json:"registration_url" validate:"omitempty,loose_url"`
	RegistrationDeadline string                 `json:"registration_deadline"`
	RegistrationNotes    string                 `json:"registration_notes"`
	IsFree               bool                   `json:"is_free"`
	Price                *float64               `json:"price" validate:"omitempty,min=0"`
	PriceCurrency        string                 `json:"price_currency" validate:"len=3"`
	PriceNotes           string                 `json:"price_notes" validate:"max=500"`
	ContactName          string                 `json:"contact_name" validate:"max=255"`
	ContactEmail         string                 `json:"contact_email" validate:"omitempty,email"`
	ContactPhone         string                 `json:"contact_phone" validate:"max=50"`
	ContactWhatsapp      string                 `json:"contact_whatsapp" validate:"max=50"`
	Difficulty           *Difficulty            `json:"difficulty" validate:"omitempty,oneof=easy moderate difficult expert"`
	FeaturedImageID      *int64                 `json:"featured_image_id"`
	IsFeatured           bool                   `json:"is_featured"`
	IsRecurring          bool                   `json:"is_recurring"`
	RecurringNotes       string                 `json:"recurring_notes" validate:"max=255"`
	Gallery              []GroupHikeGalleryItem `json:"gallery"`
}

type CancelGroupHikePayload struct {
	CancellationReason string `json:"cancellation_reason"`
}
