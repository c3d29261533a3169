package model

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
	MediaGPX      MediaType = "gpx"
)

type MediaURLs struct {
	Original  string `json:"original,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Large     string `json:"large,omitempty"`
}

type Media struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	Type             MediaType `json:"type"`
	AltText          *string   `json:"alt_text"`
	URL              string    `json:"url"`
	PublicID         string    `json:"public_id,omitempty"`
	URLs             MediaURLs `json:"urls"`
	Width            *int      `json:"width,omitempty"`
	Height           *int      `json:"height,omitempty"`
	CreatedAt        string    `json:"created_at"`
}

type MediaFilters struct {
	Page int       `url:"page,omitempty"`
	Type MediaType `url:"type,omitempty"`
}

type UpdateMediaPayload struct {
	AltText string `json:"alt_text"`
}
