package model

type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Logo        *Media  `json:"logo"`
	CoverImage  *Media  `json:"cover_image"`
	Website     *string `json:"website"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Whatsapp    *string `json:"whatsapp"`
	Instagram   *string `json:"instagram"`
	Facebook    *string `json:"facebook"`
	IsVerified  bool    `json:"is_verified"`
	IsActive    bool    `json:"is_active"`
	HikeCount   int     `json:"hike_count"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CompanyListItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	LogoThumbnail *string `json:"logo_thumbnail"`
	IsVerified    bool    `json:"is_verified"`
	IsActive      bool    `json:"is_active"`
	HikeCount     int     `json:"hike_count"`
	CreatedAt     string  `json:"created_at"`
}

// CompanyOption is the dropdown projection.
type CompanyOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CompanyFilters struct {
	Page       int    `url:"page,omitempty"`
	PerPage    int    `url:"per_page,omitempty"`
	Search     string `url:"search,omitempty"`
	IsVerified *bool  `url:"is_verified,omitempty,int"`
}

type CompanyFormData struct {
	Name         string `json:"name" validate:"required,max=255"`
	Slug         string `json:"slug,omitempty" validate:"omitempty,slug"`
	Description  string `json:"description,omitempty"`
	LogoID       *int64 `json:"logo_id,omitempty"`
	CoverImageID *int64 `json:"cover_image_id,omitempty"`
	Website      string `json:"website,omitempty" validate:"omitempty,loose_url"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	IsVerified   bool   `json:"is_verified"`
	IsActive     bool   `json:"is_active"`
}
