package model

type ActivityLogCauser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
}

// ActivityLog is an immutable audit record.
type ActivityLog struct {
	ID          int64              `json:"id"`
	LogName     string             `json:"log_name"`
	Event       string             `json:"event"`
	SubjectType *string            `json:"subject_type"`
	SubjectID   *int64             `json:"subject_id"`
	CauserType  *string            `json:"causer_type"`
	CauserID    *int64             `json:"causer_id"`
	Causer      *ActivityLogCauser `json:"causer"`
	Properties  map[string]any     `json:"properties"`
	CreatedAt   string             `json:"created_at"`
}

type ActivityLogFilters struct {
	Page     int    `url:"page,omitempty"`
	PerPage  int    `url:"per_page,omitempty"`
	CauserID int64  `url:"causer_id,omitempty"`
	LogName  string `url:"log_name,omitempty"`
	Event    string `url:"event,omitempty"`
	DateFrom string `url:"date_from,omitempty"`
	DateTo   string `url:"date_to,omitempty"`
}
