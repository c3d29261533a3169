package model

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
}

type RoleOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UserCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type User struct {
	ID              int64        `json:"id"`
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	FullName        string       `json:"full_name"`
	Email           string       `json:"email"`
	Phone           *string      `json:"phone"`
	Avatar          *string      `json:"avatar"`
	Status          UserStatus   `json:"status"`
	EmailVerifiedAt *string      `json:"email_verified_at"`
	LastLoginAt     *string      `json:"last_login_at"`
	Role            *Role        `json:"role"`
	Company         *UserCompany `json:"company"`
	CreatedAt       string       `json:"created_at"`
	UpdatedAt       string       `json:"updated_at"`
}

type UserFilters struct {
	Page      int        `url:"page,omitempty"`
	PerPage   int        `url:"per_page,omitempty"`
	Search    string     `url:"search,omitempty"`
	Status    UserStatus `url:"status,omitempty"`
	RoleID    int64      `url:"role_id,omitempty"`
	CompanyID int64      `url:"company_id,omitempty"`
}

type CreateUserPayload struct {
	FirstName string     `json:"first_name" validate:"required,max=255"`
	LastName  string     `json:"last_name" validate:"required,max=255"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Phone     string     `json:"phone,omitempty"`
	RoleID    int64      `json:"role_id" validate:"required"`
	CompanyID *int64     `json:"company_id,omitempty"`
	Status    UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type UpdateUserPayload struct {
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Password  string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Phone     string     `json:"phone,omitempty"`
	RoleID    int64      `json:"role_id,omitempty"`
	CompanyID *int64     `json:"company_id,omitempty"`
	Status    UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
