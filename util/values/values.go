package values

// Response statuses shared by the stub backend and the client.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	Failed         = "failed"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	Conflict       = "conflict"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestSource = "X-Request-Source"
	RequestSource       = "admin-console"
)

// User facing fallbacks. Raw transport or server text never reaches the UI.
const (
	ServerErrorFallback  = "Something went wrong. Please try again later."
	NetworkErrorFallback = "Unable to connect to the server. Please check your connection and try again."
	UploadCancelled      = "Upload cancelled"
)

// Session storage keys.
const (
	SessionToken       = "token"
	SessionUser        = "user"
	SessionPermissions = "permissions"
)

const SuperAdminRole = "super_admin"
