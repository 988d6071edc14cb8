package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization    = "Authorization"
	HeaderAdminKey         = "X-Admin-Key"
	HeaderSubscriberEmail  = "X-Subscriber-Email"
	HeaderXRequestID       = "X-Request-ID"
	HeaderRateLimitLimit   = "X-RateLimit-Limit"
	HeaderRateLimitRemains = "X-RateLimit-Remaining"

	// Context keys
	ContextKeyAdminRole    = "admin_role"
	ContextKeyAdminSubject = "admin_subject"

	TableReviews       = "reviews"
	TableOrders        = "orders"
	TableSubscriptions = "subscriptions"

	// Admin roles
	RoleAdmin     = "admin"
	RoleModerator = "moderator"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
