package utils

import "time"

// Application Constants
const (
	AppName = "StaticMaps"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour
	RoleAdmin         = "admin"

	// Request headers
	HeaderRequestID = "X-Request-ID"
)

// Gin context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeySubject   = "subject"
	ContextKeyRole      = "role"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidToken     = "invalid token"
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrValidationFailed = "validation failed"
)

// Cache Keys
const (
	CachePresetPrefix = "staticmap:preset:"
)
