package types

// Gin context keys shared between middleware and handlers.
const (
	ContextUserKey = "user"
	ContextBodyKey = "json_body"
)
