package utils

// Key constants used throughout the application for context storage
const (
	// KeyApp is the gin context key for the application container
	KeyApp = "todosweepApp"
	// KeyRequestID is the gin context key for the per-request id
	KeyRequestID = "requestID"

	// HeaderRequestID is the response header carrying the request id
	HeaderRequestID = "X-Request-Id"
)
