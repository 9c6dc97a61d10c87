package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// Returns string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

// ClaimsKey is the context key used for storing JWT claims in a request context.
var ClaimsKey = &contextKey{"claims"}

// UserKey holds the external representation of a user authenticated with basic credentials.
var UserKey = &contextKey{"user"}

var TraceIdKey = &contextKey{"traceId"}
var SanitizedPayloadKey = &contextKey{"sanitizedPayload"}
