package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyResource is a specific key for identifying "resource" contexts added to the http request
var ContextKeyResource = ContextKey("resource")

// ContextKeyUserID is a specific key for identifying "user_id" contexts added to the http request
var ContextKeyUserID = ContextKey("user_id")
