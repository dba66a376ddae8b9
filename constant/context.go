package constant

type ContextKey string

const RequestIDKey ContextKey = "request_id"
