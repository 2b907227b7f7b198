package contextkeys

// Custom key type to avoid collisions with other context users.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the shared pool, or a test transaction) is stored.
const DBContextKey = contextKey("db")

// Gin context keys set by the auth middleware after token verification.
const (
	UserIDKey = "userID"
	EmailKey  = "userEmail"
)
