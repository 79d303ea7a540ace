package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы будем хранить *gorm.DB в context
const DBContextKey = contextKey("db")

// RequestIDKey - X-Request-ID текущего запроса, попадает во все логи запроса.
const RequestIDKey = contextKey("request_id")
