// Пакет ctxmeta — метаданные запроса каталога в context.Context.
// Через него request_id, выданный HTTP-middleware, доезжает до логгера
// без прямой зависимости httpx от logger.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID — кладёт идентификатор запроса в контекст; пустой id не пишется.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — идентификатор запроса, если он был положен ранее.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
