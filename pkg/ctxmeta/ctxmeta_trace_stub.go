//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трейс-идентификаторов нет, лог обходится request_id.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
