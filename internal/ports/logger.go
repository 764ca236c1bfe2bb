package ports

import "context"

// Logger — контракт логгера каталога; контекст несёт метаданные запроса.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
