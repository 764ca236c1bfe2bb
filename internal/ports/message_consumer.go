package ports

import "context"

// MessageConsumer — фоновый приёмник событий метрик товара.
// Run блокируется до отмены контекста или фатальной ошибки чтения.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
