package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Options — параметры подключения к Redis.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// NewClient — клиент Redis с проверкой соединения (fail-fast, как и пул Postgres).
// Клиент долгоживущий: создаётся на старте процесса, закрывается при остановке.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
