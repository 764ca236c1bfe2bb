// Пакет logger — zap-реализация ports.Logger каталога.
// Контекст в сигнатурах зарезервирован под метаданные запроса (request_id),
// сами методы пишут только форматированную строку.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — prod-режим пишет JSON, dev-режим — человекочитаемую консоль.
// Вторым значением возвращается Sync для вызова при остановке сервиса.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	build := zap.NewDevelopment
	if isProd {
		build = zap.NewProduction
	}

	base, err := build()
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar()}
	return l, l.base.Sync, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
