package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor кладёт транзакционный executor в контекст
// Используется transaction manager-ами, чтобы репозитории прозрачно работали внутри транзакции
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, exec)
}

// GetExecutor возвращает executor из контекста, если там есть активная транзакция
// Иначе возвращает fallback (обычное соединение с БД)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(txContextKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(DBExecutor)
	return ok
}
