package state

import (
	"context"

	"google.golang.org/grpc"
)

type ctxKey struct{}

// Provide returns a child of ctx in which Use resolves to s.
func Provide(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// Use returns the store provided to ctx. Reaching for the store outside a
// Provide scope is a wiring bug, so it panics with ErrNoProvider.
func Use(ctx context.Context) *Store {
	s, ok := From(ctx)
	if !ok {
		panic(ErrNoProvider)
	}
	return s
}

func From(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}

// UnaryServerInterceptor provides s to every unary handler.
func UnaryServerInterceptor(s *Store) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(Provide(ctx, s), req)
	}
}
