package service

import (
	"context"

	"mydirectory/domain"
)

type originKey struct{}

// WithOrigin returns a context that tags audit events with the given front-end.
func WithOrigin(ctx context.Context, origin domain.Origin) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFrom returns the origin stored by WithOrigin, or domain.OriginCore.
func OriginFrom(ctx context.Context) domain.Origin {
	if o, ok := ctx.Value(originKey{}).(domain.Origin); ok && o != "" {
		return o
	}
	return domain.OriginCore
}
