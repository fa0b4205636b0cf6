package context

import (
	"context"

	"notekeeper/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext returns the caller bound by the auth middleware.
func IdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(entity.Identity)

	return identity, ok
}

// SetIdentity stores the caller on the echo.Context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity reads the caller from the echo.Context, falling back to the request context.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	if identity, ok := c.Get(string(KeyIdentity)).(entity.Identity); ok {
		return identity, true
	}

	return IdentityFromContext(c.Request().Context())
}
