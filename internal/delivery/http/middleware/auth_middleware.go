package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "notekeeper/internal/delivery/context"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware gates protected routes on a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a token (401) or with one that does not
// verify (403). On success the caller identity is bound to the request before
// the next handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrAuthMissing
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Info("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrAuthInvalid
		}

		identity := claims.Identity()
		reqLogger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.Int64("user_id", identity.ID))

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))
		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// bearerToken extracts the credential from "Bearer <token>". The scheme is
// case-insensitive; anything else counts as no token.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
