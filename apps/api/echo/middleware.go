package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core/user"
)

// roleMiddleware restricts a route group to callers whose role is in the
// given set. An empty set only requires an authenticated caller.
func roleMiddleware(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if len(roles) == 0 {
				return next(ctx)
			}
			for _, role := range roles {
				if claims.Role == string(role) {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}
