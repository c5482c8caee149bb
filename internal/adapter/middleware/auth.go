package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// HeaderAccessPin carries the caller's access PIN. The PIN itself is the
// whole credential: it maps straight to a role, nothing more.
const HeaderAccessPin = "X-Access-Pin"

const roleContextKey = "tradex.role"

// PINAuth resolves the access PIN header to a role and stores it on the
// request context. Requests without a known PIN are rejected outright.
func PINAuth(adminPIN, operatorPIN string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pin := strings.TrimSpace(c.Request().Header.Get(HeaderAccessPin))
			if pin == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderAccessPin})
			}
			var role Role
			switch pin {
			case adminPIN:
				role = RoleAdmin
			case operatorPIN:
				role = RoleOperator
			default:
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid PIN"})
			}
			c.Set(roleContextKey, role)
			return next(c)
		}
	}
}

// RequireRole gates a route to the given roles. Must run after PINAuth.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := RoleFrom(c)
			for _, r := range roles {
				if got == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "role not allowed for this operation"})
		}
	}
}

// RoleFrom reads the authenticated role off the context; empty when PINAuth
// has not run.
func RoleFrom(c echo.Context) Role {
	if r, ok := c.Get(roleContextKey).(Role); ok {
		return r
	}
	return ""
}
