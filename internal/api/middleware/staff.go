package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaffOnly gates administrative routes on the is_staff claim set by Auth.
func StaffOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isStaff, _ := c.Get("is_staff").(bool)
			if !isStaff {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
