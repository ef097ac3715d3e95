package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ezelectronics/server/internal/core/domain"
)

// ctxCaller extracts the authenticated caller resolved by the Auth
// middleware. Its presence proves the middleware ran; handlers fast-fail
// with 401 before any service call when it is missing.
func ctxCaller(c echo.Context) (*domain.User, error) {
	caller, _ := c.Get("caller").(*domain.User)
	if caller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return caller, nil
}
