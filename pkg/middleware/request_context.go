package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/sales-copilot/pkg/reqcontext"
)

// RequestContext copies the request ID and route into the request's
// context.Context so use cases can log with the same correlation fields.
// Register it after middleware.RequestID.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			ctx := reqcontext.Begin(c.Request().Context(), reqID, c.Request().Method+" "+c.Path())
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
