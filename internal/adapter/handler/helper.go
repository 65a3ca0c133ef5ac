package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/errors"
	"github.com/johnquangdev/sales-copilot/internal/adapter/dto/common"
	"github.com/johnquangdev/sales-copilot/pkg/reqcontext"
)

// getRequestID reads the X-Request-ID stamped by the RequestID middleware,
// falling back to the inbound header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as a 200 JSON response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger.
// Errors that are not an AppError become 500 responses.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		md := reqcontext.GetMetadata(c.Request().Context())
		if reqID == "" {
			reqID = md.RequestID
		}
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("operation", md.Operation),
			zap.Stringer("app_code", appErr.Code),
			zap.Any("details", appErr.Details),
			zap.Error(err),
		}
		if !md.StartTime.IsZero() {
			fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	detail := appErr.Message
	if appErr.Raw != nil {
		detail = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    int(appErr.Code),
		Message: appErr.Message,
		Detail:  detail,
	})
}
