package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every failed request. The flat
// success flag lets clients branch without inspecting status codes.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// HandleError writes err as the JSON error envelope. Anything that is
// not already an *AppError is masked as an internal fault; the wrapped
// cause never reaches the wire (see AppError.MarshalJSON).
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
