package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in the standard success envelope.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error text and optional per-field details.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	fail(c, http.StatusBadRequest, 1, err.Error(), data)
}

// InternalError sends 500. The error itself is not exposed to the caller.
func InternalError(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, InternalServerErrorCode, DefaultErrorMessage, nil)
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	fail(c, http.StatusUnauthorized, http.StatusUnauthorized, "Unauthorized", nil)
}

// Forbidden sends 403.
func Forbidden(c *gin.Context) {
	fail(c, http.StatusForbidden, http.StatusForbidden, "Forbidden", nil)
}

func fail(c *gin.Context, status, code int, message string, data any) {
	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   message,
		Data:      data,
	})
}
