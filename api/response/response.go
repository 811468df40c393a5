// Package response maps use case outcomes to HTTP. Status codes live
// here only; the application and domain layers never see them. Handled
// failures surface their message to the client, unexpected failures
// surface a generic message, the real cause was already logged by the
// execution wrapper.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gfsouzaTI/SnackTech/pkg/logger"
	"github.com/gfsouzaTI/SnackTech/pkg/result"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Response is the uniform response envelope.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Code      int         `json:"code"`
	RequestID string      `json:"request_id,omitempty"`
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// HandleResult renders a use case Result. Success uses successStatus
// (200 or 201), handled failures become 400 with the failure message,
// unexpected failures become 500 with a generic message.
func HandleResult[T any](c *gin.Context, res result.Result[T], successStatus int) {
	requestID := getRequestID(c)

	switch {
	case res.IsSuccess():
		c.JSON(successStatus, &Response{
			Success:   true,
			Data:      res.Value(),
			Code:      successStatus,
			RequestID: requestID,
		})
	case res.IsHandledFailure():
		c.JSON(http.StatusBadRequest, &Response{
			Success:   false,
			Message:   res.Message(),
			Code:      http.StatusBadRequest,
			RequestID: requestID,
		})
	default:
		c.JSON(http.StatusInternalServerError, &Response{
			Success:   false,
			Message:   "ocorreu um erro inesperado",
			Code:      http.StatusInternalServerError,
			RequestID: requestID,
		})
	}
}

// HandleBindingError reports a malformed request body or parameter.
func HandleBindingError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	logger.Warn("invalid request parameters",
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err))

	c.JSON(http.StatusBadRequest, &Response{
		Success:   false,
		Message:   "parâmetros da requisição inválidos",
		Code:      http.StatusBadRequest,
		RequestID: requestID,
	})
}
