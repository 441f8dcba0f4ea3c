package http

import (
	"socialnet/pkg/errs"
	"socialnet/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to its HTTP status. Internal errors are logged with
// their cause and reported to the client with a fixed message.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	code := errs.ErrorCode(err)
	if code == errs.EINTERNAL {
		log.WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("Request failed: %v", err)
	}
	c.JSON(errs.HTTPStatus(code), ErrorResponse{Error: errs.ErrorMessage(err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(400, ErrorResponse{Error: message})
}
