package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/tool-assessment-service/internal/services"
	"github.com/SAP-F-2025/tool-assessment-service/internal/utils"
)

// ErrorResponse is the body of every non-publish error
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the logger shared by all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs through the request-scoped logger
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

// LogError logs err with the request context
func (h *BaseHandler) LogError(c *gin.Context, msg string, err error, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append(args, "error", err)...)
}

// handleServiceError maps service errors to HTTP responses. Internal errors are
// logged and never echoed to the client.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Assessment tool not found"})
	default:
		h.LogError(c, "Request failed", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
