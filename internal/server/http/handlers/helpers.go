package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
	"github.com/polkiloo/orderlunch/internal/server/http/dto"
	"github.com/polkiloo/orderlunch/internal/server/http/middleware"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		RequestID: middleware.CurrentRequestID(c),
		Code:      code,
		Message:   message,
	})
}

// abortInvalidBody answers 400 for payloads that failed to bind or validate.
func abortInvalidBody(c *gin.Context, err error) {
	resp := dto.ErrorResponse{
		RequestID: middleware.CurrentRequestID(c),
		Code:      "invalid_request",
		Message:   "request body is invalid",
		Fields:    dto.FieldErrors(err),
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// abortDomainError maps use case errors onto HTTP statuses.
func abortDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domainErrors.ErrInvalidArgument):
		abortWithError(c, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		abortWithError(c, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "not_found", err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

func abortNotFound(c *gin.Context, what string) {
	abortWithError(c, http.StatusNotFound, "not_found", what+" not found")
}

// pathID parses a positive integer route parameter.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "invalid_id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
