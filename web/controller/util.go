package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/logger"
	"blog-api/web/entity"
	"blog-api/web/service"
)

// jsonSuccess wraps data in the success envelope.
func jsonSuccess(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, entity.Response{
		Meta: entity.Meta{
			Code:    http.StatusOK,
			Status:  "success",
			Message: msg,
		},
		Data: data,
	})
}

// jsonFailure maps a service error onto the envelope: validation errors
// become 422 with field detail, missing records 404, bad credentials 401.
// Anything else is logged in full and reported as a generic 500, never
// leaking internal error text to the client.
func jsonFailure(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, entity.ValidationResponse{
			Meta: entity.Meta{
				Code:    http.StatusUnprocessableEntity,
				Status:  "fail",
				Message: "Validation failed",
			},
			Errors: ve.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		jsonError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidCredentials):
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.Error(serverMsg+":", err)
		jsonError(c, http.StatusInternalServerError, serverMsg)
	}
}

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, entity.Response{
		Meta: entity.Meta{
			Code:    code,
			Status:  "error",
			Message: msg,
		},
		Data: nil,
	})
}
