package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolmgt/sms-backend/internal/repository"
	"github.com/schoolmgt/sms-backend/internal/response"
	"github.com/schoolmgt/sms-backend/internal/service"
)

// writeError maps service and repository failures onto the response
// envelope. Every failure is scoped to the single request.
func writeError(c *gin.Context, err error) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		response.FailValidation(c, ve.Violations)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrDuplicateRollNumber),
		errors.Is(err, repository.ErrDuplicateUser),
		errors.Is(err, repository.ErrDuplicateStudentLink):
		response.FailMessage(c, http.StatusConflict, response.ErrConflict, err.Error())
	case errors.Is(err, repository.ErrBadReference):
		response.FailMessage(c, http.StatusBadRequest, response.ErrBadReference, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
