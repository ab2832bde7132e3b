package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/app/models/dto"
	"github.com/sauravjha/registrar/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Validation failures
// carry their per-rule messages; everything unrecognized becomes a 500.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		c.JSON(400, dto.APIResponse{
			Error: detail.WithDetails(validationErr.Messages),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrCourseTypeNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrOfferingNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrRegistrationNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case errors.Is(err, apperrors.ErrOfferingPairExists),
		errors.Is(err, apperrors.ErrDuplicateRegistration),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrOfferingAtCapacity),
		errors.Is(err, apperrors.ErrRegistrationCancelled),
		errors.Is(err, apperrors.ErrNoPendingAction),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidCapacity),
		errors.Is(err, apperrors.ErrUnknownView),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
