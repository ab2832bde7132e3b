package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/app/models/dto"
	"github.com/sauravjha/registrar/internal/app/services"
	"github.com/sauravjha/registrar/internal/middleware"
)

// RegistrationController handles registration endpoints.
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// ListRegistrations retrieves registrations
// @Summary List registrations
// @Description Retrieves all registrations, optionally filtered by offering
// @Tags registrations
// @Produce json
// @Param offeringId query string false "Filter by offering ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration}
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.registrationService.List(ctx.Query("offeringId")),
		Timestamp: time.Now(),
	})
}

// GetRegistration retrieves a registration by ID
// @Summary Get registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistration(ctx *gin.Context) {
	registration, err := c.registrationService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      registration,
		Timestamp: time.Now(),
	})
}

// Register creates a registration
// @Summary Register a student
// @Description Registers an existing student (studentId) or creates one inline from the name/contact fields, then registers them for the offering
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration"
// @Success 201 {object} dto.APIResponse{data=models.Registration}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Offering or student not found"
// @Failure 409 {object} dto.ErrorResponse "Offering at capacity or duplicate registration"
// @Router /registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	registration, err := c.registrationService.Register(services.RegisterInput{
		OfferingID: req.OfferingID,
		StudentID:  req.StudentID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      registration,
		Timestamp: time.Now(),
	})
}

// CancelRegistration cancels a registration
// @Summary Cancel registration
// @Description Transitions a registration to cancelled; the row is kept and stops counting toward capacity
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 409 {object} dto.ErrorResponse "Already cancelled"
// @Router /registrations/{id}/cancel [post]
func (c *RegistrationController) CancelRegistration(ctx *gin.Context) {
	registration, err := c.registrationService.Cancel(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      registration,
		Timestamp: time.Now(),
	})
}

// DeleteRegistration removes a registration outright
// @Summary Delete registration
// @Description Removes the registration record, unlike cancellation which keeps it
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	if err := c.registrationService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Registration deleted successfully"})
}
