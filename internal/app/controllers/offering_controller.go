package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/app/models/dto"
	"github.com/sauravjha/registrar/internal/app/services"
	"github.com/sauravjha/registrar/internal/middleware"
)

// OfferingController handles course offering endpoints.
type OfferingController struct {
	offeringService *services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService *services.OfferingService) *OfferingController {
	return &OfferingController{offeringService: offeringService}
}

// ListOfferings retrieves offerings
// @Summary List offerings
// @Description Retrieves all course offerings, optionally filtered by course type
// @Tags offerings
// @Produce json
// @Param courseTypeId query string false "Filter by course type ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseOffering}
// @Router /offerings [get]
func (c *OfferingController) ListOfferings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.offeringService.List(ctx.Query("courseTypeId")),
		Timestamp: time.Now(),
	})
}

// ListAvailableOfferings retrieves offerings open for registration
// @Summary List available offerings
// @Description Retrieves offerings whose registered count is below capacity (or unlimited)
// @Tags offerings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseOffering}
// @Router /offerings/available [get]
func (c *OfferingController) ListAvailableOfferings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.offeringService.Available(),
		Timestamp: time.Now(),
	})
}

// GetOffering retrieves an offering by ID
// @Summary Get offering
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id} [get]
func (c *OfferingController) GetOffering(ctx *gin.Context) {
	offering, err := c.offeringService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// CreateOffering creates an offering
// @Summary Create offering
// @Description Pairs a course type with a course; the combination must be unique
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body dto.OfferingRequest true "Offering"
// @Success 201 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Course type or course not found"
// @Failure 409 {object} dto.ErrorResponse "Combination already exists"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	offering, err := c.offeringService.Create(req.CourseTypeID, req.CourseID, req.Capacity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// UpdateOffering updates an offering
// @Summary Update offering
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path string true "Offering ID"
// @Param request body dto.OfferingRequest true "Offering"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Combination already exists"
// @Router /offerings/{id} [put]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	offering, err := c.offeringService.Update(ctx.Param("id"), req.CourseTypeID, req.CourseID, req.Capacity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offering,
		Timestamp: time.Now(),
	})
}

// DeleteOffering deletes an offering
// @Summary Delete offering
// @Description Deletes an offering and all registrations referencing it
// @Tags offerings
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	if err := c.offeringService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course offering deleted successfully"})
}
