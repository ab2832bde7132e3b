package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/app/models/dto"
	"github.com/sauravjha/registrar/internal/app/services"
	"github.com/sauravjha/registrar/internal/middleware"
)

// CourseTypeController handles course type endpoints.
type CourseTypeController struct {
	courseTypeService *services.CourseTypeService
}

// NewCourseTypeController creates a new CourseTypeController
func NewCourseTypeController(courseTypeService *services.CourseTypeService) *CourseTypeController {
	return &CourseTypeController{courseTypeService: courseTypeService}
}

// ListCourseTypes retrieves all course types
// @Summary List course types
// @Description Retrieves all course types
// @Tags course-types
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseType}
// @Router /course-types [get]
func (c *CourseTypeController) ListCourseTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.courseTypeService.List(),
		Timestamp: time.Now(),
	})
}

// GetCourseType retrieves a course type by ID
// @Summary Get course type
// @Description Retrieves a specific course type by its ID
// @Tags course-types
// @Produce json
// @Param id path string true "Course type ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseType}
// @Failure 404 {object} dto.ErrorResponse "Course type not found"
// @Router /course-types/{id} [get]
func (c *CourseTypeController) GetCourseType(ctx *gin.Context) {
	courseType, err := c.courseTypeService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courseType,
		Timestamp: time.Now(),
	})
}

// CreateCourseType creates a course type
// @Summary Create course type
// @Description Creates a new course type with a unique name
// @Tags course-types
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseTypeRequest true "Course type name"
// @Success 201 {object} dto.APIResponse{data=models.CourseType}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /course-types [post]
func (c *CourseTypeController) CreateCourseType(ctx *gin.Context) {
	var req dto.CreateCourseTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	courseType, err := c.courseTypeService.Create(req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      courseType,
		Timestamp: time.Now(),
	})
}

// UpdateCourseType renames a course type
// @Summary Update course type
// @Description Renames a course type; dependent offering display names are recomputed
// @Tags course-types
// @Accept json
// @Produce json
// @Param id path string true "Course type ID"
// @Param request body dto.CreateCourseTypeRequest true "New name"
// @Success 200 {object} dto.APIResponse{data=models.CourseType}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Course type not found"
// @Router /course-types/{id} [put]
func (c *CourseTypeController) UpdateCourseType(ctx *gin.Context) {
	var req dto.CreateCourseTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	courseType, err := c.courseTypeService.Update(ctx.Param("id"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courseType,
		Timestamp: time.Now(),
	})
}

// DeleteCourseType deletes a course type
// @Summary Delete course type
// @Description Deletes a course type and cascades to its offerings and their registrations
// @Tags course-types
// @Produce json
// @Param id path string true "Course type ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Course type not found"
// @Router /course-types/{id} [delete]
func (c *CourseTypeController) DeleteCourseType(ctx *gin.Context) {
	if err := c.courseTypeService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course type deleted successfully"})
}
