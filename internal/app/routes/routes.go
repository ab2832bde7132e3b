package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sauravjha/registrar/internal/app/controllers"
	"github.com/sauravjha/registrar/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseTypeController *controllers.CourseTypeController,
	courseController *controllers.CourseController,
	offeringController *controllers.OfferingController,
	studentController *controllers.StudentController,
	registrationController *controllers.RegistrationController,
	uiController *controllers.UIController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course type routes
	courseTypes := v1.Group("/course-types")
	{
		courseTypes.GET("", courseTypeController.ListCourseTypes)
		courseTypes.GET("/:id", courseTypeController.GetCourseType)
		courseTypes.POST("", courseTypeController.CreateCourseType)
		courseTypes.PUT("/:id", courseTypeController.UpdateCourseType)
		courseTypes.DELETE("/:id", courseTypeController.DeleteCourseType)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Offering routes - a course paired with a course type, optionally capped
	offerings := v1.Group("/offerings")
	{
		offerings.GET("", offeringController.ListOfferings)
		offerings.GET("/available", offeringController.ListAvailableOfferings) // Offerings with remaining seats
		offerings.GET("/:id", offeringController.GetOffering)
		offerings.POST("", offeringController.CreateOffering)
		offerings.PUT("/:id", offeringController.UpdateOffering)
		offerings.DELETE("/:id", offeringController.DeleteOffering)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Registration routes
	registrations := v1.Group("/registrations")
	{
		registrations.GET("", registrationController.ListRegistrations)
		registrations.GET("/:id", registrationController.GetRegistration)
		registrations.POST("", registrationController.Register)
		registrations.POST("/:id/cancel", registrationController.CancelRegistration) // Cancelled, not removed
		registrations.DELETE("/:id", registrationController.DeleteRegistration)
	}

	// Full application state snapshot
	v1.GET("/state", uiController.GetState)

	// UI state routes - view, selections, toast and confirm dialog
	ui := v1.Group("/ui")
	{
		ui.GET("", uiController.GetUI)
		ui.PUT("/view", uiController.SetView)
		ui.PUT("/selected-course-type", uiController.SelectCourseType)
		ui.PUT("/selected-offering", uiController.SelectOffering)
		ui.POST("/toast", uiController.ShowToast)
		ui.DELETE("/toast", uiController.HideToast)
		ui.POST("/confirm-dialog", uiController.ShowConfirmDialog)
		ui.POST("/confirm-dialog/confirm", uiController.Confirm)
		ui.DELETE("/confirm-dialog", uiController.HideConfirmDialog)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger and metrics routes are set up in bootstrap.go already
}
