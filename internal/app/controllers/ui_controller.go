package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/app/models/dto"
	"github.com/sauravjha/registrar/internal/app/services"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/middleware"
)

// UIController exposes the transient UI state: view switching, selections,
// toasts and the confirm-dialog flow. It also serves the full read-only
// state tree.
type UIController struct {
	uiService *services.UIService
	store     *store.Store
}

// NewUIController creates a new UIController
func NewUIController(uiService *services.UIService, st *store.Store) *UIController {
	return &UIController{uiService: uiService, store: st}
}

// GetState returns the full state tree
// @Summary Read the state tree
// @Description Returns the five data collections plus UI state, read-only
// @Tags ui
// @Produce json
// @Success 200 {object} dto.APIResponse{data=store.State}
// @Router /state [get]
func (c *UIController) GetState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.store.State(),
		Timestamp: time.Now(),
	})
}

// GetUI returns the UI state
// @Summary Read UI state
// @Tags ui
// @Produce json
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui [get]
func (c *UIController) GetUI(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.uiService.UI(),
		Timestamp: time.Now(),
	})
}

// SetView switches the current view
// @Summary Switch view
// @Tags ui
// @Accept json
// @Produce json
// @Param request body dto.SetViewRequest true "View name"
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Failure 400 {object} dto.ErrorResponse "Unknown view"
// @Router /ui/view [put]
func (c *UIController) SetView(ctx *gin.Context) {
	var req dto.SetViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.uiService.SetView(store.View(req.View)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondUI(ctx)
}

// SelectCourseType sets or clears the course type filter
// @Summary Select course type
// @Tags ui
// @Accept json
// @Produce json
// @Param request body dto.SelectionRequest true "Course type ID, empty to clear"
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui/selected-course-type [put]
func (c *UIController) SelectCourseType(ctx *gin.Context) {
	var req dto.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	c.uiService.SelectCourseType(req.ID)
	c.respondUI(ctx)
}

// SelectOffering sets or clears the offering filter
// @Summary Select offering
// @Tags ui
// @Accept json
// @Produce json
// @Param request body dto.SelectionRequest true "Offering ID, empty to clear"
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui/selected-offering [put]
func (c *UIController) SelectOffering(ctx *gin.Context) {
	var req dto.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	c.uiService.SelectOffering(req.ID)
	c.respondUI(ctx)
}

// ShowToast displays a toast
// @Summary Show toast
// @Description Displays a toast that auto-dismisses after the configured delay
// @Tags ui
// @Accept json
// @Produce json
// @Param request body dto.ToastRequest true "Toast"
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui/toast [post]
func (c *UIController) ShowToast(ctx *gin.Context) {
	var req dto.ToastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	c.uiService.ShowToast(req.Message, store.ToastType(req.Type))
	c.respondUI(ctx)
}

// HideToast dismisses the toast
// @Summary Hide toast
// @Tags ui
// @Produce json
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui/toast [delete]
func (c *UIController) HideToast(ctx *gin.Context) {
	c.uiService.HideToast()
	c.respondUI(ctx)
}

// ShowConfirmDialog opens the confirmation prompt
// @Summary Show confirm dialog
// @Description Opens the prompt with a tagged pending action (delete/cancel kinds only)
// @Tags ui
// @Accept json
// @Produce json
// @Param request body dto.ConfirmDialogRequest true "Dialog"
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Failure 400 {object} dto.ErrorResponse "Unsupported pending action"
// @Router /ui/confirm-dialog [post]
func (c *UIController) ShowConfirmDialog(ctx *gin.Context) {
	var req dto.ConfirmDialogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	pending := store.PendingAction{Kind: store.Kind(req.Kind), ID: req.ID}
	if err := c.uiService.ShowConfirmDialog(req.Title, req.Message, pending); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondUI(ctx)
}

// Confirm runs the pending action
// @Summary Confirm pending action
// @Description Dispatches the dialog's pending action and closes the dialog
// @Tags ui
// @Produce json
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Failure 409 {object} dto.ErrorResponse "No pending confirmation"
// @Router /ui/confirm-dialog/confirm [post]
func (c *UIController) Confirm(ctx *gin.Context) {
	if err := c.uiService.Confirm(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondUI(ctx)
}

// HideConfirmDialog dismisses the prompt
// @Summary Hide confirm dialog
// @Tags ui
// @Produce json
// @Success 200 {object} dto.APIResponse{data=store.UIState}
// @Router /ui/confirm-dialog [delete]
func (c *UIController) HideConfirmDialog(ctx *gin.Context) {
	c.uiService.HideConfirmDialog()
	c.respondUI(ctx)
}

func (c *UIController) respondUI(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.uiService.UI(),
		Timestamp: time.Now(),
	})
}
