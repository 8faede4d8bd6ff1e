package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
)

type ProgressHandler struct {
	progressService service.IProgressService
}

func NewProgressHandler(progressService service.IProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	progress := router.Group("")
	progress.Use(auth)
	{
		progress.GET("/progress/today", h.Today)
		progress.GET("/progress/weekly", h.Weekly)
		progress.POST("/progress/weekly/export", h.ExportWeekly)
		progress.GET("/recommendations", h.Recommendations)
	}
}

func (h *ProgressHandler) Today(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	report, err := h.progressService.Today(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ProgressHandler) Weekly(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	report, err := h.progressService.Weekly(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ProgressHandler) ExportWeekly(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	url, err := h.progressService.ExportWeekly(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *ProgressHandler) Recommendations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	advice, err := h.progressService.Recommendations(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": advice})
}
