package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// quickWaterAmounts are the one-tap amounts offered by the chat keyboard.
var quickWaterAmounts = map[int]bool{250: true, 500: true}

type ActivityHandler struct {
	activityService service.IActivityService
}

func NewActivityHandler(activityService service.IActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RegisterRoutes mounts the log endpoints. limit applies to appends only.
func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup, auth, limit gin.HandlerFunc) {
	logs := router.Group("")
	logs.Use(auth)
	{
		logs.POST("/water", limit, h.LogWater)
		logs.POST("/water/quick/:amount", limit, h.QuickWater)
		logs.GET("/food/search", h.SearchFood)
		logs.POST("/food", limit, h.LogFood)
		logs.POST("/workouts", limit, h.LogWorkout)
	}
}

func (h *ActivityHandler) LogWater(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.LogWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	h.logWater(c, userID, req.Amount)
}

func (h *ActivityHandler) QuickWater(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	amount, err := strconv.Atoi(c.Param("amount"))
	if err != nil || !quickWaterAmounts[amount] {
		_ = c.Error(fmt.Errorf("%w: quick amount must be 250 or 500", types.ErrInvalidInput))
		return
	}
	h.logWater(c, userID, float64(amount))
}

func (h *ActivityHandler) logWater(c *gin.Context, userID int64, amount float64) {
	resp, err := h.activityService.LogWater(c.Request.Context(), userID, amount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SearchFood returns catalog hits together with the session id used to pick
// one of them in LogFood.
func (h *ActivityHandler) SearchFood(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	session, err := h.activityService.SearchFood(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *ActivityHandler) LogFood(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.LogFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.activityService.LogFood(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ActivityHandler) LogWorkout(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.activityService.LogWorkout(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
