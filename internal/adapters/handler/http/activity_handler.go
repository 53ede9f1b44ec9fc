package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/services"
)

type ActivityHandler struct {
	svc *services.ActivityService
}

func NewActivityHandler(svc *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

type activityRecordRequest struct {
	Year                   int      `json:"year" binding:"required"`
	Month                  int      `json:"month" binding:"required"`
	Day                    int      `json:"day" binding:"required"`
	ActiveEnergyBurned     float64  `json:"active_energy_burned"`
	ActiveEnergyBurnedGoal *float64 `json:"active_energy_burned_goal"`
	ExerciseMinutes        float64  `json:"exercise_minutes"`
	ExerciseMinutesGoal    *float64 `json:"exercise_minutes_goal"`
	StandHours             float64  `json:"stand_hours"`
	StandHoursGoal         *float64 `json:"stand_hours_goal"`
}

type syncActivityRequest struct {
	Records []activityRecordRequest `json:"records" binding:"required,dive"`
}

type syncActivityResponse struct {
	Synced  int                      `json:"synced"`
	Records []*domain.ActivityRecord `json:"records"`
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	activity := router.Group("/activity")
	{
		activity.PUT("", h.Sync)
		activity.GET("", h.List)
		activity.GET("/:id", h.GetByID)
		activity.DELETE("/:id", h.Delete)
	}
}

// Sync godoc
// @Summary  Upload daily activity summaries
// @Description Records are keyed by calendar day; uploading a day again replaces it.
// @Tags     activity
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body syncActivityRequest true "Daily summaries"
// @Success  200 {object} syncActivityResponse
// @Failure  400 {object} errorResponse
// @Failure  413 {object} errorResponse
// @Router   /activity [put]
func (h *ActivityHandler) Sync(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req syncActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	inputs := make([]services.RecordInput, 0, len(req.Records))
	for _, r := range req.Records {
		inputs = append(inputs, services.RecordInput{
			Day:                    domain.DateComponents{Year: r.Year, Month: r.Month, Day: r.Day},
			ActiveEnergyBurned:     r.ActiveEnergyBurned,
			ActiveEnergyBurnedGoal: r.ActiveEnergyBurnedGoal,
			ExerciseMinutes:        r.ExerciseMinutes,
			ExerciseMinutesGoal:    r.ExerciseMinutesGoal,
			StandHours:             r.StandHours,
			StandHoursGoal:         r.StandHoursGoal,
		})
	}

	records, err := h.svc.Sync(c.Request.Context(), userID, inputs)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, syncActivityResponse{Synced: len(records), Records: records})
}

// List godoc
// @Summary  List activity records
// @Tags     activity
// @Produce  json
// @Security BearerAuth
// @Param    from query string false "First day, YYYY-MM-DD"
// @Param    to   query string false "Last day, YYYY-MM-DD"
// @Success  200 {array} domain.ActivityRecord
// @Failure  400 {object} errorResponse
// @Router   /activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var from, to domain.DateComponents
	for param, dst := range map[string]*domain.DateComponents{"from": &from, "to": &to} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		parsed, err := domain.ParseDateComponents(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid " + param + " date (use YYYY-MM-DD)"})
			return
		}
		*dst = parsed
	}

	list, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	if list == nil {
		list = []*domain.ActivityRecord{}
	}

	c.JSON(http.StatusOK, list)
}

// GetByID godoc
// @Summary  Get one activity record
// @Tags     activity
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Record ID"
// @Success  200 {object} domain.ActivityRecord
// @Failure  403 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /activity/{id} [get]
func (h *ActivityHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary  Delete an activity record
// @Tags     activity
// @Security BearerAuth
// @Param    id path string true "Record ID"
// @Success  204
// @Failure  403 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /activity/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
