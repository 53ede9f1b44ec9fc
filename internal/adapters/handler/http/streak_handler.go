package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/services"
)

type StreakHandler struct {
	svc *services.StreakService
}

func NewStreakHandler(svc *services.StreakService) *StreakHandler {
	return &StreakHandler{
		svc: svc,
	}
}

type streakResponse struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Days            int    `json:"days"`
	IsCurrentStreak bool   `json:"is_current_streak"`
	DateRange       string `json:"date_range"`
	Duration        string `json:"duration"`
}

type dimensionStreaksResponse struct {
	Dimension domain.Dimension `json:"dimension"`
	Current   *streakResponse  `json:"current,omitempty"`
	Longest   *streakResponse  `json:"longest,omitempty"`
	Streaks   []streakResponse `json:"streaks"`
}

type streaksReportResponse struct {
	Timezone   string                     `json:"timezone"`
	Today      string                     `json:"today"`
	Dimensions []dimensionStreaksResponse `json:"dimensions"`
}

func (h *StreakHandler) RegisterRoutes(router *gin.RouterGroup) {
	streaks := router.Group("/streaks")
	{
		streaks.GET("", h.Calculate)
		streaks.GET("/current", h.Current)
	}
}

// Calculate godoc
// @Summary  Compute activity streaks
// @Description Streaks are computed on demand from the stored daily records, in the user's time zone unless tz is given.
// @Tags     streaks
// @Produce  json
// @Security BearerAuth
// @Param    dimensions query string false "Comma separated subset of exercise,move,stand"
// @Param    tz         query string false "IANA time zone override"
// @Success  200 {object} streaksReportResponse
// @Failure  400 {object} errorResponse
// @Router   /streaks [get]
func (h *StreakHandler) Calculate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts, err := domain.ParseStreaksOptions(c.Query("dimensions"))
	if err != nil {
		handleError(c, err)
		return
	}

	report, err := h.svc.Calculate(c.Request.Context(), services.CalculateInput{
		UserID:   userID,
		Options:  opts,
		Timezone: c.Query("tz"),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

// Current godoc
// @Summary  Precomputed streak snapshots
// @Description Served from the snapshots kept up to date by the background worker.
// @Tags     streaks
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.StreakSnapshot
// @Router   /streaks/current [get]
func (h *StreakHandler) Current(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	snaps, err := h.svc.Current(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	if snaps == nil {
		snaps = []*domain.StreakSnapshot{}
	}

	c.JSON(http.StatusOK, snaps)
}

func toReportResponse(report *services.StreakReport) streaksReportResponse {
	cal := report.Calendar
	resp := streaksReportResponse{
		Timezone:   cal.Location().String(),
		Today:      report.Today.In(cal.Location()).Format(domain.DayLayout),
		Dimensions: make([]dimensionStreaksResponse, 0, len(report.Dimensions)),
	}

	for _, dim := range report.Dimensions {
		list := report.Streaks.For(dim)
		out := dimensionStreaksResponse{
			Dimension: dim,
			Streaks:   make([]streakResponse, 0, len(list)),
		}
		for _, s := range list {
			out.Streaks = append(out.Streaks, toStreakResponse(s, cal))
		}
		if current, ok := report.Streaks.Current(dim); ok {
			r := toStreakResponse(current, cal)
			out.Current = &r
		}
		if longest, ok := report.Streaks.Longest(dim, cal); ok {
			r := toStreakResponse(longest, cal)
			out.Longest = &r
		}
		resp.Dimensions = append(resp.Dimensions, out)
	}

	return resp
}

func toStreakResponse(s domain.ActivityStreak, cal domain.Calendar) streakResponse {
	return streakResponse{
		StartDate:       s.StartDate.In(cal.Location()).Format(domain.DayLayout),
		EndDate:         s.EndDate.In(cal.Location()).Format(domain.DayLayout),
		Days:            s.Days(cal),
		IsCurrentStreak: s.IsCurrentStreak,
		DateRange:       domain.FormatDateRange(s, cal),
		Duration:        domain.FormatDuration(s, cal),
	}
}
