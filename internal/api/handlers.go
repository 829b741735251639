package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/cannarn/Sched-Shifter/internal/calendar"
	"github.com/cannarn/Sched-Shifter/internal/render"
	"github.com/cannarn/Sched-Shifter/internal/rotation"
	"github.com/cannarn/Sched-Shifter/internal/schedule"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Service *schedule.Service
	Logger  *zap.Logger
}

// ScheduleRequest is accepted as JSON body or query string
type ScheduleRequest struct {
	Year   int    `json:"year" form:"year" binding:"required"`
	Month  int    `json:"month" form:"month" binding:"required"`
	Anchor string `json:"anchor" form:"anchor" binding:"required"`
}

type dayRequest struct {
	Date   string `form:"date" binding:"required"`
	Anchor string `form:"anchor" binding:"required"`
}

// NewRouter wires the routes
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.Logger), Recovery(h.Logger))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/schedule", h.GetSchedule)
		api.POST("/schedule", h.PostSchedule)
		api.POST("/schedule/csv", h.ScheduleCSV)
		api.GET("/day", h.GetDay)
	}

	return r
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSchedule handles GET /api/schedule?year=&month=&anchor=
func (h *Handler) GetSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	h.respondSchedule(c, req)
}

// PostSchedule handles POST /api/schedule with a JSON body
func (h *Handler) PostSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	h.respondSchedule(c, req)
}

// ScheduleCSV handles POST /api/schedule/csv and returns the month as a CSV download
func (h *Handler) ScheduleCSV(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	info, ok := h.compute(c, req)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.CSV(&buf, info); err != nil {
		JSONError(c, h.Logger, http.StatusInternalServerError, "Could not render CSV", err.Error())
		return
	}

	filename := fmt.Sprintf("Work_Schedule_%s_%d.csv", info.Month, info.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetDay handles GET /api/day?date=&anchor=
func (h *Handler) GetDay(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	anchor, err := calendar.ParseDate(req.Anchor)
	if err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid anchor", err.Error())
		return
	}

	day, err := h.Service.DayInfo(date, anchor)
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *Handler) respondSchedule(c *gin.Context, req ScheduleRequest) {
	info, ok := h.compute(c, req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) compute(c *gin.Context, req ScheduleRequest) (*calendar.MonthInfo, bool) {
	anchor, err := calendar.ParseDate(req.Anchor)
	if err != nil {
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid anchor", err.Error())
		return nil, false
	}

	info, err := h.Service.ComputeSchedule(req.Year, req.Month, anchor)
	if err != nil {
		h.writeScheduleError(c, err)
		return nil, false
	}
	return info, true
}

func (h *Handler) writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rotation.ErrInvalidMonth),
		errors.Is(err, schedule.ErrYearOutOfRange),
		errors.Is(err, rotation.ErrAmbiguousAnchor):
		JSONError(c, h.Logger, http.StatusBadRequest, "Invalid schedule request", err.Error())
	case errors.Is(err, rotation.ErrInvalidCadence):
		JSONError(c, h.Logger, http.StatusUnprocessableEntity, "Schedule could not be resolved", err.Error())
	default:
		JSONError(c, h.Logger, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
