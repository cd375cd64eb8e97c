package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"visitation-backend/internal/dates"
	"visitation-backend/internal/lifecycle"
	"visitation-backend/internal/model"
)

type visitorRequest struct {
	VisitorName    string `json:"visitorName" binding:"required"`
	VisitorContact string `json:"visitorContact"`
	InmateName     string `json:"inmateName" binding:"required"`
	Purpose        string `json:"purpose"`
	ScheduledDate  string `json:"scheduledDate" binding:"required"`
	ScheduledTime  string `json:"scheduledTime"`
	Remarks        string `json:"remarks"`
}

func (r visitorRequest) toMeeting() model.Meeting {
	return model.Meeting{
		VisitorName:    r.VisitorName,
		VisitorContact: r.VisitorContact,
		InmateName:     r.InmateName,
		Purpose:        r.Purpose,
		ScheduledDate:  r.ScheduledDate,
		ScheduledTime:  r.ScheduledTime,
		Remarks:        r.Remarks,
	}
}

// GetVisitors handles GET /api/visitors.
func (h *Handler) GetVisitors(c *gin.Context) {
	meetings, err := h.engine.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve visitors"})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetTodayVisitors handles GET /api/visitors/today.
func (h *Handler) GetTodayVisitors(c *gin.Context) {
	meetings, err := h.engine.ListByDate(c.Request.Context(), h.today())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve visitors"})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetUpcomingVisitors handles GET /api/visitors/upcoming. Today's meetings
// are not upcoming.
func (h *Handler) GetUpcomingVisitors(c *gin.Context) {
	meetings, err := h.engine.ListUpcoming(c.Request.Context(), h.today())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve visitors"})
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// ScheduleVisitor handles POST /api/visitors.
func (h *Handler) ScheduleVisitor(c *gin.Context) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.ScheduledDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.engine.Schedule(c.Request.Context(), req.toMeeting())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule visitor"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateVisitor handles PUT /api/visitors/:id (reschedule).
func (h *Handler) UpdateVisitor(c *gin.Context) {
	id, ok := visitorID(c)
	if !ok {
		return
	}

	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.ScheduledDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.engine.Reschedule(c.Request.Context(), id, req.toMeeting())
	if errors.Is(err, lifecycle.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update visitor"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVisitor handles DELETE /api/visitors/:id.
func (h *Handler) DeleteVisitor(c *gin.Context) {
	id, ok := visitorID(c)
	if !ok {
		return
	}

	if err := h.engine.Delete(c.Request.Context(), id); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visitor"})
		return
	}
	c.Status(http.StatusOK)
}

// UpdateVisitorStatus handles PUT /api/visitors/:id/status?status=X.
func (h *Handler) UpdateVisitorStatus(c *gin.Context) {
	id, ok := visitorID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter is required"})
		return
	}

	h.setStatus(c, id, status)
}

// CompleteVisitor handles PUT /api/visitors/:id/complete, a shorthand for
// the terminal status transition.
func (h *Handler) CompleteVisitor(c *gin.Context) {
	id, ok := visitorID(c)
	if !ok {
		return
	}
	h.setStatus(c, id, "Completed")
}

// GetCompletedVisitors handles GET /api/visitors/completed.
func (h *Handler) GetCompletedVisitors(c *gin.Context) {
	archived, err := h.engine.ListArchived(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve completed visitors"})
		return
	}
	c.JSON(http.StatusOK, archived)
}

func (h *Handler) setStatus(c *gin.Context, id int64, status string) {
	err := h.engine.SetStatus(c.Request.Context(), id, status)
	if errors.Is(err, lifecycle.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.Status(http.StatusOK)
}

func visitorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visitor ID"})
		return 0, false
	}
	return id, true
}
