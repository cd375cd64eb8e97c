package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"visitation-backend/internal/model"
)

type criminalRequest struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age"`
	Crime    string `json:"crime"`
	Threat   string `json:"threat"`
	LastSeen string `json:"lastSeen"`
	Status   string `json:"status"`
	Record   string `json:"record"`
	// Photo is a URL into the external object store; uploading the image
	// itself is not this service's job.
	Photo string `json:"photo"`
}

// GetCriminals handles GET /api/criminals.
func (h *Handler) GetCriminals(c *gin.Context) {
	criminals, err := h.store.ListCriminals(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve criminal records"})
		return
	}
	c.JSON(http.StatusOK, criminals)
}

// CreateCriminal handles POST /api/criminals.
func (h *Handler) CreateCriminal(c *gin.Context) {
	var req criminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criminal := model.Criminal{
		Name:     req.Name,
		Age:      req.Age,
		Crime:    req.Crime,
		Threat:   req.Threat,
		LastSeen: req.LastSeen,
		Status:   req.Status,
		Record:   req.Record,
		Photo:    req.Photo,
	}
	if err := h.store.CreateCriminal(c.Request.Context(), &criminal); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create criminal record"})
		return
	}
	c.JSON(http.StatusCreated, criminal)
}

// DeleteCriminal handles DELETE /api/criminals/:id.
func (h *Handler) DeleteCriminal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid criminal ID"})
		return
	}

	err = h.store.DeleteCriminal(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Criminal record not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete criminal record"})
		return
	}
	c.Status(http.StatusOK)
}
