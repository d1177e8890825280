package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "slotcal/database/repository/availability"
	"slotcal/models"
	"slotcal/services/availability"
	"slotcal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the availability editor.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func fieldErrors(res models.ValidationResult) []models.FieldError {
	if res.Errors == nil {
		return []models.FieldError{}
	}
	return res.Errors
}

func bindSet(c *gin.Context) (models.AvailabilitySet, bool) {
	var set models.AvailabilitySet
	if err := c.ShouldBindJSON(&set); err != nil {
		getLogger(c).Warn("Invalid availability payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return set, false
	}
	return set, true
}

// ValidateHandler returns every validation error for the submitted form state.
// Invalid availability is still a 200; the errors are the answer.
func (h *AvailabilityHandler) ValidateHandler(c *gin.Context) {
	set, ok := bindSet(c)
	if !ok {
		return
	}
	res := h.Service.Validate(set)
	c.JSON(http.StatusOK, gin.H{
		"valid":       res.Valid(),
		"errors":      res.Map(),
		"fieldErrors": fieldErrors(res),
	})
}

func (h *AvailabilityHandler) PreviewHandler(c *gin.Context) {
	set, ok := bindSet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": h.Service.Preview(set)})
}

// SaveHandler validates once more and queues the normalized submission.
func (h *AvailabilityHandler) SaveHandler(c *gin.Context) {
	logger := getLogger(c)
	set, ok := bindSet(c)
	if !ok {
		return
	}

	sub, res, err := h.Service.Save(c.Request.Context(), set)
	switch {
	case errors.Is(err, availability.ErrInvalidAvailability):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "Availability has validation errors",
			"errors":      res.Map(),
			"fieldErrors": fieldErrors(res),
		})
		return
	case err != nil:
		logger.Error("Failed to save availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":    "Availability submitted",
		"submission": sub,
	})
}

func (h *AvailabilityHandler) GetGroupHandler(c *gin.Context) {
	groupID := c.Param("groupID")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing group ID in path"})
		return
	}

	group, err := h.Service.GetGroup(c.Request.Context(), groupID)
	if errors.Is(err, availabilityRepo.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability group not found"})
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to fetch availability group", zap.String("groupId", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability group", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// ListGroupsHandler lists stored groups offering slots on ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) ListGroupsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	groups, err := h.Service.ListGroups(c.Request.Context(), date)
	if availability.CodeOf(err) != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to list availability groups", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list availability groups", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
