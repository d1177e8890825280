package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	// Availability endpoints
	ValidateAvailabilityHandler   gin.HandlerFunc
	PreviewAvailabilityHandler    gin.HandlerFunc
	SaveAvailabilityHandler       gin.HandlerFunc
	GetAvailabilityGroupHandler   gin.HandlerFunc
	ListAvailabilityGroupsHandler gin.HandlerFunc
}

// NewHandlerBundle fills the bundle from an AvailabilityHandler.
func NewHandlerBundle(ah *AvailabilityHandler) *HandlerBundle {
	return &HandlerBundle{
		ValidateAvailabilityHandler:   ah.ValidateHandler,
		PreviewAvailabilityHandler:    ah.PreviewHandler,
		SaveAvailabilityHandler:       ah.SaveHandler,
		GetAvailabilityGroupHandler:   ah.GetGroupHandler,
		ListAvailabilityGroupsHandler: ah.ListGroupsHandler,
	}
}
