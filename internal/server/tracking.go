package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type createTrackingRequest struct {
	OwnerKind string    `json:"owner_kind" binding:"required"`
	OwnerID   uuid.UUID `json:"owner_id" binding:"required"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body" binding:"required"`
}

func (s *Server) createTracking(c *gin.Context) {
	var req createTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.tracking.AddEntry(c.Request.Context(), repository.CreateTrackingParams{
		AgentID:   agentID(c),
		OwnerKind: constants.TrackingOwnerKind(req.OwnerKind),
		OwnerID:   req.OwnerID,
		Kind:      req.Kind,
		Body:      req.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) listTracking(c *gin.Context) {
	ownerKind := c.Query("owner_kind")
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id inválido"})
		return
	}
	list, err := s.tracking.List(c.Request.Context(), agentID(c), constants.TrackingOwnerKind(ownerKind), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": list})
}
