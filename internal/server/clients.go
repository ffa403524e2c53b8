package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type createClientRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name" binding:"required"`
	SecondLastName string `json:"second_last_name"`
	RFC            string `json:"rfc"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

func (s *Server) createClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cl, err := s.clients.Create(c.Request.Context(), repository.CreateClientParams{
		AgentID:        agentID(c),
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		RFC:            req.RFC,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (s *Server) listClients(c *gin.Context) {
	// Optional RFC filter backs the wizard's match preview.
	if rfc := c.Query("rfc"); rfc != "" {
		cl, err := s.clients.FindByRFC(c.Request.Context(), agentID(c), rfc)
		if err != nil {
			respondError(c, err)
			return
		}
		if cl == nil {
			c.JSON(http.StatusOK, gin.H{"clients": []any{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": []any{cl}})
		return
	}

	list, err := s.clients.ListForAgent(c.Request.Context(), agentID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": list})
}
