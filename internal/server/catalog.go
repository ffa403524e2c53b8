package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listInsurers(c *gin.Context) {
	list, err := s.insurers.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insurers": list})
}
