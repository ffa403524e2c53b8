package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/common"
)

// respondError maps domain errors to HTTP statuses. Anything unmapped is a
// 500 with a generic body; the real error stays in the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case ent.IsNotFound(err), errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no encontrado"})
	case errors.Is(err, common.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autorizado"})
	case errors.Is(err, common.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "acceso denegado"})
	case ent.IsConstraintError(err):
		c.JSON(http.StatusConflict, gin.H{"error": "conflicto con un registro existente"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
	}
}
