package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/async"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

// localDisk is the storage_disk value for files kept on the daemon's
// filesystem. Other disks (object storage) would resolve differently.
const localDisk = "local"

// uploadImport stores the document under the storage root, registers the
// import row as uploaded and enqueues it for processing.
func (s *Server) uploadImport(c *gin.Context) {
	agent := agentID(c)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "archivo requerido"})
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if _, ok := constants.AllowedMIMETypes[strings.ToLower(mimeType)]; !ok {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": fmt.Sprintf("tipo de archivo no soportado: %q", mimeType)})
		return
	}

	var clientID *uuid.UUID
	if raw := c.PostForm("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "client_id inválido"})
			return
		}
		ok, err := s.clients.Exists(c.Request.Context(), agent, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente no encontrado"})
			return
		}
		clientID = &id
	}

	// Relative path layout: <agent>/<uuid>.<ext>, under the local disk.
	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = "bin"
	}
	relPath := filepath.Join(agent.String(), uuid.New().String()+"."+ext)
	absPath := filepath.Join(s.storageRoot, localDisk, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		s.logger.Error("storage mkdir failed", "path", absPath, "err", err)
		respondError(c, common.ErrInternal)
		return
	}
	if err := c.SaveUploadedFile(fh, absPath); err != nil {
		s.logger.Error("upload save failed", "path", absPath, "err", err)
		respondError(c, common.ErrInternal)
		return
	}

	imp, err := s.imports.Create(c.Request.Context(), repository.CreateImportParams{
		AgentID:          agent,
		ClientID:         clientID,
		StorageDisk:      localDisk,
		FilePath:         relPath,
		OriginalFilename: fh.Filename,
		MIMEType:         mimeType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	_ = s.queue.Enqueue(c.Request.Context(), async.Job{
		ImportID:    imp.ID,
		SubmittedAt: time.Now(),
		TraceID:     c.GetString("request_id"),
	})

	c.JSON(http.StatusCreated, imp)
}

func (s *Server) listImports(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		valid := false
		for _, st := range constants.ImportStatuses {
			if st == status {
				valid = true
				break
			}
		}
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("status inválido: %q", status)})
			return
		}
	}
	list, err := s.imports.ListForAgent(c.Request.Context(), agentID(c), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": list})
}

func (s *Server) getImport(c *gin.Context) {
	imp, ok := s.loadOwnedImport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, imp)
}

// processImport is the manual trigger. Cross-tenant access is a 403, not a
// 404: the id may be valid, it just is not yours. Accepted work returns 202
// immediately; the pipeline runs on the queue.
func (s *Server) processImport(c *gin.Context) {
	imp, ok := s.loadOwnedImport(c)
	if !ok {
		return
	}

	force := c.Query("force") == "true" || c.PostForm("force") == "true"
	_ = s.queue.Enqueue(c.Request.Context(), async.Job{
		ImportID:    imp.ID,
		Force:       force,
		SubmittedAt: time.Now(),
		TraceID:     c.GetString("request_id"),
	})

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "procesamiento iniciado",
		"import_id": imp.ID,
		"force":     force,
	})
}

// loadOwnedImport parses the :id param, loads the row and enforces tenant
// ownership. Writes the response itself when the import cannot be used.
func (s *Server) loadOwnedImport(c *gin.Context) (*ent.PolicyAIImport, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return nil, false
	}
	imp, err := s.imports.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if imp.AgentID != agentID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "acceso denegado"})
		return nil, false
	}
	return imp, true
}
