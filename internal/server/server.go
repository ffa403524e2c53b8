// Package server exposes the CRM over HTTP: document import endpoints,
// clients, policies, the insurer catalog, tracking and commission exports.
// Every route is tenant-scoped by the JWT agent id.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insurtech-mx/polizas-crm/internal/async"
	"github.com/insurtech-mx/polizas-crm/internal/commission"
	"github.com/insurtech-mx/polizas-crm/internal/common"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
	"github.com/insurtech-mx/polizas-crm/internal/tracking"
)

// Server bundles the handlers' dependencies.
type Server struct {
	cfg         common.ServerConfig
	storageRoot string

	imports     repository.ImportRepository
	clients     repository.ClientRepository
	policies    repository.PolicyRepository
	insurers    repository.InsurerRepository
	tracking    *tracking.Service
	commissions *commission.Service
	queue       async.Queue

	logger *slog.Logger
}

type Deps struct {
	Imports     repository.ImportRepository
	Clients     repository.ClientRepository
	Policies    repository.PolicyRepository
	Insurers    repository.InsurerRepository
	Tracking    *tracking.Service
	Commissions *commission.Service
	Queue       async.Queue
}

func New(cfg common.ServerConfig, storageRoot string, d Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:         cfg,
		storageRoot: storageRoot,
		imports:     d.Imports,
		clients:     d.Clients,
		policies:    d.Policies,
		insurers:    d.Insurers,
		tracking:    d.Tracking,
		commissions: d.Commissions,
		queue:       d.Queue,
		logger:      logger,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), HTTPMetrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", JWTAuth(s.cfg.JWTSecret))
	{
		api.POST("/imports", s.uploadImport)
		api.GET("/imports", s.listImports)
		api.GET("/imports/:id", s.getImport)
		api.POST("/imports/:id/process", s.processImport)

		api.GET("/clients", s.listClients)
		api.POST("/clients", s.createClient)

		api.GET("/policies", s.listPolicies)
		api.POST("/policies", s.createPolicy)

		api.GET("/catalog/insurers", s.listInsurers)

		api.GET("/tracking", s.listTracking)
		api.POST("/tracking", s.createTracking)

		api.GET("/commissions/:id/export", s.exportCommissions)
		api.POST("/commissions/:id/reconcile", s.reconcileCommissions)
	}
	return r
}
