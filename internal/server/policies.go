package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type beneficiaryRequest struct {
	Name       string   `json:"name" binding:"required"`
	Percentage *float64 `json:"percentage"`
}

// createPolicyRequest is the wizard's final payload after human review.
type createPolicyRequest struct {
	ClientID         uuid.UUID            `json:"client_id" binding:"required"`
	InsuredClientID  *uuid.UUID           `json:"insured_client_id"`
	InsurerName      string               `json:"insurer_name" binding:"required"`
	ProductName      string               `json:"product_name"`
	PolicyNumber     string               `json:"policy_number" binding:"required"`
	ValidFrom        string               `json:"valid_from" binding:"required"`
	ValidTo          string               `json:"valid_to" binding:"required"`
	Currency         string               `json:"currency"`
	PaymentFrequency string               `json:"payment_frequency"`
	PremiumTotal     string               `json:"premium_total"`
	Beneficiaries    []beneficiaryRequest `json:"beneficiaries"`
}

func (s *Server) createPolicy(c *gin.Context) {
	agent := agentID(c)

	var req createPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validFrom, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_from debe ser AAAA-MM-DD"})
		return
	}
	validTo, err := time.Parse("2006-01-02", req.ValidTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to debe ser AAAA-MM-DD"})
		return
	}
	if !validTo.After(validFrom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to debe ser posterior a valid_from"})
		return
	}

	ok, err := s.clients.Exists(c.Request.Context(), agent, req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cliente no encontrado"})
		return
	}
	if req.InsuredClientID != nil {
		ok, err := s.clients.Exists(c.Request.Context(), agent, *req.InsuredClientID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "asegurado no encontrado"})
			return
		}
	}

	// Insurer names coming off extracted documents vary; the catalog absorbs
	// new ones instead of rejecting the policy.
	ins, err := s.insurers.Upsert(c.Request.Context(), req.InsurerName)
	if err != nil {
		respondError(c, err)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "MXN"
	}

	params := repository.CreatePolicyParams{
		AgentID:          agent,
		ClientID:         req.ClientID,
		InsuredClientID:  req.InsuredClientID,
		InsurerID:        ins.ID,
		ProductName:      req.ProductName,
		PolicyNumber:     req.PolicyNumber,
		ValidFrom:        validFrom,
		ValidTo:          validTo,
		Currency:         currency,
		PaymentFrequency: req.PaymentFrequency,
		PremiumTotal:     req.PremiumTotal,
	}
	for _, b := range req.Beneficiaries {
		params.Beneficiaries = append(params.Beneficiaries, repository.BeneficiaryInput{
			Name:       b.Name,
			Percentage: b.Percentage,
		})
	}

	pol, err := s.policies.Create(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pol)
}

func (s *Server) listPolicies(c *gin.Context) {
	list, err := s.policies.ListForAgent(c.Request.Context(), agentID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": list})
}
