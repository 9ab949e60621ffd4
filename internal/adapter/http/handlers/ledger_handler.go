package handlers

import (
	"log"
	"net/http"
	"strings"

	"dominant_assurance/internal/adapter/http/dto/request"
	"dominant_assurance/internal/adapter/http/dto/response"
	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the pledge ledger to the orchestrator and operators.
// Every route is admin-only.
type LedgerHandler struct {
	ledger   usecase.ILedgerUseCase
	projects usecase.IProjectUseCase
}

func NewLedgerHandler(ledger usecase.ILedgerUseCase, projects usecase.IProjectUseCase) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, projects: projects}
}

// RecordPledge godoc
// @Summary Record a captured pledge
// @Tags ledger
// @Accept json
// @Param projectId path string true "Project id"
// @Param orderId path string true "Processor order id"
// @Param body body request.RecordPledgeRequest true "Pledge"
// @Success 200
// @Router /ledgers/{projectId}/contract/{orderId} [put]
func (h *LedgerHandler) RecordPledge(c *gin.Context) {
	projectID, orderID := c.Param("projectId"), c.Param("orderId")
	var body request.RecordPledgeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[ledger][handler] record-pledge invalid body project_id=%s order_id=%s err=%v", projectID, orderID, err)
		badRequest(c, "Invalid request")
		return
	}
	in, err := body.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.ledger.RecordPledge(c.Request.Context(), projectID, orderID, in); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetCounter godoc
// @Summary Ledger total and anonymised orders
// @Tags ledger
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.CounterResponse
// @Router /ledgers/{projectId}/counter [get]
func (h *LedgerHandler) GetCounter(c *gin.Context) {
	summary, err := h.ledger.GetSummary(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerSummary(summary))
}

// ListRefunds godoc
// @Summary Capture ids eligible for refund
// @Tags ledger
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.RefundsResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /ledgers/{projectId}/refunds [get]
func (h *LedgerHandler) ListRefunds(c *gin.Context) {
	project, ok := h.project(c)
	if !ok {
		return
	}
	ids, err := h.ledger.ListRefundEligibleCaptures(c.Request.Context(), project.ID, project)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RefundsResponse{CaptureIDs: ids})
}

// SettleRefund godoc
// @Summary Mark a capture as refunded
// @Tags ledger
// @Param projectId path string true "Project id"
// @Param captureId path string true "Capture id"
// @Success 200
// @Failure 404 {object} pkg.HTTPError
// @Router /ledgers/{projectId}/refunds/{captureId} [delete]
func (h *LedgerHandler) SettleRefund(c *gin.Context) {
	if err := h.ledger.SettleRefund(c.Request.Context(), c.Param("projectId"), c.Param("captureId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// ListBonuses godoc
// @Summary Refund bonuses awaiting payout
// @Tags ledger
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.BonusesResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /ledgers/{projectId}/bonuses [get]
func (h *LedgerHandler) ListBonuses(c *gin.Context) {
	project, ok := h.project(c)
	if !ok {
		return
	}
	bonuses, err := h.ledger.ListPendingBonuses(c.Request.Context(), project.ID, project)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPendingBonuses(bonuses))
}

// SettleBonus godoc
// @Summary Mark a bonus as paid
// @Tags ledger
// @Param projectId path string true "Project id"
// @Param orderId path string true "Order id"
// @Success 200
// @Failure 404 {object} pkg.HTTPError
// @Router /ledgers/{projectId}/bonuses/{orderId} [delete]
func (h *LedgerHandler) SettleBonus(c *gin.Context) {
	if err := h.ledger.SettleBonus(c.Request.Context(), c.Param("projectId"), c.Param("orderId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// GetSuccessInvoice godoc
// @Summary Pledge lines of a succeeded project
// @Tags ledger
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.SuccessInvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /ledgers/{projectId}/successInvoice [get]
func (h *LedgerHandler) GetSuccessInvoice(c *gin.Context) {
	project, ok := h.project(c)
	if !ok {
		return
	}
	inv, err := h.ledger.GetSuccessInvoice(c.Request.Context(), project.ID, project)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuccessInvoice(inv))
}

// project loads the metadata the gated reads are evaluated against. A
// projectId query parameter must name the same project as the path.
func (h *LedgerHandler) project(c *gin.Context) (entities.Project, bool) {
	projectID := c.Param("projectId")
	if q, ok := c.GetQuery("projectId"); ok && strings.TrimSpace(q) != projectID {
		log.Printf("[ledger][handler] project id mismatch path=%s query=%s", projectID, q)
		badRequest(c, "projectId does not match the ledger")
		return entities.Project{}, false
	}
	project, err := h.projects.Get(c.Request.Context(), projectID)
	if err != nil {
		abortWithError(c, err)
		return entities.Project{}, false
	}
	return project, true
}
