package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"dominant_assurance/internal/adapter/http/dto/request"
	"dominant_assurance/internal/adapter/http/dto/response"
	"dominant_assurance/internal/adapter/http/middleware"
	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ProjectHandler serves the public project routes used by the frontend and
// the admin sweep routes.
type ProjectHandler struct {
	projects usecase.IProjectUseCase
	contract usecase.IContractUseCase
	sweep    usecase.ISweepUseCase
	ledger   usecase.ILedgerUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase, contract usecase.IContractUseCase, sweep usecase.ISweepUseCase, ledger usecase.ILedgerUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects, contract: contract, sweep: sweep, ledger: ledger}
}

// GetProject godoc
// @Summary Project metadata
// @Tags projects
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.ProjectResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// PutProject godoc
// @Summary Create or update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project id"
// @Param body body request.PutProjectRequest true "Project"
// @Success 200 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Router /projects/{projectId} [put]
func (h *ProjectHandler) PutProject(c *gin.Context) {
	projectID := c.Param("projectId")
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		abortWithError(c, usecase.ErrPrincipalRequired)
		return
	}
	var body request.PutProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[project][handler] put invalid body project_id=%s err=%v", projectID, err)
		badRequest(c, "Invalid request")
		return
	}
	p, err := body.Project.ToEntity(projectID)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	saved, err := h.projects.Put(c.Request.Context(), principal, p)
	if err != nil {
		abortWithError(c, err)
		return
	}
	log.Printf("[project][handler] put success project_id=%s user=%s draft=%t", saved.ID, principal.UserID, saved.IsDraft)
	c.JSON(http.StatusOK, response.FromProject(saved))
}

// CreateContract godoc
// @Summary Start a pledge with the payment processor
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project id"
// @Param body body request.CreateContractRequest true "Pledge amount"
// @Success 200 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /projects/{projectId}/contract [post]
func (h *ProjectHandler) CreateContract(c *gin.Context) {
	projectID := c.Param("projectId")
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid request")
		return
	}
	var body request.CreateContractRequest
	if err := binding.JSON.BindBody(raw, &body); err != nil {
		log.Printf("[contract][handler] create invalid body project_id=%s err=%v", projectID, err)
		badRequest(c, "Invalid request")
		return
	}
	order, err := h.contract.CreateOrder(c.Request.Context(), projectID, *body.Amount, json.RawMessage(bytes.TrimSpace(raw)))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CaptureContract godoc
// @Summary Capture an approved order and record the pledge
// @Tags projects
// @Produce json
// @Param projectId path string true "Project id"
// @Param orderId path string true "Processor order id"
// @Success 200 {object} response.CaptureResponse
// @Failure 502 {object} pkg.HTTPError
// @Router /projects/{projectId}/contract/{orderId} [patch]
func (h *ProjectHandler) CaptureContract(c *gin.Context) {
	capture, err := h.contract.CapturePledge(c.Request.Context(), c.Param("projectId"), c.Param("orderId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCapture(capture))
}

// GetCounter godoc
// @Summary Amount pledged so far
// @Tags projects
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.CounterResponse
// @Router /projects/{projectId}/counter [get]
func (h *ProjectHandler) GetCounter(c *gin.Context) {
	summary, err := h.ledger.GetSummary(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerSummary(summary))
}

// Refund godoc
// @Summary Refund every eligible pledge
// @Tags sweeps
// @Produce json
// @Param projectId path string true "Project id"
// @Success 201 {object} response.RefundSweepResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId}/refund [post]
func (h *ProjectHandler) Refund(c *gin.Context) {
	res, err := h.sweep.RefundSweep(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRefundSweep(res))
}

// ListBonuses godoc
// @Summary Refund bonuses awaiting payout
// @Tags sweeps
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.BonusesResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId}/bonuses [get]
func (h *ProjectHandler) ListBonuses(c *gin.Context) {
	bonuses, err := h.contract.PendingBonuses(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPendingBonuses(bonuses))
}

// SettleBonus godoc
// @Summary Mark a bonus as paid
// @Tags sweeps
// @Param projectId path string true "Project id"
// @Param orderId path string true "Order id"
// @Success 200
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId}/bonuses/{orderId} [delete]
func (h *ProjectHandler) SettleBonus(c *gin.Context) {
	if err := h.ledger.SettleBonus(c.Request.Context(), c.Param("projectId"), c.Param("orderId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// PayBonuses godoc
// @Summary Pay every pending bonus in one payout batch
// @Tags sweeps
// @Produce json
// @Param projectId path string true "Project id"
// @Success 201 {object} response.BonusSweepResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId}/bonuses [post]
func (h *ProjectHandler) PayBonuses(c *gin.Context) {
	res, err := h.sweep.BonusSweep(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBonusSweep(res))
}

// GetSuccessInvoice godoc
// @Summary Pledge lines of a succeeded project
// @Tags projects
// @Produce json
// @Param projectId path string true "Project id"
// @Success 200 {object} response.SuccessInvoiceResponse
// @Failure 403 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /projects/{projectId}/successInvoice [get]
func (h *ProjectHandler) GetSuccessInvoice(c *gin.Context) {
	projectID := c.Param("projectId")
	if err := h.projects.RequirePermission(c.Request.Context(), middleware.PrincipalFrom(c), projectID, entities.PermissionEdit); err != nil {
		abortWithError(c, err)
		return
	}
	inv, err := h.contract.SuccessInvoice(c.Request.Context(), projectID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuccessInvoice(inv))
}
