package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type QuotationHandler struct {
	service quotationService
	logger  logger.Interface
}

func NewQuotationHandler(service quotationService, logger logger.Interface) *QuotationHandler {
	return &QuotationHandler{service: service, logger: logger}
}

// Create godoc
// @Summary Request a custom service quotation
// @Security Bearer
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Quotation"
// @Success 201 {object} utils.APIResponse{data=dto.QuotationDTO}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "Tenant access required"
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateQuotation(c.Request.Context(), currentCaller(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Quotation submitted")
}

// UpdateStatus godoc
// @Summary Move a quotation to a new status
// @Description approved requires final_price; rejected and completed are terminal.
// @Security Bearer
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body dto.UpdateStatusRequest true "Transition"
// @Success 200 {object} utils.APIResponse{data=dto.QuotationDTO}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Quotation not found"
// @Failure 409 {object} utils.APIResponse "Concurrent modification"
// @Failure 422 {object} utils.APIResponse "Transition not allowed"
// @Router /quotations/{id}/status [put]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), currentCaller(c), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Quotation status updated", result)
}

// Get godoc
// @Summary Get a quotation
// @Security Bearer
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} utils.APIResponse{data=dto.QuotationDTO}
// @Failure 404 {object} utils.APIResponse "Quotation not found"
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	result, err := h.service.GetQuotation(c.Request.Context(), currentCaller(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List godoc
// @Summary List quotations
// @Description Operators see every tenant and may filter by tenant_id; tenants see their own.
// @Security Bearer
// @Tags quotations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "pending, approved, rejected or completed"
// @Param tenant_id query string false "Tenant filter (operator only)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.service.ListQuotations(c.Request.Context(), currentCaller(c), dto.ListQuotationsRequest{
		TenantID: c.Query("tenant_id"),
		Status:   c.Query("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
