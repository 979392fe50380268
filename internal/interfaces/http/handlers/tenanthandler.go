package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/application/tenant/dto"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type TenantHandler struct {
	service tenantService
	logger  logger.Interface
}

func NewTenantHandler(service tenantService, logger logger.Interface) *TenantHandler {
	return &TenantHandler{service: service, logger: logger}
}

// Create godoc
// @Summary Provision a tenant
// @Security Bearer
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body dto.CreateTenantRequest true "Tenant"
// @Success 201 {object} utils.APIResponse{data=dto.TenantDTO}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Organization already registered"
// @Router /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateTenant(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Tenant created successfully")
}

// Get godoc
// @Summary Get a tenant
// @Security Bearer
// @Tags tenants
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=dto.TenantDTO}
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /tenants/{tenantId} [get]
func (h *TenantHandler) Get(c *gin.Context) {
	result, err := h.service.GetTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List godoc
// @Summary List tenants
// @Security Bearer
// @Tags tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Name or email contains"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.service.ListTenants(c.Request.Context(), dto.ListTenantsRequest{
		Page:     p.Page,
		PageSize: p.PageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
