package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EntitlementHandler struct {
	service entitlementService
	logger  logger.Interface
}

func NewEntitlementHandler(service entitlementService, logger logger.Interface) *EntitlementHandler {
	return &EntitlementHandler{service: service, logger: logger}
}

// Grant godoc
// @Summary Grant product access to a tenant
// @Description Creates or re-enables the entitlement and issues a fresh access link and token. The token is only returned here.
// @Security Bearer
// @Tags entitlements
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.EntitlementDTO}
// @Failure 404 {object} utils.APIResponse "Tenant or product not found"
// @Failure 409 {object} utils.APIResponse "Concurrent modification"
// @Router /entitlements/{tenantId}/{productId}/grant [post]
func (h *EntitlementHandler) Grant(c *gin.Context) {
	result, err := h.service.Grant(c.Request.Context(), c.Param("tenantId"), c.Param("productId"), currentActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Access granted", result)
}

// Revoke godoc
// @Summary Revoke product access
// @Security Bearer
// @Tags entitlements
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.EntitlementDTO}
// @Failure 404 {object} utils.APIResponse "Entitlement not found"
// @Router /entitlements/{tenantId}/{productId}/revoke [post]
func (h *EntitlementHandler) Revoke(c *gin.Context) {
	result, err := h.service.Revoke(c.Request.Context(), c.Param("tenantId"), c.Param("productId"), currentActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Access revoked", result)
}

// Regenerate godoc
// @Summary Rotate access link and token
// @Security Bearer
// @Tags entitlements
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.EntitlementDTO}
// @Failure 400 {object} utils.APIResponse "Access is revoked; grant access first"
// @Failure 404 {object} utils.APIResponse "Entitlement not found"
// @Router /entitlements/{tenantId}/{productId}/regenerate [post]
func (h *EntitlementHandler) Regenerate(c *gin.Context) {
	result, err := h.service.Regenerate(c.Request.Context(), c.Param("tenantId"), c.Param("productId"), currentActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Access credentials regenerated", result)
}

// List godoc
// @Summary List a tenant's entitlements across the catalog
// @Security Bearer
// @Tags entitlements
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.ProductEntitlementDTO}
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /entitlements/{tenantId} [get]
func (h *EntitlementHandler) List(c *gin.Context) {
	rows, err := h.service.ListForTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// ExportUsage godoc
// @Summary Download the tenant's usage report
// @Security Bearer
// @Tags entitlements
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenantId path string true "Tenant ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Router /entitlements/{tenantId}/usage/export [get]
func (h *EntitlementHandler) ExportUsage(c *gin.Context) {
	tenantID := c.Param("tenantId")
	data, err := h.service.ExportUsage(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "usage-"+tenantID+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}
