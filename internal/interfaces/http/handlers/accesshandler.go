package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

// Error types returned by the public access endpoints.
const (
	ErrorTypeEntitlementNotFound = "entitlement_not_found"
	ErrorTypeEntitlementRevoked  = "entitlement_revoked"
	ErrorTypeProductInactive     = "product_inactive"
)

type AccessHandler struct {
	service productAccessService
	logger  logger.Interface
}

func NewAccessHandler(service productAccessService, logger logger.Interface) *AccessHandler {
	return &AccessHandler{service: service, logger: logger}
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResolveLink godoc
// @Summary Resolve a public access link
// @Description Returns the product summary when the link is current, access is granted and the product is active.
// @Tags access
// @Produce json
// @Param accessLink path string true "Access link"
// @Success 200 {object} utils.APIResponse{data=dto.ProductSummaryDTO}
// @Failure 403 {object} utils.APIResponse "entitlement_revoked"
// @Failure 404 {object} utils.APIResponse "entitlement_not_found"
// @Failure 410 {object} utils.APIResponse "product_inactive"
// @Failure 429 {object} utils.APIResponse "Too many requests"
// @Router /products/access/{accessLink} [get]
func (h *AccessHandler) ResolveLink(c *gin.Context) {
	result, err := h.service.LookupByLink(c.Request.Context(), c.Param("accessLink"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.respondLookup(c, result)
}

// VerifyToken godoc
// @Summary Verify an access token
// @Tags access
// @Accept json
// @Produce json
// @Param request body VerifyTokenRequest true "Token"
// @Success 200 {object} utils.APIResponse{data=dto.ProductSummaryDTO}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 403 {object} utils.APIResponse "entitlement_revoked"
// @Failure 404 {object} utils.APIResponse "entitlement_not_found"
// @Failure 410 {object} utils.APIResponse "product_inactive"
// @Router /products/access/token/verify [post]
func (h *AccessHandler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.LookupByToken(c.Request.Context(), req.Token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.respondLookup(c, result)
}

// Verify godoc
// @Summary Check the session tenant's access to a product
// @Description Denial is not an error: the response carries granted=false and the reason. A granted check is recorded as usage.
// @Security Bearer
// @Tags access
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.VerifyResultDTO}
// @Failure 401 {object} utils.APIResponse "Tenant session required"
// @Router /products/verify/{productId} [get]
func (h *AccessHandler) Verify(c *gin.Context) {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Verify(c.Request.Context(), tenantID, c.Param("productId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AccessHandler) respondLookup(c *gin.Context, result *dto.AccessLookupDTO) {
	switch usecases.VerifyStatus(result.Status) {
	case usecases.VerifyGranted:
		utils.SuccessResponse(c, http.StatusOK, "", result.Product)
	case usecases.VerifyRevoked:
		utils.ErrorResponseWithType(c, http.StatusForbidden, ErrorTypeEntitlementRevoked, "access to this product has been revoked")
	case usecases.VerifyProductInactive:
		utils.ErrorResponseWithType(c, http.StatusGone, ErrorTypeProductInactive, "this product is no longer available")
	default:
		utils.ErrorResponseWithType(c, http.StatusNotFound, ErrorTypeEntitlementNotFound, "no access found for this link")
	}
}
