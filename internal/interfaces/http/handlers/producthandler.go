package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type ProductHandler struct {
	service productService
	logger  logger.Interface
}

func NewProductHandler(service productService, logger logger.Interface) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

// Create godoc
// @Summary Add a product to the catalog
// @Security Bearer
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} utils.APIResponse{data=dto.ProductDTO}
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Product already exists"
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Product created successfully")
}

// Update godoc
// @Summary Update a product
// @Description Deactivating a product makes every access link for it answer product_inactive.
// @Security Bearer
// @Tags products
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ProductDTO}
// @Failure 404 {object} utils.APIResponse "Product not found"
// @Router /products/{productId} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateProduct(c.Request.Context(), c.Param("productId"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", result)
}

// Delete godoc
// @Summary Delete a product
// @Security Bearer
// @Tags products
// @Param productId path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.APIResponse "Product not found"
// @Failure 409 {object} utils.APIResponse "Product still granted to tenants"
// @Router /products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("productId")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Get godoc
// @Summary Get a product
// @Security Bearer
// @Tags products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.APIResponse{data=dto.ProductDTO}
// @Failure 404 {object} utils.APIResponse "Product not found"
// @Router /products/{productId} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	result, err := h.service.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List godoc
// @Summary List the product catalog
// @Security Bearer
// @Tags products
// @Produce json
// @Param active_only query bool false "Only active products"
// @Success 200 {object} utils.APIResponse{data=[]dto.ProductDTO}
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	result, err := h.service.ListProducts(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
