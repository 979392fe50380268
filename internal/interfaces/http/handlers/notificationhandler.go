package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

// List godoc
// @Summary List the tenant's notifications
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param unread query bool false "Only unread"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse "Tenant session required"
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.service.ListNotifications(c.Request.Context(), dto.ListNotificationsRequest{
		TenantID:   tenantID,
		UnreadOnly: c.Query("unread") == "true",
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Security Bearer
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 403 {object} utils.APIResponse "Belongs to another tenant"
// @Failure 404 {object} utils.APIResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.MarkNotificationAsRead(c.Request.Context(), c.Param("id"), tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Security Bearer
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UnreadCountResponse}
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetUnreadCount(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
