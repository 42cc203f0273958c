package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	apperrors "github.com/udyogsetu/udyogsetu-backend/internal/errors"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

type MarkAllReadRequest struct {
	IDs []string `json:"ids"`
}

// List derives and returns the account's current notifications
// GET /api/v1/notifications
func (ctrl *NotificationController) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	notifications, unreadCount, err := ctrl.notificationService.ListNotifications(email)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
		"unreadCount":   unreadCount,
	})
}

// MarkRead records a read mark for one notification id
// POST /api/v1/notifications/read/:id
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	noticeID := c.Param("id")
	if err := ctrl.notificationService.MarkRead(email, noticeID); err != nil {
		if errors.Is(err, service.ErrNotificationIDRequired) {
			apperrors.BadRequest(c, apperrors.NotificationIDRequired, "Notification id is required.")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "mark notification read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read.",
		"id":      noticeID,
	})
}

// MarkAllRead records read marks for a batch of notification ids
// POST /api/v1/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req MarkAllReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Empty or malformed body marks nothing, matching an empty list.
		req.IDs = nil
	}

	count, err := ctrl.notificationService.MarkManyRead(email, req.IDs)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notifications marked as read.",
		"count":   count,
	})
}
