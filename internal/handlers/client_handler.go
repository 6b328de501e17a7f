package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List supports an optional ?q= filter matching name or phone.
func (h *ClientHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	query := h.db.Where("salon_id = ?", salonID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := query.Order("id ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	// Recent history rides along so the front desk sees it in one call.
	var appointments []models.Appointment
	if err := h.db.
		Preload("Services").
		Where("client_id = ? AND salon_id = ?", client.ID, salonID).
		Order("start_time DESC").
		Limit(20).
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_history", "Could not load the client history.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"appointments": appointments,
	})
}
