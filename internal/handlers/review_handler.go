package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

func (h *ReviewHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	query := h.db.Where("salon_id = ?", salonID)
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_stylist_id", "Stylist id must be numeric.")
			return
		}
		query = query.Where("stylist_id = ?", id)
	}

	var reviews []models.Review
	if err := query.
		Order("created_at DESC").
		Limit(200).
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}
