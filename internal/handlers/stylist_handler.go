package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

type CreateStylistRequest struct {
	Name        string              `json:"name" binding:"required"`
	Specialties []string            `json:"specialties"`
	Schedule    models.WeekSchedule `json:"schedule"`
	Vacations   []models.DateRange  `json:"vacations"`
}

type UpdateStylistRequest struct {
	Name        *string              `json:"name"`
	Specialties *[]string            `json:"specialties"`
	Schedule    *models.WeekSchedule `json:"schedule"`
	Vacations   *[]models.DateRange  `json:"vacations"`
	Active      *bool                `json:"active"`
}

func (h *StylistHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var stylists []models.Stylist
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if err := domain.ValidateWeekSchedule(req.Schedule); err != nil {
		httperr.BadRequest(c, "invalid_schedule", "Schedule is inconsistent.")
		return
	}

	stylist := models.Stylist{
		SalonID:     salonID,
		Name:        req.Name,
		Specialties: req.Specialties,
		Schedule:    req.Schedule,
		Vacations:   req.Vacations,
		Active:      true,
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Could not create the stylist.")
		return
	}

	httpresp.Created(c, stylist)
}

func (h *StylistHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var stylist models.Stylist
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&stylist).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		stylist.Name = *req.Name
	}
	if req.Specialties != nil {
		stylist.Specialties = *req.Specialties
	}
	if req.Schedule != nil {
		if err := domain.ValidateWeekSchedule(*req.Schedule); err != nil {
			httperr.BadRequest(c, "invalid_schedule", "Schedule is inconsistent.")
			return
		}
		stylist.Schedule = *req.Schedule
	}
	if req.Vacations != nil {
		stylist.Vacations = *req.Vacations
	}
	if req.Active != nil {
		stylist.Active = *req.Active
	}

	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Update failed.")
		return
	}

	c.JSON(http.StatusOK, stylist)
}
