package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/media"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/timezone"
)

type SalonHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewSalonHandler(db *gorm.DB, uploader *media.Uploader) *SalonHandler {
	return &SalonHandler{db: db, uploader: uploader}
}

type UpdateSalonRequest struct {
	Name              *string                    `json:"name"`
	Phone             *string                    `json:"phone"`
	Address           *string                    `json:"address"`
	Timezone          *string                    `json:"timezone"`
	MinAdvanceMinutes *int                       `json:"min_advance_minutes"`
	OperatingHours    *models.WeekHours          `json:"operating_hours"`
	Policy            *models.CancellationPolicy `json:"policy"`
	Branding          *models.Branding           `json:"branding"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.OperatingHours != nil {
		if err := domain.ValidateWeekHours(*req.OperatingHours); err != nil {
			httperr.BadRequest(c, "invalid_operating_hours", "Open must be before close on every open day.")
			return
		}
		salon.OperatingHours = *req.OperatingHours
	}
	if req.Policy != nil {
		if req.Policy.DepositPercent < 0 || req.Policy.DepositPercent > 100 {
			httperr.BadRequest(c, "invalid_policy", "Deposit percent must be between 0 and 100.")
			return
		}
		salon.Policy = *req.Policy
	}
	if req.Branding != nil {
		salon.Branding = *req.Branding
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Update failed.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// UploadLogo stores the salon logo and records its URL in branding.
func (h *SalonHandler) UploadLogo(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A logo file is required.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadLogo(c.Request.Context(), salonID, file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "The file is not a readable image.")
			return
		}
		httperr.Internal(c, "upload_failed", "Could not store the logo.")
		return
	}

	salon.Branding.LogoURL = url
	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Update failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
