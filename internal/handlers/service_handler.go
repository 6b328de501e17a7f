package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DurationMin     int     `json:"duration_min" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"gte=0"`
	BufferBeforeMin int     `json:"buffer_before_min"`
	BufferAfterMin  int     `json:"buffer_after_min"`
	ProcessingMin   int     `json:"processing_min"`
	RequiresDeposit bool    `json:"requires_deposit"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	DurationMin     *int     `json:"duration_min"`
	Price           *float64 `json:"price"`
	BufferBeforeMin *int     `json:"buffer_before_min"`
	BufferAfterMin  *int     `json:"buffer_after_min"`
	ProcessingMin   *int     `json:"processing_min"`
	RequiresDeposit *bool    `json:"requires_deposit"`
	Active          *bool    `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var services []models.Service
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	service := models.Service{
		SalonID:         salonID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		DurationMin:     req.DurationMin,
		Price:           req.Price,
		BufferBeforeMin: req.BufferBeforeMin,
		BufferAfterMin:  req.BufferAfterMin,
		ProcessingMin:   req.ProcessingMin,
		RequiresDeposit: req.RequiresDeposit,
		Active:          true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	httpresp.Created(c, service)
}

// Update also covers deactivation: services are never hard-deleted so
// historical appointments keep their reference.
func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
			return
		}
		service.Price = *req.Price
	}
	if req.BufferBeforeMin != nil {
		service.BufferBeforeMin = *req.BufferBeforeMin
	}
	if req.BufferAfterMin != nil {
		service.BufferAfterMin = *req.BufferAfterMin
	}
	if req.ProcessingMin != nil {
		service.ProcessingMin = *req.ProcessingMin
	}
	if req.RequiresDeposit != nil {
		service.RequiresDeposit = *req.RequiresDeposit
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Update failed.")
		return
	}

	c.JSON(http.StatusOK, service)
}
