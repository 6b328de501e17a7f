package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/models"
	usecase "github.com/glowdesk/salon-api/internal/usecase/booking"
	"github.com/glowdesk/salon-api/internal/validators"
)

// PublicHandler serves the client-facing booking surface. Every route is
// keyed by salon slug instead of a JWT, so each method resolves the salon
// first and scopes everything to it.
type PublicHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	availability *usecase.GetAvailability
	create       *usecase.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	availability *usecase.GetAvailability,
	create *usecase.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		availability: availability,
		create:       create,
	}
}

type PublicBookingRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	StylistID  *uint  `json:"stylist_id"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	AcceptedTerms bool   `json:"accepted_terms"`

	Notes           string `json:"notes"`
	SubmissionToken string `json:"submission_token"`
}

type PublicReviewRequest struct {
	AppointmentID *uint  `json:"appointment_id"`
	StylistID     *uint  `json:"stylist_id"`
	Phone         string `json:"phone" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.repo.GetSalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return salon, true
}

// GetSalon exposes the public profile: hours, policy, branding. Internal
// fields like owner id are fine to return; the model carries nothing secret.
func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("category ASC, id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListStylists(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var stylists []models.Stylist
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

// Availability returns bookable start times for ?date=YYYY-MM-DD plus
// repeated ?service_id= params and an optional ?stylist_id=.
func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var serviceIDs []uint
	for _, raw := range c.QueryArray("service_id") {
		id, err := parseID(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Service ids must be numeric.")
			return
		}
		serviceIDs = append(serviceIDs, id)
	}
	if len(serviceIDs) == 0 {
		httperr.BadRequest(c, "missing_services", "At least one service_id is required.")
		return
	}

	var stylistID *uint
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_stylist_id", "Stylist id must be numeric.")
			return
		}
		stylistID = &id
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:    salon.ID,
		StylistID:  stylistID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		SalonID:         salon.ID,
		ServiceIDs:      req.ServiceIDs,
		StylistID:       req.StylistID,
		Date:            req.Date,
		Time:            req.Time,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		AcceptedTerms:   req.AcceptedTerms,
		Notes:           req.Notes,
		SubmissionToken: req.SubmissionToken,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *PublicHandler) CreateReview(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}
	if !validators.IsPhoneShape(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		return
	}

	client, err := h.repo.FindClientByPhone(c.Request.Context(), salon.ID, req.Phone)
	if err != nil {
		httperr.NotFound(c, "client_not_found", "No client matches that phone number.")
		return
	}

	review := models.Review{
		SalonID:       salon.ID,
		ClientID:      client.ID,
		AppointmentID: req.AppointmentID,
		StylistID:     req.StylistID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := h.repo.CreateReview(c.Request.Context(), &review); err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not save the review.")
		return
	}

	httpresp.Created(c, review)
}
