package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/httpresp"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
	usecase "github.com/glowdesk/salon-api/internal/usecase/booking"
)

type AppointmentHandler struct {
	db *gorm.DB

	create   *usecase.CreateAppointment
	update   *usecase.UpdateAppointment
	confirm  *usecase.ConfirmAppointment
	cancel   *usecase.CancelAppointment
	complete *usecase.CompleteAppointment
	noShow   *usecase.MarkNoShow

	listByDate   *usecase.ListAppointmentsByDate
	listByMonth  *usecase.ListAppointmentsByMonth
	listByStatus *usecase.ListAppointmentsByStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *usecase.CreateAppointment,
	update *usecase.UpdateAppointment,
	confirm *usecase.ConfirmAppointment,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	noShow *usecase.MarkNoShow,
	listByDate *usecase.ListAppointmentsByDate,
	listByMonth *usecase.ListAppointmentsByMonth,
	listByStatus *usecase.ListAppointmentsByStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		update:       update,
		confirm:      confirm,
		cancel:       cancel,
		complete:     complete,
		noShow:       noShow,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		listByStatus: listByStatus,
	}
}

type StaffCreateAppointmentRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	StylistID  *uint  `json:"stylist_id"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`

	Notes           string `json:"notes"`
	SubmissionToken string `json:"submission_token"`
}

type UpdateAppointmentRequest struct {
	Notes     *string `json:"notes"`
	StylistID *uint   `json:"stylist_id"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req StaffCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		SalonID:         salonID,
		Staff:           true,
		UserID:          &userID,
		ServiceIDs:      req.ServiceIDs,
		StylistID:       req.StylistID,
		Date:            req.Date,
		Time:            req.Time,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		Notes:           req.Notes,
		SubmissionToken: req.SubmissionToken,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// List dispatches on query params: ?date=, ?year=&month=, or ?status=.
// Exactly one mode is served; date wins, then month, then status.
func (h *AppointmentHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	ctx := c.Request.Context()

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		out, err := h.listByDate.Execute(ctx, salonID, date)
		if err != nil {
			writeError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Year must be numeric.")
			return
		}
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_month", "Month must be 1-12.")
			return
		}
		out, err := h.listByMonth.Execute(ctx, salonID, year, month)
		if err != nil {
			writeError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	if status := c.Query("status"); status != "" {
		out, err := h.listByStatus.Execute(ctx, salonID, status)
		if err != nil {
			writeError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	httperr.BadRequest(c, "missing_filter", "Provide date, year+month, or status.")
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Services").
		Preload("Client").
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), salonID, &userID, id, usecase.UpdateAppointmentInput{
		Notes:     req.Notes,
		StylistID: req.StylistID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID uint, userID *uint, id uint) (*models.Appointment, error) {
		return h.confirm.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID uint, userID *uint, id uint) (*models.Appointment, error) {
		return h.complete.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, func(c *gin.Context, salonID uint, userID *uint, id uint) (*models.Appointment, error) {
		return h.noShow.Execute(c.Request.Context(), salonID, userID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req CancelAppointmentRequest
	// Reason is optional, a bare POST cancels without one.
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, &userID, id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(c *gin.Context, salonID uint, userID *uint, id uint) (*models.Appointment, error),
) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := run(c, salonID, &userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
