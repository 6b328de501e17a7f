package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/voice"
)

type VoiceHandler struct {
	db        *gorm.DB
	repo      domain.Repository
	assistant *voice.Assistant
}

func NewVoiceHandler(db *gorm.DB, repo domain.Repository, assistant *voice.Assistant) *VoiceHandler {
	return &VoiceHandler{
		db:        db,
		repo:      repo,
		assistant: assistant,
	}
}

type ProcessVoiceRequest struct {
	SalonSlug  string `json:"salon_slug" binding:"required"`
	Transcript string `json:"transcript" binding:"required"`
	Phone      string `json:"phone"`
	CallID     string `json:"call_id"`
}

type ProcessVoiceResponse struct {
	CallID     string            `json:"call_id"`
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Response   string            `json:"response"`
	Confidence float64           `json:"confidence"`
}

// Process runs one transcript through the assistant and logs the result.
// The endpoint never fails on assistant errors; the fallback result still
// gets logged and returned so the telephony side can keep talking.
func (h *VoiceHandler) Process(c *gin.Context) {
	var req ProcessVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ctx := c.Request.Context()

	salon, err := h.repo.GetSalonBySlug(ctx, req.SalonSlug)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_services", "Could not load services.")
		return
	}

	result := h.assistant.Process(ctx, salon, services, req.Transcript)

	var clientID *uint
	if req.Phone != "" {
		if client, err := h.repo.FindClientByPhone(ctx, salon.ID, req.Phone); err == nil {
			clientID = &client.ID
		}
	}

	callID := req.CallID
	if callID == "" {
		callID = uuid.NewString()
	}

	call := models.VoiceCall{
		CallID:     callID,
		SalonID:    salon.ID,
		ClientID:   clientID,
		Transcript: req.Transcript,
		Intent:     result.Intent,
		Entities:   result.Entities,
		Response:   result.Response,
		Confidence: result.Confidence,
	}
	if err := h.repo.CreateVoiceCall(ctx, &call); err != nil {
		httperr.Internal(c, "failed_to_log_call", "Could not record the call.")
		return
	}

	c.JSON(http.StatusOK, ProcessVoiceResponse{
		CallID:     call.CallID,
		Intent:     result.Intent,
		Entities:   result.Entities,
		Response:   result.Response,
		Confidence: result.Confidence,
	})
}

// ListCalls exposes the call log to staff, newest first.
func (h *VoiceHandler) ListCalls(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var calls []models.VoiceCall
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Limit(100).
		Find(&calls).Error; err != nil {
		httperr.Internal(c, "failed_to_list_calls", "Could not list calls.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": calls})
}
