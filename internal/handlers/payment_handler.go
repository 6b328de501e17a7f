package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/payments"
	usecase "github.com/glowdesk/salon-api/internal/usecase/booking"
)

const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	repo     domain.Repository
	gateway  *payments.Gateway
	markPaid *usecase.MarkPaid
}

func NewPaymentHandler(
	repo domain.Repository,
	gateway *payments.Gateway,
	markPaid *usecase.MarkPaid,
) *PaymentHandler {
	return &PaymentHandler{
		repo:     repo,
		gateway:  gateway,
		markPaid: markPaid,
	}
}

type CreateIntentRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// CreateIntent opens a payment intent for the appointment's deposit, or the
// full amount when no deposit applies. The amount comes from the stored
// appointment, never from the request.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), req.AppointmentID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}
	if domain.PaymentStatus(ap.PaymentStatus) == domain.PaymentPaid {
		httperr.Conflict(c, "already_paid", "The appointment is already paid.")
		return
	}

	amount := ap.DepositAmount
	if amount <= 0 {
		amount = ap.TotalAmount
	}
	if amount <= 0 {
		httperr.BadRequest(c, "nothing_to_charge", "The appointment has no amount due.")
		return
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), amount, ap.ID)
	if err != nil {
		httperr.Internal(c, "payment_gateway_error", "Could not start the payment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent_id":     intent.ID,
		"client_secret": intent.ClientSecret,
		"amount":        amount,
	})
}

// Webhook receives gateway events. Signature failures are 400 so the
// gateway retries; unhandled event types are acknowledged and dropped.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.BadRequest(c, "invalid_body", "Could not read the event body.")
		return
	}

	event, err := h.gateway.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httperr.BadRequest(c, "invalid_signature", "Webhook signature verification failed.")
		return
	}

	appointmentID, paymentRef, ok := payments.PaidAppointment(event)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if _, err := h.markPaid.Execute(c.Request.Context(), appointmentID, paymentRef); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
