package payments

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/glowdesk/salon-api/internal/config"
)

// Gateway wraps the payment collaborator: intent creation on the way out,
// signed webhook events on the way back.
type Gateway struct {
	webhookSecret string
	timeout       time.Duration
}

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func NewGateway(cfg *config.Config) *Gateway {
	stripe.Key = cfg.StripeSecretKey
	return &Gateway{
		webhookSecret: cfg.StripeWebhookSecret,
		timeout:       cfg.PaymentTimeout,
	}
}

// CreateIntent opens a payment intent for the given amount, tagged with the
// appointment so the webhook can find its way back. Amount is in the
// salon's display currency; Stripe wants cents.
func (g *Gateway) CreateIntent(
	ctx context.Context,
	amount float64,
	appointmentID uint,
) (*Intent, error) {

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount*100 + 0.5)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"appointment_id": strconv.FormatUint(uint64(appointmentID), 10),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyEvent authenticates an incoming webhook payload against the signing
// secret.
func (g *Gateway) VerifyEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, g.webhookSecret)
}

// PaidAppointment extracts the appointment id and payment reference from a
// payment_intent.succeeded event. ok is false for any other event type or a
// malformed payload.
func PaidAppointment(ev stripe.Event) (appointmentID uint, paymentRef string, ok bool) {
	if ev.Type != "payment_intent.succeeded" {
		return 0, "", false
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		return 0, "", false
	}

	raw, found := pi.Metadata["appointment_id"]
	if !found {
		return 0, "", false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, "", false
	}

	return uint(id), pi.ID, true
}
