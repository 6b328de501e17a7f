package booking

import (
	"context"

	"github.com/glowdesk/salon-api/internal/audit"
	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
)

type MarkPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPaid {
	return &MarkPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute is driven by the payment gateway's webhook, which only carries the
// appointment id, so the lookup is not salon-scoped.
func (uc *MarkPaid) Execute(
	ctx context.Context,
	appointmentID uint,
	paymentRef string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	domain.MarkPaid(ap, paymentRef)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"payment_ref": paymentRef},
	})

	return ap, nil
}
