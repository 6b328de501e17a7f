package booking

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/audit"
	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/timezone"
)

// UpdateAppointmentInput carries the partial fields a staff edit may touch.
// Nil pointers mean "leave unchanged".
type UpdateAppointmentInput struct {
	Notes     *string
	StylistID *uint
	Date      *string // 2006-01-02
	Time      *string // 15:04
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID *uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.StylistID != nil {
		ap.StylistID = in.StylistID
	}

	if in.Date != nil || in.Time != nil {
		loc := timezone.Location(salon.Timezone)

		dateStr := ap.StartTime.In(loc).Format("2006-01-02")
		if in.Date != nil {
			dateStr = *in.Date
		}
		timeStr := ap.StartTime.In(loc).Format("15:04")
		if in.Time != nil {
			timeStr = *in.Time
		}

		start, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}

		duration := ap.EndTime.Sub(ap.StartTime)
		ap.StartTime = start
		ap.EndTime = start.Add(duration)
	}

	// Save always refreshes UpdatedAt, even for a no-op merge.
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
