package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute produces the bookable start times for one day. Without a stylist
// preference the result is the bare operating-hours grid; with one, the
// stylist's schedule gaps and existing non-cancelled bookings are subtracted
// so the booking path and the availability the client saw agree.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	services, err := uc.repo.GetServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	totals := domain.ComputeTotals(services, salon.Policy.DepositPercent)
	if totals.DurationMin == 0 {
		return []domain.TimeSlot{}, nil
	}

	loc := timezone.Location(salon.Timezone)
	date := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)

	window, open := domain.WindowFor(salon.OperatingHours, date)
	if !open {
		return []domain.TimeSlot{}, nil
	}

	minLead := time.Duration(salon.MinAdvanceMinutes) * time.Minute
	if salon.MinAdvanceMinutes <= 0 {
		minLead = domain.DefaultMinLeadMinutes * time.Minute
	}

	now := timezone.NowIn(salon.Timezone)

	var busy []domain.TimeRange
	if in.StylistID != nil {
		stylist, err := uc.repo.GetStylist(ctx, in.SalonID, *in.StylistID)
		if err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}

		busy = domain.StylistBusy(stylist, date, window)

		dayStart := date
		dayEnd := date.Add(24 * time.Hour)
		booked, err := uc.repo.ListStylistAppointments(ctx, stylist.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		for _, ap := range booked {
			busy = append(busy, domain.TimeRange{Start: ap.StartTime, End: ap.EndTime})
		}

		sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	}

	slots := domain.Available(
		date,
		totals.DurationMin,
		window,
		domain.DefaultGranularityMin,
		minLead,
		now,
		busy,
	)

	return slots, nil
}
