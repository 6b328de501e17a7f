package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-api/internal/audit"
	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/timezone"
)

type CreateAppointmentInput struct {
	SalonID uint

	// Staff submissions start confirmed and skip the public workflow's
	// terms gate; UserID is the acting staff account, audit only.
	Staff  bool
	UserID *uint

	ServiceIDs []uint
	StylistID  *uint

	Date string // 2006-01-02
	Time string // 15:04

	FirstName     string
	LastName      string
	Phone         string
	Email         string
	AcceptedTerms bool

	Notes string

	// Client-generated idempotency token; resubmitting the same token
	// returns the already-created appointment.
	SubmissionToken string
}

type CreateAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		availability: NewGetAvailability(repo),
		audit:        audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	if in.SubmissionToken == "" {
		in.SubmissionToken = uuid.NewString()
	} else if existing, err := uc.repo.FindAppointmentByToken(
		ctx, in.SalonID, in.SubmissionToken,
	); err == nil {
		return existing, nil
	}

	loc := timezone.Location(salon.Timezone)
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	var draft domain.Draft
	if in.Staff {
		draft, err = uc.staffDraft(ctx, salon, date, in)
	} else {
		draft, err = uc.workflowDraft(ctx, salon, date, in)
	}
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		draft.Contact.FirstName,
		draft.Contact.LastName,
		draft.Contact.Phone,
		draft.Contact.Email,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		SalonID:         in.SalonID,
		ClientID:        client.ID,
		StylistID:       draft.StylistID,
		StartTime:       draft.Start,
		EndTime:         draft.End,
		Status:          string(domain.InitialStatus(in.Staff)),
		PaymentStatus:   string(domain.PaymentPending),
		TotalAmount:     draft.Totals.TotalAmount,
		DepositAmount:   draft.Totals.DepositAmount,
		SubmissionToken: draft.SubmissionToken,
		Notes:           in.Notes,
	}

	for i, svc := range draft.Services {
		ap.Services = append(ap.Services, models.AppointmentService{
			ServiceID:   svc.ID,
			Position:    i,
			Name:        svc.Name,
			Price:       svc.Price,
			DurationMin: svc.DurationMin,
		})
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// workflowDraft replays the public booking flow step by step, so a submitted
// slot is accepted only when the generator would have offered it for this
// date/duration/stylist combination.
func (uc *CreateAppointment) workflowDraft(
	ctx context.Context,
	salon *models.Salon,
	date time.Time,
	in CreateAppointmentInput,
) (domain.Draft, error) {

	services, err := uc.repo.GetServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil {
		return domain.Draft{}, httperr.ErrBusiness("service_not_found")
	}

	wf := domain.NewWorkflow(in.SalonID, salon.Policy.DepositPercent)

	if err := wf.SelectServices(services); err != nil {
		return domain.Draft{}, err
	}
	if err := wf.ChooseStylist(in.StylistID); err != nil {
		return domain.Draft{}, err
	}

	available, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		SalonID:    in.SalonID,
		StylistID:  in.StylistID,
		ServiceIDs: in.ServiceIDs,
		Date:       date,
	})
	if err != nil {
		return domain.Draft{}, err
	}

	totals := wf.Totals()
	slot, ok := slotFor(date, in.Time, totals.DurationMin)
	if !ok {
		return domain.Draft{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	if err := wf.ChooseSlot(date, slot, available); err != nil {
		return domain.Draft{}, err
	}

	if err := wf.EnterContact(domain.ContactInfo{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Phone:         in.Phone,
		Email:         in.Email,
		AcceptedTerms: in.AcceptedTerms,
	}); err != nil {
		return domain.Draft{}, err
	}

	return wf.Submit(in.SubmissionToken)
}

// staffDraft trusts the operator with the slot grid but still enforces the
// operating window and minimum lead time.
func (uc *CreateAppointment) staffDraft(
	ctx context.Context,
	salon *models.Salon,
	date time.Time,
	in CreateAppointmentInput,
) (domain.Draft, error) {

	if in.FirstName == "" || in.Phone == "" {
		return domain.Draft{}, httperr.ErrBusiness("missing_contact_fields")
	}

	services, err := uc.repo.GetServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil {
		return domain.Draft{}, httperr.ErrBusiness("service_not_found")
	}

	totals := domain.ComputeTotals(services, salon.Policy.DepositPercent)
	if totals.DurationMin == 0 {
		return domain.Draft{}, httperr.ErrBusiness("no_services_selected")
	}

	loc := timezone.Location(salon.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return domain.Draft{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(time.Duration(totals.DurationMin) * time.Minute)

	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = domain.DefaultMinLeadMinutes
	}
	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return domain.Draft{}, httperr.ErrBusiness("too_soon")
	}

	window, open := domain.WindowFor(salon.OperatingHours, date)
	if !open {
		return domain.Draft{}, httperr.ErrBusiness("salon_closed")
	}
	openAt, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+window.Open, loc)
	if err != nil {
		return domain.Draft{}, httperr.ErrBusiness("salon_closed")
	}
	closeAt, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+window.Close, loc)
	if err != nil {
		return domain.Draft{}, httperr.ErrBusiness("salon_closed")
	}
	if start.Before(openAt) || end.After(closeAt) {
		return domain.Draft{}, httperr.ErrBusiness("outside_operating_hours")
	}

	return domain.Draft{
		SalonID:   in.SalonID,
		StylistID: in.StylistID,
		Services:  services,
		Start:     start,
		End:       end,
		Contact: domain.ContactInfo{
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			Phone:         in.Phone,
			Email:         in.Email,
			AcceptedTerms: true,
		},
		Totals:          totals,
		SubmissionToken: in.SubmissionToken,
	}, nil
}

func slotFor(date time.Time, hm string, durationMin int) (domain.TimeSlot, bool) {
	start, err := time.Parse("15:04", hm)
	if err != nil {
		return domain.TimeSlot{}, false
	}
	anchored := time.Date(
		date.Year(), date.Month(), date.Day(),
		start.Hour(), start.Minute(), 0, 0,
		date.Location(),
	)
	end := anchored.Add(time.Duration(durationMin) * time.Minute)
	return domain.TimeSlot{
		Start: anchored.Format("15:04"),
		End:   end.Format("15:04"),
	}, true
}
