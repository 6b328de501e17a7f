package booking

import (
	"context"
	"time"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
)

// fakeRepo is an in-memory Repository with the same conflict semantics as
// the gorm implementation.
type fakeRepo struct {
	salon    *models.Salon
	services []models.Service
	stylists []models.Stylist
	clients  []models.Client

	appointments []*models.Appointment
	reviews      []models.Review
	voiceCalls   []models.VoiceCall

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: &models.Salon{
			ID:                1,
			Name:              "Glow Studio",
			Slug:              "glow-studio",
			Timezone:          "America/New_York",
			MinAdvanceMinutes: 120,
			OperatingHours:    domain.DefaultWeekHours(),
			Policy:            models.CancellationPolicy{DepositPercent: 20},
		},
		services: []models.Service{
			{ID: 1, SalonID: 1, Name: "Cut", Price: 45, DurationMin: 30, Active: true},
			{ID: 2, SalonID: 1, Name: "Color", Price: 120, DurationMin: 90, Active: true, RequiresDeposit: true},
		},
		stylists: []models.Stylist{
			{ID: 1, SalonID: 1, Name: "Maya", Active: true},
		},
		nextID: 1,
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if f.salon == nil || f.salon.ID != id {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if f.salon == nil || f.salon.Slug != slug {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return f.salon, nil
}

func (f *fakeRepo) GetServices(_ context.Context, salonID uint, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		found := false
		for _, svc := range f.services {
			if svc.ID == id && svc.SalonID == salonID && svc.Active {
				out = append(out, svc)
				found = true
				break
			}
		}
		if !found {
			return nil, httperr.ErrBusiness("service_not_found")
		}
	}
	return out, nil
}

func (f *fakeRepo) GetStylist(_ context.Context, salonID, stylistID uint) (*models.Stylist, error) {
	for i := range f.stylists {
		if f.stylists[i].ID == stylistID && f.stylists[i].SalonID == salonID {
			return &f.stylists[i], nil
		}
	}
	return nil, httperr.ErrBusiness("stylist_not_found")
}

func (f *fakeRepo) FindClientByPhone(_ context.Context, salonID uint, phone string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].SalonID == salonID && f.clients[i].Phone == phone {
			return &f.clients[i], nil
		}
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, salonID uint, first, last, phone, email string) (*models.Client, error) {
	if c, err := f.FindClientByPhone(ctx, salonID, phone); err == nil {
		return c, nil
	}
	f.clients = append(f.clients, models.Client{
		ID:        uint(len(f.clients) + 1),
		SalonID:   salonID,
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Email:     email,
	})
	return &f.clients[len(f.clients)-1], nil
}

func (f *fakeRepo) RefreshClientStats(_ context.Context, clientID uint, visitAt time.Time, amount float64) error {
	for i := range f.clients {
		if f.clients[i].ID == clientID {
			f.clients[i].TotalVisits++
			f.clients[i].TotalSpent += amount
			f.clients[i].LastVisitAt = &visitAt
		}
	}
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.StylistID != nil {
		for _, other := range f.appointments {
			if other.StylistID == nil || *other.StylistID != *ap.StylistID {
				continue
			}
			if other.Status == "cancelled" || other.Status == "no_show" {
				continue
			}
			if other.StartTime.Before(ap.EndTime) && other.EndTime.After(ap.StartTime) {
				return httperr.ErrBusiness("time_conflict")
			}
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) FindAppointmentByToken(_ context.Context, salonID uint, token string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.SubmissionToken == token {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.SalonID == salonID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, other := range f.appointments {
		if other.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) ListStylistAppointments(_ context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StylistID == nil || *ap.StylistID != stylistID {
			continue
		}
		if ap.Status == "cancelled" || ap.Status == "no_show" {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByStatus(_ context.Context, salonID uint, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.Status == status {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateReview(_ context.Context, review *models.Review) error {
	review.ID = uint(len(f.reviews) + 1)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeRepo) ListReviews(_ context.Context, salonID uint, from, to *time.Time) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range f.reviews {
		if rv.SalonID != salonID {
			continue
		}
		if from != nil && rv.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !rv.CreatedAt.Before(*to) {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (f *fakeRepo) CreateVoiceCall(_ context.Context, call *models.VoiceCall) error {
	call.ID = uint(len(f.voiceCalls) + 1)
	f.voiceCalls = append(f.voiceCalls, *call)
	return nil
}
