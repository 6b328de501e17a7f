package metrics

import (
	"context"
	"testing"
	"time"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/models"
)

// metricsRepo stubs just the two reads the summary reduction needs.
type metricsRepo struct {
	domain.Repository

	appointments []models.Appointment
	reviews      []models.Review

	gotReviewFrom *time.Time
	gotReviewTo   *time.Time
}

func (r *metricsRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *metricsRepo) ListReviews(_ context.Context, _ uint, from, to *time.Time) ([]models.Review, error) {
	r.gotReviewFrom, r.gotReviewTo = from, to
	return r.reviews, nil
}

func appointmentAt(day int, status string, amount float64, services ...string) models.Appointment {
	ap := models.Appointment{
		SalonID:     1,
		StartTime:   time.Date(2026, 8, day, 10, 0, 0, 0, time.UTC),
		Status:      status,
		TotalAmount: amount,
	}
	for i, name := range services {
		ap.Services = append(ap.Services, models.AppointmentService{
			Position: i,
			Name:     name,
		})
	}
	return ap
}

func TestGetSummary(t *testing.T) {
	repo := &metricsRepo{
		appointments: []models.Appointment{
			appointmentAt(1, "completed", 100, "Cut"),
			appointmentAt(2, "completed", 150, "Cut", "Color"),
			appointmentAt(3, "confirmed", 80, "Cut"),
			appointmentAt(4, "cancelled", 60, "Perm"),
			appointmentAt(5, "no_show", 45, "Color"),
			// Outside the window, must not count.
			appointmentAt(25, "completed", 999, "Balayage"),
		},
		reviews: []models.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		},
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	uc := NewGetSummary(repo, false)
	s, err := uc.Execute(context.Background(), 1, from, to)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if s.TotalAppointments != 5 {
		t.Errorf("total = %d, want 5", s.TotalAppointments)
	}
	if s.CompletedAppointments != 2 {
		t.Errorf("completed = %d, want 2", s.CompletedAppointments)
	}
	if s.NoShows != 1 {
		t.Errorf("no-shows = %d, want 1", s.NoShows)
	}
	// Revenue counts completed only: 100 + 150.
	if s.TotalRevenue != 250 {
		t.Errorf("revenue = %v, want 250", s.TotalRevenue)
	}
	// (5+4+4)/3 rounded to cents.
	if s.AverageRating != 4.33 {
		t.Errorf("rating = %v, want 4.33", s.AverageRating)
	}
}

func TestGetSummaryTopServices(t *testing.T) {
	repo := &metricsRepo{
		appointments: []models.Appointment{
			appointmentAt(1, "completed", 0, "Cut", "Color"),
			appointmentAt(2, "confirmed", 0, "Cut"),
			appointmentAt(3, "completed", 0, "Color"),
			appointmentAt(4, "completed", 0, "Cut"),
			appointmentAt(5, "no_show", 0, "Perm"),
			appointmentAt(6, "completed", 0, "Wax"),
			appointmentAt(7, "completed", 0, "Updo"),
			appointmentAt(8, "completed", 0, "Balayage"),
		},
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	uc := NewGetSummary(repo, false)
	s, err := uc.Execute(context.Background(), 1, from, to)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(s.TopServices) != 5 {
		t.Fatalf("top services = %d, want 5", len(s.TopServices))
	}
	if s.TopServices[0].Name != "Cut" || s.TopServices[0].Count != 3 {
		t.Errorf("top[0] = %+v", s.TopServices[0])
	}
	if s.TopServices[1].Name != "Color" || s.TopServices[1].Count != 2 {
		t.Errorf("top[1] = %+v", s.TopServices[1])
	}
	// Tied counts keep first-booked order.
	if s.TopServices[2].Name != "Perm" {
		t.Errorf("top[2] = %+v", s.TopServices[2])
	}
}

func TestGetSummaryEmptyRange(t *testing.T) {
	repo := &metricsRepo{}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	uc := NewGetSummary(repo, false)
	s, err := uc.Execute(context.Background(), 1, from, to)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if s.TotalAppointments != 0 || s.TotalRevenue != 0 {
		t.Errorf("summary = %+v", s)
	}
	if s.AverageRating != 0 {
		t.Errorf("rating with no reviews = %v", s.AverageRating)
	}
	if s.TopServices == nil || len(s.TopServices) != 0 {
		t.Errorf("top services = %v, want empty non-nil", s.TopServices)
	}
}

func TestGetSummaryRatingScope(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("lifetime by default", func(t *testing.T) {
		repo := &metricsRepo{}
		uc := NewGetSummary(repo, false)
		if _, err := uc.Execute(context.Background(), 1, from, to); err != nil {
			t.Fatal(err)
		}
		if repo.gotReviewFrom != nil || repo.gotReviewTo != nil {
			t.Error("expected unbounded review query")
		}
	})

	t.Run("scoped when configured", func(t *testing.T) {
		repo := &metricsRepo{}
		uc := NewGetSummary(repo, true)
		if _, err := uc.Execute(context.Background(), 1, from, to); err != nil {
			t.Fatal(err)
		}
		if repo.gotReviewFrom == nil || !repo.gotReviewFrom.Equal(from) {
			t.Errorf("review from = %v", repo.gotReviewFrom)
		}
		if repo.gotReviewTo == nil || !repo.gotReviewTo.Equal(to) {
			t.Errorf("review to = %v", repo.gotReviewTo)
		}
	})
}
