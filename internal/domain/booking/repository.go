package booking

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(ctx context.Context, id uint) (*models.Salon, error)
	GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)

	// -------- Catalog --------
	GetServices(ctx context.Context, salonID uint, ids []uint) ([]models.Service, error)
	GetStylist(ctx context.Context, salonID uint, stylistID uint) (*models.Stylist, error)

	// -------- Client --------
	FindClientByPhone(ctx context.Context, salonID uint, phone string) (*models.Client, error)
	GetOrCreateClient(ctx context.Context, salonID uint, first, last, phone, email string) (*models.Client, error)
	RefreshClientStats(ctx context.Context, clientID uint, visitAt time.Time, amount float64) error

	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts the row inside a transaction; when a stylist is
	// assigned it first takes a row lock and rejects any overlap with that
	// stylist's non-cancelled appointments ("time_conflict").
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	FindAppointmentByToken(ctx context.Context, salonID uint, token string) (*models.Appointment, error)

	// -------- Appointment (state change / reads) --------
	GetAppointment(ctx context.Context, salonID uint, appointmentID uint) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// ListStylistAppointments returns the stylist's non-cancelled bookings
	// intersecting [start, end), ordered by start time.
	ListStylistAppointments(ctx context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error)

	ListAppointmentsForPeriod(ctx context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error)
	ListAppointmentsByStatus(ctx context.Context, salonID uint, status string) ([]models.Appointment, error)

	// -------- Reviews --------
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context, salonID uint, from, to *time.Time) ([]models.Review, error)

	// -------- Voice --------
	CreateVoiceCall(ctx context.Context, call *models.VoiceCall) error
}
