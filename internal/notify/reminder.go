package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-api/internal/config"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/timezone"
)

// ReminderService texts clients the day before their confirmed appointment.
// Strictly best-effort: a failed send is logged and skipped.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB, cfg *config.Config) *ReminderService {
	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFromNumber,
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", s.SendDailyReminders); err != nil {
		log.Printf("reminder: failed to schedule: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var salons []models.Salon
	if err := s.db.Find(&salons).Error; err != nil {
		log.Printf("reminder: failed to fetch salons: %v", err)
		return
	}

	for _, salon := range salons {
		s.processSalon(&salon)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) processSalon(salon *models.Salon) {
	loc := timezone.Location(salon.Timezone)
	now := time.Now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	end := start.Add(24 * time.Hour)

	var appointments []models.Appointment
	if err := s.db.
		Preload("Client").
		Where(
			"salon_id = ? AND status = 'confirmed' AND start_time >= ? AND start_time < ?",
			salon.ID, start, end,
		).
		Find(&appointments).Error; err != nil {
		log.Printf("reminder: salon %d: failed to list appointments: %v", salon.ID, err)
		return
	}

	for _, ap := range appointments {
		if ap.Client.Phone == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hi %s! A reminder from %s: your appointment is tomorrow at %s. Reply or call us to reschedule.",
			ap.Client.FirstName,
			salon.Name,
			ap.StartTime.In(loc).Format("3:04 PM"),
		)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(ap.Client.Phone)
		params.SetFrom(s.from)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("reminder: salon %d appointment %d: send failed: %v", salon.ID, ap.ID, err)
		}
	}
}
