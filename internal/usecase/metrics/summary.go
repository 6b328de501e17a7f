package metrics

import (
	"context"
	"sort"
	"time"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
)

const topServicesLimit = 5

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalAppointments     int            `json:"total_appointments"`
	CompletedAppointments int            `json:"completed_appointments"`
	NoShows               int            `json:"no_shows"`
	TotalRevenue          float64        `json:"total_revenue"`
	AverageRating         float64        `json:"average_rating"`
	TopServices           []ServiceCount `json:"top_services"`
}

type GetSummary struct {
	repo domain.Repository

	// ratingScoped limits the average rating to reviews inside the range;
	// the default is the salon's lifetime rating.
	ratingScoped bool
}

func NewGetSummary(repo domain.Repository, ratingScoped bool) *GetSummary {
	return &GetSummary{repo: repo, ratingScoped: ratingScoped}
}

// Execute reduces the salon's appointments in [from, to) plus its reviews
// into one dashboard summary. Revenue counts completed appointments only;
// a paid-but-never-completed booking contributes nothing.
func (uc *GetSummary) Execute(
	ctx context.Context,
	salonID uint,
	from, to time.Time,
) (Summary, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, salonID, from, to)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	s.TopServices = []ServiceCount{}

	counts := map[string]int{}
	order := []string{}

	for _, ap := range appointments {
		s.TotalAppointments++

		switch domain.Status(ap.Status) {
		case domain.StatusCompleted:
			s.CompletedAppointments++
			s.TotalRevenue += ap.TotalAmount
		case domain.StatusNoShow:
			s.NoShows++
		}

		for _, svc := range ap.Services {
			if _, seen := counts[svc.Name]; !seen {
				order = append(order, svc.Name)
			}
			counts[svc.Name]++
		}
	}

	top := make([]ServiceCount, 0, len(order))
	for _, name := range order {
		top = append(top, ServiceCount{Name: name, Count: counts[name]})
	}
	// Stable sort keeps first-encountered order for tied counts.
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topServicesLimit {
		top = top[:topServicesLimit]
	}
	s.TopServices = top

	var reviewFrom, reviewTo *time.Time
	if uc.ratingScoped {
		reviewFrom, reviewTo = &from, &to
	}

	reviews, err := uc.repo.ListReviews(ctx, salonID, reviewFrom, reviewTo)
	if err != nil {
		return Summary{}, err
	}

	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		s.AverageRating = domain.Round2(float64(sum) / float64(len(reviews)))
	}

	return s, nil
}
