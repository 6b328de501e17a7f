package booking

import (
	"context"

	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/dto"
	"github.com/glowdesk/salon-api/internal/httperr"
)

type ListAppointmentsByStatus struct {
	repo domain.Repository
}

func NewListAppointmentsByStatus(repo domain.Repository) *ListAppointmentsByStatus {
	return &ListAppointmentsByStatus{repo: repo}
}

func (uc *ListAppointmentsByStatus) Execute(
	ctx context.Context,
	salonID uint,
	status string,
) ([]dto.AppointmentListDTO, error) {

	switch domain.Status(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted,
		domain.StatusCancelled, domain.StatusNoShow:
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointmentsByStatus(ctx, salonID, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
