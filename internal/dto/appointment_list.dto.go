package dto

import (
	"strings"
	"time"

	"github.com/glowdesk/salon-api/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ClientName    string    `json:"client_name"`
	Services      string    `json:"services"`
	TotalAmount   float64   `json:"total_amount"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	names := make([]string, 0, len(ap.Services))
	for _, svc := range ap.Services {
		names = append(names, svc.Name)
	}

	clientName := ap.Client.FirstName
	if ap.Client.LastName != "" {
		clientName += " " + ap.Client.LastName
	}

	return AppointmentListDTO{
		ID:            ap.ID,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		PaymentStatus: ap.PaymentStatus,
		ClientName:    clientName,
		Services:      strings.Join(names, ", "),
		TotalAmount:   ap.TotalAmount,
	}
}
