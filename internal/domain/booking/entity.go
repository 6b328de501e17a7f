package booking

import (
	"time"

	"github.com/glowdesk/salon-api/internal/models"
)

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Cancel is idempotent in effect: cancelling an already-cancelled appointment
// reports changed == false and leaves CancelledAt untouched.
func Cancel(ap *models.Appointment, now time.Time, reason string) (changed bool, err error) {
	if Status(ap.Status) == StatusCancelled {
		return false, nil
	}

	if err := CanCancel(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.CancellationReason = reason
	return true, nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// MarkPaid records the external payment reference reported by the gateway
// webhook. No status guard: payment confirmation may race staff transitions.
func MarkPaid(ap *models.Appointment, ref string) {
	ap.PaymentStatus = string(PaymentPaid)
	ap.PaymentRef = ref
}
