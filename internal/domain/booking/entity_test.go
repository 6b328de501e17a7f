package booking

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	t.Run("pending confirms", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		if err := Confirm(ap, now); err != nil {
			t.Fatal(err)
		}
		if ap.Status != string(StatusConfirmed) {
			t.Errorf("status = %s", ap.Status)
		}
	})

	t.Run("confirmed completes and stamps the time", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		if err := Complete(ap, now); err != nil {
			t.Fatal(err)
		}
		if ap.Status != string(StatusCompleted) {
			t.Errorf("status = %s", ap.Status)
		}
		if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
			t.Errorf("completed_at = %v", ap.CompletedAt)
		}
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		err := Complete(ap, now)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("got %v", err)
		}
	})

	t.Run("confirmed marks no-show", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		if err := MarkNoShow(ap, now); err != nil {
			t.Fatal(err)
		}
		if ap.Status != string(StatusNoShow) {
			t.Errorf("status = %s", ap.Status)
		}
	})

	t.Run("completed cannot cancel", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusCompleted)}
		_, err := Cancel(ap, now, "")
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("got %v", err)
		}
	})

	t.Run("no-show cannot confirm", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusNoShow)}
		err := Confirm(ap, now)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("got %v", err)
		}
	})
}

func TestCancelIdempotent(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	ap := &models.Appointment{Status: string(StatusConfirmed)}

	changed, err := Cancel(ap, now, "client called")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("first cancel should report changed")
	}
	if ap.CancellationReason != "client called" {
		t.Errorf("reason = %q", ap.CancellationReason)
	}

	changed, err = Cancel(ap, later, "again")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("second cancel should be a no-op")
	}
	if !ap.CancelledAt.Equal(now) {
		t.Errorf("cancelled_at moved to %v", ap.CancelledAt)
	}
	if ap.CancellationReason != "client called" {
		t.Errorf("reason overwritten to %q", ap.CancellationReason)
	}
}

func TestMarkPaid(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentPending),
	}

	MarkPaid(ap, "pi_123")

	if ap.PaymentStatus != string(PaymentPaid) {
		t.Errorf("payment status = %s", ap.PaymentStatus)
	}
	if ap.PaymentRef != "pi_123" {
		t.Errorf("payment ref = %s", ap.PaymentRef)
	}
	// Paying never advances the booking status.
	if ap.Status != string(StatusPending) {
		t.Errorf("status = %s", ap.Status)
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(false); got != StatusPending {
		t.Errorf("public booking starts %s", got)
	}
	if got := InitialStatus(true); got != StatusConfirmed {
		t.Errorf("staff booking starts %s", got)
	}
}
