package booking

import (
	"context"
	"testing"

	"github.com/glowdesk/salon-api/internal/httperr"
)

func publicInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		SalonID:         1,
		ServiceIDs:      []uint{1, 2},
		Date:            "2030-06-10",
		Time:            "10:00",
		FirstName:       "Dana",
		LastName:        "Reyes",
		Phone:           "+15551234567",
		AcceptedTerms:   true,
		SubmissionToken: "tok-public-1",
	}
}

func staffInput() CreateAppointmentInput {
	userID := uint(7)
	return CreateAppointmentInput{
		SalonID:         1,
		Staff:           true,
		UserID:          &userID,
		ServiceIDs:      []uint{1},
		Date:            "2030-06-10",
		Time:            "11:00",
		FirstName:       "Walkin",
		Phone:           "+15559876543",
		SubmissionToken: "tok-staff-1",
	}
}

func TestCreateAppointmentPublic(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), publicInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != "pending" {
		t.Errorf("public booking status = %s, want pending", ap.Status)
	}
	if ap.PaymentStatus != "pending" {
		t.Errorf("payment status = %s", ap.PaymentStatus)
	}
	if ap.TotalAmount != 165 {
		t.Errorf("total = %v, want 165", ap.TotalAmount)
	}
	// The color service requires a deposit, 20 percent of the total.
	if ap.DepositAmount != 33 {
		t.Errorf("deposit = %v, want 33", ap.DepositAmount)
	}
	if got := ap.EndTime.Sub(ap.StartTime); got.Minutes() != 120 {
		t.Errorf("duration = %v", got)
	}

	if len(ap.Services) != 2 {
		t.Fatalf("snapshot rows = %d", len(ap.Services))
	}
	if ap.Services[0].Name != "Cut" || ap.Services[1].Name != "Color" {
		t.Errorf("snapshot order = %s, %s", ap.Services[0].Name, ap.Services[1].Name)
	}
	if ap.Services[1].Price != 120 {
		t.Errorf("snapshot price = %v", ap.Services[1].Price)
	}

	if len(repo.clients) != 1 {
		t.Errorf("clients created = %d", len(repo.clients))
	}
}

func TestCreateAppointmentStaff(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), staffInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ap.Status != "confirmed" {
		t.Errorf("staff booking status = %s, want confirmed", ap.Status)
	}
}

func TestCreateAppointmentTokenReplay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	first, err := uc.Execute(context.Background(), publicInput())
	if err != nil {
		t.Fatalf("first: %v", err)
	}

	second, err := uc.Execute(context.Background(), publicInput())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("replay returned a different appointment: %d vs %d", second.ID, first.ID)
	}
	if len(repo.appointments) != 1 {
		t.Errorf("appointments stored = %d, want 1", len(repo.appointments))
	}
}

func TestCreateAppointmentStylistConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	stylistID := uint(1)

	in := staffInput()
	in.StylistID = &stylistID
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	overlap := staffInput()
	overlap.StylistID = &stylistID
	overlap.Time = "11:15"
	overlap.SubmissionToken = "tok-staff-2"

	_, err := uc.Execute(context.Background(), overlap)
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Errorf("got %v, want time_conflict", err)
	}
}

func TestCreateAppointmentPublicSlotNotOffered(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	in := publicInput()
	in.Time = "17:30" // 120 minutes would run past closing

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_not_available") {
		t.Errorf("got %v, want slot_not_available", err)
	}
}

func TestCreateAppointmentPublicRequiresTerms(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	in := publicInput()
	in.AcceptedTerms = false

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "terms_not_accepted") {
		t.Errorf("got %v, want terms_not_accepted", err)
	}
}

func TestCreateAppointmentStaffValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateAppointmentInput)
		wantCode string
	}{
		{
			name:     "unknown service",
			mutate:   func(in *CreateAppointmentInput) { in.ServiceIDs = []uint{99} },
			wantCode: "service_not_found",
		},
		{
			name:     "malformed time",
			mutate:   func(in *CreateAppointmentInput) { in.Time = "eleven" },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "before opening",
			mutate:   func(in *CreateAppointmentInput) { in.Time = "07:00" },
			wantCode: "outside_operating_hours",
		},
		{
			name:     "in the past",
			mutate:   func(in *CreateAppointmentInput) { in.Date = "2020-01-06" },
			wantCode: "too_soon",
		},
		{
			name:     "missing phone",
			mutate:   func(in *CreateAppointmentInput) { in.Phone = "" },
			wantCode: "missing_contact_fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateAppointment(repo, nil)

			in := staffInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("got %v, want %s", err, tt.wantCode)
			}
		})
	}
}
