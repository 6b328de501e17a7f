package booking

import (
	"time"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
	"github.com/glowdesk/salon-api/internal/validators"
)

type Step int

const (
	StepSelectingServices Step = iota
	StepSelectingStylist
	StepSelectingDateTime
	StepEnteringContactInfo
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepSelectingServices:
		return "selecting_services"
	case StepSelectingStylist:
		return "selecting_stylist"
	case StepSelectingDateTime:
		return "selecting_datetime"
	case StepEnteringContactInfo:
		return "entering_contact_info"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

type ContactInfo struct {
	FirstName     string
	LastName      string
	Phone         string
	Email         string
	AcceptedTerms bool
}

// Draft is the accumulated appointment a completed workflow submits to the
// lifecycle manager.
type Draft struct {
	SalonID         uint
	StylistID       *uint
	Services        []models.Service
	Start           time.Time
	End             time.Time
	Contact         ContactInfo
	Totals          Totals
	SubmissionToken string
}

// Workflow is the booking flow as an explicit state machine value, so the
// whole flow is testable without any rendering layer. Totals are always
// recomputed from the current selection, never cached across changes.
type Workflow struct {
	step           Step
	salonID        uint
	depositPercent float64

	services  []models.Service
	stylistID *uint
	date      time.Time
	slot      TimeSlot
	contact   ContactInfo
}

func NewWorkflow(salonID uint, depositPercent float64) *Workflow {
	return &Workflow{
		step:           StepSelectingServices,
		salonID:        salonID,
		depositPercent: depositPercent,
	}
}

func (w *Workflow) Step() Step { return w.step }

func (w *Workflow) Totals() Totals {
	return ComputeTotals(w.services, w.depositPercent)
}

// SelectServices sets (or replaces) the service selection. Replacing it
// invalidates any chosen slot, since the total duration changed.
func (w *Workflow) SelectServices(services []models.Service) error {
	if w.step == StepSubmitted {
		return httperr.ErrBusiness("invalid_step")
	}
	if len(services) == 0 {
		return httperr.ErrBusiness("no_services_selected")
	}
	for _, svc := range services {
		if !svc.Active {
			return httperr.ErrBusiness("service_inactive")
		}
	}

	w.services = services
	w.slot = TimeSlot{}
	w.date = time.Time{}
	w.step = StepSelectingStylist
	return nil
}

// ChooseStylist records the preference; nil means "no preference", which is
// the default and always valid. Changing the stylist later invalidates the
// chosen slot because availability must be regenerated.
func (w *Workflow) ChooseStylist(stylistID *uint) error {
	if w.step < StepSelectingStylist || w.step == StepSubmitted {
		return httperr.ErrBusiness("invalid_step")
	}

	w.stylistID = stylistID
	w.slot = TimeSlot{}
	w.date = time.Time{}
	w.step = StepSelectingDateTime
	return nil
}

// ChooseSlot accepts a slot only if it is present in the generator's current
// output for this date/duration/stylist combination.
func (w *Workflow) ChooseSlot(date time.Time, slot TimeSlot, available []TimeSlot) error {
	if w.step != StepSelectingDateTime {
		return httperr.ErrBusiness("invalid_step")
	}

	found := false
	for _, s := range available {
		if s.Start == slot.Start && s.End == slot.End {
			found = true
			break
		}
	}
	if !found {
		return httperr.ErrBusiness("slot_not_available")
	}

	w.date = date
	w.slot = slot
	w.step = StepEnteringContactInfo
	return nil
}

func (w *Workflow) EnterContact(ci ContactInfo) error {
	if w.step != StepEnteringContactInfo {
		return httperr.ErrBusiness("invalid_step")
	}

	if ci.FirstName == "" || ci.LastName == "" || ci.Phone == "" {
		return httperr.ErrBusiness("missing_contact_fields")
	}
	if !ci.AcceptedTerms {
		return httperr.ErrBusiness("terms_not_accepted")
	}
	if ci.Email != "" && !validators.IsEmailShape(ci.Email) {
		return httperr.ErrBusiness("invalid_email")
	}

	w.contact = ci
	return nil
}

// Submit finalizes the workflow into a Draft carrying the client-generated
// submission token. The workflow reaches its terminal step; a failed request
// downstream leaves the caller free to resubmit the same draft, and the token
// makes that resubmission idempotent.
func (w *Workflow) Submit(token string) (Draft, error) {
	if w.step != StepEnteringContactInfo {
		return Draft{}, httperr.ErrBusiness("invalid_step")
	}
	if w.contact.FirstName == "" {
		return Draft{}, httperr.ErrBusiness("missing_contact_fields")
	}

	totals := w.Totals()

	start, ok := at(w.date, w.slot.Start)
	if !ok {
		return Draft{}, httperr.ErrBusiness("slot_not_available")
	}
	end := start.Add(time.Duration(totals.DurationMin) * time.Minute)

	w.step = StepSubmitted

	return Draft{
		SalonID:         w.salonID,
		StylistID:       w.stylistID,
		Services:        w.services,
		Start:           start,
		End:             end,
		Contact:         w.contact,
		Totals:          totals,
		SubmissionToken: token,
	}, nil
}

// Reset is the hard return to step one, dropping everything accumulated.
func (w *Workflow) Reset() {
	w.step = StepSelectingServices
	w.services = nil
	w.stylistID = nil
	w.date = time.Time{}
	w.slot = TimeSlot{}
	w.contact = ContactInfo{}
}
