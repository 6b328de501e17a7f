package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-api/internal/httperr"
)

// businessStatus maps domain error codes onto HTTP statuses. Codes not
// listed fall through to 400 so new domain rules fail closed as client
// errors rather than 500s.
var businessStatus = map[string]int{
	"salon_not_found":       http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"stylist_not_found":     http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"client_not_found":      http.StatusNotFound,
	"time_conflict":         http.StatusConflict,
	"slot_not_available":    http.StatusConflict,
	"invalid_state":         http.StatusConflict,
}

var businessMessage = map[string]string{
	"salon_not_found":         "Salon not found.",
	"service_not_found":       "One or more services were not found.",
	"stylist_not_found":       "Stylist not found.",
	"appointment_not_found":   "Appointment not found.",
	"client_not_found":        "Client not found.",
	"time_conflict":           "The stylist already has an appointment in that time range.",
	"slot_not_available":      "The chosen slot is no longer available.",
	"invalid_state":           "The appointment cannot transition from its current status.",
	"too_soon":                "The appointment does not meet the minimum advance notice.",
	"salon_closed":            "The salon is closed on that day.",
	"outside_operating_hours": "The requested time is outside operating hours.",
	"invalid_date_or_time":    "Date or time is malformed.",
	"missing_contact_fields":  "First name and phone are required.",
	"terms_not_accepted":      "The booking terms must be accepted.",
	"no_services_selected":    "At least one service must be selected.",
	"service_inactive":        "One of the selected services is no longer offered.",
	"invalid_email":           "Email address is not valid.",
	"invalid_status":          "Unknown appointment status.",
}

// writeError sends a business error with its mapped status, or a generic
// 500 for anything else.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.IsAnyBusiness(err); ok {
		status, found := businessStatus[code]
		if !found {
			status = http.StatusBadRequest
		}
		msg, found := businessMessage[code]
		if !found {
			msg = "The request could not be processed."
		}
		httperr.Write(c, status, code, msg)
		return
	}
	httperr.Internal(c, "internal_error", "An unexpected error occurred.")
}
