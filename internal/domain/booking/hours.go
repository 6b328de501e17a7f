package booking

import (
	"time"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
)

// DefaultWeekHours opens every day 09:00-18:00.
func DefaultWeekHours() models.WeekHours {
	var wh models.WeekHours
	for i := range wh {
		wh[i] = models.DayHours{Open: DefaultOpen, Close: DefaultClose}
	}
	return wh
}

func parseHM(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

// ValidateWeekHours rejects malformed operating hours at the boundary instead
// of trusting the stored JSON: every non-closed day needs parsable times with
// open strictly before close.
func ValidateWeekHours(wh models.WeekHours) error {
	for _, day := range wh {
		if day.Closed {
			continue
		}

		open, err := parseHM(day.Open)
		if err != nil {
			return httperr.ErrBusiness("invalid_operating_hours")
		}
		closeAt, err := parseHM(day.Close)
		if err != nil {
			return httperr.ErrBusiness("invalid_operating_hours")
		}
		if !open.Before(closeAt) {
			return httperr.ErrBusiness("invalid_operating_hours")
		}
	}
	return nil
}

// WindowFor resolves the salon's operating window on the given date.
// Returns false when the salon is closed that day.
func WindowFor(wh models.WeekHours, date time.Time) (Window, bool) {
	day := wh[int(date.Weekday())]
	if day.Closed || day.Open == "" || day.Close == "" {
		return Window{}, false
	}
	return Window{Open: day.Open, Close: day.Close}, true
}
