package booking

import (
	"sort"
	"time"

	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/models"
)

// ValidateWeekSchedule checks a stylist's weekly schedule: working days need
// parsable start < end, each break must sit inside the working window, and
// breaks must not overlap each other.
func ValidateWeekSchedule(ws models.WeekSchedule) error {
	for _, day := range ws {
		if day.Off {
			continue
		}
		if day.Start == "" && day.End == "" && len(day.Breaks) == 0 {
			continue
		}

		start, err := parseHM(day.Start)
		if err != nil {
			return httperr.ErrBusiness("invalid_schedule")
		}
		end, err := parseHM(day.End)
		if err != nil || !start.Before(end) {
			return httperr.ErrBusiness("invalid_schedule")
		}

		breaks := make([][2]time.Time, 0, len(day.Breaks))
		for _, br := range day.Breaks {
			bs, err := parseHM(br.Start)
			if err != nil {
				return httperr.ErrBusiness("invalid_schedule")
			}
			be, err := parseHM(br.End)
			if err != nil || !bs.Before(be) {
				return httperr.ErrBusiness("invalid_schedule")
			}
			if bs.Before(start) || be.After(end) {
				return httperr.ErrBusiness("invalid_schedule")
			}
			breaks = append(breaks, [2]time.Time{bs, be})
		}

		sort.Slice(breaks, func(i, j int) bool { return breaks[i][0].Before(breaks[j][0]) })
		for i := 1; i < len(breaks); i++ {
			if breaks[i][0].Before(breaks[i-1][1]) {
				return httperr.ErrBusiness("invalid_schedule")
			}
		}
	}
	return nil
}

// OnVacation reports whether the date falls inside any declared vacation
// range. Ranges are inclusive "2006-01-02" strings, so lexicographic
// comparison is enough.
func OnVacation(st *models.Stylist, date time.Time) bool {
	day := date.Format("2006-01-02")
	for _, v := range st.Vacations {
		if v.From <= day && day <= v.To {
			return true
		}
	}
	return false
}

// StylistBusy derives the stylist's unavailable intervals on one date from
// their schedule: the whole day when off duty or on vacation, otherwise the
// stretches outside the working window plus declared breaks. Returned sorted
// by start, ready for Available.
func StylistBusy(st *models.Stylist, date time.Time, salonWindow Window) []TimeRange {
	wholeDay := func() []TimeRange {
		s, _ := at(date, "00:00")
		return []TimeRange{{Start: s, End: s.Add(24 * time.Hour)}}
	}

	if !st.Active || OnVacation(st, date) {
		return wholeDay()
	}

	day := st.Schedule[int(date.Weekday())]
	if day.Off {
		return wholeDay()
	}

	// No schedule row means the stylist follows the salon's hours.
	workStartHM, workEndHM := day.Start, day.End
	if workStartHM == "" || workEndHM == "" {
		workStartHM, workEndHM = salonWindow.Open, salonWindow.Close
	}

	workStart, ok := at(date, workStartHM)
	if !ok {
		return wholeDay()
	}
	workEnd, ok := at(date, workEndHM)
	if !ok || !workStart.Before(workEnd) {
		return wholeDay()
	}

	dayStart, _ := at(date, "00:00")
	dayEnd := dayStart.Add(24 * time.Hour)

	busy := []TimeRange{}
	if dayStart.Before(workStart) {
		busy = append(busy, TimeRange{Start: dayStart, End: workStart})
	}

	for _, br := range day.Breaks {
		bs, ok1 := at(date, br.Start)
		be, ok2 := at(date, br.End)
		if ok1 && ok2 && bs.Before(be) {
			busy = append(busy, TimeRange{Start: bs, End: be})
		}
	}

	if workEnd.Before(dayEnd) {
		busy = append(busy, TimeRange{Start: workEnd, End: dayEnd})
	}

	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	return busy
}
