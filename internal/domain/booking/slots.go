package booking

import "time"

const (
	DefaultGranularityMin = 30
	DefaultMinLeadMinutes = 120

	DefaultOpen  = "09:00"
	DefaultClose = "18:00"
)

// Window is the operating window for a single day, "15:04" strings in the
// salon's timezone.
type Window struct {
	Open  string
	Close string
}

func DefaultWindow() Window {
	return Window{Open: DefaultOpen, Close: DefaultClose}
}

// at anchors a "15:04" time of day onto the given date.
func at(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}

// Slots generates the naive fixed-grid candidate start times for one day:
// every granularity step inside the window where start+duration still fits
// before closing and start is not earlier than now+minLead. A non-positive
// duration or an unparsable window yields an empty slice, which is a valid
// outcome, not an error. Pure function of its arguments.
func Slots(
	date time.Time,
	durationMin int,
	win Window,
	granularityMin int,
	minLead time.Duration,
	now time.Time,
) []TimeSlot {
	return Available(date, durationMin, win, granularityMin, minLead, now, nil)
}

// Available is Slots minus any candidate overlapping a busy interval. Busy
// intervals must be sorted by start time; existing appointments come back
// from the store already ordered that way.
func Available(
	date time.Time,
	durationMin int,
	win Window,
	granularityMin int,
	minLead time.Duration,
	now time.Time,
	busy []TimeRange,
) []TimeSlot {

	if durationMin <= 0 {
		return []TimeSlot{}
	}

	open, ok := at(date, win.Open)
	if !ok {
		return []TimeSlot{}
	}
	dayEnd, ok := at(date, win.Close)
	if !ok || !open.Before(dayEnd) {
		return []TimeSlot{}
	}

	if granularityMin <= 0 {
		granularityMin = DefaultGranularityMin
	}

	dur := time.Duration(durationMin) * time.Minute
	step := time.Duration(granularityMin) * time.Minute
	minStart := now.In(date.Location()).Add(minLead)

	slots := []TimeSlot{}
	busyIdx := 0

	for cur := open; !cur.Add(dur).After(dayEnd); cur = cur.Add(step) {
		if cur.Before(minStart) {
			continue
		}

		slotEnd := cur.Add(dur)

		for busyIdx < len(busy) && !busy[busyIdx].End.After(cur) {
			busyIdx++
		}

		conflict := false
		for i := busyIdx; i < len(busy); i++ {
			if !busy[i].Start.Before(slotEnd) {
				break
			}
			if cur.Before(busy[i].End) && slotEnd.After(busy[i].Start) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}
