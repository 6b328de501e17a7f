package booking

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-api/internal/models"
)

func workingWeek() models.WeekSchedule {
	var ws models.WeekSchedule
	for i := range ws {
		ws[i] = models.DaySchedule{Start: "09:00", End: "17:00"}
	}
	return ws
}

func TestValidateWeekSchedule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.WeekSchedule)
		wantErr bool
	}{
		{
			name:   "plain working week is valid",
			mutate: func(ws *models.WeekSchedule) {},
		},
		{
			name: "empty days follow salon hours",
			mutate: func(ws *models.WeekSchedule) {
				ws[1] = models.DaySchedule{}
			},
		},
		{
			name: "break inside the window is valid",
			mutate: func(ws *models.WeekSchedule) {
				ws[1].Breaks = []models.Interval{{Start: "12:00", End: "13:00"}}
			},
		},
		{
			name: "break outside the window rejected",
			mutate: func(ws *models.WeekSchedule) {
				ws[1].Breaks = []models.Interval{{Start: "08:00", End: "09:30"}}
			},
			wantErr: true,
		},
		{
			name: "overlapping breaks rejected",
			mutate: func(ws *models.WeekSchedule) {
				ws[1].Breaks = []models.Interval{
					{Start: "12:00", End: "13:00"},
					{Start: "12:30", End: "14:00"},
				}
			},
			wantErr: true,
		},
		{
			name: "inverted working window rejected",
			mutate: func(ws *models.WeekSchedule) {
				ws[1] = models.DaySchedule{Start: "17:00", End: "09:00"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := workingWeek()
			tt.mutate(&ws)

			err := ValidateWeekSchedule(ws)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOnVacation(t *testing.T) {
	st := &models.Stylist{
		Vacations: []models.DateRange{
			{From: "2026-09-10", To: "2026-09-15"},
		},
	}

	tests := []struct {
		day  string
		want bool
	}{
		{"2026-09-09", false},
		{"2026-09-10", true},
		{"2026-09-15", true},
		{"2026-09-16", false},
	}
	for _, tt := range tests {
		if got := OnVacation(st, date(t, tt.day)); got != tt.want {
			t.Errorf("OnVacation(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestStylistBusy(t *testing.T) {
	monday := date(t, "2026-09-14")
	salonWin := Window{Open: "09:00", Close: "18:00"}

	t.Run("inactive stylist is busy all day", func(t *testing.T) {
		st := &models.Stylist{Active: false, Schedule: workingWeek()}
		busy := StylistBusy(st, monday, salonWin)
		if len(busy) != 1 || busy[0].End.Sub(busy[0].Start) != 24*time.Hour {
			t.Errorf("busy = %v", busy)
		}
	})

	t.Run("vacation day is busy all day", func(t *testing.T) {
		st := &models.Stylist{
			Active:    true,
			Schedule:  workingWeek(),
			Vacations: []models.DateRange{{From: "2026-09-14", To: "2026-09-14"}},
		}
		busy := StylistBusy(st, monday, salonWin)
		if len(busy) != 1 {
			t.Errorf("busy = %v", busy)
		}
	})

	t.Run("working day blocks off-window stretches and breaks", func(t *testing.T) {
		ws := workingWeek()
		ws[1].Breaks = []models.Interval{{Start: "12:00", End: "13:00"}}
		st := &models.Stylist{Active: true, Schedule: ws}

		busy := StylistBusy(st, monday, salonWin)

		// 00:00-09:00, 12:00-13:00, 17:00-24:00
		if len(busy) != 3 {
			t.Fatalf("expected 3 busy ranges, got %v", busy)
		}
		if busy[1].Start.Format("15:04") != "12:00" || busy[1].End.Format("15:04") != "13:00" {
			t.Errorf("break range = %v-%v", busy[1].Start, busy[1].End)
		}
		if busy[2].Start.Format("15:04") != "17:00" {
			t.Errorf("evening block starts %v", busy[2].Start)
		}
	})

	t.Run("empty day schedule falls back to salon hours", func(t *testing.T) {
		var ws models.WeekSchedule
		st := &models.Stylist{Active: true, Schedule: ws}

		busy := StylistBusy(st, monday, salonWin)

		// Only the off-window stretches: 00:00-09:00 and 18:00-24:00.
		if len(busy) != 2 {
			t.Fatalf("expected 2 busy ranges, got %v", busy)
		}
		if busy[1].Start.Format("15:04") != "18:00" {
			t.Errorf("evening block starts %v", busy[1].Start)
		}
	})

	t.Run("busy ranges subtract cleanly from the grid", func(t *testing.T) {
		ws := workingWeek()
		ws[1].Breaks = []models.Interval{{Start: "12:00", End: "13:00"}}
		st := &models.Stylist{Active: true, Schedule: ws}

		busy := StylistBusy(st, monday, salonWin)
		longAgo := monday.AddDate(-1, 0, 0)

		got := starts(Available(monday, 60, salonWin, 60, 0, longAgo, busy))
		want := []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}
		if !equalStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
