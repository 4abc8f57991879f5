package export

import (
	"testing"
	"time"

	"restoran/model"

	"gorm.io/gorm"
)

func sampleReservations() []model.Reservation {
	return []model.Reservation{
		{
			Model: gorm.Model{ID: 1},
			Name:  "John Doe", Phone: "08123456789",
			Date: "2026-08-20", StartTime: "18:00", EndTime: "20:00",
			Guests: 5, Menus: "Khao Pad x5", TotalPrice: 350000,
		},
		{
			Model: gorm.Model{ID: 2},
			Name:  "Jane Smith", Phone: "08198765432",
			Date: "2026-08-29", StartTime: "19:00", EndTime: "20:00",
			Guests: 3, Menus: "Som Tam x3", TotalPrice: 210000,
		},
		{
			Model: gorm.Model{ID: 3},
			Name:  "Michael Johnson", Phone: "08122334455",
			Date: "2026-08-30", StartTime: "17:00", EndTime: "19:00",
			Guests: 2, Menus: "Yam Nua x2", TotalPrice: 225000,
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleReservations())

	if s.TotalReservations != 3 {
		t.Errorf("expected 3 reservations, got %d", s.TotalReservations)
	}
	if s.TotalGuests != 10 {
		t.Errorf("expected 10 guests, got %d", s.TotalGuests)
	}
	if s.TotalRevenue != 785000 {
		t.Errorf("expected revenue 785000, got %d", s.TotalRevenue)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalReservations != 0 || s.TotalGuests != 0 || s.TotalRevenue != 0 {
		t.Errorf("expected zero summary for no reservations, got %+v", s)
	}
}

func TestStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		endTime string
		want    string
	}{
		{"ended yesterday", "2026-08-27", "20:00", "Reservation Ended"},
		{"ended earlier today", "2026-08-28", "19:00", "Reservation Ended"},
		{"still running", "2026-08-28", "20:00", "Active"},
		{"upcoming", "2026-08-29", "20:00", "Active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reservation{Date: tt.date, EndTime: tt.endTime}
			if got := Status(r, now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReservations_SummaryRows(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	f, err := Reservations(sampleReservations(), now)
	if err != nil {
		t.Fatalf("failed to build report: %v", err)
	}

	// 3 data rows, summary starts on row 5.
	cell := func(ref string) string {
		v, err := f.GetCellValue("Sheet1", ref)
		if err != nil {
			t.Fatalf("failed to read cell %s: %v", ref, err)
		}
		return v
	}

	if got := cell("B5"); got != "Total Reservations" {
		t.Errorf("expected first summary label in B5, got %q", got)
	}
	if got := cell("G5"); got != "3" {
		t.Errorf("expected reservation count 3 in G5, got %q", got)
	}
	if got := cell("I5"); got != "785000" {
		t.Errorf("expected revenue 785000 in I5, got %q", got)
	}
	if got := cell("B6"); got != "Total Guests" {
		t.Errorf("expected second summary label in B6, got %q", got)
	}
	if got := cell("G6"); got != "10" {
		t.Errorf("expected guest total 10 in G6, got %q", got)
	}

	// Summary rows carry no status.
	if got := cell("J5"); got != "" {
		t.Errorf("expected no status in summary row, got %q", got)
	}
	if got := cell("J6"); got != "" {
		t.Errorf("expected no status in summary row, got %q", got)
	}
}

func TestReservations_DataRows(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	f, err := Reservations(sampleReservations(), now)
	if err != nil {
		t.Fatalf("failed to build report: %v", err)
	}

	cell := func(ref string) string {
		v, err := f.GetCellValue("Sheet1", ref)
		if err != nil {
			t.Fatalf("failed to read cell %s: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "ID" {
		t.Errorf("expected heading ID in A1, got %q", got)
	}
	if got := cell("J1"); got != "Status" {
		t.Errorf("expected heading Status in J1, got %q", got)
	}
	if got := cell("B2"); got != "John Doe" {
		t.Errorf("expected first data row in B2, got %q", got)
	}
	if got := cell("H2"); got != "Khao Pad x5" {
		t.Errorf("expected order description in H2, got %q", got)
	}
	// First reservation ended before now, the other two have not.
	if got := cell("J2"); got != "Reservation Ended" {
		t.Errorf("expected ended status in J2, got %q", got)
	}
	if got := cell("J3"); got != "Active" {
		t.Errorf("expected active status in J3, got %q", got)
	}
}

func TestReservations_EmptyStore(t *testing.T) {
	f, err := Reservations(nil, time.Now())
	if err != nil {
		t.Fatalf("failed to build empty report: %v", err)
	}

	got, err := f.GetCellValue("Sheet1", "B2")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if got != "Total Reservations" {
		t.Errorf("expected summary directly under headings, got %q", got)
	}
}
