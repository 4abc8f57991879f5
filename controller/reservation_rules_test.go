package controller

import (
	"testing"

	"restoran/model"
)

func validRequest() ReservationRequest {
	return ReservationRequest{
		Name:      "John Doe",
		Phone:     "08123456789",
		Date:      "2026-09-01",
		StartTime: "18:00",
		EndTime:   "20:00",
		Guests:    5,
		Menus: []MenuSelection{
			{ID: 1, Quantity: 2},
		},
		TotalPrice: 350000,
	}
}

func TestValidateReservation_Valid(t *testing.T) {
	errs := ValidateReservation(validRequest())
	if len(errs) != 0 {
		t.Errorf("expected no validation errors, got %v", errs)
	}
}

func TestValidateReservation_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReservationRequest)
		field  string
	}{
		{"missing name", func(r *ReservationRequest) { r.Name = "" }, "name"},
		{"missing phone", func(r *ReservationRequest) { r.Phone = "" }, "phone"},
		{"phone too long", func(r *ReservationRequest) { r.Phone = "0812345678901234" }, "phone"},
		{"bad date", func(r *ReservationRequest) { r.Date = "01-09-2026" }, "date"},
		{"bad start time", func(r *ReservationRequest) { r.StartTime = "6pm" }, "start_time"},
		{"end before start", func(r *ReservationRequest) { r.EndTime = "17:00" }, "end_time"},
		{"end equals start", func(r *ReservationRequest) { r.EndTime = "18:00" }, "end_time"},
		{"zero guests", func(r *ReservationRequest) { r.Guests = 0 }, "guests"},
		{"empty menus", func(r *ReservationRequest) { r.Menus = nil }, "menus"},
		{"zero quantity", func(r *ReservationRequest) { r.Menus[0].Quantity = 0 }, "menus.0.quantity"},
		{"zero menu id", func(r *ReservationRequest) { r.Menus[0].ID = 0 }, "menus.0.id"},
		{"negative total price", func(r *ReservationRequest) { r.TotalPrice = -1 }, "total_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			errs := ValidateReservation(req)
			if len(errs[tt.field]) == 0 {
				t.Errorf("expected an error on field %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestCheckDailyCapacity_RejectionPrecision(t *testing.T) {
	err := CheckDailyCapacity(45, 10, 50)
	if err == nil {
		t.Fatal("expected a capacity error for 45+10 over a limit of 50")
	}
	if err.CurrentGuests != 45 {
		t.Errorf("expected current guests 45, got %d", err.CurrentGuests)
	}
	if err.AvailableSeats != 5 {
		t.Errorf("expected 5 available seats, got %d", err.AvailableSeats)
	}
	if err.Limit != 50 {
		t.Errorf("expected limit 50, got %d", err.Limit)
	}
}

func TestCheckDailyCapacity_AcceptanceBoundary(t *testing.T) {
	if err := CheckDailyCapacity(45, 5, 50); err != nil {
		t.Errorf("expected 45+5 to be accepted at limit 50, got %v", err)
	}
}

func TestCheckDailyCapacity_FullDay(t *testing.T) {
	err := CheckDailyCapacity(50, 1, 50)
	if err == nil {
		t.Fatal("expected a capacity error for a full day")
	}
	if err.AvailableSeats != 0 {
		t.Errorf("expected 0 available seats, got %d", err.AvailableSeats)
	}
}

func TestCheckDailyCapacity_OverbookedDayFloorsAtZero(t *testing.T) {
	err := CheckDailyCapacity(55, 1, 50)
	if err == nil {
		t.Fatal("expected a capacity error for an overbooked day")
	}
	if err.AvailableSeats != 0 {
		t.Errorf("expected available seats floored at 0, got %d", err.AvailableSeats)
	}
}

func TestFlattenMenus_PreservesInputOrder(t *testing.T) {
	catalog := map[uint]model.Product{
		1: {Name: "Pad Thai"},
		2: {Name: "Tom Yum"},
	}
	selections := []MenuSelection{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 1},
	}

	got := FlattenMenus(selections, catalog)
	want := "Pad Thai x2\nTom Yum x1"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFlattenMenus_SkipsUnknownProducts(t *testing.T) {
	catalog := map[uint]model.Product{
		1: {Name: "Pad Thai"},
	}
	selections := []MenuSelection{
		{ID: 1, Quantity: 2},
		{ID: 99, Quantity: 3},
	}

	got := FlattenMenus(selections, catalog)
	want := "Pad Thai x2"
	if got != want {
		t.Errorf("expected unknown product to be skipped, got %q", got)
	}
}

func TestFlattenMenus_Empty(t *testing.T) {
	if got := FlattenMenus(nil, nil); got != "" {
		t.Errorf("expected empty description, got %q", got)
	}
}

func TestFillGuestBuckets(t *testing.T) {
	rows := []MonthlyGuests{
		{Month: 3, Total: 12},
		{Month: 7, Total: 8},
	}

	buckets := FillGuestBuckets(rows)

	for i, total := range buckets {
		switch i {
		case 2:
			if total != 12 {
				t.Errorf("expected 12 guests in March, got %d", total)
			}
		case 6:
			if total != 8 {
				t.Errorf("expected 8 guests in July, got %d", total)
			}
		default:
			if total != 0 {
				t.Errorf("expected 0 guests in month index %d, got %d", i, total)
			}
		}
	}
}

func TestFillGuestBuckets_IgnoresOutOfRangeMonths(t *testing.T) {
	buckets := FillGuestBuckets([]MonthlyGuests{{Month: 0, Total: 5}, {Month: 13, Total: 7}})
	for i, total := range buckets {
		if total != 0 {
			t.Errorf("expected empty bucket at index %d, got %d", i, total)
		}
	}
}
