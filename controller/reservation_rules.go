package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"restoran/model"
)

type MenuSelection struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type ReservationRequest struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Guests     int             `json:"guests"`
	Menus      []MenuSelection `json:"menus"`
	TotalPrice int64           `json:"total_price"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidateReservation checks every field of the request and returns a map
// from field name to the list of violated rules. An empty map means the
// request is well-formed. Nothing is persisted here.
func ValidateReservation(req ReservationRequest) map[string][]string {
	errs := map[string][]string{}

	addErr := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	if req.Name == "" {
		addErr("name", "The name field is required.")
	} else if len(req.Name) > 255 {
		addErr("name", "The name may not be greater than 255 characters.")
	}

	if req.Phone == "" {
		addErr("phone", "The phone field is required.")
	} else if len(req.Phone) > 15 {
		addErr("phone", "The phone may not be greater than 15 characters.")
	}

	if req.Date == "" {
		addErr("date", "The date field is required.")
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		addErr("date", "The date is not a valid date.")
	}

	start, startErr := time.Parse(timeLayout, req.StartTime)
	if req.StartTime == "" {
		addErr("start_time", "The start time field is required.")
	} else if startErr != nil {
		addErr("start_time", "The start time does not match the format H:i.")
	}

	end, endErr := time.Parse(timeLayout, req.EndTime)
	if req.EndTime == "" {
		addErr("end_time", "The end time field is required.")
	} else if endErr != nil {
		addErr("end_time", "The end time does not match the format H:i.")
	} else if startErr == nil && !end.After(start) {
		addErr("end_time", "The end time must be a time after start time.")
	}

	if req.Guests < 1 {
		addErr("guests", "The guests must be at least 1.")
	}

	if len(req.Menus) == 0 {
		addErr("menus", "The menus field is required.")
	}
	for i, sel := range req.Menus {
		if sel.ID < 1 {
			addErr(fmt.Sprintf("menus.%d.id", i), "The menu id must be a valid product id.")
		}
		if sel.Quantity < 1 {
			addErr(fmt.Sprintf("menus.%d.quantity", i), "The quantity must be at least 1.")
		}
	}

	if req.TotalPrice < 0 {
		addErr("total_price", "The total price must be at least 0.")
	}

	return errs
}

// CapacityError reports a rejected admission: accepting the request would
// push the date's guest total past the daily ceiling.
type CapacityError struct {
	CurrentGuests  int
	AvailableSeats int
	Limit          int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("daily guest limit reached: %d of %d seats taken, %d available",
		e.CurrentGuests, e.Limit, e.AvailableSeats)
}

// CheckDailyCapacity returns a CapacityError when totalGuestsToday plus the
// requested guests would exceed limit, nil otherwise. Booking exactly up to
// the limit is allowed.
func CheckDailyCapacity(totalGuestsToday, requested, limit int) *CapacityError {
	if totalGuestsToday+requested <= limit {
		return nil
	}
	available := limit - totalGuestsToday
	if available < 0 {
		available = 0
	}
	return &CapacityError{
		CurrentGuests:  totalGuestsToday,
		AvailableSeats: available,
		Limit:          limit,
	}
}

// FlattenMenus resolves each selection against the catalog and builds the
// ordered-menu description, one "<name> x<quantity>" line per selection, in
// input order. Selections whose id is not in the catalog are skipped and
// logged; the order is flattened best-effort.
func FlattenMenus(selections []MenuSelection, catalog map[uint]model.Product) string {
	lines := make([]string, 0, len(selections))
	for _, sel := range selections {
		product, ok := catalog[sel.ID]
		if !ok {
			log.Printf("Skipping unknown product id %d in reservation order", sel.ID)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s x%d", product.Name, sel.Quantity))
	}
	return strings.Join(lines, "\n")
}

var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthlyGuests is one aggregate row of the per-month guest query.
// Month is 1-based (1 = January).
type MonthlyGuests struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// FillGuestBuckets spreads the aggregate rows over a 12-element array
// indexed by month-1; months with no reservations stay zero.
func FillGuestBuckets(rows []MonthlyGuests) [12]int64 {
	var buckets [12]int64
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		buckets[row.Month-1] = row.Total
	}
	return buckets
}
