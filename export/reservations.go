// Package export renders downloadable reports for the admin dashboard.
package export

import (
	"fmt"
	"time"

	"restoran/model"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

var headings = []interface{}{
	"ID", "Name", "Phone", "Date", "Start Time", "End Time",
	"Guests", "Order", "Total Price", "Status",
}

var columnWidths = map[string]float64{
	"A": 10, "B": 25, "C": 20, "D": 15, "E": 15,
	"F": 15, "G": 10, "H": 30, "I": 15, "J": 15,
}

// Summary carries the aggregate totals rendered below the data rows. It is
// kept separate from the reservation rows so the sheet layout, not the data
// model, decides how totals are displayed.
type Summary struct {
	TotalReservations int
	TotalGuests       int
	TotalRevenue      int64
}

// Summarize computes the report totals over the fetched reservations.
func Summarize(reservations []model.Reservation) Summary {
	s := Summary{TotalReservations: len(reservations)}
	for _, r := range reservations {
		s.TotalGuests += r.Guests
		s.TotalRevenue += r.TotalPrice
	}
	return s
}

// Status derives the display status of a reservation: "Reservation Ended"
// once now is past the reservation's date plus end time, "Active" otherwise.
func Status(r model.Reservation, now time.Time) string {
	end, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.EndTime, now.Location())
	if err == nil && now.After(end) {
		return "Reservation Ended"
	}
	return "Active"
}

// Reservations builds the styled xlsx report: a header row, one row per
// reservation, then a "Total Reservations" row (count and revenue) and a
// "Total Guests" row. Summary rows carry no status.
func Reservations(reservations []model.Reservation, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetRow(sheet, "A1", &headings); err != nil {
		return nil, err
	}

	for i, r := range reservations {
		row := []interface{}{
			r.ID, r.Name, r.Phone, r.Date, r.StartTime, r.EndTime,
			r.Guests, r.Menus, r.TotalPrice, Status(r, now),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	s := Summarize(reservations)
	summaryRows := [][]interface{}{
		{"", "Total Reservations", "", "", "", "", s.TotalReservations, "", s.TotalRevenue, ""},
		{"", "Total Guests", "", "", "", "", s.TotalGuests, "", "", ""},
	}
	firstSummaryRow := len(reservations) + 2
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", firstSummaryRow+i)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, err
		}
	}

	if err := applyStyles(f, len(reservations)); err != nil {
		return nil, err
	}

	return f, nil
}

func applyStyles(f *excelize.File, dataRows int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4A86E8"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 2},
			{Type: "right", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return err
	}

	bandStyle := func(color string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border: []excelize.Border{
				{Type: "left", Color: "D3D3D3", Style: 1},
				{Type: "right", Color: "D3D3D3", Style: 1},
				{Type: "top", Color: "D3D3D3", Style: 1},
				{Type: "bottom", Color: "D3D3D3", Style: 1},
			},
		})
	}
	evenStyle, err := bandStyle("F2F2F2")
	if err != nil {
		return err
	}
	oddStyle, err := bandStyle("FFFFFF")
	if err != nil {
		return err
	}

	for row := 2; row < dataRows+2; row++ {
		style := oddStyle
		if row%2 == 0 {
			style = evenStyle
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), style); err != nil {
			return err
		}
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "4A86E8"},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return err
	}
	firstSummaryRow := dataRows + 2
	if err := f.SetCellStyle(sheet,
		fmt.Sprintf("A%d", firstSummaryRow),
		fmt.Sprintf("J%d", firstSummaryRow+1),
		summaryStyle); err != nil {
		return err
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}
