package model

import "gorm.io/gorm"

// Reservation is a booking record. Date is stored as "2006-01-02" and the
// time columns as "15:04"; Menus holds the flattened order description, one
// "<name> x<quantity>" entry per line.
type Reservation struct {
	gorm.Model
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Date       string `json:"date" gorm:"index"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Guests     int    `json:"guests"`
	Menus      string `json:"menus"`
	TotalPrice int64  `json:"total_price"`
}
