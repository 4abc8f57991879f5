package model

import "gorm.io/gorm"

// Product is a menu catalog entry. Reservations reference products by ID
// when an order is flattened at admission time.
type Product struct {
	gorm.Model
	UUID        string  `json:"uuid" gorm:"uniqueIndex"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	IsSoldOut   bool    `json:"is_sold_out" gorm:"default:false"`
}
