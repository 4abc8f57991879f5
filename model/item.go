package model

import "gorm.io/gorm"

// Item is an inventory entry tracked by the POS side of the dashboard.
type Item struct {
	gorm.Model
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
}
