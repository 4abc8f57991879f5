package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"restoran/config"
	"restoran/database"
	"restoran/export"
	"restoran/model"

	"github.com/gin-gonic/gin"
)

// CreateReservation validates an incoming reservation request, checks the
// daily guest ceiling and persists the booking with its flattened order.
// The capacity read and the insert share one transaction holding a per-date
// advisory lock, so two concurrent requests for the same date cannot both
// slip under the ceiling.
func CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if fieldErrs := ValidateReservation(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Unexpected error occurred",
			})
		}
	}()

	// Serializes admissions per date for the lifetime of this transaction.
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", req.Date).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to lock reservation date: %v", err),
		})
		return
	}

	var totalGuestsToday int64
	if err := tx.Model(&model.Reservation{}).
		Where("date = ?", req.Date).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&totalGuestsToday).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to check daily capacity: %v", err),
		})
		return
	}

	if capErr := CheckDailyCapacity(int(totalGuestsToday), req.Guests, config.MaxDailyGuests()); capErr != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Sorry, the reservation limit for today has been reached. We cannot accommodate more guests for this date. Please consider choosing a different date",
			"details": gin.H{
				"current_guests":  capErr.CurrentGuests,
				"available_seats": capErr.AvailableSeats,
				"limit":           capErr.Limit,
				"suggestion":      "Unfortunately, we cannot accommodate more guests for this date. Please consider choosing a different date or contact us for assistance.",
			},
		})
		return
	}

	ids := make([]uint, 0, len(req.Menus))
	for _, sel := range req.Menus {
		ids = append(ids, sel.ID)
	}
	var products []model.Product
	if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to resolve menu items: %v", err),
		})
		return
	}
	catalog := make(map[uint]model.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	reservation := model.Reservation{
		Name:       req.Name,
		Phone:      req.Phone,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Guests:     req.Guests,
		Menus:      FlattenMenus(req.Menus, catalog),
		TotalPrice: req.TotalPrice,
	}

	if err := tx.Create(&reservation).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create reservation: %v", err),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Transaction failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reservation made successfully!",
		"data":    reservation,
	})
}

// ListReservations returns all reservations, optionally filtered to a single
// date with the ?date= query parameter.
func ListReservations(c *gin.Context) {
	query := database.DB.Model(&model.Reservation{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var reservations []model.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch reservations: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reservations,
	})
}

func CountReservations(c *gin.Context) {
	var total int64
	if err := database.DB.Model(&model.Reservation{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to count reservations: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"total_items": total,
	})
}

func TotalCustomers(c *gin.Context) {
	var totalGuests int64
	if err := database.DB.Model(&model.Reservation{}).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&totalGuests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to sum guests: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_customers": totalGuests,
	})
}

// DashboardStats returns the reservation count and guest total pair shown on
// the dashboard landing page.
func DashboardStats(c *gin.Context) {
	var totalReservations int64
	if err := database.DB.Model(&model.Reservation{}).Count(&totalReservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to count reservations: %v", err),
		})
		return
	}

	var totalCustomers int64
	if err := database.DB.Model(&model.Reservation{}).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&totalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to sum guests: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"total_reservations": totalReservations,
		"total_customers":    totalCustomers,
	})
}

// CustomersPerMonth returns guest totals bucketed per month for the current
// calendar year. Months without reservations report zero.
func CustomersPerMonth(c *gin.Context) {
	year := time.Now().Year()

	var rows []MonthlyGuests
	err := database.DB.Raw(`
		SELECT EXTRACT(MONTH FROM date::date)::int AS month,
		       SUM(guests)::bigint AS total
		FROM reservations
		WHERE deleted_at IS NULL
		  AND EXTRACT(YEAR FROM date::date) = ?
		GROUP BY month
		ORDER BY month`, year).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to aggregate guests per month: %v", err),
		})
		return
	}

	buckets := FillGuestBuckets(rows)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"months":          MonthNames,
		"total_customers": buckets,
	})
}

// ExportReservations streams the styled xlsx report of every reservation
// plus the two summary rows.
func ExportReservations(c *gin.Context) {
	var reservations []model.Reservation
	if err := database.DB.Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch reservations: %v", err),
		})
		return
	}

	f, err := export.Reservations(reservations, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to build export: %v", err),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("Failed to write export: %v", err)
	}
}
