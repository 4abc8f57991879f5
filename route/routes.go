package route

import (
	"restoran/controller"
	"restoran/utils"

	"github.com/gin-gonic/gin"
)

func RestoranRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/auth/login", controller.LoginAdmin)
	api.POST("/auth/refresh-token", controller.RefreshTokenFunc)

	// Public surface: guests create reservations and browse the menu.
	api.POST("/reservations", controller.CreateReservation)
	api.GET("/products", controller.GetProducts)
	api.GET("/products/:id", controller.GetProductByID)

	admin := api.Group("")
	admin.Use(utils.AdminMiddleware())
	{
		admin.GET("/reservations", controller.ListReservations)
		admin.GET("/reservations/export", controller.ExportReservations)
		admin.GET("/reservations/count", controller.CountReservations)
		admin.GET("/reservations/stats", controller.DashboardStats)
		admin.GET("/reservations/customers/total", controller.TotalCustomers)
		admin.GET("/reservations/customers/per-month", controller.CustomersPerMonth)

		admin.POST("/products", controller.AddProduct)
		admin.PUT("/products/:id", controller.UpdateProduct)
		admin.DELETE("/products/:id", controller.DeleteProduct)

		admin.POST("/items", controller.AddItem)
		admin.GET("/items", controller.GetItems)
		admin.GET("/items/:id", controller.GetItemByID)
		admin.PUT("/items/:id", controller.UpdateItem)
		admin.DELETE("/items/:id", controller.DeleteItem)
	}
}
