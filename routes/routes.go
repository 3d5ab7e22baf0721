package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"servispro-backend/config"
	"servispro-backend/controllers"
	"servispro-backend/utils"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth          *controllers.AuthController
	Devices       *controllers.DeviceController
	Customers     *controllers.CustomerController
	Expenses      *controllers.ExpenseController
	Reports       *controllers.ReportController
	Dashboard     *controllers.DashboardController
	Settings      *controllers.SettingsController
	Notifications *controllers.NotificationController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		devices := api.Group("/devices")
		{
			devices.POST("", ctrl.Devices.Create)
			devices.GET("", ctrl.Devices.List)
			devices.GET("/:id", ctrl.Devices.Get)
			devices.PUT("/:id", ctrl.Devices.Update)
			devices.DELETE("/:id", ctrl.Devices.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", ctrl.Customers.Create)
			customers.GET("", ctrl.Customers.List)
			customers.GET("/:id", ctrl.Customers.Get)
			customers.GET("/:id/devices", ctrl.Customers.Devices)
			customers.PUT("/:id", ctrl.Customers.Update)
			customers.DELETE("/:id", ctrl.Customers.Delete)
		}

		expenses := api.Group("/expenses")
		{
			expenses.POST("", ctrl.Expenses.Create)
			expenses.GET("", ctrl.Expenses.List)
			expenses.GET("/:id", ctrl.Expenses.Get)
			expenses.PUT("/:id", ctrl.Expenses.Update)
			expenses.DELETE("/:id", ctrl.Expenses.Delete)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/service", ctrl.Reports.GetServiceReport)
			reports.GET("/financial", ctrl.Reports.GetFinancialReport)
			reports.GET("/financial/export", ctrl.Reports.ExportFinancialReport)
		}

		api.GET("/dashboard", ctrl.Dashboard.Overview)

		settings := api.Group("/settings")
		{
			settings.GET("", ctrl.Settings.Get)
			settings.PUT("", ctrl.Settings.Update)
			settings.GET("/email", ctrl.Settings.GetEmailConfig)
			settings.PUT("/email", ctrl.Settings.SaveEmailConfig)
		}
		api.GET("/options", ctrl.Settings.Options)

		notifications := api.Group("/notifications")
		{
			notifications.GET("", ctrl.Notifications.List)
			notifications.GET("/unread-count", ctrl.Notifications.UnreadCount)
			notifications.PUT("/:id/read", ctrl.Notifications.MarkAsRead)
			notifications.PUT("/read-all", ctrl.Notifications.MarkAllAsRead)
		}
	}

	return r
}
