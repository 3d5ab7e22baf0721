package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"servispro-backend/config"
	"servispro-backend/controllers"
	"servispro-backend/routes"
	"servispro-backend/services"
	"servispro-backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found")
	}
	logger := config.GetLogger()

	db, err := config.OpenDB()
	if err != nil {
		logger.WithError(err).Fatal("failed to connect database")
	}

	recordStore, err := store.NewGormStore(db)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize record store")
	}

	clock := services.SystemClock()
	sms := services.NewSMSSenderFromEnv()
	notifier := services.NewNotificationService(recordStore, clock, logger, sms)
	query := services.NewQuery(recordStore, clock)

	deviceService := services.NewDeviceService(recordStore, clock, notifier, logger)
	customerService := services.NewCustomerService(recordStore, clock, notifier, logger)
	expenseService := services.NewExpenseService(recordStore, clock, notifier, logger)
	reportService := services.NewReportService(query, clock)
	settingsService := services.NewSettingsService(recordStore)
	userService := services.NewUserService(recordStore, clock)

	staleChecker := services.NewStaleDeviceChecker(query, notifier, clock, logger)
	if err := staleChecker.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start stale device checker")
	}
	defer staleChecker.Stop()

	r := routes.SetupRouter(routes.Controllers{
		Auth:          controllers.NewAuthController(userService),
		Devices:       controllers.NewDeviceController(deviceService, query),
		Customers:     controllers.NewCustomerController(customerService, query),
		Expenses:      controllers.NewExpenseController(expenseService, query),
		Reports:       controllers.NewReportController(reportService),
		Dashboard:     controllers.NewDashboardController(reportService, query),
		Settings:      controllers.NewSettingsController(settingsService),
		Notifications: controllers.NewNotificationController(notifier),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
