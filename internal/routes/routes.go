package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/example/rms/internal/config"
	"github.com/example/rms/internal/handlers"
	"github.com/example/rms/internal/metrics"
	"github.com/example/rms/internal/middleware"
	"github.com/example/rms/internal/services"
	"github.com/example/rms/internal/store"
	"github.com/example/rms/internal/views"
)

// Handlers groups the HTTP handlers mounted by Mount.
type Handlers struct {
	Customers  *handlers.CustomerHandler
	Complaints *handlers.ComplaintHandler
	Pages      *handlers.PageHandler
	Health     *handlers.HealthHandler
}

// NewApp builds the Fiber app with the shared middleware stack.
func NewApp(cfg *config.Config, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "RMS",
		ErrorHandler: handlers.NewErrorHandler(log, cfg.Debug),
	})

	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
		Output: log.Out,
	}))
	app.Use(middleware.Metrics())
	// Inside Metrics so a recovered panic is still counted as a 500.
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Debug}))

	return app
}

// Register wires up all HTTP routes against the database.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, log *logrus.Logger) error {
	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("load views: %w", err)
	}

	s := store.New(db)
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, log)
	if !telegramService.Enabled() {
		log.Info("telegram notifications disabled")
	}

	Mount(app, Handlers{
		Customers:  handlers.NewCustomerHandler(s, log),
		Complaints: handlers.NewComplaintHandler(s, telegramService, log),
		Pages:      handlers.NewPageHandler(s, s, renderer),
		Health:     handlers.NewHealthHandler(s),
	})
	return nil
}

// Mount attaches the route table to app.
func Mount(app *fiber.App, h Handlers) {
	app.Get("/", h.Pages.Index)

	app.Post("/add-customer", h.Customers.CreateCustomer)
	app.Get("/customers", h.Customers.ListCustomers)

	app.Post("/complaint", h.Complaints.CreateComplaint)
	app.Put("/complaint/:id", h.Complaints.UpdateComplaint)
	app.Get("/complaints", h.Complaints.ListComplaints)

	view := app.Group("/view")
	view.Get("/customers", h.Pages.Customers)
	view.Get("/complaints", h.Pages.Complaints)

	app.Get("/healthz", h.Health.Health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
