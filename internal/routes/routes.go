package routes

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prashilgroup/prashil-backend/internal/config"
	"github.com/prashilgroup/prashil-backend/internal/handlers"
	"github.com/prashilgroup/prashil-backend/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	faqHandler *handlers.FAQHandler,
	profileHandler *handlers.ProfileHandler,
	applicationHandler *handlers.ApplicationHandler,
	messageHandler *handlers.MessageHandler,
	statsHandler *handlers.StatsHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public catalog
	api.Get("/courses", catalogHandler.ListCourses)
	api.Get("/guidance-services", catalogHandler.ListGuidanceServices)
	api.Get("/finance-services", catalogHandler.ListFinanceServices)
	api.Get("/finance-categories", catalogHandler.ListFinanceCategories)
	api.Get("/faqs", faqHandler.List)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes mounted individually so JWT middleware
	// does not leak onto the public group
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Post("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// User dashboard (protected)
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.Get)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.Update)

	api.Get("/applications", middleware.JWTProtected(cfg), applicationHandler.ListMine)
	api.Post("/applications", middleware.JWTProtected(cfg), applicationHandler.Create)
	api.Delete("/applications/:id", middleware.JWTProtected(cfg), applicationHandler.Delete)

	api.Get("/messages", middleware.JWTProtected(cfg), messageHandler.ListMine)
	api.Post("/messages", middleware.JWTProtected(cfg), messageHandler.Create)
	api.Put("/messages/:id/read", middleware.JWTProtected(cfg), messageHandler.MarkRead)

	api.Get("/dashboard/stats", middleware.JWTProtected(cfg), statsHandler.UserStats)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/stats", statsHandler.AdminStats)
	admin.Get("/users", profileHandler.ListUsers)

	admin.Get("/applications", applicationHandler.ListAll)
	admin.Put("/applications/:id/response", applicationHandler.Respond)
	admin.Put("/applications/:id/status", applicationHandler.SetStatus)

	admin.Get("/messages", messageHandler.ListAll)
	admin.Put("/messages/:id/response", messageHandler.Respond)

	admin.Post("/courses", catalogHandler.CreateCourse)
	admin.Put("/courses/:id", catalogHandler.UpdateCourse)
	admin.Delete("/courses/:id", catalogHandler.DeleteCourse)

	admin.Post("/guidance-services", catalogHandler.CreateGuidanceService)
	admin.Put("/guidance-services/:id", catalogHandler.UpdateGuidanceService)
	admin.Delete("/guidance-services/:id", catalogHandler.DeleteGuidanceService)

	admin.Post("/finance-categories", catalogHandler.CreateFinanceCategory)
	admin.Post("/finance-services", catalogHandler.CreateFinanceService)
	admin.Put("/finance-services/:id", catalogHandler.UpdateFinanceService)
	admin.Delete("/finance-services/:id", catalogHandler.DeleteFinanceService)

	admin.Post("/faqs", faqHandler.Create)
	admin.Put("/faqs/:id", faqHandler.Update)
	admin.Delete("/faqs/:id", faqHandler.Delete)
}
