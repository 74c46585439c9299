package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/handlers"
	"budgetbook/middleware"
)

func main() {
	// Load .env before the config reads the environment
	_ = godotenv.Load()
	cfg := config.GetConfig()

	// Connect to database
	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Budgetbook",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173,http://localhost:3000,http://localhost:8080",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Rate limiter for auth endpoints (5 requests per minute per IP)
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many attempts. Please try again later.",
			})
		},
	})

	// API routes
	api := app.Group("/api")

	// Public routes (with rate limiting on auth)
	api.Post("/register", authLimiter, handlers.Register)
	api.Post("/login", authLimiter, handlers.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired())
	protected.Post("/logout", handlers.Logout)
	protected.Get("/user", handlers.GetCurrentUser)

	// Category routes
	categories := protected.Group("/categories")
	categories.Get("/", handlers.ListCategories)
	categories.Post("/", handlers.CreateCategory)
	categories.Put("/:id", handlers.UpdateCategory)
	categories.Delete("/:id", handlers.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.Get("/", handlers.ListTransactions)
	transactions.Post("/", handlers.CreateTransaction)
	transactions.Get("/:id", handlers.GetTransaction)
	transactions.Put("/:id", handlers.UpdateTransaction)
	transactions.Delete("/:id", handlers.DeleteTransaction)

	// Aggregate routes
	protected.Get("/summary", handlers.GetSummary)
	protected.Get("/summary/categories", handlers.GetCategoryTotals)
	protected.Get("/summary/months", handlers.GetMonthlyTotals)
	protected.Get("/dashboard", handlers.GetDashboard)
	protected.Get("/dashboard/chart", handlers.GetCategoryChart)

	// Audit log routes
	protected.Get("/audit", handlers.ListAuditLogs)
	protected.Get("/audit/actions", handlers.GetAuditActions)

	// Page flow (form posts, redirect based)
	app.Post("/register", authLimiter, handlers.RegisterForm)
	app.Post("/login", authLimiter, handlers.LoginForm)
	app.Get("/logout", handlers.LogoutPage)

	loginRequired := middleware.LoginRequired()
	app.Get("/dashboard", loginRequired, handlers.DashboardPage)
	app.Post("/category/add", loginRequired, handlers.AddCategoryForm)
	app.Post("/category/delete/:id", loginRequired, handlers.DeleteCategoryForm)
	app.Post("/transaction/add", loginRequired, handlers.AddTransactionForm)
	app.Post("/transaction/edit/:id", loginRequired, handlers.EditTransactionForm)
	app.Post("/transaction/delete/:id", loginRequired, handlers.DeleteTransactionForm)

	// Serve static files (frontend) in production
	if cfg.Production {
		app.Static("/", "./static")
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile("./static/index.html")
		})
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting Budgetbook on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
