package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go-portfolio-api/internal/authz"
	"go-portfolio-api/internal/handler"
	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/service"
	"go-portfolio-api/internal/ws"
	"go-portfolio-api/pkg/database"
	"go-portfolio-api/pkg/ratelimit"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Section{}, &model.CV{}, &model.Project{}, &model.SiteSettings{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	cvRepo := repository.NewCVRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	cmsService := service.NewCMSService(sectionRepo, db, wsHub)
	cvService := service.NewCVService(cvRepo, db, wsHub)
	projectService := service.NewProjectService(projectRepo, wsHub)
	settingsService := service.NewSettingsService(settingsRepo)
	chatbotService := service.NewChatbotService(service.NewFAQResponder(projectRepo, settingsRepo))

	// 5. Seed super admin and default content
	seedSuperAdmin(userRepo)
	if _, err := cmsService.SeedDefaults(service.DefaultSections); err != nil {
		log.Printf("Warning: Failed to seed default sections: %v", err)
	}

	chatLimiter := ratelimit.New(
		envInt("CHATBOT_RATE_LIMIT", 20),
		time.Duration(envInt("CHATBOT_RATE_WINDOW_SECONDS", 60))*time.Second,
	)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	cmsHandler := handler.NewCMSHandler(cmsService)
	cvHandler := handler.NewCVHandler(cvService)
	projectHandler := handler.NewProjectHandler(projectService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService, chatLimiter)
	dashboardHandler := handler.NewDashboardHandler(cmsService, projectService, cvService, userRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Portfolio Admin API v1.0",
		BodyLimit: 12 * 1024 * 1024, // Leaves headroom over the 10MB CV cap
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Public site content. The project routes run OptionalAuth so an
	// admin bearer token unlocks draft visibility on the same endpoints.
	api.Get("/cms/pages/:page/public", cmsHandler.GetPagePublic)
	projects := api.Group("/projects", middleware.OptionalAuth(userRepo))
	projects.Get("/", projectHandler.GetProjects)
	projects.Get("/featured", projectHandler.GetFeaturedProjects)
	projects.Get("/slug/:slug", projectHandler.GetProjectBySlug)
	projects.Get("/:id", projectHandler.GetProject)
	api.Get("/cv", cvHandler.GetCV)
	api.Get("/cv/exists", cvHandler.CVExists)
	api.Get("/cv/download", cvHandler.DownloadCV)
	api.Get("/settings", settingsHandler.GetSettings)

	// Chatbot (public, rate limited per client IP)
	chatbot := api.Group("/chatbot", middleware.RateLimit(chatLimiter))
	chatbot.Post("/chat", chatbotHandler.Chat)
	chatbot.Get("/info", chatbotHandler.Info)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Profile
	protected.Get("/users/me", authHandler.Me)

	// Dashboard
	protected.Get("/dashboard", middleware.RequirePermission(authz.PermViewAnalytics), dashboardHandler.GetDashboard)

	// CMS Routes (with permission checks)
	protected.Get("/cms/pages", cmsHandler.GetPages)
	protected.Get("/cms/pages/:page/sections", cmsHandler.GetSections)
	protected.Get("/cms/sections", cmsHandler.GetAllSections)
	protected.Get("/cms/sections/:page/:section", cmsHandler.GetSection)
	protected.Post("/cms/sections", middleware.RequirePermission(authz.PermUpdateProject), cmsHandler.CreateSection)
	protected.Put("/cms/sections/:page/:section", middleware.RequirePermission(authz.PermUpdateProject), cmsHandler.UpdateSection)
	protected.Patch("/cms/sections/:page/:section/reorder", middleware.RequirePermission(authz.PermUpdateProject), cmsHandler.ReorderSection)
	protected.Delete("/cms/sections/:page/:section", middleware.RequireAdminTier(), cmsHandler.DeleteSection)
	protected.Post("/cms/seed", middleware.RequireAdminTier(), cmsHandler.SeedDefaults)
	protected.Get("/cms/stats", middleware.RequirePermission(authz.PermViewAnalytics), cmsHandler.GetStats)

	// CV Routes
	protected.Post("/cv", middleware.RequirePermission(authz.PermUpdateCV), cvHandler.UploadCV)
	protected.Delete("/cv", middleware.RequirePermission(authz.PermUpdateCV), cvHandler.DeleteCV)

	// Project Routes
	protected.Post("/projects", middleware.RequirePermission(authz.PermCreateProject), projectHandler.CreateProject)
	protected.Put("/projects/:id", middleware.RequirePermission(authz.PermUpdateProject), projectHandler.UpdateProject)
	protected.Delete("/projects/:id", middleware.RequirePermission(authz.PermDeleteProject), projectHandler.DeleteProject)

	// Settings Routes
	protected.Put("/settings", middleware.RequirePermission(authz.PermManageSettings), settingsHandler.UpdateSettings)
	protected.Post("/settings/reset", middleware.RequireSuperAdmin(), settingsHandler.ResetSettings)

	// User Management Routes
	protected.Get("/users", middleware.RequirePermission(authz.PermReadUser), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission(authz.PermReadUser), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission(authz.PermCreateUser), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission(authz.PermUpdateUser), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission(authz.PermDeleteUser), userHandler.DeleteUser)

	// Role Routes
	protected.Get("/roles", userHandler.GetRoles)

	// WebSocket Route (admin dashboards receive live content events)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedSuperAdmin creates the initial super admin account if no user with
// that email exists. Credentials come from the environment so deployments
// never ship a default password.
func seedSuperAdmin(userRepo repository.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping super admin seed")
		return
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: Failed to check for super admin: %v", err)
		return
	}

	admin := &model.User{
		Email:    email,
		Name:     "Super Administrator",
		UserRole: authz.RoleSuperAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash super admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create super admin: %v", err)
		return
	}
	log.Printf("Super admin created: %s", email)
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
