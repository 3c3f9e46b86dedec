package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobboard/internal/auth"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. File Storage for resume uploads
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	files, err := storage.New(uploadDir, "/media")
	if err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	// 4. Initialize Core Services (Dependencies)
	ownership := services.NewOwnershipService(db)
	accountService := services.NewAccountService(db)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db, ownership)
	applicationService := services.NewApplicationService(db, ownership)
	seekerService := services.NewSeekerService(db, ownership, files)

	// 5. Initialize Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	seekerHandler := handlers.NewSeekerHandler(seekerService)

	// 6. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Uploaded resumes are served straight from disk
	r.Static("/media", uploadDir)

	// 7. Define Routes
	requireAuth := auth.RequireAuth(db)
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Accounts & Auth
		api.POST("/accounts", accountHandler.Register)
		api.POST("/auth/login", accountHandler.Login)

		// Companies
		api.POST("/companies", requireAuth, companyHandler.Create)
		api.GET("/companies", companyHandler.List)
		api.GET("/companies/:id", companyHandler.Get)
		api.PATCH("/companies/:id/activate", requireAuth, companyHandler.Activate)

		// Jobs
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.POST("/jobs", requireAuth, jobHandler.Create)

		// Applications
		api.POST("/applications", requireAuth, applicationHandler.Apply)
		api.GET("/applications", requireAuth, applicationHandler.List)

		// Seeker self-service
		seeker := api.Group("/seeker", requireAuth)
		{
			seeker.GET("/profile/my_profile", seekerHandler.MyProfile)
			seeker.PATCH("/profile/my_profile", seekerHandler.UpdateMyProfile)

			seeker.POST("/resume/upload", seekerHandler.UploadResume)
			seeker.GET("/resume", seekerHandler.ListResumes)
			seeker.GET("/resume/:id", seekerHandler.GetResume)
			seeker.DELETE("/resume/:id", seekerHandler.DeleteResume)

			seeker.GET("/experience", seekerHandler.ListExperiences)
			seeker.POST("/experience", seekerHandler.CreateExperience)
			seeker.GET("/experience/:id", seekerHandler.GetExperience)
			seeker.PATCH("/experience/:id", seekerHandler.UpdateExperience)
			seeker.DELETE("/experience/:id", seekerHandler.DeleteExperience)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
