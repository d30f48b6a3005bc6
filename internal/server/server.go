package server

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/maxgads/gymmax/internal/config"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/handler"
	"github.com/maxgads/gymmax/internal/middleware"
	"github.com/maxgads/gymmax/internal/repository"
	"github.com/maxgads/gymmax/internal/service"
	"github.com/maxgads/gymmax/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const idempotencyTTL = 10 * time.Minute

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	AuthClient  service.FirebaseAuthClient
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)
	routineRepo := repository.NewCachedRoutineRepository(
		repository.NewMongoRoutineRepository(deps.MongoDB),
		cacheRepo,
	)
	sessionRepo := repository.NewMongoSessionRepository(deps.MongoDB)
	foodRepo := repository.NewMongoFoodEntryRepository(deps.MongoDB)
	profileRepo := repository.NewMongoProfileRepository(deps.MongoDB)
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	recipeRepo := repository.NewMongoRecipeRepository(deps.MongoDB)

	// Media storage is optional: meal analysis degrades to no photo URL when
	// the blob store is unreachable.
	var fileRepo domain.FileRepository
	if s3Repo, err := repository.NewS3MediaRepository(context.Background(), deps.Config.S3); err != nil {
		log.Printf("Warning: Failed to initialize S3 repository: %v", err)
	} else {
		fileRepo = s3Repo
	}

	// Initialize services
	aiClient := service.NewOpenRouterClient(deps.Config.OpenRouter.APIKey, deps.Config.OpenRouter.Model)
	authService := service.NewAuthService(userRepo, deps.AuthClient, deps.Config.JWT)
	routineService := service.NewRoutineService(routineRepo)
	importer := service.NewRoutineImporter(aiClient, routineService)
	workoutService := service.NewWorkoutService(sessionRepo)
	analyticsService := service.NewAnalyticsService(sessionRepo)
	dashboardService := service.NewDashboardService(routineRepo, sessionRepo, profileRepo, cacheRepo, deps.Config.Tracking.SummaryWindowDays)
	nutritionService := service.NewNutritionService(foodRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	recipeService := service.NewRecipeService(aiClient, recipeRepo, fileRepo)
	assistantService := service.NewAssistantService(aiClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	routineHandler := handler.NewRoutineHandler(routineService, importer)
	workoutHandler := handler.NewWorkoutHandler(workoutService, analyticsService, cacheRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)
	profileHandler := handler.NewProfileHandler(profileService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "GymMax API",
		BodyLimit:    int(deps.Config.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware(deps.Config.OTEL.ServiceName))
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "gymmax-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Everything else requires a first-party token
	authed := v1.Group("")
	authed.Use(middleware.VerifyGymMaxToken(deps.Config.JWT.Secret))
	authed.Use(middleware.IdempotencyMiddleware(deps.RedisClient, idempotencyTTL))

	routines := authed.Group("/routines")
	routines.Get("/", routineHandler.List)
	routines.Post("/", routineHandler.Create)
	routines.Post("/import", routineHandler.Import)
	routines.Get("/:id", routineHandler.Get)
	routines.Put("/:id", routineHandler.Update)
	routines.Delete("/:id", routineHandler.Delete)

	workouts := authed.Group("/workouts")
	workouts.Get("/", workoutHandler.List)
	workouts.Post("/", workoutHandler.Log)
	workouts.Get("/latest", workoutHandler.Latest)
	workouts.Get("/progress", workoutHandler.Progress)
	workouts.Get("/exercises", workoutHandler.ExerciseNames)
	workouts.Delete("/:id", workoutHandler.Delete)

	authed.Get("/dashboard/home", dashboardHandler.Home)

	nutrition := authed.Group("/nutrition")
	nutrition.Post("/entries", nutritionHandler.AddEntry)
	nutrition.Put("/entries/:id", nutritionHandler.UpdateEntry)
	nutrition.Delete("/entries/:id", nutritionHandler.DeleteEntry)
	nutrition.Get("/day", nutritionHandler.Day)
	nutrition.Get("/series", nutritionHandler.CalorieSeries)

	authed.Get("/profile", profileHandler.Get)
	authed.Put("/profile", profileHandler.Save)

	recipes := authed.Group("/recipes")
	recipes.Post("/generate", recipeHandler.Generate)
	recipes.Post("/", recipeHandler.Save)
	recipes.Get("/", recipeHandler.List)
	recipes.Delete("/:id", recipeHandler.Delete)

	authed.Post("/meals/analyze", recipeHandler.AnalyzeMeal)

	authed.Post("/assistant/chat", assistantHandler.Chat)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
