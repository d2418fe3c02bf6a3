package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

type application struct {
	habits     *handler.HabitsHandler
	dailies    *handler.DailiesHandler
	todos      *handler.TodosHandler
	timeBlocks *handler.TimeBlocksHandler
	goals      *handler.GoalsHandler
	coins      *handler.CoinsHandler
	progress   *handler.ProgressHandler
	assistant  *handler.AssistantHandler
	admin      *handler.AdminHandler
	health     *handler.HealthHandler
	scheduler  *usecase.ResetScheduler
}

func buildApplication() *application {
	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(
		dbConfig.URI,
		dbConfig.MaxPoolSize,
		dbConfig.MinPoolSize,
		dbConfig.MaxConnIdleTime,
		dbConfig.RetryWrites,
	)

	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	// Redis is optional; without it progress is recomputed per request and
	// the reset lock degrades to best effort.
	var progressCache *services.ProgressCache
	if redisURL := utils.GetEnvAsString("REDIS_URL", ""); redisURL != "" {
		cache, err := services.NewProgressCache(redisURL, utils.GetEnvAsDuration("PROGRESS_CACHE_TTL", 5*time.Minute))
		if err != nil {
			log.Printf("Redis unavailable, running without progress cache: %v", err)
		} else {
			progressCache = cache
		}
	}

	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	dailiesRepo := repository.GetDailiesRepo(utils.MongoClient)
	todosRepo := repository.GetTodosRepo(utils.MongoClient)
	timeBlocksRepo := repository.GetTimeBlocksRepo(utils.MongoClient)
	goalsRepo := repository.GetGoalsRepo(utils.MongoClient)
	coinsRepo := repository.GetCoinsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)

	rewardsService := usecase.NewRewardsService(coinsRepo)
	habitsService := usecase.NewHabitsService(habitsRepo, rewardsService, progressCache)
	dailiesService := usecase.NewDailiesService(dailiesRepo, rewardsService, progressCache)
	todosService := usecase.NewTodosService(todosRepo, rewardsService, progressCache)
	timeBlocksService := usecase.NewTimeBlocksService(timeBlocksRepo)
	goalsService := usecase.NewGoalsService(goalsRepo)
	progressService := usecase.NewProgressService(habitsRepo, dailiesRepo, todosRepo, progressCache)
	resetService := usecase.NewResetService(habitsRepo, dailiesRepo, usersRepo, progressCache)

	llmService := services.NewLLMService()
	speechService := services.NewSpeechService()
	assistantService := usecase.NewAssistantService(
		llmService,
		habitsService,
		dailiesService,
		todosService,
		progressService,
		rewardsService,
	)

	return &application{
		habits:     handler.NewHabitsHandler(habitsService),
		dailies:    handler.NewDailiesHandler(dailiesService),
		todos:      handler.NewTodosHandler(todosService),
		timeBlocks: handler.NewTimeBlocksHandler(timeBlocksService),
		goals:      handler.NewGoalsHandler(goalsService),
		coins:      handler.NewCoinsHandler(rewardsService),
		progress:   handler.NewProgressHandler(progressService),
		assistant:  handler.NewAssistantHandler(assistantService, speechService),
		admin:      handler.NewAdminHandler(resetService),
		health:     handler.NewHealthHandler(utils.MongoClient),
		scheduler:  usecase.NewResetScheduler(resetService),
	}
}

func setupRouter(app *application) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Public routes (no authentication required)
	router.GET("/health", app.health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		habits := protected.Group("/habits")
		{
			habits.GET("", app.habits.GetUserHabits)
			habits.POST("", app.habits.CreateHabit)
			habits.GET("/:id", app.habits.GetHabit)
			habits.PUT("/:id", app.habits.UpdateHabit)
			habits.DELETE("/:id", app.habits.DeleteHabit)
			habits.POST("/:id/hit", app.habits.IncrementHit)
			habits.POST("/:id/unhit", app.habits.DecrementHit)
			habits.POST("/:id/snooze", app.habits.SnoozeHabit)
			habits.POST("/:id/resume", app.habits.ResumeHabit)
			habits.GET("/:id/completions", app.habits.GetCompletions)
		}

		dailies := protected.Group("/dailies")
		{
			dailies.GET("", app.dailies.GetUserDailies)
			dailies.POST("", app.dailies.CreateDaily)
			dailies.GET("/:id", app.dailies.GetDaily)
			dailies.PUT("/:id", app.dailies.UpdateDaily)
			dailies.DELETE("/:id", app.dailies.DeleteDaily)
			dailies.POST("/:id/complete", app.dailies.CompleteDaily)
			dailies.POST("/:id/uncheck", app.dailies.UncheckDaily)
			dailies.POST("/:id/snooze", app.dailies.SnoozeDaily)
			dailies.POST("/:id/resume", app.dailies.ResumeDaily)
			dailies.PUT("/:id/checklist/:itemId", app.dailies.SetChecklistItem)
		}

		todos := protected.Group("/todos")
		{
			todos.GET("", app.todos.GetUserTodos)
			todos.POST("", app.todos.CreateTodo)
			todos.GET("/:id", app.todos.GetTodo)
			todos.PUT("/:id", app.todos.UpdateTodo)
			todos.DELETE("/:id", app.todos.DeleteTodo)
			todos.POST("/:id/complete", app.todos.CompleteTodo)
			todos.PUT("/:id/checklist/:itemId", app.todos.SetChecklistItem)
		}

		timeBlocks := protected.Group("/timeblocks")
		{
			timeBlocks.GET("", app.timeBlocks.GetUserTimeBlocks)
			timeBlocks.POST("", app.timeBlocks.CreateTimeBlock)
			timeBlocks.GET("/:id", app.timeBlocks.GetTimeBlock)
			timeBlocks.PUT("/:id", app.timeBlocks.UpdateTimeBlock)
			timeBlocks.DELETE("/:id", app.timeBlocks.DeleteTimeBlock)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", app.goals.GetUserGoals)
			goals.POST("", app.goals.CreateGoal)
			goals.GET("/:id", app.goals.GetGoal)
			goals.PUT("/:id", app.goals.UpdateGoal)
			goals.DELETE("/:id", app.goals.DeleteGoal)
			goals.PUT("/:id/progress", app.goals.SetProgress)
		}

		coins := protected.Group("/coins")
		{
			coins.GET("", app.coins.GetBalance)
			coins.GET("/transactions", app.coins.GetTransactions)
		}

		protected.GET("/progress", app.progress.GetProgress)

		assistant := protected.Group("/assistant")
		{
			assistant.POST("/message", app.assistant.Message)
			assistant.POST("/speak", app.assistant.Speak)
		}

		admin := protected.Group("/admin")
		{
			admin.POST("/reset", app.admin.TriggerReset)
			admin.GET("/reset/:id", app.admin.ResetStatus)
			admin.POST("/reset/:id", app.admin.ResetUser)
		}
	}

	return router
}

func main() {
	app := buildApplication()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.scheduler.Start(ctx)

	router := setupRouter(app)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
