package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"

	"lms/config"
	authController "lms/controllers/auth"
	courseController "lms/controllers/course"
	enrollmentController "lms/controllers/enrollment"
	paymentController "lms/controllers/payment"
	reviewController "lms/controllers/review"
	userController "lms/controllers/user"
	youtubeController "lms/controllers/youtube"
	"lms/database"
	"lms/middleware"
	"lms/repository"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	userRoutes "lms/routers/userRoutes"
	youtubeRoutes "lms/routers/youtubeRoutes"
	"lms/services"
	"lms/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewLessonProgressRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Infrastructure
	cache := utils.NewCacheService(redisClient)
	emailService := utils.NewEmailService(cfg)
	gateway := utils.NewSnapGateway(cfg)
	youtubeClient := utils.NewYoutubeClient(cfg.YoutubeApiKey)
	youtubeCache := utils.NewYoutubeCacheService(cache, cfg.YoutubeCacheTTL)
	events := services.NewLogEventDispatcher()

	// Services
	sessionService := services.NewSessionService(sessionRepo, time.Duration(cfg.TokenExpiryHours)*time.Hour)
	authService := services.NewAuthService(userRepo, sessionService, events, emailService, cfg)
	userService := services.NewUserService(userRepo)
	paymentService := services.NewPaymentService(paymentRepo, enrollmentRepo, userRepo, courseRepo, gateway, emailService)
	courseService := services.NewCourseService(courseRepo, lessonRepo, categoryRepo, reviewRepo, userRepo, events, cache)
	reviewService := services.NewReviewService(reviewRepo, courseRepo, enrollmentRepo)
	enrollmentService := services.NewEnrollmentService(db, enrollmentRepo, progressRepo, courseRepo, lessonRepo, userRepo, paymentService, events, emailService)
	youtubeService := services.NewYoutubeService(youtubeClient, youtubeCache)

	// Controllers
	authCtrl := authController.NewAuthController(authService, sessionService)
	userCtrl := userController.NewUserController(userService)
	courseCtrl := courseController.NewCourseController(courseService)
	reviewCtrl := reviewController.NewReviewController(reviewService)
	enrollmentCtrl := enrollmentController.NewEnrollmentController(enrollmentService)
	paymentCtrl := paymentController.NewPaymentController(paymentService)
	youtubeCtrl := youtubeController.NewYoutubeController(youtubeService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",   // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization",  // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	protected := middleware.Protected(cfg.JWTKey, sessionService)

	authRoutes.SetupAuthRoutes(app, authCtrl, protected)
	userRoutes.SetupUserRoutes(app, userCtrl, protected)
	courseRoutes.SetupCourseRoutes(app, courseCtrl, reviewCtrl, protected)
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentCtrl, paymentCtrl, protected)
	youtubeRoutes.SetupYoutubeRoutes(app, youtubeCtrl, protected)

	utils.InitializeSessionScheduler(sessionService)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
