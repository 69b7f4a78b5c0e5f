package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/MidnightMuse/internal/handler/http"
	redisclient "github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/cache"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/config"
	database "github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/database"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/store"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/validator"
	"github.com/mikiasgoitom/MidnightMuse/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

type repositories struct {
	users    contract.IUserRepository
	posts    contract.IPostRepository
	comments contract.ICommentRepository
	tokens   contract.ITokenRepository
}

func memoryRepositories() repositories {
	return repositories{
		users:    memory.NewUserRepository(),
		posts:    memory.NewPostRepository(),
		comments: memory.NewCommentRepository(),
		tokens:   memory.NewTokenRepository(),
	}
}

func mongoRepositories(ctx context.Context, client *database.MongoDBClient, dbName string) (repositories, error) {
	db := client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	postRepo := mongodb.NewPostRepository(db)
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return repositories{}, err
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		return repositories{}, err
	}
	if err := tokenRepo.EnsureIndexes(ctx); err != nil {
		return repositories{}, err
	}
	return repositories{
		users:    userRepo,
		posts:    postRepo,
		comments: mongodb.NewCommentRepository(db),
		tokens:   tokenRepo,
	}, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(appConfig.LogLevel, !appConfig.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Dependency Injection: Repositories
	repos := memoryRepositories()
	if appConfig.MongoURI != "" {
		mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
		if err != nil {
			appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		repos, err = mongoRepositories(ctx, mongoClient, appConfig.MongoDBName)
		if err != nil {
			appLogger.Fatalf("Failed to prepare MongoDB collections: %v", err)
		}
		appLogger.Infof("using MongoDB database %s", appConfig.MongoDBName)
	} else {
		appLogger.Warnf("MONGODB_URI not set, data is kept in memory and lost on restart")
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	randomGenerator := randomgenerator.NewRandomGenerator()
	uuidGenerator := uuidgen.NewGenerator()
	appValidator := validator.NewValidator()

	jwtSecret := appConfig.JWTSecret
	if jwtSecret == "" {
		if appConfig.IsProduction() {
			appLogger.Fatalf("JWT_SECRET environment variable not set")
		}
		secret, err := randomGenerator.GenerateRandomToken(32)
		if err != nil {
			appLogger.Fatalf("Failed to generate a development JWT secret: %v", err)
		}
		jwtSecret = secret
		appLogger.Warnf("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}
	jwtManager, err := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	if err != nil {
		appLogger.Fatalf("Failed to create JWT manager: %v", err)
	}
	jwtService := jwt.NewJWTService(jwtManager)

	var mailService contract.IEmailService = external_services.NewLogEmailService(appLogger)
	if appConfig.EmailEnabled() {
		mailService = external_services.NewEmailService(appConfig.EmailHost, appConfig.EmailPort, appConfig.EmailUsername, appConfig.EmailAppPassword, appConfig.EmailFrom)
	}
	aiService := external_services.NewGeminiAIService(appConfig.GetAIServiceAPIKey(), appConfig.GetAIModel())

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(repos.users, repos.tokens, hasher, jwtService, mailService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	userUsecase := usecase.NewUserUsecase(repos.users, hasher, appLogger, appValidator)
	postUsecase := usecase.NewPostUseCase(repos.posts, uuidGenerator, appLogger)
	commentUsecase := usecase.NewCommentUseCase(repos.comments, repos.posts, uuidGenerator, appLogger)
	dashboardUsecase := usecase.NewDashboardUseCase(repos.users, repos.posts, repos.comments)
	var aiUsecase usecasecontract.IAIUseCase = usecase.NewAIUseCase(aiService, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, post cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			postCache := store.NewPostCacheStore(rdb)
			postUsecase.SetPostCache(postCache)
			commentUsecase.SetPostCache(postCache)
			appLogger.Infof("post cache enabled")
		}
	}

	seeder := usecase.NewSeeder(repos.users, repos.posts, hasher, uuidGenerator, appLogger)
	if err := seeder.Seed(ctx, usecase.SeedOptions{
		AdminEmail:    appConfig.AdminEmail,
		AdminPassword: appConfig.AdminPassword,
		AdminName:     appConfig.AdminName,
		SamplePost:    appConfig.SeedSampleData,
	}); err != nil {
		appLogger.Errorf("Seeding failed: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		authUsecase, userUsecase, postUsecase, commentUsecase, dashboardUsecase, aiUsecase,
		handlerHttp.RouterOptions{
			BaseURL:            appConfig.GetAppBaseURL(),
			GoogleClientID:     appConfig.GoogleClientID,
			GoogleClientSecret: appConfig.GoogleClientSecret,
			AllowHeaderAuth:    appConfig.GetAllowHeaderAuth(),
			RateLimitPerSecond: appConfig.RateLimitPerSecond,
			RequestLogger:      appLogger.Zerolog(),
		},
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
