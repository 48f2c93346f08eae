package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Folio/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Folio/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Folio/internal/infrastructure/database"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/media"
	passwordservice "github.com/mikiasgoitom/Folio/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/store"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Folio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Folio/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(logger.Options{
		Level:      appConfig.LogLevel,
		FormatJSON: appConfig.LogFormatJSON,
		FileName:   appConfig.LogFile,
	})

	if appConfig.MongoURI == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	if appConfig.MongoDBName == "" {
		appLogger.Fatalf("MONGODB_DB_NAME environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}
	if appConfig.AdminPasswordHash == "" {
		appLogger.Warningf("ADMIN_PASSWORD_HASH not set, write endpoints are unreachable")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(appConfig.MongoDBName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		appLogger.Warningf("Failed to ensure indexes: %v", err)
	}
	cancel()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	blogRepo := mongodb.NewBlogRepository(db)
	var categoryRepo contract.ICategoryRepository
	if appConfig.CategoriesEnabled() {
		categoryRepo = mongodb.NewCategoryRepository(db)
	}

	// Dependency Injection: Media
	cld, err := media.NewCloudinaryFromURL(appConfig.CloudinaryURL)
	if err != nil {
		appLogger.Fatalf("Failed to configure media host: %v", err)
	}
	ingestor := usecase.NewMediaIngestor(cld, appLogger, appConfig.GetMediaFolder(), appConfig.GetUploadConcurrency())
	if appConfig.MaxImageWidth > 0 {
		ingestor.SetImageProcessor(media.NewImageProcessor(appConfig.MaxImageWidth))
	}
	if appConfig.ReclaimOrphanedMedia {
		ingestor.SetReclaimer(media.NewCloudinaryReclaimer(cld, appLogger))
	} else {
		ingestor.SetReclaimer(media.NewLogReclaimer(appLogger))
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry()))
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	blogUsecase := usecase.NewBlogUseCase(blogRepo, categoryRepo, ingestor, uuidGenerator, appLogger, appConfig, appValidator)
	authUsecase := usecase.NewAuthUseCase(hasher, jwtService, appConfig, appLogger)

	var categoryUsecase usecasecontract.ICategoryUseCase
	var categoryImpl *usecase.CategoryUseCase
	if categoryRepo != nil {
		categoryImpl = usecase.NewCategoryUseCase(categoryRepo, blogRepo, uuidGenerator, appLogger, appConfig, appValidator)
		categoryUsecase = categoryImpl
	}

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		blogCache := store.NewBlogCacheStore(rdb)
		blogUsecase.SetBlogCache(blogCache)
		if categoryImpl != nil {
			categoryImpl.SetBlogCache(blogCache)
		}
	}

	// Setup API routes
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	appRouter := handlerHttp.NewRouter(blogUsecase, categoryUsecase, authUsecase, handlerHttp.RouterOptions{
		MaxUploadBytes:     appConfig.MaxUploadBytes,
		RateLimitPerSecond: appConfig.RateLimitPerSecond,
	})
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s (categories enabled: %t)", appConfig.Port, appConfig.CategoriesEnabled())
	if err := router.Run(":" + appConfig.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
