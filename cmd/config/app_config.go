package config

import (
	"os"
	"time"

	"Fynd-Backend/internal/api/handlers"
	"Fynd-Backend/internal/api/routes"
	"Fynd-Backend/internal/middleware"
	"Fynd-Backend/internal/utils"
	"Fynd-Backend/internal/utils/mailing"
	"Fynd-Backend/internal/utils/storage"
	"Fynd-Backend/pkg/claim"
	"Fynd-Backend/pkg/geo"
	"Fynd-Backend/pkg/item"
	"Fynd-Backend/pkg/jwt"
	"Fynd-Backend/pkg/match"
	"Fynd-Backend/pkg/message"
	"Fynd-Backend/pkg/notification"
	"Fynd-Backend/pkg/user"
	"Fynd-Backend/pkg/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geocoder := geo.NewGeocoder()

	// Repository
	userRepository := user.NewUserRepository(db)
	itemRepository := item.NewItemRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	verificationRepository := verification.NewVerificationRepository(db)
	matchRepository := match.NewMatchRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	messageRepository := message.NewMessageRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	dispatcher := notification.NewDispatcher(notificationRepository)
	itemService := item.NewItemService(itemRepository, claimRepository, dispatcher, geocoder, s3)
	claimService := claim.NewClaimService(
		claimRepository,
		itemRepository,
		userRepository,
		dispatcher,
		claim.MailerFunc(mailing.SendMail),
	)
	verificationService := verification.NewVerificationService(verificationRepository, itemRepository, dispatcher, s3)
	matchService := match.NewMatchService(matchRepository, itemRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	messageService := message.NewMessageService(
		messageRepository,
		itemRepository,
		claimRepository,
		userRepository,
		dispatcher,
	)

	// Handler
	itemHandler := handlers.NewItemHandler(itemService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	verificationHandler := handlers.NewVerificationHandler(verificationService, validator)
	matchHandler := handlers.NewMatchHandler(matchService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	messageHandler := handlers.NewMessageHandler(messageService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ItemHandler:         itemHandler,
		ClaimHandler:        claimHandler,
		VerificationHandler: verificationHandler,
		MatchHandler:        matchHandler,
		NotificationHandler: notificationHandler,
		MessageHandler:      messageHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		UserRepository:      userRepository,
	}
	routesConfig.Setup()
	return app, nil
}
