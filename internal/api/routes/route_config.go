package routes

import (
	"Fynd-Backend/internal/api/handlers"
	"Fynd-Backend/internal/middleware"
	"Fynd-Backend/pkg/jwt"
	"Fynd-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ItemHandler         handlers.ItemHandler
	ClaimHandler        handlers.ClaimHandler
	VerificationHandler handlers.VerificationHandler
	MatchHandler        handlers.MatchHandler
	NotificationHandler handlers.NotificationHandler
	MessageHandler      handlers.MessageHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	UserRepository      user.UserRepository
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Items()
	c.Claims()
	c.Verifications()
	c.Matches()
	c.Notifications()
	c.Messages()
	c.GuestRoute()
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")

	items.Get("", c.ItemHandler.GetItems)
	items.Get("/nearby", c.ItemHandler.GetNearbyItems)
	items.Get("/mine", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.ItemHandler.GetMyItems)
	items.Get("/:id", c.ItemHandler.GetItemByID)
	items.Post("", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.ItemHandler.CreateItem)
	items.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.ItemHandler.UpdateItem)
	items.Post("/:id/resolve", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.ItemHandler.MarkItemResolved)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	claims.Post("", c.ClaimHandler.SubmitClaim)
	claims.Patch("/decide", c.ClaimHandler.DecideClaim)
	claims.Get("/mine", c.ClaimHandler.GetMyClaims)

	c.App.Get("/api/v1/items/:id/claims", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.ClaimHandler.GetItemClaims)
}

func (c *Config) Verifications() {
	verifications := c.App.Group("/api/v1/verifications", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	verifications.Post("", c.VerificationHandler.SubmitVerification)
	verifications.Get("/pending", c.Middleware.ReviewerMiddleware(), c.VerificationHandler.GetPendingVerifications)
	verifications.Patch("/review", c.Middleware.ReviewerMiddleware(), c.VerificationHandler.ReviewVerification)

	c.App.Get("/api/v1/items/:id/verifications", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.VerificationHandler.GetItemVerifications)
}

func (c *Config) Matches() {
	matches := c.App.Group("/api/v1/matches", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	matches.Post("/generate", c.MatchHandler.GenerateMatches)
	matches.Patch("/status", c.MatchHandler.UpdateMatchStatus)

	c.App.Get("/api/v1/items/:id/matches", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository), c.MatchHandler.GetItemMatches)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkNotificationRead)
	notifications.Patch("/read-all", c.NotificationHandler.MarkAllNotificationsRead)
}

func (c *Config) Messages() {
	messages := c.App.Group("/api/v1/messages", c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository))

	messages.Post("", c.MessageHandler.SendMessage)
	messages.Get("/item/:id", c.MessageHandler.GetConversation)
	messages.Patch("/item/:id/read", c.MessageHandler.MarkConversationRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
