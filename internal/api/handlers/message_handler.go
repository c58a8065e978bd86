package handlers

import (
	"Fynd-Backend/domain"
	"Fynd-Backend/internal/api/presenters"
	"Fynd-Backend/pkg/message"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MessageHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetConversation(c *fiber.Ctx) error
		MarkConversationRead(c *fiber.Ctx) error
	}

	messageHandler struct {
		messageService message.MessageService
		validator      *validator.Validate
	}
)

func NewMessageHandler(messageService message.MessageService, validator *validator.Validate) MessageHandler {
	return &messageHandler{
		messageService: messageService,
		validator:      validator,
	}
}

func (h *messageHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SendMessageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	sent, err := h.messageService.SendMessage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, sent, fiber.StatusCreated, domain.MessageSuccessSendMessage)
}

func (h *messageHandler) GetConversation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	otherUserID := c.Query("with")

	if otherUserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMessages, domain.ErrUserNotAllowed)
	}

	conversation, err := h.messageService.GetConversation(c.Context(), itemID, otherUserID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, conversation, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *messageHandler) MarkConversationRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	otherUserID := c.Query("with")

	if otherUserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMessages, domain.ErrUserNotAllowed)
	}

	if err := h.messageService.MarkConversationRead(c.Context(), itemID, otherUserID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReadMessages)
}
