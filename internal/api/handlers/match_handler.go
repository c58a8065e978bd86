package handlers

import (
	"Fynd-Backend/domain"
	"Fynd-Backend/internal/api/presenters"
	"Fynd-Backend/pkg/match"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MatchHandler interface {
		GenerateMatches(c *fiber.Ctx) error
		GetItemMatches(c *fiber.Ctx) error
		UpdateMatchStatus(c *fiber.Ctx) error
	}

	matchHandler struct {
		matchService match.MatchService
		validator    *validator.Validate
	}
)

func NewMatchHandler(matchService match.MatchService, validator *validator.Validate) MatchHandler {
	return &matchHandler{
		matchService: matchService,
		validator:    validator,
	}
}

func (h *matchHandler) GenerateMatches(c *fiber.Ctx) error {
	req := new(domain.GenerateMatchesRequest)
	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateMatches, err)
	}

	stored, err := h.matchService.GenerateMatches(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGenerateMatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"matches_stored": stored,
	}, fiber.StatusOK, domain.MessageSuccessGenerateMatches)
}

func (h *matchHandler) GetItemMatches(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatches, domain.ErrItemNotFound)
	}

	matches, err := h.matchService.GetItemMatches(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"matches": matches,
	}, fiber.StatusOK, domain.MessageSuccessGetMatches)
}

func (h *matchHandler) UpdateMatchStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateMatchStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMatchStatus, err)
	}

	if err := h.matchService.UpdateMatchStatus(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMatchStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMatchStatus)
}
