package handlers

import (
	"Fynd-Backend/domain"
	"Fynd-Backend/internal/api/presenters"
	"Fynd-Backend/pkg/claim"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		SubmitClaim(c *fiber.Ctx) error
		DecideClaim(c *fiber.Ctx) error
		GetItemClaims(c *fiber.Ctx) error
		GetMyClaims(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) SubmitClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitClaim, err)
	}

	submitted, err := h.claimService.SubmitClaim(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSubmitClaim, err)
	}

	return presenters.SuccessResponse(c, submitted, fiber.StatusCreated, domain.MessageSuccessSubmitClaim)
}

func (h *claimHandler) DecideClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DecideClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimStatus, err)
	}

	decided, err := h.claimService.DecideClaim(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedClaimStatus, err)
	}

	return presenters.SuccessResponse(c, decided, fiber.StatusOK, domain.MessageSuccessClaimStatus)
}

func (h *claimHandler) GetItemClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	claims, err := h.claimService.GetItemClaims(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"claims": claims,
	}, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetMyClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.claimService.GetUserClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"claims": claims,
	}, fiber.StatusOK, domain.MessageSuccessGetClaims)
}
