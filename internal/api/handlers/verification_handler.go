package handlers

import (
	"Fynd-Backend/domain"
	"Fynd-Backend/internal/api/presenters"
	"Fynd-Backend/pkg/verification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VerificationHandler interface {
		SubmitVerification(c *fiber.Ctx) error
		ReviewVerification(c *fiber.Ctx) error
		GetItemVerifications(c *fiber.Ctx) error
		GetPendingVerifications(c *fiber.Ctx) error
	}

	verificationHandler struct {
		verificationService verification.VerificationService
		validator           *validator.Validate
	}
)

func NewVerificationHandler(verificationService verification.VerificationService, validator *validator.Validate) VerificationHandler {
	return &verificationHandler{
		verificationService: verificationService,
		validator:           validator,
	}
}

func (h *verificationHandler) SubmitVerification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.SubmitVerificationRequest{
		ItemID: c.FormValue("item_id"),
		Notes:  c.FormValue("notes"),
	}

	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photos = form.File["photos"]

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitVerification, err)
	}

	submitted, err := h.verificationService.SubmitVerification(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSubmitVerification, err)
	}

	return presenters.SuccessResponse(c, submitted, fiber.StatusCreated, domain.MessageSuccessSubmitVerification)
}

func (h *verificationHandler) ReviewVerification(c *fiber.Ctx) error {
	req := new(domain.ReviewVerificationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewVerification, err)
	}

	reviewed, err := h.verificationService.ReviewVerification(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedReviewVerification, err)
	}

	return presenters.SuccessResponse(c, reviewed, fiber.StatusOK, domain.MessageSuccessReviewVerification)
}

func (h *verificationHandler) GetItemVerifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	verifications, err := h.verificationService.GetItemVerifications(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetVerifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"verifications": verifications,
	}, fiber.StatusOK, domain.MessageSuccessGetVerifications)
}

func (h *verificationHandler) GetPendingVerifications(c *fiber.Ctx) error {
	page, limit := pagination(c)

	verifications, count, err := h.verificationService.GetPendingVerifications(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetVerifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"verifications": verifications,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetVerifications)
}
