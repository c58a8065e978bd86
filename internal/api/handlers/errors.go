package handlers

import (
	"errors"

	"Fynd-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the service error taxonomy onto HTTP statuses so a
// duplicate claim surfaces as a conflict and an unauthorized transition as
// forbidden instead of a generic failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrVerificationPending),
		errors.Is(err, domain.ErrItemResolved),
		errors.Is(err, domain.ErrClaimNotPending),
		errors.Is(err, domain.ErrVerificationDecided):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotItemOwner),
		errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrNotNotificationOwner),
		errors.Is(err, domain.ErrMessageNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrClaimNotFound),
		errors.Is(err, domain.ErrVerificationNotFound),
		errors.Is(err, domain.ErrMatchNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}
