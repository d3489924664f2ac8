package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"inspovault/internal/store"
	"inspovault/internal/validation"
	"inspovault/internal/vault"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonCreated returns a 201 response with data wrapped in the standard envelope.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// serviceError maps vault and store errors onto HTTP responses.
func serviceError(c fiber.Ctx, err error) error {
	var rej *vault.Rejection
	switch {
	case errors.As(err, &rej):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":          "error",
			"error":           rej.Error(),
			"field":           rej.Err.Field,
			"notification_id": rej.NotificationID,
		})
	case validation.IsValidationError(err):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrCollectionNotFound),
		errors.Is(err, store.ErrSharedItemNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateID):
		return jsonError(c, fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
