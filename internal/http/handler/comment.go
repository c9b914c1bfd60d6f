package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clientbase/internal/service"
	"clientbase/internal/validate"
)

// AddComment handles POST /clients/:id/comments. The comment is attributed
// to the caller and their active team; the target client must be owned by
// the caller.
func AddComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		clientID := c.Params("id")
		if _, err := uuid.Parse(clientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in service.CommentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := validate.Struct(in); err != nil {
			return writeValidationError(c, err.(validate.Errors))
		}

		comment, err := svc.Add(c.UserContext(), user, clientID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}
