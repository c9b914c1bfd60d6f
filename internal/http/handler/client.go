package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clientbase/internal/http/middleware"
	"clientbase/internal/model"
	"clientbase/internal/service"
	"clientbase/internal/validate"
)

// messageResponse wraps mutations that carry a user-facing confirmation.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// currentUser returns the authenticated user stored by middleware.Auth.
// Routes behind the middleware always have it; a nil return means the
// handler was mounted without auth, which is a programming error.
func currentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(middleware.UserLocalKey).(*model.User)
	return u
}

// ListClients handles GET /clients, returning the caller's clients only.
func ListClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		res, err := svc.List(c.UserContext(), user.ID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ExportClients handles GET /clients/export, streaming the caller's client
// list as a CSV attachment.
func ExportClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		b, err := svc.ExportCSV(c.UserContext(), user.ID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="clients.csv"`)
		return c.Send(b)
	}
}

// CreateClient handles POST /clients.
func CreateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		var in service.ClientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := validate.Struct(in); err != nil {
			return writeValidationError(c, err.(validate.Errors))
		}

		client, err := svc.Create(c.UserContext(), user, in)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{
			Message: "The client was created.",
			Data:    client,
		})
	}
}

// GetClient handles GET /clients/:id, returning the client with its
// comments and files.
func GetClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		detail, err := svc.Get(c.UserContext(), id, user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// UpdateClient handles PUT /clients/:id.
func UpdateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in service.ClientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if err := validate.Struct(in); err != nil {
			return writeValidationError(c, err.(validate.Errors))
		}

		client, err := svc.Update(c.UserContext(), id, user.ID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messageResponse{
			Message: "The changes was saved.",
			Data:    client,
		})
	}
}

// DeleteClient handles DELETE /clients/:id. Deletion is only reachable
// through this method; the client's comments, file rows and stored objects
// go with it.
func DeleteClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id, user.ID); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messageResponse{Message: "The client was deleted."})
	}
}
