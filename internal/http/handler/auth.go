package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clientbase/internal/service"
	"clientbase/internal/validate"
)

// Register handles POST /auth/register. It creates the user together with
// a personal team and returns a fresh access token.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		if err := validate.Struct(in); err != nil {
			return writeValidationError(c, err.(validate.Errors))
		}

		res, err := svc.Register(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				return writeError(c, fiber.StatusConflict, "EMAIL_TAKEN", "email is already registered")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// Login handles POST /auth/login. Unknown emails and wrong passwords are
// indistinguishable in the response.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LoginInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		if err := validate.Struct(in); err != nil {
			return writeValidationError(c, err.(validate.Errors))
		}

		res, err := svc.Login(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
