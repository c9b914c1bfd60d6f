package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clientbase/internal/service"
)

// UploadFile handles POST /clients/:id/files (multipart/form-data, field
// name: file). Upload failures are reported, never swallowed.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		clientID := c.Params("id")
		if _, err := uuid.Parse(clientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		file, err := svc.Upload(c.UserContext(), user, clientID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(file)
	}
}

// FileDownloadURL handles GET /clients/:id/files/:fileID, returning a
// short-lived presigned URL for the stored object.
func FileDownloadURL(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		clientID := c.Params("id")
		fileID := c.Params("fileID")
		if _, err := uuid.Parse(clientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := uuid.Parse(fileID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		url, err := svc.DownloadURL(c.UserContext(), user.ID, clientID, fileID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
