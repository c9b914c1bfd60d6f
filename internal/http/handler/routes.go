package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"clientbase/internal/auth"
	"clientbase/internal/http/middleware"
	"clientbase/internal/repository"
	"clientbase/internal/service"
)

// Deps bundles everything the HTTP layer needs. Handlers stay free of
// business logic; all decisions live in the services.
type Deps struct {
	DB       *sql.DB
	Users    repository.UserRepository
	Tokens   *auth.Manager
	Auth     service.AuthService
	Clients  service.ClientService
	Comments service.CommentService
	Files    service.FileService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	authGroup := app.Group("/auth")
	authGroup.Post("/register", Register(deps.Auth))
	authGroup.Post("/login", Login(deps.Auth))

	clients := app.Group("/clients", middleware.Auth(deps.Users, deps.Tokens))
	clients.Get("/", ListClients(deps.Clients))
	clients.Get("/export", ExportClients(deps.Clients))
	clients.Post("/", CreateClient(deps.Clients))
	clients.Get("/:id", GetClient(deps.Clients))
	clients.Put("/:id", UpdateClient(deps.Clients))
	clients.Delete("/:id", DeleteClient(deps.Clients))
	clients.Post("/:id/comments", AddComment(deps.Comments))
	clients.Post("/:id/files", UploadFile(deps.Files))
	clients.Get("/:id/files/:fileID", FileDownloadURL(deps.Files))
}
