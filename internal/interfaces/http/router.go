package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/clients"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientsUC     *clients.ClientUseCase
	SummaryPDFUC  *clients.SummaryPDFUseCase
	JWTSecret     string
	CookieName    string
	CookieMinutes int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: signup y login públicos, /me protegido.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.ClientsUC, deps.CookieName, deps.CookieMinutes)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.CookieName), authHandler.Me)

	// Clients: panel admin, solo roles de sistema.
	clientsGroup := api.Group("/clients",
		AuthMiddleware(deps.JWTSecret, deps.CookieName),
		RequireSystemRole(),
	)
	clientHandler := NewClientHandler(deps.ClientsUC, deps.SummaryPDFUC)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Get("/:id", clientHandler.GetByID)
	clientsGroup.Patch("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)
	clientsGroup.Get("/:id/pdf", clientHandler.SummaryPDF)
}
