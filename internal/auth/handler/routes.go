package handler

import (
	"github.com/authcore-id/auth-backend/internal/auth/domain"
	producthandler "github.com/authcore-id/auth-backend/internal/product/handler"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the HTTP surface under /api/v1.
func RegisterRoutes(app *fiber.App, auth *AuthHandler, admin *AdminHandler, products *producthandler.ProductHandler, mw *AuthMiddleware) {
	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/refresh", auth.Refresh)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Post("/request-password-reset", auth.RequestPasswordReset)
	authGroup.Post("/reset-password", auth.ResetPassword)
	authGroup.Post("/send-verification-email", auth.SendVerificationEmail)
	authGroup.Get("/verify-email", auth.VerifyEmail)
	authGroup.Get("/me", mw.Authenticated(), auth.Me)

	adminUsers := api.Group("/admin/users", mw.RequireRole(domain.RoleAdmin))
	adminUsers.Get("/", admin.ListUsers)
	adminUsers.Get("/:id", admin.GetUser)
	adminUsers.Put("/:id", admin.UpdateUser)
	adminUsers.Post("/:id/enable", admin.EnableUser)
	adminUsers.Post("/:id/disable", admin.DisableUser)
	adminUsers.Delete("/:id", mw.RequireRole(domain.RoleSuperadmin), admin.DeleteUser)

	api.Get("/admin/security-logs", mw.RequireRole(domain.RoleAdmin), admin.ListSecurityLogs)

	productGroup := api.Group("/products")
	productGroup.Get("/", products.List)
	productGroup.Get("/:id", products.Get)
	productGroup.Post("/", mw.RequireRole(domain.RoleAdmin), products.Create)
	productGroup.Put("/:id", mw.RequireRole(domain.RoleAdmin), products.Update)
	productGroup.Delete("/:id", mw.RequireRole(domain.RoleAdmin), products.Delete)
}
