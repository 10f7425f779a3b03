package handler

import (
	"errors"
	"strings"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/service"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

type AuthMiddleware struct {
	tokenService service.TokenGenerator
	userService  *service.UserService
}

func NewAuthMiddleware(tokenService service.TokenGenerator, userService *service.UserService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService, userService: userService}
}

// CurrentUser returns the account the middleware resolved for this request,
// or nil outside a protected route.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(currentUserKey).(*domain.User)
	return user
}

// RequireRole authenticates the bearer token and enforces the role floor.
// The role is read from the stored account, not the token claims, so a
// demotion takes effect before the access token expires.
func (m *AuthMiddleware) RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidAccessToken.Error()})
		}

		claims, err := m.tokenService.VerifyAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidAccessToken.Error()})
		}

		user, err := m.userService.GetUserByID(reqCtx(c), claims.UserID)
		if err != nil {
			if errors.Is(err, autherror.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidAccessToken.Error()})
			}
			return respondError(c, err)
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": autherror.ErrAccountDisabled.Error()})
		}
		if !user.Role.Allows(required) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": autherror.ErrForbidden.Error()})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// Authenticated admits any active, verified token holder.
func (m *AuthMiddleware) Authenticated() fiber.Handler {
	return m.RequireRole(domain.RoleUser)
}
