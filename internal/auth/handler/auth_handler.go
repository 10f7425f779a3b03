package handler

import (
	"context"
	"errors"

	"github.com/authcore-id/auth-backend/internal/auth/dto"
	"github.com/authcore-id/auth-backend/internal/auth/service"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/authcore-id/auth-backend/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	resetService *service.ResetService
}

func NewAuthHandler(userService *service.UserService, resetService *service.ResetService) *AuthHandler {
	return &AuthHandler{userService: userService, resetService: resetService}
}

// reqCtx attaches the request metadata the audit logger records to the
// context handed down to the services.
func reqCtx(c *fiber.Ctx) context.Context {
	return service.WithRequestMeta(c.UserContext(), service.RequestMeta{
		IP:     c.IP(),
		Path:   c.Path(),
		Method: c.Method(),
	})
}

// respondError translates domain errors to transport responses. Unexpected
// errors surface as a generic 500 so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrEmailNotVerified),
		errors.Is(err, autherror.ErrInvalidRefreshToken),
		errors.Is(err, autherror.ErrInvalidAccessToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case autherror.RateLimited(err):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrForbidden),
		errors.Is(err, autherror.ErrAccountDisabled):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrEmailAlreadyInUse),
		errors.Is(err, autherror.ErrInvalidResetToken),
		errors.Is(err, autherror.ErrInvalidVerificationToken),
		errors.Is(err, autherror.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	user, err := h.userService.Register(reqCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	tokenPair, err := h.userService.Login(reqCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	tokens, err := h.userService.Refresh(reqCtx(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	if err := h.userService.Logout(reqCtx(c), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Logged out successfully"})
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.ResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	if err := h.resetService.RequestReset(reqCtx(c), input); err != nil {
		if autherror.RateLimited(err) {
			return respondError(c, err)
		}
		// Store failures also collapse to the generic shape; a reset
		// request must not become an existence oracle.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": constant.GenericResetResponse})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": constant.GenericResetResponse})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.IP = c.IP()

	if err := h.resetService.ResetPassword(reqCtx(c), input); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Password updated successfully"})
}

func (h *AuthHandler) SendVerificationEmail(c *fiber.Ctx) error {
	var input dto.SendVerificationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	message, err := h.userService.SendVerificationEmail(reqCtx(c), input.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": message})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing token"})
	}

	if err := h.userService.VerifyEmail(reqCtx(c), token); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Email verified successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidAccessToken.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}
