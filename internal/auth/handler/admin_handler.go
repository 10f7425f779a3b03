package handler

import (
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	"github.com/authcore-id/auth-backend/internal/auth/service"
	"github.com/authcore-id/auth-backend/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	userService    *service.UserService
	securityLogger *service.SecurityLogger
}

func NewAdminHandler(userService *service.UserService, securityLogger *service.SecurityLogger) *AdminHandler {
	return &AdminHandler{userService: userService, securityLogger: securityLogger}
}

func pagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", constant.DefaultPageLimit)
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}
	return page, limit
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, limit := pagination(c)

	users, err := h.userService.ListUsers(reqCtx(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserOutput(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(reqCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var input dto.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.UpdateUser(reqCtx(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *AdminHandler) EnableUser(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *AdminHandler) DisableUser(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *AdminHandler) setActive(c *fiber.Ctx, active bool) error {
	user, err := h.userService.SetUserActive(reqCtx(c), c.Params("id"), active)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(reqCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "User deleted"})
}

func (h *AdminHandler) ListSecurityLogs(c *fiber.Ctx) error {
	page, limit := pagination(c)

	filter := domain.SecurityLogFilter{
		Email:      c.Query("email"),
		IP:         c.Query("ip"),
		Action:     c.Query("action"),
		StatusCode: c.Query("status_code"),
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from timestamp"})
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to timestamp"})
		}
		filter.To = t
	}

	logs, total, err := h.securityLogger.List(reqCtx(c), filter)
	if err != nil {
		return respondError(c, err)
	}

	entries := make([]dto.SecurityLogEntry, 0, len(logs))
	for i := range logs {
		entries = append(entries, dto.NewSecurityLogEntry(logs[i]))
	}

	return c.Status(fiber.StatusOK).JSON(dto.SecurityLogList{
		Total:  total,
		Page:   page,
		Limit:  limit,
		Result: entries,
	})
}
