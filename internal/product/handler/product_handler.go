package handler

import (
	"errors"

	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/authcore-id/auth-backend/internal/product/dto"
	"github.com/authcore-id/auth-backend/internal/product/service"
	"github.com/authcore-id/auth-backend/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, autherror.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", constant.DefaultPageLimit)
	if limit < 1 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}

	products, err := h.service.List(c.UserContext(), c.Query("q"), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.ProductOutput, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductOutput(&products[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProductOutput(p))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input dto.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	p, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewProductOutput(p))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var input dto.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	p, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewProductOutput(p))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Product deleted"})
}
