package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/services"
)

type FAQHandler struct {
	faqService *services.FAQService
}

func NewFAQHandler(faqService *services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

func (h *FAQHandler) List(c *fiber.Ctx) error {
	faqs, err := h.faqService.List(c.Query("section"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidFAQSection) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch FAQs",
		})
	}
	return c.JSON(fiber.Map{"faqs": faqs})
}

func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Fields: fields,
		})
	}

	faq, err := h.faqService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create FAQ",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(faq)
}

func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid FAQ ID",
		})
	}

	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Fields: fields,
		})
	}

	if err := h.faqService.Update(id, &req); err != nil {
		if errors.Is(err, services.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update FAQ",
		})
	}
	return c.JSON(fiber.Map{"message": "FAQ updated successfully"})
}

func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid FAQ ID",
		})
	}

	if err := h.faqService.Delete(id); err != nil {
		if errors.Is(err, services.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete FAQ",
		})
	}
	return c.JSON(fiber.Map{"message": "FAQ deleted successfully"})
}
