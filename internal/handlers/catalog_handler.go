package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Courses

func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.catalogService.ListCourses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch courses",
		})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func (h *CatalogHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
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

	course, err := h.catalogService.CreateCourse(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create course",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (h *CatalogHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid course ID",
		})
	}

	var req dto.CourseRequest
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

	if err := h.catalogService.UpdateCourse(id, &req); err != nil {
		return catalogWriteError(c, err, "Failed to update course")
	}
	return c.JSON(fiber.Map{"message": "Course updated successfully"})
}

func (h *CatalogHandler) DeleteCourse(c *fiber.Ctx) error {
	return h.deleteCatalogItem(c, h.catalogService.DeleteCourse, "Course deleted successfully")
}

// Guidance services

func (h *CatalogHandler) ListGuidanceServices(c *fiber.Ctx) error {
	servicesList, err := h.catalogService.ListGuidanceServices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch guidance services",
		})
	}
	return c.JSON(fiber.Map{"services": servicesList})
}

func (h *CatalogHandler) CreateGuidanceService(c *fiber.Ctx) error {
	var req dto.GuidanceServiceRequest
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

	svc, err := h.catalogService.CreateGuidanceService(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create guidance service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (h *CatalogHandler) UpdateGuidanceService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	var req dto.GuidanceServiceRequest
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

	if err := h.catalogService.UpdateGuidanceService(id, &req); err != nil {
		return catalogWriteError(c, err, "Failed to update guidance service")
	}
	return c.JSON(fiber.Map{"message": "Guidance service updated successfully"})
}

func (h *CatalogHandler) DeleteGuidanceService(c *fiber.Ctx) error {
	return h.deleteCatalogItem(c, h.catalogService.DeleteGuidanceService, "Guidance service deleted successfully")
}

// Finance catalog

func (h *CatalogHandler) ListFinanceCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListFinanceCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch finance categories",
		})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (h *CatalogHandler) CreateFinanceCategory(c *fiber.Ctx) error {
	var req dto.FinanceCategoryRequest
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

	category, err := h.catalogService.CreateFinanceCategory(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create finance category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) ListFinanceServices(c *fiber.Ctx) error {
	servicesList, err := h.catalogService.ListFinanceServices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch finance services",
		})
	}
	return c.JSON(fiber.Map{"services": servicesList})
}

func (h *CatalogHandler) CreateFinanceService(c *fiber.Ctx) error {
	var req dto.FinanceServiceRequest
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

	svc, err := h.catalogService.CreateFinanceService(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create finance service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (h *CatalogHandler) UpdateFinanceService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid service ID",
		})
	}

	var req dto.FinanceServiceRequest
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

	if err := h.catalogService.UpdateFinanceService(id, &req); err != nil {
		return catalogWriteError(c, err, "Failed to update finance service")
	}
	return c.JSON(fiber.Map{"message": "Finance service updated successfully"})
}

func (h *CatalogHandler) DeleteFinanceService(c *fiber.Ctx) error {
	return h.deleteCatalogItem(c, h.catalogService.DeleteFinanceService, "Finance service deleted successfully")
}

func (h *CatalogHandler) deleteCatalogItem(c *fiber.Ctx, del func(uuid.UUID) error, okMessage string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	if err := del(id); err != nil {
		return catalogWriteError(c, err, "Failed to delete")
	}
	return c.JSON(fiber.Map{"message": okMessage})
}

func catalogWriteError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrServiceNotFound), errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
