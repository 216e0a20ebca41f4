package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/middleware"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/prashilgroup/prashil-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
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

	app, err := h.applicationService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidServiceType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrServiceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProfileIncomplete):
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(), Redirect: "/dashboard/profile",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	status := c.Query("status", "")
	serviceType := models.ServiceType(c.Query("type", ""))

	apps, err := h.applicationService.ListForUser(userID, status, serviceType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch applications",
		})
	}

	return c.JSON(fiber.Map{"applications": apps, "total": len(apps)})
}

func (h *ApplicationHandler) ListAll(c *fiber.Ctx) error {
	search := c.Query("search", "")
	status := c.Query("status", "")
	serviceType := models.ServiceType(c.Query("type", ""))

	apps, err := h.applicationService.ListForAdmin(search, status, serviceType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch applications",
		})
	}

	return c.JSON(fiber.Map{"applications": apps, "total": len(apps)})
}

func (h *ApplicationHandler) Respond(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.RespondRequest
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

	if err := h.applicationService.Respond(id, req.Response); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send response",
		})
	}

	return c.JSON(fiber.Map{"message": "Response sent successfully"})
}

func (h *ApplicationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	var req dto.SetStatusRequest
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

	if err := h.applicationService.SetStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update status",
		})
	}

	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid application ID",
		})
	}

	if err := h.applicationService.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidState):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to withdraw application",
		})
	}

	return c.JSON(fiber.Map{"message": "Application withdrawn successfully"})
}
