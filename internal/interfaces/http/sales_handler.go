package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/domain"
)

// SalesHandler handles HTTP requests for the Sales resource.
type SalesHandler struct {
	uc  *usecase.SalesUseCase
	env string
}

// NewSalesHandler builds the handler injecting the use case.
func NewSalesHandler(uc *usecase.SalesUseCase, env string) *SalesHandler {
	return &SalesHandler{uc: uc, env: env}
}

func salesReferenceMessage(field string) string {
	if field == "itemId" {
		return "Item not found with the provided ID"
	}
	return "Company not found with the provided ID"
}

// Create godoc
// @Summary      Create sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesRequest  true  "Sale fields"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if fk, ok := domain.AsForeignKey(err); ok {
			return badRequest(c, salesReferenceMessage(fk.Field))
		}
		return internalError(c, h.env, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Sale created successfully",
		Data:    out,
	})
}

// GetAll godoc
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /sales [get]
func (h *SalesHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Count:   dto.Count(len(out)),
		Data:    out,
	})
}

// GetByID godoc
// @Summary      Get sale by id
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Sale ID is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, h.env, err)
	}
	if out == nil {
		return notFound(c, "Sale not found")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Update sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Sale ID"
// @Param        body  body  dto.UpdateSalesRequest  true  "Sale fields"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Sale ID is required")
	}
	var in dto.UpdateSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, changed, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Sale not found")
		}
		if fk, ok := domain.AsForeignKey(err); ok {
			return badRequest(c, salesReferenceMessage(fk.Field))
		}
		return internalError(c, h.env, err)
	}
	if !changed {
		return c.JSON(dto.Response{Success: true, Message: "No changes made"})
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Sale updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Delete sale
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "Sale ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Sale ID is required")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Sale not found")
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Sale deleted successfully",
		Data: dto.DeletedResponse{
			ID:        id,
			DeletedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}
