package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/domain"
)

// ItemHandler handles HTTP requests for the Item resource.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	env string
}

// NewItemHandler builds the handler injecting the use case.
func NewItemHandler(uc *usecase.ItemUseCase, env string) *ItemHandler {
	return &ItemHandler{uc: uc, env: env}
}

// Create godoc
// @Summary      Create item
// @Tags         item
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Item fields"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /item [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if _, ok := domain.AsDuplicateKey(err); ok {
			return badRequest(c, "An item with this HSN code already exists")
		}
		return internalError(c, h.env, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Item created successfully",
		Data:    out,
	})
}

// GetAll godoc
// @Summary      List items
// @Tags         item
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /item [get]
func (h *ItemHandler) GetAll(c *fiber.Ctx) error {
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
// @Summary      Get item by id
// @Tags         item
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /item/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Item ID is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, h.env, err)
	}
	if out == nil {
		return notFound(c, "Item not found")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByHsnCode godoc
// @Summary      List items by HSN code
// @Tags         item
// @Produce      json
// @Param        hsnCode  path  string  true  "HSN code"
// @Success      200  {object}  dto.Response
// @Router       /item/hsn/{hsnCode} [get]
func (h *ItemHandler) GetByHsnCode(c *fiber.Ctx) error {
	hsnCode := c.Params("hsnCode")
	if hsnCode == "" {
		return badRequest(c, "HSN code is required")
	}
	out, err := h.uc.GetByHsnCode(hsnCode)
	if err != nil {
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Count:   dto.Count(len(out)),
		Data:    out,
	})
}

// Update godoc
// @Summary      Update item
// @Tags         item
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Item ID"
// @Param        body  body  dto.UpdateItemRequest  true  "Item fields"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /item/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Item ID is required")
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, changed, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Item not found")
		}
		return internalError(c, h.env, err)
	}
	// The item endpoint reports a no-op update as not found, unlike
	// company and sales.
	if !changed {
		return notFound(c, "Item not found or no changes made")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Delete item
// @Tags         item
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /item/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Item ID is required")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Item not found")
		}
		if _, ok := domain.AsForeignKey(err); ok {
			return badRequest(c, "Cannot delete item as it has associated records (sales, orders, etc.)")
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Item deleted successfully",
		Data: dto.DeletedResponse{
			ID:        id,
			DeletedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// BulkDelete godoc
// @Summary      Bulk delete items
// @Tags         item
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "Item IDs"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /item/bulk-delete [post]
func (h *ItemHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil || len(in.IDs) == 0 {
		return badRequest(c, "Please provide an array of item IDs")
	}
	result, err := h.uc.BulkDelete(in.IDs)
	if err != nil {
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: fmt.Sprintf("%d items deleted successfully", result.DeletedCount),
		Data:    result,
	})
}
