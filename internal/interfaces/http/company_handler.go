package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/domain"
)

// CompanyHandler handles HTTP requests for the Company resource.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	env string
}

// NewCompanyHandler builds the handler injecting the use case.
func NewCompanyHandler(uc *usecase.CompanyUseCase, env string) *CompanyHandler {
	return &CompanyHandler{uc: uc, env: env}
}

func companyDuplicateMessage(field string) string {
	if field == "email" {
		return "A company with this email already exists"
	}
	return "A company with this GST number already exists"
}

// Create godoc
// @Summary      Create company
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Company fields"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if dup, ok := domain.AsDuplicateKey(err); ok {
			return badRequest(c, companyDuplicateMessage(dup.Field))
		}
		return internalError(c, h.env, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Company created successfully",
		Data:    out,
	})
}

// GetAll godoc
// @Summary      List companies
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /company [get]
func (h *CompanyHandler) GetAll(c *fiber.Ctx) error {
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
// @Summary      Get company by id
// @Tags         company
// @Produce      json
// @Param        id   path  string  true  "Company ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /company/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Company ID is required")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, h.env, err)
	}
	if out == nil {
		return notFound(c, "Company not found")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Update company
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company ID"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Company fields"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /company/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Company ID is required")
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, changed, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Company not found")
		}
		if dup, ok := domain.AsDuplicateKey(err); ok {
			return badRequest(c, companyDuplicateMessage(dup.Field))
		}
		return internalError(c, h.env, err)
	}
	if !changed {
		return c.JSON(dto.Response{Success: true, Message: "No changes made"})
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Company updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Delete company
// @Tags         company
// @Produce      json
// @Param        id   path  string  true  "Company ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /company/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Company ID is required")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "Company not found")
		}
		if _, ok := domain.AsForeignKey(err); ok {
			return badRequest(c, "Cannot delete company as it has associated records (sales, etc.)")
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Company deleted successfully",
		Data: dto.DeletedResponse{
			ID:        id,
			DeletedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// BulkDelete godoc
// @Summary      Bulk delete companies
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "Company IDs"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /company/bulk-delete [post]
func (h *CompanyHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil || len(in.IDs) == 0 {
		return badRequest(c, "Please provide an array of company IDs")
	}
	result, err := h.uc.BulkDelete(in.IDs)
	if err != nil {
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: fmt.Sprintf("%d companies deleted successfully", result.DeletedCount),
		Data:    result,
	})
}
