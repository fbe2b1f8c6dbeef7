package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
)

// CatalogHandler manages the reference tables: categories, units of
// measure, presentations and brands.
type CatalogHandler struct {
	st *store.Store
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{st: st}
}

// writeResult renders a mutation outcome: expected failures become
// success=false payloads, anything else bubbles to the error handler.
func writeResult(c *fiber.Ctx, err error, status int, data interface{}) error {
	if err != nil {
		if store.IsConstraint(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "resource not found",
			})
		}
		return err
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Categories

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	items, err := h.st.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetCategory(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	err := h.st.CreateCategory(&payload)
	return writeResult(c, err, fiber.StatusCreated, &payload)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetCategory(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}
	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name != "" {
		item.Name = payload.Name
	}
	if payload.Color != "" {
		item.Color = payload.Color
	}
	err = h.st.UpdateCategory(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteCategory(id), 0, nil)
}

// Units of measure

func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	items, err := h.st.ListUnits()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetUnit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetUnit(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	var payload models.UnitOfMeasure
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	err := h.st.CreateUnit(&payload)
	return writeResult(c, err, fiber.StatusCreated, &payload)
}

func (h *CatalogHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetUnit(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}
	var payload models.UnitOfMeasure
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name != "" {
		item.Name = payload.Name
	}
	if payload.Abbreviation != "" {
		item.Abbreviation = payload.Abbreviation
	}
	err = h.st.UpdateUnit(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteUnit(id), 0, nil)
}

// Presentations

func (h *CatalogHandler) ListPresentations(c *fiber.Ctx) error {
	items, err := h.st.ListPresentations()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetPresentation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetPresentation(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) CreatePresentation(c *fiber.Ctx) error {
	var payload models.Presentation
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	err := h.st.CreatePresentation(&payload)
	return writeResult(c, err, fiber.StatusCreated, &payload)
}

func (h *CatalogHandler) UpdatePresentation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetPresentation(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}
	var payload models.Presentation
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name != "" {
		item.Name = payload.Name
	}
	if payload.Description != "" {
		item.Description = payload.Description
	}
	err = h.st.UpdatePresentation(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

// DeletePresentation is blocked while variants reference the presentation.
func (h *CatalogHandler) DeletePresentation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeletePresentation(id), 0, nil)
}

// Brands

func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	items, err := h.st.ListBrands()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetBrand(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	err := h.st.CreateBrand(&payload)
	return writeResult(c, err, fiber.StatusCreated, &payload)
}

func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetBrand(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}
	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name != "" {
		item.Name = payload.Name
	}
	err = h.st.UpdateBrand(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

// DeleteBrand clears the brand from its products rather than deleting them.
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteBrand(id), 0, nil)
}
