package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/canasta/internal/equivalency"
	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
	"github.com/example/canasta/internal/utils"
)

// ProductHandler manages products, their variants and the equivalency
// edges between variants.
type ProductHandler struct {
	st *store.Store
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{st: st}
}

// RegisterProductRoutes attaches product, variant and equivalency routes.
func (h *ProductHandler) RegisterProductRoutes(products fiber.Router, variants fiber.Router, equivalents fiber.Router) {
	products.Get("/", h.ListProducts)
	products.Post("/", h.CreateProduct)
	products.Get("/:id", h.GetProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)

	variants.Get("/", h.ListVariants)
	variants.Post("/", h.CreateVariant)
	variants.Get("/:id", h.GetVariant)
	variants.Put("/:id", h.UpdateVariant)
	variants.Delete("/:id", h.DeleteVariant)

	equivalents.Get("/convert", h.Convert)
	equivalents.Get("/", h.ListEquivalents)
	equivalents.Post("/", h.CreateEquivalent)
	equivalents.Get("/:id", h.GetEquivalent)
	equivalents.Delete("/:id", h.DeleteEquivalent)
}

// Products

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	items, total, err := h.st.ListProductsPage(pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

type productRequest struct {
	Name        string      `json:"name"`
	BrandID     *uuid.UUID  `json:"brand_id"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	product := models.Product{
		Name:        req.Name,
		BrandID:     req.BrandID,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, catID := range req.CategoryIDs {
		cat, err := h.st.GetCategory(catID)
		if err != nil {
			return writeResult(c, err, 0, nil)
		}
		product.Categories = append(product.Categories, *cat)
	}

	err := h.st.CreateProduct(&product)
	return writeResult(c, err, fiber.StatusCreated, &product)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetProduct(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetProduct(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.BrandID != nil {
		item.BrandID = req.BrandID
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Image != "" {
		item.Image = req.Image
	}

	err = h.st.UpdateProduct(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteProduct(id), 0, nil)
}

// Variants

func (h *ProductHandler) ListVariants(c *fiber.Ctx) error {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
		}
		productID = &id
	}
	items, err := h.st.ListVariants(productID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type variantRequest struct {
	ProductID      uuid.UUID       `json:"product_id"`
	PresentationID uuid.UUID       `json:"presentation_id"`
	UnitID         uuid.UUID       `json:"unit_id"`
	Size           decimal.Decimal `json:"size"`
	SKU            *string         `json:"sku"`
	Barcode        *string         `json:"barcode"`
	Image          string          `json:"image"`
	IsActive       *bool           `json:"is_active"`
}

func (h *ProductHandler) CreateVariant(c *fiber.Ctx) error {
	var req variantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	variant := models.ProductVariant{
		ProductID:      req.ProductID,
		PresentationID: req.PresentationID,
		UnitID:         req.UnitID,
		Size:           req.Size,
		SKU:            req.SKU,
		Barcode:        req.Barcode,
		Image:          req.Image,
		IsActive:       isActive,
	}

	err := h.st.CreateVariant(&variant)
	return writeResult(c, err, fiber.StatusCreated, &variant)
}

func (h *ProductHandler) GetVariant(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetVariant(id)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *ProductHandler) UpdateVariant(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.st.GetVariant(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}

	var req variantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Size.IsZero() {
		item.Size = req.Size
	}
	if req.SKU != nil {
		item.SKU = req.SKU
	}
	if req.Barcode != nil {
		item.Barcode = req.Barcode
	}
	if req.Image != "" {
		item.Image = req.Image
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	err = h.st.UpdateVariant(item)
	return writeResult(c, err, fiber.StatusOK, item)
}

func (h *ProductHandler) DeleteVariant(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteVariant(id), 0, nil)
}

// Equivalency edges

// equivalentResponse decorates an edge with its declared conversion ratio.
type equivalentResponse struct {
	models.ProductEquivalent
	Ratio decimal.Decimal `json:"ratio"`
}

func (h *ProductHandler) ListEquivalents(c *fiber.Ctx) error {
	edges, err := h.st.ListEquivalents()
	if err != nil {
		return err
	}
	data := make([]equivalentResponse, len(edges))
	for i, e := range edges {
		data[i] = equivalentResponse{ProductEquivalent: e, Ratio: equivalency.Ratio(e)}
	}
	return c.JSON(fiber.Map{"success": true, "data": data})
}

type equivalentRequest struct {
	SourceVariantID     uuid.UUID       `json:"source_variant_id"`
	SourceQuantity      decimal.Decimal `json:"source_quantity"`
	EquivalentVariantID uuid.UUID       `json:"equivalent_variant_id"`
	EquivalentQuantity  decimal.Decimal `json:"equivalent_quantity"`
}

func (h *ProductHandler) CreateEquivalent(c *fiber.Ctx) error {
	var req equivalentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	edge := models.ProductEquivalent{
		SourceVariantID:     req.SourceVariantID,
		SourceQuantity:      req.SourceQuantity,
		EquivalentVariantID: req.EquivalentVariantID,
		EquivalentQuantity:  req.EquivalentQuantity,
	}

	if err := h.st.CreateEquivalent(&edge); err != nil {
		return writeResult(c, err, 0, nil)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    equivalentResponse{ProductEquivalent: edge, Ratio: equivalency.Ratio(edge)},
	})
}

func (h *ProductHandler) GetEquivalent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	edge, err := h.st.GetEquivalent(id)
	if err != nil {
		return writeResult(c, err, 0, nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    equivalentResponse{ProductEquivalent: *edge, Ratio: equivalency.Ratio(*edge)},
	})
}

func (h *ProductHandler) DeleteEquivalent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	return writeResult(c, h.st.DeleteEquivalent(id), 0, nil)
}

// Convert answers how many to-variant units equal the given quantity of the
// from-variant, composing declared ratios across the equivalency graph.
func (h *ProductHandler) Convert(c *fiber.Ctx) error {
	from, err := uuid.Parse(c.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid from variant id")
	}
	to, err := uuid.Parse(c.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid to variant id")
	}
	qty, err := decimal.NewFromString(c.Query("quantity", "1"))
	if err != nil || !qty.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be a positive decimal")
	}

	if _, err := h.st.GetVariant(from); err != nil {
		return writeResult(c, err, 0, nil)
	}
	if _, err := h.st.GetVariant(to); err != nil {
		return writeResult(c, err, 0, nil)
	}

	edges, err := h.st.ListEquivalents()
	if err != nil {
		return err
	}

	result, err := equivalency.NewGraph(edges).Convert(from, to, qty)
	if err == equivalency.ErrNoPath {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "No equivalency path found between the requested variants",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"from_variant_id": from,
			"to_variant_id":   to,
			"quantity":        qty,
			"result":          result,
		},
	})
}
