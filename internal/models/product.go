package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the conceptual item ("Water", "Cola"). The purchasable things
// are its variants. (name, brand) is unique.
type Product struct {
	BaseModel
	Name        string           `gorm:"uniqueIndex:idx_products_name_brand" json:"name"`
	BrandID     *uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_products_name_brand" json:"brand_id"`
	Brand       *Brand           `json:"brand,omitempty"`
	Categories  []Category       `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant is a purchasable packaging of a product: presentation plus
// size plus unit. (product, presentation, size, unit) is unique.
type ProductVariant struct {
	BaseModel
	ProductID      uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_variants_shape" json:"product_id"`
	Product        *Product        `json:"product,omitempty"`
	PresentationID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_variants_shape" json:"presentation_id"`
	Presentation   *Presentation   `json:"presentation,omitempty"`
	Size           decimal.Decimal `gorm:"type:decimal(10,2);uniqueIndex:idx_variants_shape" json:"size"`
	UnitID         uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_variants_shape" json:"unit_id"`
	Unit           *UnitOfMeasure  `json:"unit,omitempty"`
	SKU            *string         `gorm:"uniqueIndex" json:"sku"`
	Barcode        *string         `gorm:"uniqueIndex" json:"barcode"`
	Image          string          `json:"image"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
}

// DisplayName returns a user-friendly label for the variant. Associations
// must be preloaded.
func (v *ProductVariant) DisplayName() string {
	name := ""
	if v.Product != nil {
		name = v.Product.Name
	}
	size := v.Size.String()
	if v.Unit != nil {
		size += v.Unit.Abbreviation
	}
	if v.Presentation != nil {
		return name + " " + size + " (" + v.Presentation.Name + ")"
	}
	return name + " " + size
}

// ProductEquivalent declares that SourceQuantity units of the source variant
// equal EquivalentQuantity units of the equivalent variant. At most one edge
// exists per ordered variant pair; both quantities are positive.
type ProductEquivalent struct {
	BaseModel
	SourceVariantID     uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_equivalents_pair" json:"source_variant_id"`
	SourceVariant       *ProductVariant `json:"source_variant,omitempty"`
	SourceQuantity      decimal.Decimal `gorm:"type:decimal(10,2);default:1.00" json:"source_quantity"`
	EquivalentVariantID uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_equivalents_pair" json:"equivalent_variant_id"`
	EquivalentVariant   *ProductVariant `json:"equivalent_variant,omitempty"`
	EquivalentQuantity  decimal.Decimal `gorm:"type:decimal(10,2)" json:"equivalent_quantity"`
}
