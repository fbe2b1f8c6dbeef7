package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/canasta/internal/models"
)

// Products

func (s *Store) CreateProduct(p *models.Product) error {
	if p.BrandID != nil {
		if err := s.exists(&models.Brand{}, *p.BrandID, "product brand must exist"); err != nil {
			return err
		}
	}
	return translate(s.db.Create(p).Error, "product (name, brand) must be unique")
}

func (s *Store) GetProduct(id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := s.db.Preload("Brand").Preload("Categories").Preload("Variants").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "")
	}
	return &p, nil
}

func (s *Store) ListProducts() ([]models.Product, error) {
	var items []models.Product
	if err := s.db.Preload("Brand").Preload("Categories").
		Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListProductsPage returns one page of products plus the total count.
func (s *Store) ListProductsPage(limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Product
	err := s.db.Preload("Brand").Preload("Categories").
		Order("name asc").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	return translate(s.db.Save(p).Error, "product (name, brand) must be unique")
}

// DeleteProduct removes the product together with its variants and any
// equivalency edges touching those variants, in one transaction.
func (s *Store) DeleteProduct(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var variantIDs []uuid.UUID
		if err := tx.Model(&models.ProductVariant{}).Where("product_id = ?", id).
			Pluck("id", &variantIDs).Error; err != nil {
			return err
		}
		if len(variantIDs) > 0 {
			if err := tx.Where("source_variant_id IN ? OR equivalent_variant_id IN ?",
				variantIDs, variantIDs).Delete(&models.ProductEquivalent{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ProductVariant{}, "product_id = ?", id).Error; err != nil {
				return err
			}
		}
		p := models.Product{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&p).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

// Variants

func (s *Store) CreateVariant(v *models.ProductVariant) error {
	if err := validQuantity("variant size", v.Size); err != nil {
		return err
	}
	if err := s.exists(&models.Product{}, v.ProductID, "variant product must exist"); err != nil {
		return err
	}
	if err := s.exists(&models.Presentation{}, v.PresentationID, "variant presentation must exist"); err != nil {
		return err
	}
	if err := s.exists(&models.UnitOfMeasure{}, v.UnitID, "variant unit must exist"); err != nil {
		return err
	}
	return translate(s.db.Create(v).Error,
		"variant (product, presentation, size, unit) and sku/barcode must be unique")
}

func (s *Store) GetVariant(id uuid.UUID) (*models.ProductVariant, error) {
	var v models.ProductVariant
	err := s.db.Preload("Product").Preload("Presentation").Preload("Unit").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "")
	}
	return &v, nil
}

func (s *Store) ListVariants(productID *uuid.UUID) ([]models.ProductVariant, error) {
	query := s.db.Preload("Product").Preload("Presentation").Preload("Unit")
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	var items []models.ProductVariant
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateVariant(v *models.ProductVariant) error {
	if err := validQuantity("variant size", v.Size); err != nil {
		return err
	}
	return translate(s.db.Save(v).Error,
		"variant (product, presentation, size, unit) and sku/barcode must be unique")
}

// DeleteVariant removes the variant and every equivalency edge that uses it
// as either endpoint.
func (s *Store) DeleteVariant(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source_variant_id = ? OR equivalent_variant_id = ?", id, id).
			Delete(&models.ProductEquivalent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductVariant{}, "id = ?", id).Error
	})
}

// Equivalency edges

func (s *Store) CreateEquivalent(e *models.ProductEquivalent) error {
	if e.SourceQuantity.IsZero() {
		e.SourceQuantity = decimalOne
	}
	if err := validQuantity("source quantity", e.SourceQuantity); err != nil {
		return err
	}
	if err := validQuantity("equivalent quantity", e.EquivalentQuantity); err != nil {
		return err
	}
	if err := s.exists(&models.ProductVariant{}, e.SourceVariantID, "source variant must exist"); err != nil {
		return err
	}
	if err := s.exists(&models.ProductVariant{}, e.EquivalentVariantID, "equivalent variant must exist"); err != nil {
		return err
	}
	return translate(s.db.Create(e).Error,
		"equivalency (source variant, equivalent variant) pair must be unique")
}

func (s *Store) GetEquivalent(id uuid.UUID) (*models.ProductEquivalent, error) {
	var e models.ProductEquivalent
	err := s.db.Preload("SourceVariant").Preload("EquivalentVariant").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "")
	}
	return &e, nil
}

func (s *Store) ListEquivalents() ([]models.ProductEquivalent, error) {
	var items []models.ProductEquivalent
	if err := s.db.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteEquivalent(id uuid.UUID) error {
	return s.db.Delete(&models.ProductEquivalent{}, "id = ?", id).Error
}

// exists checks a foreign reference up front so the failure names the rule
// on every driver, not only those enforcing FKs.
func (s *Store) exists(model interface{}, id uuid.UUID, rule string) error {
	var count int64
	if err := s.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ConstraintError{Rule: rule}
	}
	return nil
}
