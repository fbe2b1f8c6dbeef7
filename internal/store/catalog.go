package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/canasta/internal/models"
)

// SeedResult reports how a bulk seed went for one fixture set.
type SeedResult struct {
	Created  int
	Existing int
}

// seedBulk inserts rows skipping the ones whose unique keys already exist.
// Re-running a seed is a no-op for rows already present.
func seedBulk(db *gorm.DB, model interface{}, rows interface{}, count int) (SeedResult, error) {
	var result SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var before int64
		if err := tx.Model(model).Count(&before).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
			return err
		}
		var after int64
		if err := tx.Model(model).Count(&after).Error; err != nil {
			return err
		}
		result.Created = int(after - before)
		result.Existing = count - result.Created
		return nil
	})
	return result, err
}

// Categories

func (s *Store) CreateCategory(cat *models.Category) error {
	return translate(s.db.Create(cat).Error, "category name must be unique")
}

func (s *Store) GetCategory(id uuid.UUID) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &cat, nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Store) UpdateCategory(cat *models.Category) error {
	return translate(s.db.Save(cat).Error, "category name must be unique")
}

func (s *Store) DeleteCategory(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		cat := models.Category{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&cat).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}

func (s *Store) SeedCategories(rows []models.Category) (SeedResult, error) {
	return seedBulk(s.db, &models.Category{}, rows, len(rows))
}

// Units of measure

func (s *Store) CreateUnit(unit *models.UnitOfMeasure) error {
	return translate(s.db.Create(unit).Error, "unit name and abbreviation must be unique")
}

func (s *Store) GetUnit(id uuid.UUID) (*models.UnitOfMeasure, error) {
	var unit models.UnitOfMeasure
	if err := s.db.First(&unit, "id = ?", id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &unit, nil
}

func (s *Store) ListUnits() ([]models.UnitOfMeasure, error) {
	var units []models.UnitOfMeasure
	if err := s.db.Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *Store) UpdateUnit(unit *models.UnitOfMeasure) error {
	return translate(s.db.Save(unit).Error, "unit name and abbreviation must be unique")
}

// DeleteUnit refuses while any variant references the unit.
func (s *Store) DeleteUnit(id uuid.UUID) error {
	var refs int64
	if err := s.db.Model(&models.ProductVariant{}).Where("unit_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return &ConstraintError{Rule: "unit is referenced by product variants"}
	}
	return s.db.Delete(&models.UnitOfMeasure{}, "id = ?", id).Error
}

func (s *Store) SeedUnits(rows []models.UnitOfMeasure) (SeedResult, error) {
	return seedBulk(s.db, &models.UnitOfMeasure{}, rows, len(rows))
}

// Presentations

func (s *Store) CreatePresentation(p *models.Presentation) error {
	return translate(s.db.Create(p).Error, "presentation name must be unique")
}

func (s *Store) GetPresentation(id uuid.UUID) (*models.Presentation, error) {
	var p models.Presentation
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &p, nil
}

func (s *Store) ListPresentations() ([]models.Presentation, error) {
	var items []models.Presentation
	if err := s.db.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdatePresentation(p *models.Presentation) error {
	return translate(s.db.Save(p).Error, "presentation name must be unique")
}

// DeletePresentation refuses while any variant references the presentation.
func (s *Store) DeletePresentation(id uuid.UUID) error {
	var refs int64
	if err := s.db.Model(&models.ProductVariant{}).Where("presentation_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return &ConstraintError{Rule: "presentation is referenced by product variants"}
	}
	return s.db.Delete(&models.Presentation{}, "id = ?", id).Error
}

func (s *Store) SeedPresentations(rows []models.Presentation) (SeedResult, error) {
	return seedBulk(s.db, &models.Presentation{}, rows, len(rows))
}

// Brands

func (s *Store) CreateBrand(b *models.Brand) error {
	return translate(s.db.Create(b).Error, "brand name must be unique")
}

func (s *Store) GetBrand(id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &b, nil
}

func (s *Store) ListBrands() ([]models.Brand, error) {
	var items []models.Brand
	if err := s.db.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateBrand(b *models.Brand) error {
	return translate(s.db.Save(b).Error, "brand name must be unique")
}

// DeleteBrand clears the brand reference on its products instead of
// deleting them.
func (s *Store) DeleteBrand(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where("brand_id = ?", id).
			Update("brand_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Brand{}, "id = ?", id).Error
	})
}

func (s *Store) SeedBrands(rows []models.Brand) (SeedResult, error) {
	return seedBulk(s.db, &models.Brand{}, rows, len(rows))
}
