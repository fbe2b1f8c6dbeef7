package models

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"gorm.io/gorm"
)

// Category groups products for browsing. Color is a display hint in
// "#rrggbb" form, assigned randomly when not provided.
type Category struct {
	BaseModel
	Name     string    `gorm:"uniqueIndex" json:"name"`
	Color    string    `gorm:"size:7" json:"color"`
	Products []Product `gorm:"many2many:product_categories;" json:"products,omitempty"`
}

// BeforeCreate fills in a random display color when none was given.
func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if err := cat.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if cat.Color == "" {
		color, err := randomColor()
		if err != nil {
			return err
		}
		cat.Color = color
	}
	return nil
}

func randomColor() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(0x1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%06x", n.Int64()), nil
}

// UnitOfMeasure is a unit a variant size is expressed in, e.g. "Liter" / "L".
type UnitOfMeasure struct {
	BaseModel
	Name         string `gorm:"uniqueIndex" json:"name"`
	Abbreviation string `gorm:"uniqueIndex;size:10" json:"abbreviation"`
}

// Presentation is a packaging type, e.g. "Plastic Bottle" or "Tetra Pak".
// Deleting a presentation is blocked while any variant references it.
type Presentation struct {
	BaseModel
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description"`
}

// Brand names a manufacturer. Products keep a nullable reference, cleared
// when the brand is deleted.
type Brand struct {
	BaseModel
	Name string `gorm:"uniqueIndex" json:"name"`
}
