package seed

import (
	"fmt"
	"log"

	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
)

// Step is one named, individually atomic seeding unit. Steps are ordered so
// reference data lands before anything that depends on it.
type Step struct {
	Name string
	Run  func(st *store.Store) (store.SeedResult, error)
}

// Steps returns the ordered seed steps.
func Steps() []Step {
	return []Step{
		{Name: "categories", Run: func(st *store.Store) (store.SeedResult, error) {
			return st.SeedCategories(categories())
		}},
		{Name: "units", Run: func(st *store.Store) (store.SeedResult, error) {
			return st.SeedUnits(units())
		}},
		{Name: "presentations", Run: func(st *store.Store) (store.SeedResult, error) {
			return st.SeedPresentations(presentations())
		}},
		{Name: "brands", Run: func(st *store.Store) (store.SeedResult, error) {
			return st.SeedBrands(brands())
		}},
	}
}

// Run executes the seed steps in order, or a single named step when only is
// non-empty. Each step commits independently; a failure stops the run but
// leaves previously committed steps in place.
func Run(st *store.Store, only string) error {
	steps := Steps()
	if only != "" {
		found := false
		for _, s := range steps {
			if s.Name == only {
				steps = []Step{s}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown seed step %q", only)
		}
	}

	for _, s := range steps {
		result, err := s.Run(st)
		if err != nil {
			return fmt.Errorf("seed step %s: %w", s.Name, err)
		}
		log.Printf("  %s: %d created, %d already existed", s.Name, result.Created, result.Existing)
	}
	return nil
}

func categories() []models.Category {
	return []models.Category{
		{Name: "Beverages", Color: "#3B82F6"},
		{Name: "Dairy", Color: "#F59E0B"},
		{Name: "Snacks", Color: "#EF4444"},
		{Name: "Cleaning", Color: "#10B981"},
		{Name: "Personal Care", Color: "#8B5CF6"},
		{Name: "Frozen Foods", Color: "#06B6D4"},
		{Name: "Canned Goods", Color: "#F97316"},
		{Name: "Bakery", Color: "#EC4899"},
		{Name: "Meat & Poultry", Color: "#DC2626"},
		{Name: "Condiments", Color: "#84CC16"},
		{Name: "Grains & Cereals", Color: "#A78BFA"},
		{Name: "Health & Wellness", Color: "#14B8A6"},
	}
}

func units() []models.UnitOfMeasure {
	return []models.UnitOfMeasure{
		// Volume
		{Name: "Milliliter", Abbreviation: "ml"},
		{Name: "Liter", Abbreviation: "L"},
		{Name: "Fluid Ounce", Abbreviation: "fl oz"},
		{Name: "Gallon", Abbreviation: "gal"},
		// Weight
		{Name: "Gram", Abbreviation: "g"},
		{Name: "Kilogram", Abbreviation: "kg"},
		{Name: "Ounce", Abbreviation: "oz"},
		{Name: "Pound", Abbreviation: "lb"},
		// Count
		{Name: "Unit", Abbreviation: "u"},
		{Name: "Pack", Abbreviation: "pk"},
		{Name: "Dozen", Abbreviation: "dz"},
		{Name: "Box", Abbreviation: "box"},
		// Other
		{Name: "Piece", Abbreviation: "pc"},
		{Name: "Roll", Abbreviation: "roll"},
		{Name: "Sheet", Abbreviation: "sht"},
	}
}

func presentations() []models.Presentation {
	return []models.Presentation{
		{Name: "Plastic Bottle", Description: "Standard plastic container, typically PET or HDPE"},
		{Name: "Glass Bottle", Description: "Glass container, often used for premium products"},
		{Name: "Squeeze Bottle", Description: "Flexible plastic bottle with squeezable sides"},
		{Name: "Tetra Pak", Description: "Aseptic carton packaging, commonly used for milk and juices"},
		{Name: "Carton", Description: "Cardboard box packaging"},
		{Name: "Box", Description: "Standard box container"},
		{Name: "Aluminum Can", Description: "Metal can, typically for beverages"},
		{Name: "Tin Can", Description: "Metal can for preserved foods"},
		{Name: "Plastic Bag", Description: "Flexible plastic packaging"},
		{Name: "Paper Bag", Description: "Eco-friendly paper packaging"},
		{Name: "Pouch", Description: "Stand-up or flat flexible pouch"},
		{Name: "Sachet", Description: "Small single-use packet"},
		{Name: "Glass Jar", Description: "Glass container with lid"},
		{Name: "Plastic Jar", Description: "Plastic container with lid"},
		{Name: "Tub", Description: "Wide-mouth plastic container"},
		{Name: "Vidon", Description: "Large water container (typically 20L)"},
		{Name: "Gallon Jug", Description: "Large plastic jug container"},
		{Name: "Drum", Description: "Industrial-size container"},
		{Name: "Wrap", Description: "Plastic or paper wrapping"},
		{Name: "Blister Pack", Description: "Plastic packaging with cardboard backing"},
		{Name: "Tube", Description: "Squeezable tube container"},
		{Name: "Spray Bottle", Description: "Container with spray mechanism"},
		{Name: "Dispenser", Description: "Container with pump or dispenser mechanism"},
		{Name: "Bulk", Description: "Unpackaged, sold by weight or volume"},
	}
}

func brands() []models.Brand {
	return []models.Brand{
		{Name: "Coca Cola"},
		{Name: "Pepsi"},
		{Name: "Nestle"},
		{Name: "Gloria"},
		{Name: "San Luis"},
		{Name: "Cielo"},
		{Name: "Inka Kola"},
		{Name: "Lay's"},
		{Name: "Colgate"},
		{Name: "Procter & Gamble"},
	}
}
