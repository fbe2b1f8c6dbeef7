package seed

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	migrations := []interface{}{
		&models.Category{},
		&models.UnitOfMeasure{},
		&models.Presentation{},
		&models.Brand{},
		&models.Product{},
		&models.ProductVariant{},
	}
	for _, m := range migrations {
		if err := db.AutoMigrate(m); err != nil {
			t.Fatalf("failed to migrate test database: %v", err)
		}
	}
	return store.New(db)
}

func TestRun_AllStepsThenIdempotent(t *testing.T) {
	st := setupStore(t)

	if err := Run(st, ""); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	cats, err := st.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(cats) != len(categories()) {
		t.Errorf("categories seeded = %d, want %d", len(cats), len(categories()))
	}
	gotUnits, err := st.ListUnits()
	if err != nil {
		t.Fatalf("ListUnits() error = %v", err)
	}
	if len(gotUnits) != len(units()) {
		t.Errorf("units seeded = %d, want %d", len(gotUnits), len(units()))
	}

	// Re-running creates nothing and reports everything as existing.
	for _, step := range Steps() {
		result, err := step.Run(st)
		if err != nil {
			t.Fatalf("step %s rerun error = %v", step.Name, err)
		}
		if result.Created != 0 {
			t.Errorf("step %s rerun created %d rows, want 0", step.Name, result.Created)
		}
		if result.Existing == 0 {
			t.Errorf("step %s rerun reported no existing rows", step.Name)
		}
	}
}

func TestRun_SingleStep(t *testing.T) {
	st := setupStore(t)

	if err := Run(st, "brands"); err != nil {
		t.Fatalf("Run(brands) error = %v", err)
	}

	gotBrands, err := st.ListBrands()
	if err != nil {
		t.Fatalf("ListBrands() error = %v", err)
	}
	if len(gotBrands) != len(brands()) {
		t.Errorf("brands seeded = %d, want %d", len(gotBrands), len(brands()))
	}
	// The other steps did not run.
	cats, err := st.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("categories seeded by a brands-only run: %d", len(cats))
	}
}

func TestRun_UnknownStep(t *testing.T) {
	st := setupStore(t)

	if err := Run(st, "nonsense"); err == nil {
		t.Error("expected error for unknown step name")
	}
}
