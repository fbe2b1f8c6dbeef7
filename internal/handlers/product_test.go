package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/example/canasta/internal/models"
)

// catalogFixtures creates the reference rows and two water variants:
// A = 1L bottle, B = 500ml bottle.
func catalogFixtures(t *testing.T, env *testEnv) (a, b *models.ProductVariant) {
	t.Helper()

	pres := &models.Presentation{Name: "Plastic Bottle"}
	if err := env.st.CreatePresentation(pres); err != nil {
		t.Fatalf("CreatePresentation() error = %v", err)
	}
	liter := &models.UnitOfMeasure{Name: "Liter", Abbreviation: "L"}
	if err := env.st.CreateUnit(liter); err != nil {
		t.Fatalf("CreateUnit() error = %v", err)
	}
	ml := &models.UnitOfMeasure{Name: "Milliliter", Abbreviation: "ml"}
	if err := env.st.CreateUnit(ml); err != nil {
		t.Fatalf("CreateUnit() error = %v", err)
	}
	water := &models.Product{Name: "Water"}
	if err := env.st.CreateProduct(water); err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	a = &models.ProductVariant{
		ProductID:      water.ID,
		PresentationID: pres.ID,
		UnitID:         liter.ID,
		Size:           decimal.NewFromInt(1),
		IsActive:       true,
	}
	if err := env.st.CreateVariant(a); err != nil {
		t.Fatalf("CreateVariant(1L) error = %v", err)
	}
	b = &models.ProductVariant{
		ProductID:      water.ID,
		PresentationID: pres.ID,
		UnitID:         ml.ID,
		Size:           decimal.NewFromInt(500),
		IsActive:       true,
	}
	if err := env.st.CreateVariant(b); err != nil {
		t.Fatalf("CreateVariant(500ml) error = %v", err)
	}
	return a, b
}

func TestEquivalents_DeclareAndConvert(t *testing.T) {
	env := setupEnv(t)
	user := env.createUser(t, "ana", "ana@example.com", "secret123", false, false, true)
	token := env.token(t, user)
	a, b := catalogFixtures(t, env)

	// Declare: 1x 1L = 2x 500ml.
	status, payload := env.request(t, http.MethodPost, "/api/equivalents/", token, fiber.Map{
		"source_variant_id":     a.ID,
		"source_quantity":       "1",
		"equivalent_variant_id": b.ID,
		"equivalent_quantity":   "2",
	})
	if status != http.StatusCreated || !success(payload) {
		t.Fatalf("declare edge: status=%d payload=%v", status, payload)
	}
	data := payload["data"].(map[string]interface{})
	if data["ratio"] != "2" {
		t.Errorf("declared ratio = %v, want 2", data["ratio"])
	}

	t.Run("forward", func(t *testing.T) {
		_, payload := env.request(t, http.MethodGet,
			"/api/equivalents/convert?from="+a.ID.String()+"&to="+b.ID.String()+"&quantity=3", token, nil)
		if !success(payload) {
			t.Fatalf("convert failed: %v", payload)
		}
		result := payload["data"].(map[string]interface{})
		if result["result"] != "6" {
			t.Errorf("convert(1L, 500ml, 3) = %v, want 6", result["result"])
		}
	})

	t.Run("reverse of the stored direction", func(t *testing.T) {
		_, payload := env.request(t, http.MethodGet,
			"/api/equivalents/convert?from="+b.ID.String()+"&to="+a.ID.String()+"&quantity=6", token, nil)
		if !success(payload) {
			t.Fatalf("convert failed: %v", payload)
		}
		result := payload["data"].(map[string]interface{})
		if result["result"] != "3" {
			t.Errorf("convert(500ml, 1L, 6) = %v, want 3", result["result"])
		}
	})

	t.Run("identity", func(t *testing.T) {
		_, payload := env.request(t, http.MethodGet,
			"/api/equivalents/convert?from="+a.ID.String()+"&to="+a.ID.String()+"&quantity=7.25", token, nil)
		result := payload["data"].(map[string]interface{})
		if result["result"] != "7.25" {
			t.Errorf("identity conversion = %v, want 7.25", result["result"])
		}
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		status, payload := env.request(t, http.MethodPost, "/api/equivalents/", token, fiber.Map{
			"source_variant_id":     a.ID,
			"source_quantity":       "1",
			"equivalent_variant_id": b.ID,
			"equivalent_quantity":   "3",
		})
		if status != http.StatusConflict || success(payload) {
			t.Errorf("duplicate edge: status=%d payload=%v, want 409 failure", status, payload)
		}
	})
}

func TestConvert_NoPathBetweenComponents(t *testing.T) {
	env := setupEnv(t)
	user := env.createUser(t, "ana", "ana@example.com", "secret123", false, false, true)
	token := env.token(t, user)
	a, b := catalogFixtures(t, env)

	// No edges declared at all.
	_, payload := env.request(t, http.MethodGet,
		"/api/equivalents/convert?from="+a.ID.String()+"&to="+b.ID.String()+"&quantity=1", token, nil)
	if success(payload) {
		t.Fatal("expected no-path failure")
	}
	if message(payload) != "No equivalency path found between the requested variants" {
		t.Errorf("message = %q", message(payload))
	}
}

func TestPresentationDelete_BlockedViaAPI(t *testing.T) {
	env := setupEnv(t)
	user := env.createUser(t, "ana", "ana@example.com", "secret123", false, false, true)
	token := env.token(t, user)
	a, _ := catalogFixtures(t, env)

	status, payload := env.request(t, http.MethodDelete,
		"/api/presentations/"+a.PresentationID.String(), token, nil)
	if status != http.StatusConflict || success(payload) {
		t.Errorf("delete referenced presentation: status=%d payload=%v, want 409 failure", status, payload)
	}
}
