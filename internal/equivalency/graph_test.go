package equivalency

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/canasta/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func edge(source, equivalent uuid.UUID, sourceQty, equivalentQty string) models.ProductEquivalent {
	return models.ProductEquivalent{
		SourceVariantID:     source,
		SourceQuantity:      dec(sourceQty),
		EquivalentVariantID: equivalent,
		EquivalentQuantity:  dec(equivalentQty),
	}
}

// The concrete scenario: 1x 1L bottle = 2x 500ml bottles.
func TestConvert_DirectEdge(t *testing.T) {
	liter := uuid.New()
	half := uuid.New()
	g := NewGraph([]models.ProductEquivalent{edge(liter, half, "1", "2")})

	got, err := g.Convert(liter, half, dec("3"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("6")) {
		t.Errorf("convert(1L, 500ml, 3) = %s, want 6", got)
	}

	back, err := g.Convert(half, liter, dec("6"))
	if err != nil {
		t.Fatalf("Convert() reverse error = %v", err)
	}
	if !back.Equal(dec("3")) {
		t.Errorf("convert(500ml, 1L, 6) = %s, want 3", back)
	}
}

func TestRatio(t *testing.T) {
	e := edge(uuid.New(), uuid.New(), "1.00", "2.00")
	if got := Ratio(e); !got.Equal(dec("2")) {
		t.Errorf("Ratio() = %s, want 2.00", got)
	}

	e = edge(uuid.New(), uuid.New(), "4.00", "6.00")
	if got := Ratio(e); !got.Equal(dec("1.5")) {
		t.Errorf("Ratio() = %s, want 1.5", got)
	}
}

// convert(source, equivalent, q) must be exactly q*e/s, without float drift.
func TestConvert_ExactDecimal(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	g := NewGraph([]models.ProductEquivalent{edge(a, b, "3.00", "1.00")})

	got, err := g.Convert(a, b, dec("9"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("3")) {
		t.Errorf("convert(a, b, 9) = %s, want exactly 3", got)
	}

	got, err = g.Convert(a, b, dec("0.30"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("0.1")) {
		t.Errorf("convert(a, b, 0.30) = %s, want exactly 0.1", got)
	}
}

func TestConvert_Identity(t *testing.T) {
	a := uuid.New()
	// Empty graph: identity must not traverse anything.
	g := NewGraph(nil)

	got, err := g.Convert(a, a, dec("7.25"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("7.25")) {
		t.Errorf("convert(a, a, 7.25) = %s, want 7.25", got)
	}
}

func TestConvert_PathComposition(t *testing.T) {
	a := uuid.New() // 1L
	b := uuid.New() // 500ml
	c := uuid.New() // 250ml
	g := NewGraph([]models.ProductEquivalent{
		edge(a, b, "1", "2"),
		edge(b, c, "1", "2"),
	})

	got, err := g.Convert(a, c, dec("3"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("12")) {
		t.Errorf("convert(a, c, 3) = %s, want 12 (factor 2*2)", got)
	}

	back, err := g.Convert(c, a, dec("12"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !back.Equal(dec("3")) {
		t.Errorf("round trip = %s, want 3", back)
	}
}

func TestConvert_NoPath(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	d := uuid.New()
	g := NewGraph([]models.ProductEquivalent{
		edge(a, b, "1", "2"),
		edge(c, d, "1", "3"),
	})

	if _, err := g.Convert(a, d, dec("1")); err != ErrNoPath {
		t.Errorf("convert across components: err = %v, want ErrNoPath", err)
	}
	if g.Connected(a, d) {
		t.Error("Connected(a, d) = true for disconnected components")
	}
	if !g.Connected(a, b) {
		t.Error("Connected(a, b) = false for a direct edge")
	}
}

// A cycle between declared paths must terminate and must not revisit nodes.
func TestConvert_CycleTerminates(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	g := NewGraph([]models.ProductEquivalent{
		edge(a, b, "1", "2"),
		edge(b, c, "1", "2"),
		edge(c, a, "4", "1"), // closes the cycle consistently
	})

	got, err := g.Convert(a, c, dec("1"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	// Direct edge c->a wins over the two-hop path: factor 4.
	if !got.Equal(dec("4")) {
		t.Errorf("convert(a, c, 1) = %s, want 4 via the one-hop path", got)
	}
}

// Contradictory declarations are allowed; the shortest path decides.
func TestConvert_ShortestPathWins(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	mid := uuid.New()
	g := NewGraph([]models.ProductEquivalent{
		edge(a, b, "1", "2"),   // direct: factor 2
		edge(a, mid, "1", "3"), // two-hop: factor 3*1=3, contradicts direct
		edge(mid, b, "1", "1"),
	})

	got, err := g.Convert(a, b, dec("5"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("10")) {
		t.Errorf("convert(a, b, 5) = %s, want 10 via the direct edge", got)
	}
}

// With two equally short paths the lower intermediate id must be chosen,
// on every run.
func TestConvert_DeterministicTieBreak(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	edges := []models.ProductEquivalent{
		edge(a, high, "1", "5"),
		edge(high, b, "1", "1"),
		edge(a, low, "1", "2"),
		edge(low, b, "1", "1"),
	}

	for i := 0; i < 10; i++ {
		g := NewGraph(edges)
		got, err := g.Convert(a, b, dec("1"))
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if !got.Equal(dec("2")) {
			t.Fatalf("convert(a, b, 1) = %s, want 2 via the lower intermediate id", got)
		}
	}
}

func TestConvert_FractionalQuantities(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	g := NewGraph([]models.ProductEquivalent{edge(a, b, "2.50", "7.50")})

	got, err := g.Convert(a, b, dec("0.50"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !got.Equal(dec("1.5")) {
		t.Errorf("convert(a, b, 0.50) = %s, want 1.5", got)
	}
}
