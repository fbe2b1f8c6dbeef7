package equivalency

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/canasta/internal/models"
)

// ErrNoPath is returned when the two variants live in disconnected
// components of the equivalency graph.
var ErrNoPath = errors.New("no equivalency path between variants")

// Ratio returns how many equivalent-variant units equal one source-variant
// unit for a single declared edge. SourceQuantity is structurally positive.
func Ratio(e models.ProductEquivalent) decimal.Decimal {
	return e.EquivalentQuantity.Div(e.SourceQuantity)
}

// arc is one traversal direction of a declared edge. The conversion factor
// from the owning node to the neighbor is num/den; the division is deferred
// until a whole path has been composed.
type arc struct {
	to       uuid.UUID
	num, den decimal.Decimal
}

// Graph is an adjacency view over the declared equivalency edges. Each edge
// contributes a forward arc and the implied reciprocal arc, so conversion
// works in both directions even though only one direction is stored.
//
// The graph is rebuilt from the store per use; it carries no mutable state.
type Graph struct {
	adj map[uuid.UUID][]arc
}

// NewGraph builds the adjacency representation from declared edges.
// Adjacency lists are sorted by neighbor id so that path search is
// reproducible when several equally short paths exist.
func NewGraph(edges []models.ProductEquivalent) *Graph {
	g := &Graph{adj: make(map[uuid.UUID][]arc)}
	for _, e := range edges {
		g.adj[e.SourceVariantID] = append(g.adj[e.SourceVariantID], arc{
			to:  e.EquivalentVariantID,
			num: e.EquivalentQuantity,
			den: e.SourceQuantity,
		})
		g.adj[e.EquivalentVariantID] = append(g.adj[e.EquivalentVariantID], arc{
			to:  e.SourceVariantID,
			num: e.SourceQuantity,
			den: e.EquivalentQuantity,
		})
	}
	for id := range g.adj {
		arcs := g.adj[id]
		sort.Slice(arcs, func(i, j int) bool {
			return arcs[i].to.String() < arcs[j].to.String()
		})
	}
	return g
}

// path tracks the composed conversion factor num/den from the search origin
// to a reached node.
type path struct {
	node     uuid.UUID
	num, den decimal.Decimal
}

// Convert returns the quantity of the to-variant equivalent to qty of the
// from-variant, composing ratios along the fewest-hop path. The factor is
// accumulated as a numerator/denominator pair and applied with a single
// division, so a direct edge converts exactly as qty*e/s.
func (g *Graph) Convert(from, to uuid.UUID, qty decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return qty, nil
	}

	one := decimal.NewFromInt(1)
	visited := map[uuid.UUID]bool{from: true}
	queue := []path{{node: from, num: one, den: one}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range g.adj[cur.node] {
			if visited[a.to] {
				continue
			}
			next := path{
				node: a.to,
				num:  cur.num.Mul(a.num),
				den:  cur.den.Mul(a.den),
			}
			if a.to == to {
				return qty.Mul(next.num).Div(next.den), nil
			}
			visited[a.to] = true
			queue = append(queue, next)
		}
	}

	return decimal.Decimal{}, ErrNoPath
}

// Connected reports whether a conversion path exists between two variants.
func (g *Graph) Connected(from, to uuid.UUID) bool {
	_, err := g.Convert(from, to, decimal.NewFromInt(1))
	return err == nil
}
