package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/ecs-snake/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// It uses the sparse set pattern from stores to efficiently find entities that have all specified components.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() to add component filters, then Execute() to get the results.
//
// Example:
//
//	entities := world.Query().
//	    With(world.Positions).
//	    With(world.Renderables).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all entities that have components in all specified stores,
// ascending by entity id so that systems iterate in a deterministic order.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Starting with the smallest store minimizes the number of Has() checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0] // Reuse underlying array
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}
