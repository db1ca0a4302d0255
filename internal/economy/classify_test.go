package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/boardwalk/internal/board"
)

func own(b *board.Board, owner int, indexes ...int) {
	for _, i := range indexes {
		b.At(i).Owner = owner
	}
}

func tierNames(tier []*board.Tile) []string {
	var out []string
	for _, t := range tier {
		out = append(out, t.Name)
	}
	return out
}

func TestClassifyPartition(t *testing.T) {
	b := board.Build()

	// A mixed portfolio touching every tier.
	own(b, 0, 1, 3) // Set1 complete
	b.At(1).Houses = 5
	b.At(3).Houses = 5
	own(b, 0, 37, 39) // Set8 complete, one hotel
	b.At(37).Houses = 5
	own(b, 0, 5, 15, 25, 35) // all four railroads
	own(b, 0, 21, 23)        // 2 of 3 in Set5
	own(b, 0, 11)            // 1 of 3 in Set3

	tiers := Classify(b, 0)

	assert.ElementsMatch(t, []string{"Mediterranean Avenue", "Baltic Avenue"}, tierNames(tiers.A))
	assert.ElementsMatch(t, []string{"Park Place", "Boardwalk"}, tierNames(tiers.B))
	assert.Empty(t, tiers.C, "Boardwalk is unimproved, so no colored holding qualifies")
	assert.ElementsMatch(t,
		[]string{"Reading Railroad", "Pennsylvania Railroad", "B. & O. Railroad", "Short Line"},
		tierNames(tiers.D))
	assert.ElementsMatch(t, []string{"Kentucky Avenue", "Indiana Avenue"}, tierNames(tiers.E))
	assert.ElementsMatch(t, []string{"St. Charles Place"}, tierNames(tiers.F))

	// Pairwise disjoint and the union covers every holding.
	seen := map[string]int{}
	for _, tile := range tiers.All() {
		seen[tile.Name]++
	}
	held := b.OwnedBy(0)
	require.Len(t, seen, len(held))
	for name, n := range seen {
		assert.Equal(t, 1, n, "%s classified more than once", name)
	}
}

// Tier C's improvement check spans the player's whole colored portfolio,
// not the candidate's group. An unimproved holding anywhere empties the
// tier.
func TestClassifyTierCGlobalScope(t *testing.T) {
	b := board.Build()
	own(b, 0, 1, 3) // Set1 complete, improved
	b.At(1).Houses = 1
	b.At(3).Houses = 1
	own(b, 0, 11) // lone Set3 holding, improved
	b.At(11).Houses = 1

	tiers := Classify(b, 0)
	assert.ElementsMatch(t,
		[]string{"Mediterranean Avenue", "Baltic Avenue", "St. Charles Place"},
		tierNames(tiers.C),
		"a fully improved portfolio puts even the lone Set3 holding in C")

	// One unimproved holding anywhere knocks everything out of C.
	b.At(11).Houses = 0
	tiers = Classify(b, 0)
	assert.Empty(t, tiers.C)
	assert.ElementsMatch(t, []string{"Mediterranean Avenue", "Baltic Avenue"}, tierNames(tiers.D))
	assert.ElementsMatch(t, []string{"St. Charles Place"}, tierNames(tiers.F))
}

func TestClassifyIdempotent(t *testing.T) {
	b := board.Build()
	own(b, 0, 1, 3, 5, 11, 21, 23)
	b.At(1).Houses = 2

	first := Classify(b, 0)
	second := Classify(b, 0)

	assert.Equal(t, tierNames(first.A), tierNames(second.A))
	assert.Equal(t, tierNames(first.B), tierNames(second.B))
	assert.Equal(t, tierNames(first.C), tierNames(second.C))
	assert.Equal(t, tierNames(first.D), tierNames(second.D))
	assert.Equal(t, tierNames(first.E), tierNames(second.E))
	assert.Equal(t, tierNames(first.F), tierNames(second.F))
}

func TestClassifyEmptyPortfolio(t *testing.T) {
	b := board.Build()
	tiers := Classify(b, 0)
	assert.Empty(t, tiers.All())
}
