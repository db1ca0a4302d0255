package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCanonicalLayout(t *testing.T) {
	b := Build()
	require.Len(t, b.Tiles, Size)

	counts := map[Kind]int{}
	for _, tile := range b.Tiles {
		counts[tile.Kind]++
	}
	assert.Equal(t, 22, counts[KindColored])
	assert.Equal(t, 4, counts[KindRailroad])
	assert.Equal(t, 2, counts[KindUtility])
	assert.Equal(t, OwnableCount, counts[KindColored]+counts[KindRailroad]+counts[KindUtility])

	attrCounts := map[Attribute]int{}
	for _, tile := range b.Tiles {
		for _, a := range tile.Attrs {
			attrCounts[a]++
		}
	}
	assert.Equal(t, 3, attrCounts[AttrChance])
	assert.Equal(t, 3, attrCounts[AttrChest])
	assert.Equal(t, 2, attrCounts[AttrTax])
	assert.Equal(t, 1, attrCounts[AttrGo])
	assert.Equal(t, 1, attrCounts[AttrJail])
	assert.Equal(t, 1, attrCounts[AttrGoToJail])
	assert.Equal(t, 1, attrCounts[AttrFreeParking])

	// Spot checks against the canonical board.
	assert.Equal(t, "Reading Railroad", b.At(5).Name)
	assert.Equal(t, "Jail", b.At(JailIndex).Name)
	assert.Equal(t, "Go to Jail", b.At(30).Name)
	assert.Equal(t, "Boardwalk", b.At(39).Name)
	assert.Equal(t, 400, b.At(39).Price)
	assert.Equal(t, [6]int{50, 200, 600, 1400, 1700, 2000}, b.At(39).Rents)
	assert.Equal(t, KindUtility, b.At(28).Kind, "Water Works is a utility")
}

func TestGroupSizes(t *testing.T) {
	b := Build()
	assert.Len(t, b.GroupTiles(AttrSet1), 2)
	assert.Len(t, b.GroupTiles(AttrSet2), 3)
	assert.Len(t, b.GroupTiles(AttrSet8), 2)
	assert.Len(t, b.GroupTiles(AttrRailroad), 4)
	assert.Len(t, b.GroupTiles(AttrUtility), 2)
}

func TestHouseCostSteps(t *testing.T) {
	b := Build()
	assert.Equal(t, 50, b.At(1).HouseCost())   // Mediterranean, set 1
	assert.Equal(t, 100, b.At(11).HouseCost()) // St. Charles, set 3
	assert.Equal(t, 150, b.At(21).HouseCost()) // Kentucky, set 5
	assert.Equal(t, 200, b.At(39).HouseCost()) // Boardwalk, set 8
}

func TestCompletion(t *testing.T) {
	b := Build()
	assert.Zero(t, b.Completion(0, AttrSet1))

	b.At(1).Owner = 0 // Mediterranean
	assert.InDelta(t, 0.5, b.Completion(0, AttrSet1), 1e-9)

	b.At(3).Owner = 0 // Baltic
	assert.InDelta(t, 1.0, b.Completion(0, AttrSet1), 1e-9)
	assert.True(t, b.GroupComplete(0, AttrSet1))

	// A tag with no board tiles yields zero, not a fault.
	assert.Zero(t, b.Completion(0, AttrNone))
}

func TestRailroadRentDoubles(t *testing.T) {
	b := Build()
	railroads := b.GroupTiles(AttrRailroad)
	require.Len(t, railroads, 4)

	expected := []int{25, 50, 100, 200}
	for i, rr := range railroads {
		rr.Owner = 0
		assert.Equal(t, expected[i], b.Rent(railroads[0], 7),
			"rent with %d railroads held", i+1)
	}
}

func TestUtilityRent(t *testing.T) {
	b := Build()
	electric := b.At(12)
	water := b.At(28)

	electric.Owner = 0
	assert.Equal(t, 7*4, b.Rent(electric, 7))

	water.Owner = 0
	assert.Equal(t, 7*10, b.Rent(electric, 7))
}

func TestColoredRentByHouses(t *testing.T) {
	b := Build()
	med := b.At(1)
	med.Owner = 0

	assert.Equal(t, 2, b.Rent(med, 7))
	med.Houses = 3
	assert.Equal(t, 90, b.Rent(med, 7))
	med.Houses = 5
	assert.Equal(t, 250, b.Rent(med, 7))
}

func TestMortgageValues(t *testing.T) {
	b := Build()
	med := b.At(1)
	assert.Equal(t, 30, med.MortgageValue())
	assert.Equal(t, 33, med.UnmortgageCost()) // principal + 10%
}

func TestRelease(t *testing.T) {
	b := Build()
	b.At(1).Owner = 0
	b.At(3).Owner = 0
	b.At(3).Houses = 2
	b.At(5).Owner = 0
	b.At(5).Mortgaged = true

	released := b.Release(0)
	assert.Equal(t, 3, released)
	for _, tile := range []*Tile{b.At(1), b.At(3), b.At(5)} {
		assert.Equal(t, Unowned, tile.Owner)
		assert.False(t, tile.Mortgaged)
		assert.Zero(t, tile.Houses)
	}
}

func TestOwnedByDerivedHoldings(t *testing.T) {
	b := Build()
	b.At(3).Owner = 1
	b.At(1).Owner = 1
	b.At(5).Owner = 2

	held := b.OwnedBy(1)
	require.Len(t, held, 2)
	// Board order, not acquisition order.
	assert.Equal(t, "Mediterranean Avenue", held[0].Name)
	assert.Equal(t, "Baltic Avenue", held[1].Name)

	b.Transfer(b.At(1), 2)
	assert.Len(t, b.OwnedBy(1), 1)
	assert.Len(t, b.OwnedBy(2), 2)
}
