package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/player"
)

func TestBuildHousesToHotelsWhenFlush(t *testing.T) {
	b := board.Build()
	p := player.New(0, "Flush", player.Config{})
	own(b, 0, 1, 3)

	built := BuildHouses(b, p, 0)

	// 10 houses at $50 each on the complete Set1 group.
	assert.Equal(t, 10, built)
	assert.Equal(t, board.MaxHouses, b.At(1).Houses)
	assert.Equal(t, board.MaxHouses, b.At(3).Houses)
	assert.Equal(t, player.StartingBalance-500, p.Balance)
}

func TestBuildHousesRespectsReserve(t *testing.T) {
	b := board.Build()
	p := player.New(0, "Careful", player.Config{})
	own(b, 0, 1, 3)

	built := BuildHouses(b, p, 1360)

	// Only two houses fit above the $1,360 floor.
	assert.Equal(t, 2, built)
	assert.Equal(t, 1400, p.Balance)
	gap := b.At(1).Houses - b.At(3).Houses
	if gap < 0 {
		gap = -gap
	}
	assert.LessOrEqual(t, gap, 1, "even building must hold")
}

func TestBuildHousesEvenBuildingInvariant(t *testing.T) {
	b := board.Build()
	p := player.New(0, "Evens", player.Config{})
	own(b, 0, 6, 8, 9) // Set2 complete, three properties at $50/house

	BuildHouses(b, p, 1200)

	group := b.GroupTiles(board.AttrSet2)
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			diff := group[i].Houses - group[j].Houses
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1,
				"%s and %s differ by more than one house", group[i].Name, group[j].Name)
		}
	}
}

func TestBuildHousesSkipsIncompleteAndMortgaged(t *testing.T) {
	b := board.Build()
	p := player.New(0, "Blocked", player.Config{})

	own(b, 0, 11, 13) // 2 of 3 in Set3 — no monopoly, no houses
	assert.Zero(t, BuildHouses(b, p, 0))

	own(b, 0, 1, 3)
	b.At(1).Mortgaged = true
	b.At(3).Mortgaged = true
	assert.Zero(t, BuildHouses(b, p, 0))
}

func TestQuickBuilderDrawsFromAllTiers(t *testing.T) {
	b := board.Build()

	// Two complete groups; Set1 has a hotel (tier B), Set2 is plain
	// (tier D). A restrictive builder only touches the first non-empty
	// tier; a quick builder improves both.
	setup := func() {
		own(b, 0, 1, 3, 6, 8, 9)
		b.At(1).Houses = 5
		b.At(3).Houses = 4
	}

	setup()
	restrictive := player.New(0, "Restrictive", player.Config{QuickBuilder: false})
	BuildHouses(b, restrictive, 0)
	assert.Zero(t, b.At(6).Houses, "restrictive builder ignores tier D while B is non-empty")

	for _, tile := range b.Tiles {
		tile.Owner = board.Unowned
		tile.Houses = 0
	}
	setup()
	quick := player.New(0, "Quick", player.Config{QuickBuilder: true})
	BuildHouses(b, quick, 0)
	assert.Greater(t, b.At(6).Houses, 0, "quick builder improves tier D too")
}

func TestMortgageToBuildPropensity(t *testing.T) {
	b := board.Build()
	p := player.New(0, "Leveraged", player.Config{MortgageToBuild: 0.9})
	p.Balance = 0

	own(b, 0, 1, 3) // Set1 complete, nothing to spend
	own(b, 0, 5)    // a lone railroad in tier F to mortgage

	built := BuildHouses(b, p, 0)

	require.Greater(t, built, 0)
	assert.True(t, b.At(5).Mortgaged, "tier F holding funds the construction")

	// A reluctant player in the same position builds nothing.
	for _, tile := range b.Tiles {
		tile.Owner = board.Unowned
		tile.Houses = 0
		tile.Mortgaged = false
	}
	reluctant := player.New(1, "Reluctant", player.Config{MortgageToBuild: 0.1})
	reluctant.Balance = 0
	own(b, 1, 1, 3)
	own(b, 1, 5)
	assert.Zero(t, BuildHouses(b, reluctant, 0))
}
