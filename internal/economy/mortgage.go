package economy

import (
	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/player"
)

// Liquidate raises at least threshold dollars by selling houses and
// mortgaging properties, least valuable tier first (F → A). Returns the
// amount actually raised, which falls short of the threshold when the
// player has nothing left to liquidate — that shortfall signals
// unavoidable bankruptcy to the caller, it is not an error.
func Liquidate(b *board.Board, p *player.Player, threshold int) int {
	raised := 0
	for raised < threshold {
		prop := nextLiquidation(b, p.ID)
		if prop == nil {
			break
		}

		// Houses come off first, at half their cumulative build cost.
		if prop.Kind == board.KindColored && prop.Houses > 0 {
			proceeds := prop.Houses * prop.HouseCost() / 2
			prop.Houses = 0
			p.AddMoney(proceeds)
			raised += proceeds
		}

		prop.Mortgaged = true
		value := prop.MortgageValue()
		p.AddMoney(value)
		raised += value
	}
	return raised
}

// nextLiquidation picks the least valuable unmortgaged property,
// reclassifying from scratch because each liquidation shifts the tiers.
func nextLiquidation(b *board.Board, owner int) *board.Tile {
	tiers := Classify(b, owner)
	for _, tier := range tiers.LiquidationOrder() {
		for _, t := range tier {
			if !t.Mortgaged {
				return t
			}
		}
	}
	return nil
}

// Unmortgage lifts a mortgage at principal plus 10% interest. Exposed
// for external policy; the turn engine never invokes it on its own.
func Unmortgage(t *board.Tile, p *player.Player) {
	if !t.Mortgaged {
		return
	}
	p.AddMoney(-t.UnmortgageCost())
	t.Mortgaged = false
}
