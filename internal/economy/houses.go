package economy

import (
	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/player"
)

// BuildHouses spends spare cash on houses for the player's improvement
// candidates (tiers B, C, D). Quick builders draw from the union of the
// three tiers; everyone else only from the first non-empty one. Houses
// go up one at a time while the post-build balance stays at or above the
// reserve; afterwards each touched group is rebalanced so no member is
// more than one house ahead of another.
func BuildHouses(b *board.Board, p *player.Player, reserve int) int {
	tiers := Classify(b, p.ID)

	var selected []*board.Tile
	if p.Config.QuickBuilder {
		selected = append(selected, tiers.B...)
		selected = append(selected, tiers.C...)
		selected = append(selected, tiers.D...)
	} else {
		switch {
		case len(tiers.B) > 0:
			selected = tiers.B
		case len(tiers.C) > 0:
			selected = tiers.C
		default:
			selected = tiers.D
		}
	}

	// Only colored properties in a fully held group can be improved, and
	// never while mortgaged.
	var eligible []*board.Tile
	for _, t := range selected {
		if t.Kind == board.KindColored && !t.Mortgaged && b.GroupComplete(p.ID, t.Group()) {
			eligible = append(eligible, t)
		}
	}

	built := 0
	progress := true
	for progress {
		progress = false
		for _, t := range eligible {
			if t.Houses >= board.MaxHouses {
				continue
			}
			cost := t.HouseCost()
			if p.Balance-cost < reserve && !mortgageToBuild(b, p, cost, reserve) {
				continue
			}
			t.Houses++
			p.AddMoney(-cost)
			built++
			progress = true
		}
	}

	balanced := make(map[board.Attribute]bool)
	for _, t := range eligible {
		g := t.Group()
		if !balanced[g] {
			balanceGroup(b, p.ID, g)
			balanced[g] = true
		}
	}

	return built
}

// mortgageToBuild raises construction money by mortgaging tier F
// holdings, for players whose disposition allows it. Returns true once
// the build is affordable.
func mortgageToBuild(b *board.Board, p *player.Player, cost, reserve int) bool {
	if p.Config.MortgageToBuild <= 0.5 {
		return false
	}
	for p.Balance-cost < reserve {
		var next *board.Tile
		for _, t := range Classify(b, p.ID).F {
			if !t.Mortgaged {
				next = t
				break
			}
		}
		if next == nil {
			return false
		}
		next.Mortgaged = true
		p.AddMoney(next.MortgageValue())
	}
	return true
}

// balanceGroup enforces even building: while the spread between the most
// and least improved members exceeds one house, move a house across. The
// loop is bounded — groups hold at most four properties with five houses
// each, so convergence is immediate in practice.
func balanceGroup(b *board.Board, owner int, g board.Attribute) {
	var members []*board.Tile
	for _, t := range b.GroupTiles(g) {
		if t.Kind == board.KindColored && t.Owner == owner {
			members = append(members, t)
		}
	}
	if len(members) < 2 {
		return
	}

	for i := 0; i < board.MaxHouses*len(members); i++ {
		least, most := members[0], members[0]
		for _, t := range members[1:] {
			if t.Houses < least.Houses {
				least = t
			}
			if t.Houses > most.Houses {
				most = t
			}
		}
		if most.Houses-least.Houses <= 1 {
			return
		}
		most.Houses--
		least.Houses++
	}
}
