// Package economy holds the decision algorithms driven by the turn
// engine: property classification, market valuation, the trade broker,
// forced liquidation, and house allocation. Everything here operates on
// the board arena and player records; I/O happens only through the
// injected log and ledger collaborators.
package economy

import (
	"github.com/talgya/boardwalk/internal/board"
)

// Tiers partitions a player's holdings by liquidation priority.
// F is sold first, A last. Every held property lands in exactly one tier.
type Tiers struct {
	A []*board.Tile // colored, whole group at hotel level
	B []*board.Tile // colored, some same-group holding has a hotel
	C []*board.Tile // colored, every colored holding is improved
	D []*board.Tile // remaining properties in a fully held group
	E []*board.Tile // remaining properties in a group at least half held
	F []*board.Tile // everything else
}

// LiquidationOrder returns the tiers in the order they should be sold.
func (t Tiers) LiquidationOrder() [][]*board.Tile {
	return [][]*board.Tile{t.F, t.E, t.D, t.C, t.B, t.A}
}

// All returns every classified property, tier A first.
func (t Tiers) All() []*board.Tile {
	var out []*board.Tile
	for _, tier := range [][]*board.Tile{t.A, t.B, t.C, t.D, t.E, t.F} {
		out = append(out, tier...)
	}
	return out
}

// Classify computes the tier partition from current state. It is never
// cached: house and ownership mutations between calls must show up
// immediately, so callers re-invoke it after any change.
func Classify(b *board.Board, owner int) Tiers {
	held := b.OwnedBy(owner)
	assigned := make(map[int]bool, len(held))
	var tiers Tiers

	// Whether every colored holding carries at least one house. The
	// check deliberately spans the whole colored portfolio, not the
	// candidate's group — see the tier C note in DESIGN.md.
	allColoredImproved := true
	for _, t := range held {
		if t.Kind == board.KindColored && t.Houses == 0 {
			allColoredImproved = false
			break
		}
	}

	// Tier A: colored, group fully held, every member at hotel level.
	for _, t := range held {
		if t.Kind != board.KindColored || !b.GroupComplete(owner, t.Group()) {
			continue
		}
		allHotels := true
		for _, gt := range b.GroupTiles(t.Group()) {
			if gt.Houses != board.MaxHouses {
				allHotels = false
				break
			}
		}
		if allHotels {
			tiers.A = append(tiers.A, t)
			assigned[t.Index] = true
		}
	}

	// Tier B: colored, some same-group holding has a hotel.
	for _, t := range held {
		if assigned[t.Index] || t.Kind != board.KindColored {
			continue
		}
		for _, other := range held {
			if other.Kind == board.KindColored && other.Group() == t.Group() &&
				other.Houses == board.MaxHouses {
				tiers.B = append(tiers.B, t)
				assigned[t.Index] = true
				break
			}
		}
	}

	// Tier C: colored, portfolio fully improved.
	for _, t := range held {
		if assigned[t.Index] || t.Kind != board.KindColored {
			continue
		}
		if allColoredImproved {
			tiers.C = append(tiers.C, t)
			assigned[t.Index] = true
		}
	}

	// Tier D: group fully held.
	for _, t := range held {
		if assigned[t.Index] {
			continue
		}
		if b.GroupComplete(owner, t.Group()) {
			tiers.D = append(tiers.D, t)
			assigned[t.Index] = true
		}
	}

	// Tier E: group at least half held.
	for _, t := range held {
		if assigned[t.Index] {
			continue
		}
		if b.Completion(owner, t.Group()) >= 0.5 {
			tiers.E = append(tiers.E, t)
			assigned[t.Index] = true
		}
	}

	// Tier F: the rest.
	for _, t := range held {
		if !assigned[t.Index] {
			tiers.F = append(tiers.F, t)
		}
	}

	return tiers
}
