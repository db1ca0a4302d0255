package economy

import (
	"github.com/talgya/boardwalk/internal/board"
)

// Valuations assigns a market-adjusted value to each property a player
// holds, keyed by property name. The multiplier climbs with the group's
// completion ratio; a finished colored group also prices in its houses.
// Fractional results truncate toward zero.
func Valuations(b *board.Board, owner int) map[string]int {
	values := make(map[string]int)
	for _, t := range b.OwnedBy(owner) {
		completion := b.Completion(owner, t.Group())
		value := float64(t.Price)

		switch {
		case completion == 1:
			if t.Kind == board.KindColored {
				value += float64(b.HousesOnGroup(owner, t.Group()) * t.HouseCost())
			}
			value *= 4
		case completion >= 0.66:
			value *= 3
		case completion >= 0.5:
			value *= 2
		default:
			value *= 1.5
		}

		values[t.Name] = int(value)
	}
	return values
}
