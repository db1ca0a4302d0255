package game

import (
	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/economy"
	"github.com/talgya/boardwalk/internal/entropy"
	"github.com/talgya/boardwalk/internal/gamelog"
	"github.com/talgya/boardwalk/internal/player"
)

// RunNextTurn advances the game by one player's complete turn:
// roll, movement, jail handling, landing resolution, the trade
// fixed-point loop, house building, and the bankruptcy check. Returns
// the turn record, or nil if the game has no players (a no-op, not a
// fault).
func (g *Game) RunNextTurn() *player.TurnRecord {
	if len(g.Players) == 0 {
		g.Log.Info("There are no remaining players")
		return nil
	}

	g.curr++
	if g.curr >= len(g.Players) {
		g.curr = 0
	}
	p := g.Players[g.curr]
	g.TurnCount++

	turn := &player.TurnRecord{
		TurnNumber:     len(p.TurnHistory) + 1,
		DiceRoll1:      entropy.RollDie(g.Source),
		DiceRoll2:      entropy.RollDie(g.Source),
		Origin:         p.Position,
		OriginInJail:   p.Jailed,
		InitialBalance: p.Balance,
	}
	p.TurnHistory = append(p.TurnHistory, turn)

	g.Log.Logf(gamelog.CategoryInfo, "It is %s's turn #%d. Starting at %s.",
		p.Name, turn.TurnNumber, g.Board.At(p.Position).Name)
	g.Log.Logf(gamelog.CategoryInfo, "Dice roll: %d and %d = %d",
		turn.DiceRoll1, turn.DiceRoll2, turn.Roll())

	// Jail: doubles release, anything else ends the turn on the spot.
	if p.Jailed && turn.Doubles() {
		p.Jailed = false
		g.Log.Logf(gamelog.CategoryInfo,
			"%s rolled doubles (%d) and is out of jail.", p.Name, turn.DiceRoll1)
	} else if p.Jailed {
		g.Log.Logf(gamelog.CategoryInfo, "%s is still stuck in jail.", p.Name)
		turn.Destination = p.Position
		turn.DestinationInJail = true
		turn.RecentBalance = p.Balance
		return turn
	}

	// Movement, wrapping the circular board.
	p.Position = (p.Position + turn.Roll()) % board.Size
	tile := g.Board.At(p.Position)
	g.Log.Logf(gamelog.CategoryInfo, "%s moved to %s", p.Name, tile.Name)

	if tile.Has(board.AttrGoToJail) {
		p.Position = board.JailIndex
		p.Jailed = true
		turn.Destination = board.JailIndex
		turn.DestinationInJail = true
		turn.RecentBalance = p.Balance
		g.Log.Logf(gamelog.CategoryInfo, "%s is now in jail.", p.Name)
		return turn
	}

	turn.Destination = p.Position
	if tile.IsProperty() {
		g.resolveLanding(p, tile, turn)
	}

	g.runEconomics(p, turn)

	// Liquidate under cash pressure; if liquidation can't cover the
	// debt, the player is out.
	if p.Balance < 0 {
		economy.Liquidate(g.Board, p, -p.Balance)
	}
	if p.Balance < 0 {
		g.bankrupt(p)
	}

	turn.RecentBalance = p.Balance
	g.logPlayerUpdates()
	return turn
}

// resolveLanding handles a property tile: buy it when unowned and
// affordable above the insurance reserve, or pay rent to its owner.
func (g *Game) resolveLanding(p *player.Player, tile *board.Tile, turn *player.TurnRecord) {
	if tile.Owner == board.Unowned {
		if p.Balance-tile.Price >= g.reserveFor(p) {
			g.Board.Transfer(tile, p.ID)
			p.AddMoney(-tile.Price)
			turn.NewProperties = append(turn.NewProperties, tile.Index)
			g.Ledger.TrackProperty(tile.Name, p.Name, turn.TurnNumber, tile.Price)
			g.Log.Logf(gamelog.CategoryTransaction, "%s purchased %s for $%d",
				p.Name, tile.Name, tile.Price)
		}
		return
	}

	if tile.Owner == p.ID || tile.Mortgaged {
		return // own property, or rent not collectible under mortgage
	}

	owner := g.PlayerByID(tile.Owner)
	if owner == nil {
		return
	}

	rent := g.Board.Rent(tile, turn.Roll())
	p.SendMoney(rent, owner)
	g.Log.Logf(gamelog.CategoryTransaction, "%s paid %s $%d for rent on %s",
		p.Name, owner.Name, rent, tile.Name)

	if err := g.Ledger.RentCollected(tile.Name, p.Name, rent); err != nil {
		// A tracking gap, not a rule violation — log and keep the turn
		// going.
		g.Log.Logf(gamelog.CategoryInfo, "ledger: %v for %s", err, tile.Name)
	}
}

// runEconomics drives the trade broker's fixed-point loop and the house
// allocator, then records any holdings changed by trading.
func (g *Game) runEconomics(p *player.Player, turn *player.TurnRecord) {
	before := make(map[int]bool)
	for _, t := range g.Board.OwnedBy(p.ID) {
		before[t.Index] = true
	}

	broker := economy.NewBroker(g.Board, g.Players, g.Log, g.Ledger)
	if broker.RunTrades(p, turn.TurnNumber) > 0 {
		after := make(map[int]bool)
		for _, t := range g.Board.OwnedBy(p.ID) {
			after[t.Index] = true
			if !before[t.Index] {
				turn.NewProperties = append(turn.NewProperties, t.Index)
			}
		}
		for idx := range before {
			if !after[idx] {
				turn.LostProperties = append(turn.LostProperties, idx)
			}
		}
	}

	economy.BuildHouses(g.Board, p, g.reserveFor(p))
}
