// Package game ties the board, players, and economic subsystems together
// and runs them one turn at a time.
package game

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/entropy"
	"github.com/talgya/boardwalk/internal/gamelog"
	"github.com/talgya/boardwalk/internal/ledger"
	"github.com/talgya/boardwalk/internal/player"
)

// Game holds the complete state of one simulation.
type Game struct {
	ID         uuid.UUID
	Board      *board.Board
	Players    []*player.Player // active roster, turn order
	Bankrupted []*player.Player
	Log        *gamelog.Logger
	Ledger     *ledger.Tracker
	Source     entropy.Source

	curr      int // index into Players of the player whose turn just ran
	TurnCount int // total turns run across all players
}

// New creates a game with the given players. A nil source falls back to
// crypto randomness; nil collaborators get working defaults so tests can
// construct games tersely.
func New(names []string, src entropy.Source, log *gamelog.Logger, tracker *ledger.Tracker) *Game {
	if src == nil {
		src = entropy.Crypto{}
	}
	if log == nil {
		log = gamelog.New(nil)
	}
	if tracker == nil {
		tracker = ledger.NewTracker()
	}

	g := &Game{
		ID:     uuid.New(),
		Board:  board.Build(),
		Log:    log,
		Ledger: tracker,
		Source: src,
		curr:   -1,
	}
	for i, name := range names {
		g.Players = append(g.Players, player.New(i, name, player.NewConfig(src)))
	}
	return g
}

// ActiveCount returns the number of players still in the game.
func (g *Game) ActiveCount() int { return len(g.Players) }

// Over reports whether the simulation has reached its terminal
// condition: fewer than two active players.
func (g *Game) Over() bool { return len(g.Players) < 2 }

// PlayerByID finds an active player, or nil.
func (g *Game) PlayerByID(id int) *player.Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// TotalMoney sums the cash of all active players.
func (g *Game) TotalMoney() int {
	total := 0
	for _, p := range g.Players {
		total += p.Balance
	}
	return total
}

// reserveFor is the cash floor a player refuses to spend below: their
// insurance ratio applied to total money in circulation.
func (g *Game) reserveFor(p *player.Player) int {
	return int(p.Config.InsuranceRatio * float64(g.TotalMoney()))
}

// bankrupt releases the player's properties back to the bank and moves
// them from the active roster to the bankrupted set, in place.
func (g *Game) bankrupt(p *player.Player) {
	released := g.Board.Release(p.ID)
	g.Bankrupted = append(g.Bankrupted, p)

	for i, other := range g.Players {
		if other.ID == p.ID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			// Keep the advance landing on the player who would have
			// been next.
			if i <= g.curr {
				g.curr--
			}
			break
		}
	}

	g.Log.Logf(gamelog.CategoryBankrupted,
		"%s is now bankrupt ($%s). Released %d properties and removed from the game.",
		p.Name, humanize.Comma(int64(p.Balance)), released)
}

// logPlayerUpdates emits the end-of-turn summary line for every active
// player.
func (g *Game) logPlayerUpdates() {
	for _, p := range g.Players {
		g.Log.Logf(gamelog.CategoryPlayerUpdate, "%s: $%s at %s, %d properties%s",
			p.Name,
			humanize.Comma(int64(p.Balance)),
			g.Board.At(p.Position).Name,
			len(g.Board.OwnedBy(p.ID)),
			jailSuffix(p))
	}
}

func jailSuffix(p *player.Player) string {
	if p.Jailed {
		return " (in jail)"
	}
	return ""
}

// Standings describes the final state of a finished game.
func (g *Game) Standings() string {
	out := ""
	for _, p := range g.Players {
		out += fmt.Sprintf("%s survives with $%s and %d properties\n",
			p.Name, humanize.Comma(int64(p.Balance)), len(g.Board.OwnedBy(p.ID)))
	}
	for _, p := range g.Bankrupted {
		out += fmt.Sprintf("%s went bankrupt after %d turns\n", p.Name, len(p.TurnHistory))
	}
	return out
}
