package economy

import (
	"sort"

	"github.com/talgya/boardwalk/internal/board"
	"github.com/talgya/boardwalk/internal/gamelog"
	"github.com/talgya/boardwalk/internal/ledger"
	"github.com/talgya/boardwalk/internal/player"
)

const (
	// TradeUnlockThreshold disables trading until this many of the 28
	// ownable properties have been bought, to avoid degenerate early
	// swaps.
	TradeUnlockThreshold = 14

	// maxTradePasses caps the fixed-point loop. Real games converge in a
	// handful of passes; the cap only guards a cycling match search.
	maxTradePasses = 32
)

// Broker finds and executes mutually beneficial property swaps for one
// player against the rest of the roster.
type Broker struct {
	Board   *board.Board
	Players []*player.Player
	Log     *gamelog.Logger
	Ledger  *ledger.Tracker
}

// NewBroker assembles a broker over the current active roster.
func NewBroker(b *board.Board, players []*player.Player, log *gamelog.Logger, tracker *ledger.Tracker) *Broker {
	return &Broker{Board: b, Players: players, Log: log, Ledger: tracker}
}

func (br *Broker) playerByID(id int) *player.Player {
	for _, p := range br.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// MostWanted lists the properties a player would most like to acquire:
// every property held by someone else in a group the player already has
// a stake in, ordered by how close the player is to finishing that
// group. Ties keep holdings encounter order.
func (br *Broker) MostWanted(p *player.Player) []*board.Tile {
	var groups []board.Attribute
	seen := make(map[board.Attribute]bool)
	for _, t := range br.Board.OwnedBy(p.ID) {
		g := t.Group()
		if g != board.AttrNone && !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return br.Board.Completion(p.ID, groups[i]) > br.Board.Completion(p.ID, groups[j])
	})

	var wanted []*board.Tile
	for _, g := range groups {
		for _, t := range br.Board.GroupTiles(g) {
			if t.Owner != board.Unowned && t.Owner != p.ID {
				wanted = append(wanted, t)
			}
		}
	}
	return wanted
}

// match pairs a property the initiator receives with one they give up.
type match struct {
	receive *board.Tile // owned by other, wanted by the initiator
	give    *board.Tile // owned by the initiator, wanted by other
	other   *player.Player
}

// findMatch walks the initiator's most-wanted list and, for each
// candidate, asks whether its owner wants anything of the initiator's
// from a different group. Same-group swaps are pointless and disallowed.
func (br *Broker) findMatch(p *player.Player) *match {
	for _, cand := range br.MostWanted(p) {
		other := br.playerByID(cand.Owner)
		if other == nil {
			continue
		}
		for _, want := range br.MostWanted(other) {
			if want.Owner == p.ID && want.Group() != cand.Group() {
				return &match{receive: cand, give: want, other: other}
			}
		}
	}
	return nil
}

// RunTrades executes beneficial swaps for the player until no mutual
// match remains. Every executed trade changes holdings, so the search
// restarts from scratch each pass. Returns the number of trades made.
func (br *Broker) RunTrades(p *player.Player, turn int) int {
	if br.Board.OwnedPropertyCount() < TradeUnlockThreshold {
		return 0
	}

	executed := 0
	for pass := 0; pass < maxTradePasses; pass++ {
		m := br.findMatch(p)
		if m == nil {
			break
		}
		br.execute(p, m, turn)
		executed++
	}
	return executed
}

// execute performs the swap and settles the difference in cash. Each
// side's property is priced by its pre-trade owner's valuation; the net
// gainer compensates the net loser, so total money is unchanged.
func (br *Broker) execute(p *player.Player, m *match, turn int) {
	mine := Valuations(br.Board, p.ID)
	theirs := Valuations(br.Board, m.other.ID)

	gaveValue := mine[m.give.Name]       // what the other side receives
	recvValue := theirs[m.receive.Name]  // what the initiator receives
	compensation := gaveValue - recvValue

	br.Board.Transfer(m.receive, p.ID)
	br.Board.Transfer(m.give, m.other.ID)
	m.other.SendMoney(compensation, p)

	// Ledger cost basis: average of the two pre-trade valuations,
	// adjusted by the compensation each side paid or received.
	avg := (gaveValue + recvValue) / 2
	br.Ledger.TrackProperty(m.receive.Name, p.Name, turn, avg-compensation)
	br.Ledger.TrackProperty(m.give.Name, m.other.Name, turn, avg+compensation)

	br.Log.Logf(gamelog.CategoryTrade,
		"Trade: %s received %s, %s received %s, compensation $%d",
		p.Name, m.receive.Name, m.other.Name, m.give.Name, compensation)
}
