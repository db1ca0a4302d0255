// Package player provides the player data model, behavioral
// configuration, and per-turn history records.
package player

import (
	"github.com/talgya/boardwalk/internal/entropy"
)

// StartingBalance is the cash each player begins with.
const StartingBalance = 1500

// Config is a player's randomized economic disposition, generated once
// at game start from the injected entropy source.
type Config struct {
	// MortgageToBuild is the propensity (0–1) to fund construction by
	// mortgaging low-tier holdings when cash is short.
	MortgageToBuild float64 `json:"mortgage_to_build"`
	// QuickBuilder selects aggressive improvement (union of tiers B∪C∪D)
	// over restrictive (first non-empty tier).
	QuickBuilder bool `json:"quick_builder"`
	// InsuranceRatio is the fraction of total money in circulation the
	// player keeps as a cash floor before spending on purchases or houses.
	InsuranceRatio float64 `json:"insurance_ratio"`
}

// NewConfig draws a behavioral configuration from the entropy source.
func NewConfig(src entropy.Source) Config {
	return Config{
		MortgageToBuild: src.Float(),
		QuickBuilder:    src.Float() < 0.5,
		InsuranceRatio:  src.Float() * 0.2, // floor at most 20% of circulation
	}
}

// Player is one participant. Holdings are not stored here; they are
// derived from the board's owner fields.
type Player struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Balance  int     `json:"balance"` // may go negative transiently
	Position int     `json:"position"`
	Jailed   bool    `json:"jailed"`
	Config   Config  `json:"config"`

	// TurnHistory is append-only; records are never mutated after the
	// turn that created them completes.
	TurnHistory []*TurnRecord `json:"turn_history"`
}

// New creates a player at Go with the starting balance.
func New(id int, name string, cfg Config) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Balance: StartingBalance,
		Config:  cfg,
	}
}

// AddMoney credits (or debits, when negative) the player's balance.
func (p *Player) AddMoney(amount int) {
	p.Balance += amount
}

// SendMoney moves cash from p to other. Total money is conserved.
func (p *Player) SendMoney(amount int, other *Player) {
	p.AddMoney(-amount)
	other.AddMoney(amount)
}

// TurnRecord is a snapshot of one turn, created at turn start and
// filled in as the turn progresses.
type TurnRecord struct {
	TurnNumber        int   `json:"turn_number"`
	DiceRoll1         int   `json:"dice_roll1"`
	DiceRoll2         int   `json:"dice_roll2"`
	Origin            int   `json:"origin"`
	Destination       int   `json:"destination"`
	OriginInJail      bool  `json:"origin_in_jail"`
	DestinationInJail bool  `json:"destination_in_jail"`
	InitialBalance    int   `json:"initial_balance"`
	RecentBalance     int   `json:"recent_balance"`
	NewProperties     []int `json:"new_properties"`  // board indexes acquired this turn
	LostProperties    []int `json:"lost_properties"` // board indexes given up this turn
}

// Roll returns the dice sum for the turn.
func (r *TurnRecord) Roll() int { return r.DiceRoll1 + r.DiceRoll2 }

// Doubles reports whether both dice match.
func (r *TurnRecord) Doubles() bool { return r.DiceRoll1 == r.DiceRoll2 }
