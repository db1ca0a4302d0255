// Package ledger tracks property acquisitions and the rent they earn,
// for post-game return-on-investment reporting. It is a collaborator of
// the turn engine and holds no game logic.
package ledger

import (
	"errors"
	"sync"
)

// ErrNoActiveRecord is returned when rent arrives for a property with no
// tracked purchase. The turn engine treats it as a data-tracking gap,
// not a rule violation.
var ErrNoActiveRecord = errors.New("no active investment record")

// Status of an investment record.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusSuperseded Status = "SUPERSEDED"
)

// Transaction is one rent payment against a record.
type Transaction struct {
	Payer     string `json:"payer"`
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
}

// Record is the investment history of one property under one owner.
type Record struct {
	Property       string        `json:"property"`
	Owner          string        `json:"owner"`
	PurchasedTurn  int           `json:"purchased_turn"`
	PurchasedPrice int           `json:"purchased_price"`
	Status         Status        `json:"status"`
	Transactions   []Transaction `json:"transactions"`
}

// RentTotal sums all rent collected against the record.
func (r *Record) RentTotal() int {
	total := 0
	for _, tx := range r.Transactions {
		total += tx.Amount
	}
	return total
}

// ROI is rent collected relative to the purchase price. A free
// acquisition yields 0 rather than dividing by zero.
func (r *Record) ROI() float64 {
	if r.PurchasedPrice == 0 {
		return 0
	}
	return float64(r.RentTotal()) / float64(r.PurchasedPrice)
}

// Tracker is the investment ledger.
type Tracker struct {
	mu      sync.Mutex
	records []*Record
}

// NewTracker creates an empty ledger.
func NewTracker() *Tracker {
	return &Tracker{}
}

// TrackProperty opens a new active record for a property, superseding
// any prior active record for the same name (ownership changed hands).
func (t *Tracker) TrackProperty(name, owner string, turn, price int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.records {
		if r.Property == name && r.Status == StatusActive {
			r.Status = StatusSuperseded
		}
	}
	t.records = append(t.records, &Record{
		Property:       name,
		Owner:          owner,
		PurchasedTurn:  turn,
		PurchasedPrice: price,
		Status:         StatusActive,
	})
}

// FindActive returns the active record for a property, or nil.
func (t *Tracker) FindActive(name string) *Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.findActiveLocked(name)
}

func (t *Tracker) findActiveLocked(name string) *Record {
	for _, r := range t.records {
		if r.Property == name && r.Status == StatusActive {
			return r
		}
	}
	return nil
}

// RentCollected appends a rent transaction to the property's active
// record. Returns ErrNoActiveRecord if no purchase was tracked.
func (t *Tracker) RentCollected(name, payer string, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.findActiveLocked(name)
	if r == nil {
		return ErrNoActiveRecord
	}
	r.Transactions = append(r.Transactions, Transaction{
		Payer:     payer,
		Recipient: r.Owner,
		Amount:    amount,
	})
	return nil
}

// Records returns a snapshot of every record, oldest first.
func (t *Tracker) Records() []*Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Record, len(t.records))
	copy(out, t.records)
	return out
}

// Active returns a snapshot of records still marked active.
func (t *Tracker) Active() []*Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []*Record
	for _, r := range t.records {
		if r.Status == StatusActive {
			out = append(out, r)
		}
	}
	return out
}
