// Package board provides the immutable 40-tile layout and the property
// arena. Tiles carry ownership as a player id; player holdings are
// derived on demand rather than stored, so there are no owner/holding
// reference cycles to keep in sync.
package board

// Attribute tags a tile with a category or group membership.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrGo
	AttrTax
	AttrProperty
	AttrChest
	AttrChance
	AttrSet1
	AttrSet2
	AttrSet3
	AttrSet4
	AttrSet5
	AttrSet6
	AttrSet7
	AttrSet8
	AttrJail
	AttrGoToJail
	AttrFreeParking
	AttrRailroad
	AttrUtility
)

// IsGroup reports whether the attribute names a property group
// (a color set, the railroads, or the utilities).
func (a Attribute) IsGroup() bool {
	return (a >= AttrSet1 && a <= AttrSet8) || a == AttrRailroad || a == AttrUtility
}

var attrNames = map[Attribute]string{
	AttrNone:        "none",
	AttrGo:          "go",
	AttrTax:         "tax",
	AttrProperty:    "property",
	AttrChest:       "chest",
	AttrChance:      "chance",
	AttrSet1:        "set-1",
	AttrSet2:        "set-2",
	AttrSet3:        "set-3",
	AttrSet4:        "set-4",
	AttrSet5:        "set-5",
	AttrSet6:        "set-6",
	AttrSet7:        "set-7",
	AttrSet8:        "set-8",
	AttrJail:        "jail",
	AttrGoToJail:    "go-to-jail",
	AttrFreeParking: "free-parking",
	AttrRailroad:    "railroad",
	AttrUtility:     "utility",
}

func (a Attribute) String() string { return attrNames[a] }

// Kind discriminates purchasable tiles. Rent dispatches on it instead of
// a type hierarchy.
type Kind uint8

const (
	KindNone     Kind = iota // not purchasable
	KindColored              // color-set property with a house rent schedule
	KindRailroad
	KindUtility
)

const (
	// Size is the number of tiles on the board.
	Size = 40
	// JailIndex is where "go to jail" sends a player.
	JailIndex = 10
	// Unowned marks a property with no owner.
	Unowned = -1
	// MaxHouses is the improvement cap; 5 denotes a hotel.
	MaxHouses = 5
	// OwnableCount is the number of purchasable tiles on a canonical board.
	OwnableCount = 28
)

// Tile is one board position. Property state (owner, houses, mortgage)
// lives here; everything else is fixed at construction.
type Tile struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Attrs     []Attribute `json:"attrs"`
	Price     int       `json:"price"`
	Rents     [6]int    `json:"rents"` // colored only, indexed by house count
	Houses    int       `json:"houses"`
	Mortgaged bool      `json:"mortgaged"`
	Owner     int       `json:"owner"` // player id, Unowned if none
}

// Has reports whether the tile carries the given attribute.
func (t *Tile) Has(a Attribute) bool {
	for _, attr := range t.Attrs {
		if attr == a {
			return true
		}
	}
	return false
}

// IsProperty reports whether the tile can be purchased.
func (t *Tile) IsProperty() bool { return t.Kind != KindNone }

// Group returns the tile's group attribute, or AttrNone for tiles
// outside any group.
func (t *Tile) Group() Attribute {
	for _, attr := range t.Attrs {
		if attr.IsGroup() {
			return attr
		}
	}
	return AttrNone
}

// HouseCost returns the per-house build cost, a step function over the
// color sets: 50/100/150/200 moving up the board.
func (t *Tile) HouseCost() int {
	switch t.Group() {
	case AttrSet1, AttrSet2:
		return 50
	case AttrSet3, AttrSet4:
		return 100
	case AttrSet5, AttrSet6:
		return 150
	case AttrSet7, AttrSet8:
		return 200
	default:
		return 0
	}
}

// MortgageValue is what the bank pays when the property is mortgaged.
func (t *Tile) MortgageValue() int { return t.Price / 2 }

// UnmortgageCost is the mortgage value plus 10% interest.
func (t *Tile) UnmortgageCost() int { return t.Price * 11 / 20 }

// Board is the tile arena. Built once, tile identities never change.
type Board struct {
	Tiles []*Tile
}

// At returns the tile at position i (0–39).
func (b *Board) At(i int) *Tile { return b.Tiles[i] }

// OwnedBy returns the properties held by a player, in board order.
// This is the derived holdings list; it is never cached.
func (b *Board) OwnedBy(owner int) []*Tile {
	var out []*Tile
	for _, t := range b.Tiles {
		if t.IsProperty() && t.Owner == owner {
			out = append(out, t)
		}
	}
	return out
}

// GroupTiles returns every board tile in the given group.
func (b *Board) GroupTiles(g Attribute) []*Tile {
	var out []*Tile
	for _, t := range b.Tiles {
		if t.IsProperty() && t.Group() == g {
			out = append(out, t)
		}
	}
	return out
}

// Completion returns the fraction of a group held by one player.
// A group with no board tiles yields 0, not a fault.
func (b *Board) Completion(owner int, g Attribute) float64 {
	held, total := 0, 0
	for _, t := range b.Tiles {
		if !t.IsProperty() || t.Group() != g {
			continue
		}
		total++
		if t.Owner == owner {
			held++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(held) / float64(total)
}

// GroupComplete reports whether the player holds the entire group.
func (b *Board) GroupComplete(owner int, g Attribute) bool {
	return b.Completion(owner, g) == 1
}

// HousesOnGroup counts the houses a player has across a group.
func (b *Board) HousesOnGroup(owner int, g Attribute) int {
	count := 0
	for _, t := range b.Tiles {
		if t.Kind == KindColored && t.Owner == owner && t.Group() == g {
			count += t.Houses
		}
	}
	return count
}

// OwnedPropertyCount counts the properties held by anyone.
func (b *Board) OwnedPropertyCount() int {
	count := 0
	for _, t := range b.Tiles {
		if t.IsProperty() && t.Owner != Unowned {
			count++
		}
	}
	return count
}

// Rent computes the rent due on a property given the dice roll that
// landed there. Railroad rent doubles per railroad held by the owner;
// utility rent is a multiple of the roll.
func (b *Board) Rent(t *Tile, roll int) int {
	switch t.Kind {
	case KindColored:
		return t.Rents[t.Houses]
	case KindRailroad:
		held := 0
		for _, other := range b.Tiles {
			if other.Kind == KindRailroad && other.Owner == t.Owner {
				held++
			}
		}
		return 25 << (held - 1)
	case KindUtility:
		held := 0
		for _, other := range b.Tiles {
			if other.Kind == KindUtility && other.Owner == t.Owner {
				held++
			}
		}
		if held == 2 {
			return roll * 10
		}
		return roll * 4
	default:
		return 0
	}
}

// Transfer reassigns ownership in one step. Because holdings are derived
// from the owner field, the old owner's list shrinks and the new owner's
// grows atomically with this single write.
func (b *Board) Transfer(t *Tile, newOwner int) {
	t.Owner = newOwner
}

// Release resets every property a player holds to unowned, unmortgaged,
// unimproved. Used on bankruptcy.
func (b *Board) Release(owner int) int {
	released := 0
	for _, t := range b.Tiles {
		if t.IsProperty() && t.Owner == owner {
			t.Owner = Unowned
			t.Mortgaged = false
			t.Houses = 0
			released++
		}
	}
	return released
}

func colored(name string, price int, rents [6]int, set Attribute) *Tile {
	return &Tile{
		Name:  name,
		Kind:  KindColored,
		Attrs: []Attribute{AttrProperty, set},
		Price: price,
		Rents: rents,
		Owner: Unowned,
	}
}

func railroad(name string) *Tile {
	return &Tile{
		Name:  name,
		Kind:  KindRailroad,
		Attrs: []Attribute{AttrProperty, AttrRailroad},
		Price: 200,
		Owner: Unowned,
	}
}

func utility(name string) *Tile {
	return &Tile{
		Name:  name,
		Kind:  KindUtility,
		Attrs: []Attribute{AttrProperty, AttrUtility},
		Price: 150,
		Owner: Unowned,
	}
}

func basic(name string, attr Attribute) *Tile {
	return &Tile{Name: name, Attrs: []Attribute{attr}, Owner: Unowned}
}

const (
	chanceLabel = "Chance"
	chestLabel  = "Community Chest"
)

// Build constructs the canonical Monopoly board.
func Build() *Board {
	tiles := []*Tile{
		basic("Go", AttrGo),
		colored("Mediterranean Avenue", 60, [6]int{2, 10, 30, 90, 160, 250}, AttrSet1),
		basic(chestLabel, AttrChest),
		colored("Baltic Avenue", 60, [6]int{4, 20, 60, 180, 320, 450}, AttrSet1),
		basic("Income Tax", AttrTax),
		railroad("Reading Railroad"),
		colored("Oriental Avenue", 100, [6]int{6, 30, 90, 270, 400, 550}, AttrSet2),
		basic(chanceLabel, AttrChance),
		colored("Vermont Avenue", 100, [6]int{6, 30, 90, 270, 400, 550}, AttrSet2),
		colored("Connecticut Avenue", 120, [6]int{8, 40, 100, 300, 450, 600}, AttrSet2),
		basic("Jail", AttrJail),
		colored("St. Charles Place", 140, [6]int{10, 50, 150, 450, 625, 750}, AttrSet3),
		utility("Electric Company"),
		colored("States Avenue", 140, [6]int{10, 50, 150, 450, 625, 750}, AttrSet3),
		colored("Virginia Avenue", 160, [6]int{12, 60, 180, 500, 700, 900}, AttrSet3),
		railroad("Pennsylvania Railroad"),
		colored("St. James Place", 180, [6]int{14, 70, 200, 550, 750, 950}, AttrSet4),
		basic(chestLabel, AttrChest),
		colored("Tennessee Avenue", 180, [6]int{14, 70, 200, 550, 750, 950}, AttrSet4),
		colored("New York Avenue", 200, [6]int{16, 80, 220, 600, 800, 1000}, AttrSet4),
		basic("Free Parking", AttrFreeParking),
		colored("Kentucky Avenue", 220, [6]int{18, 90, 250, 700, 875, 1050}, AttrSet5),
		basic(chanceLabel, AttrChance),
		colored("Indiana Avenue", 220, [6]int{18, 90, 250, 700, 875, 1050}, AttrSet5),
		colored("Illinois Avenue", 240, [6]int{20, 100, 300, 750, 925, 1100}, AttrSet5),
		railroad("B. & O. Railroad"),
		colored("Atlantic Avenue", 260, [6]int{22, 110, 330, 800, 975, 1150}, AttrSet6),
		colored("Ventnor Avenue", 260, [6]int{22, 110, 330, 800, 975, 1150}, AttrSet6),
		utility("Water Works"),
		colored("Marvin Gardens", 280, [6]int{24, 120, 360, 850, 1025, 1200}, AttrSet6),
		basic("Go to Jail", AttrGoToJail),
		colored("Pacific Avenue", 300, [6]int{26, 130, 390, 900, 1100, 1275}, AttrSet7),
		colored("North Carolina Avenue", 300, [6]int{26, 130, 390, 900, 1100, 1275}, AttrSet7),
		basic(chestLabel, AttrChest),
		colored("Pennsylvania Avenue", 320, [6]int{28, 150, 450, 1000, 1200, 1400}, AttrSet7),
		railroad("Short Line"),
		basic(chanceLabel, AttrChance),
		colored("Park Place", 350, [6]int{35, 175, 500, 1100, 1300, 1500}, AttrSet8),
		basic("Luxury Tax", AttrTax),
		colored("Boardwalk", 400, [6]int{50, 200, 600, 1400, 1700, 2000}, AttrSet8),
	}

	for i, t := range tiles {
		t.Index = i
	}
	return &Board{Tiles: tiles}
}
