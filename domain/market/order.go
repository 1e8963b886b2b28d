package market

// Slot table capacities. Deliberately small: every index scan is linear and
// total per-call cost is bounded by these constants, not input size.
const (
	// MaxOrders caps live deposit orders per user.
	MaxOrders = 10
	// MaxBorrows caps orders a user may borrow from at once.
	MaxBorrows = 5
	// MaxPositions caps live positions funded by one order.
	MaxPositions = 5
)

// OrderID addresses an order in the ledger. Zero means "no order".
type OrderID uint64

// PositionID addresses a position in the ledger. Zero means "no position".
type PositionID uint64

// Order is one resting limit order: a deposit of one asset at a fixed price.
// IsBuy means the maker deposited quote to buy base; otherwise base to sell.
//
// Quantity == 0 is the canonical "does not exist" state. Orders are never
// physically removed; an emptied order stays in the ledger as a dead id.
type Order struct {
	Maker    uint64
	IsBuy    bool
	Quantity uint64
	Price    uint64 // quote per base, WAD scaled; always > 0 while live

	// Positions is the slot table of position ids borrowing from this
	// order. Sum of their borrowed assets never exceeds Quantity.
	Positions [MaxPositions]PositionID
}

// Live reports whether the order exists and still holds assets.
func (o *Order) Live() bool {
	return o != nil && o.Quantity > 0
}

// Position is one borrowing relationship: a borrower's outstanding principal
// against a specific order. Borrowed == 0 is the canonical closed state.
// At most one live position exists per (borrower, order) pair; repeat
// borrows merge by addition.
type Position struct {
	Borrower uint64
	Order    OrderID
	Borrowed uint64 // principal still owed, in the lent asset
}

// Live reports whether the position is open.
func (p *Position) Live() bool {
	return p != nil && p.Borrowed > 0
}

// User holds the per-identity slot arrays. It is an index, never the source
// of truth: slots reference ids, and a slot is logically empty exactly when
// its referent is no longer live in the ledger. There is no occupancy flag
// to fall out of sync.
type User struct {
	// Deposits holds the orders this user made.
	Deposits [MaxOrders]OrderID
	// Borrows holds the orders this user currently borrows from.
	Borrows [MaxBorrows]OrderID
}
