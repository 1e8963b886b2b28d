package market

import "forseti/infra/memory"

/*
State is the set of persisted ledgers:

- order ledger     (id → Order)
- position ledger  (id → Position)
- user index       (identity → slot arrays)
- the two monotonic id counters

Entries are never deleted. "Gone" means zero quantity / zero borrowed, and
every scan treats such entries as absent. Ids stay stable because multiple
indices reference them.

State carries no lock of its own; Market serializes every access.
*/
type State struct {
	orders    map[OrderID]*Order
	positions map[PositionID]*Position
	users     map[uint64]*User

	lastOrder    OrderID
	lastPosition PositionID
}

// NewState returns empty ledgers. The first minted order and position ids
// are both 1.
func NewState() *State {
	return &State{
		orders:    make(map[OrderID]*Order),
		positions: make(map[PositionID]*Position),
		users:     make(map[uint64]*User),
	}
}

// -------------------- Lookup --------------------

// Order returns the ledger entry for id, or nil.
func (s *State) Order(id OrderID) *Order {
	return s.orders[id]
}

// Position returns the ledger entry for id, or nil.
func (s *State) Position(id PositionID) *Position {
	return s.positions[id]
}

func (s *State) orderLive(id OrderID) bool {
	return s.orders[id].Live()
}

func (s *State) positionLive(id PositionID) bool {
	return s.positions[id].Live()
}

// user returns the slot arrays for an identity, creating them on first use.
func (s *State) user(id uint64) *User {
	u := s.users[id]
	if u == nil {
		u = &User{}
		s.users[id] = u
	}
	return u
}

// -------------------- Minting --------------------

func (s *State) mintOrder(o Order) OrderID {
	s.lastOrder++
	cp := o
	s.orders[s.lastOrder] = &cp
	return s.lastOrder
}

func (s *State) mintPosition(p Position) PositionID {
	s.lastPosition++
	cp := p
	s.positions[s.lastPosition] = &cp
	return s.lastPosition
}

// -------------------- Index scans --------------------

// findDeposit locates the caller's live order at (price, side), if any.
// Repeat deposits at the same triple merge into it.
func (s *State) findDeposit(user uint64, price uint64, isBuy bool) (OrderID, bool) {
	u := s.users[user]
	if u == nil {
		return 0, false
	}
	for _, id := range u.Deposits {
		o := s.orders[id]
		if o.Live() && o.Price == price && o.IsBuy == isBuy {
			return id, true
		}
	}
	return 0, false
}

// findPosition locates the live position of borrower against order id, if
// any, by scanning the order's position slots.
func (s *State) findPosition(borrower uint64, oid OrderID) (PositionID, bool) {
	o := s.orders[oid]
	if o == nil {
		return 0, false
	}
	for _, pid := range o.Positions {
		p := s.positions[pid]
		if p.Live() && p.Borrower == borrower {
			return pid, true
		}
	}
	return 0, false
}

// borrowedFrom sums the outstanding principal lent out of one order.
func (s *State) borrowedFrom(oid OrderID) uint64 {
	o := s.orders[oid]
	if o == nil {
		return 0
	}
	var sum uint64
	for _, pid := range o.Positions {
		if p := s.positions[pid]; p.Live() {
			sum += p.Borrowed
		}
	}
	return sum
}

// Available returns the non-borrowed balance of an order: quantity minus
// assets currently lent out. Taking is bounded by this. Saturates at zero;
// quantity never drops below the lent-out principal through any operation,
// but a query must not wrap on a state it did not produce.
func (s *State) Available(oid OrderID) uint64 {
	o := s.orders[oid]
	if !o.Live() {
		return 0
	}
	borrowed := s.borrowedFrom(oid)
	if borrowed >= o.Quantity {
		return 0
	}
	return o.Quantity - borrowed
}

// -------------------- Counts --------------------

// LiveOrders counts orders with positive quantity.
func (s *State) LiveOrders() int {
	n := 0
	for _, o := range s.orders {
		if o.Live() {
			n++
		}
	}
	return n
}

// LivePositions counts positions with positive principal.
func (s *State) LivePositions() int {
	n := 0
	for _, p := range s.positions {
		if p.Live() {
			n++
		}
	}
	return n
}

// -------------------- Iteration (snapshots, queries) --------------------

// EachOrder visits every ledger entry, dead ids included.
func (s *State) EachOrder(fn func(OrderID, *Order)) {
	for id, o := range s.orders {
		fn(id, o)
	}
}

// EachPosition visits every ledger entry, closed ids included.
func (s *State) EachPosition(fn func(PositionID, *Position)) {
	for id, p := range s.positions {
		fn(id, p)
	}
}

// EachUser visits every known identity.
func (s *State) EachUser(fn func(uint64, *User)) {
	for id, u := range s.users {
		fn(id, u)
	}
}

// Counters exposes the id high-water marks.
func (s *State) Counters() (OrderID, PositionID) {
	return s.lastOrder, s.lastPosition
}

// -------------------- Restore (snapshot load, replay) --------------------

// PutOrder installs a ledger entry at an explicit id.
func (s *State) PutOrder(id OrderID, o Order) {
	cp := o
	s.orders[id] = &cp
}

// PutPosition installs a ledger entry at an explicit id.
func (s *State) PutPosition(id PositionID, p Position) {
	cp := p
	s.positions[id] = &cp
}

// PutUser installs slot arrays for an identity.
func (s *State) PutUser(id uint64, u User) {
	cp := u
	s.users[id] = &cp
}

// SetCounters restores the id high-water marks.
func (s *State) SetCounters(lastOrder OrderID, lastPosition PositionID) {
	s.lastOrder = lastOrder
	s.lastPosition = lastPosition
}

// -------------------- Snapshot-and-restore --------------------

// clone deep-copies the ledgers. Order and Position entries come from the
// pools; a discarded clone (or a discarded original, after rollback) must
// go back through release.
func (s *State) clone(orders *memory.Pool[Order], positions *memory.Pool[Position]) *State {
	cp := &State{
		orders:       make(map[OrderID]*Order, len(s.orders)),
		positions:    make(map[PositionID]*Position, len(s.positions)),
		users:        make(map[uint64]*User, len(s.users)),
		lastOrder:    s.lastOrder,
		lastPosition: s.lastPosition,
	}
	for id, o := range s.orders {
		e := orders.Get()
		*e = *o
		cp.orders[id] = e
	}
	for id, p := range s.positions {
		e := positions.Get()
		*e = *p
		cp.positions[id] = e
	}
	for id, u := range s.users {
		uc := *u
		cp.users[id] = &uc
	}
	return cp
}

// release returns a no-longer-referenced state's entries to the pools.
// Safe because indices hold ids, never pointers.
func (s *State) release(orders *memory.Pool[Order], positions *memory.Pool[Position]) {
	for _, o := range s.orders {
		orders.Put(o)
	}
	for _, p := range s.positions {
		positions.Put(p)
	}
	s.orders = nil
	s.positions = nil
	s.users = nil
}
