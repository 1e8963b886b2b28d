package snapshot

import (
	"time"

	"forseti/domain/market"
)

type Snapshot struct {
	Seq     uint64
	Created time.Time

	LastOrder    uint64
	LastPosition uint64

	Orders    []OrderEntry
	Positions []PositionEntry
	Users     []UserEntry
}

type OrderEntry struct {
	ID        uint64
	Maker     uint64
	IsBuy     bool
	Quantity  uint64
	Price     uint64
	Positions [market.MaxPositions]uint64
}

type PositionEntry struct {
	ID       uint64
	Borrower uint64
	Order    uint64
	Borrowed uint64
}

type UserEntry struct {
	ID       uint64
	Deposits [market.MaxOrders]uint64
	Borrows  [market.MaxBorrows]uint64
}
