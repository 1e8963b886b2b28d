package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"forseti/domain/market"
)

// Load restores ledgers from the snapshot in dir, returning the seq it was
// taken at. A missing snapshot is not an error: fresh start.
func Load(dir string, s *market.State) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return 0, err
	}

	for _, e := range snap.Orders {
		o := market.Order{
			Maker:    e.Maker,
			IsBuy:    e.IsBuy,
			Quantity: e.Quantity,
			Price:    e.Price,
		}
		for i, pid := range e.Positions {
			o.Positions[i] = market.PositionID(pid)
		}
		s.PutOrder(market.OrderID(e.ID), o)
	}

	for _, e := range snap.Positions {
		s.PutPosition(market.PositionID(e.ID), market.Position{
			Borrower: e.Borrower,
			Order:    market.OrderID(e.Order),
			Borrowed: e.Borrowed,
		})
	}

	for _, e := range snap.Users {
		u := market.User{}
		for i, oid := range e.Deposits {
			u.Deposits[i] = market.OrderID(oid)
		}
		for i, oid := range e.Borrows {
			u.Borrows[i] = market.OrderID(oid)
		}
		s.PutUser(e.ID, u)
	}

	s.SetCounters(market.OrderID(snap.LastOrder), market.PositionID(snap.LastPosition))
	return snap.Seq, nil
}
