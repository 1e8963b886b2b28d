package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"forseti/domain/market"
)

type Writer struct {
	Dir string
}

// Write persists the ledgers as of seq. The file is written to a temp name
// and renamed so a crash mid-write never leaves a torn snapshot behind.
func (w *Writer) Write(seq uint64, s *market.State) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	lastOrder, lastPosition := s.Counters()
	snap := Snapshot{
		Seq:          seq,
		Created:      time.Now(),
		LastOrder:    uint64(lastOrder),
		LastPosition: uint64(lastPosition),
	}

	// A dead order may still be referenced by live positions as their price
	// source. Such entries must be persisted dead as they are, or collateral
	// accounting silently drops the pledge after restore.
	referenced := make(map[market.OrderID]bool)
	s.EachPosition(func(_ market.PositionID, p *market.Position) {
		if p.Live() {
			referenced[p.Order] = true
		}
	})

	s.EachOrder(func(id market.OrderID, o *market.Order) {
		if !o.Live() && !referenced[id] {
			return
		}
		e := OrderEntry{
			ID:       uint64(id),
			Maker:    o.Maker,
			IsBuy:    o.IsBuy,
			Quantity: o.Quantity,
			Price:    o.Price,
		}
		for i, pid := range o.Positions {
			e.Positions[i] = uint64(pid)
		}
		snap.Orders = append(snap.Orders, e)
	})

	s.EachPosition(func(id market.PositionID, p *market.Position) {
		if !p.Live() {
			return
		}
		snap.Positions = append(snap.Positions, PositionEntry{
			ID:       uint64(id),
			Borrower: p.Borrower,
			Order:    uint64(p.Order),
			Borrowed: p.Borrowed,
		})
	})

	s.EachUser(func(id uint64, u *market.User) {
		e := UserEntry{ID: id}
		for i, oid := range u.Deposits {
			e.Deposits[i] = uint64(oid)
		}
		for i, oid := range u.Borrows {
			e.Borrows[i] = uint64(oid)
		}
		snap.Users = append(snap.Users, e)
	})

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&snap); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
