package market

import "fmt"

/*
Liquidation: forced full write-off of every position funded by one order,
triggered whenever that order is taken. Even a 1-unit take liquidates every
position in full; partial-liquidation bookkeeping is out of scope.
*/

// liquidateAll writes off all live positions sourced from oid, seizing
// equivalent collateral from each borrower's deposit orders.
//
// A shortfall on any position is fatal: the caller must abandon the whole
// operation (the ledgers are already mutated when this returns an error,
// which is why take runs under snapshot-and-restore).
func (s *State) liquidateAll(oid OrderID) error {
	o := s.orders[oid]
	if o == nil {
		return nil
	}
	for _, pid := range o.Positions {
		p := s.positions[pid]
		if !p.Live() {
			continue
		}
		if err := s.liquidate(o, p); err != nil {
			return fmt.Errorf("position %d: %w", pid, err)
		}
	}
	return nil
}

// liquidate seizes collateral covering one position's debt, then zeroes the
// debt unconditionally.
func (s *State) liquidate(o *Order, p *Position) error {
	// Debt expressed in the collateral asset (the opposite side), at the
	// source order's price.
	toSeize := Convert(p.Borrowed, o.Price, o.IsBuy)

	// Walk the borrower's deposit orders in slot order. First-registered
	// slots are seized first, no economic ranking. Only the non-borrowed
	// balance of a collateral order is seizable: assets lent out of it sit
	// with their own borrowers, not in custody, and the order must keep
	// backing them.
	if u := s.users[p.Borrower]; u != nil {
		for _, cid := range u.Deposits {
			if toSeize == 0 {
				break
			}
			co := s.orders[cid]
			if !co.Live() || co.IsBuy == o.IsBuy {
				continue
			}
			seized := toSeize
			if avail := s.Available(cid); seized > avail {
				seized = avail
			}
			co.Quantity -= seized
			toSeize -= seized
		}
	}

	// Full write-off regardless of coverage.
	p.Borrowed = 0

	if toSeize > 0 {
		return fmt.Errorf("%w: %d uncovered", ErrLiquidationShortfall, toSeize)
	}
	return nil
}
