package market

/*
Collateral accounting.

The one correctness-critical formula of the system:

	excess = totalDeposits − neededCollateral − totalBorrowedFrom

An order's assets are simultaneously (a) available to withdraw or lend,
(b) pledged as collateral for the maker's own borrowings and (c) already
lent to others. Excess collateral nets out all three; anything less would
let a user withdraw collateral still backing a live loan.

Asset sides are named by inQuote: true selects the quote token, false the
base token. An order's asset side equals its IsBuy flag; the collateral
side of a position is the opposite of its source order's side.
*/

// TotalDeposits sums the quantities of the user's live deposit orders
// denominated in the given asset.
func (s *State) TotalDeposits(user uint64, inQuote bool) uint64 {
	u := s.users[user]
	if u == nil {
		return 0
	}
	var sum uint64
	for _, id := range u.Deposits {
		o := s.orders[id]
		if o.Live() && o.IsBuy == inQuote {
			sum += o.Quantity
		}
	}
	return sum
}

// TotalBorrowedFrom sums the outstanding principal borrowed out of the
// user's own orders denominated in the given asset.
func (s *State) TotalBorrowedFrom(user uint64, inQuote bool) uint64 {
	u := s.users[user]
	if u == nil {
		return 0
	}
	var sum uint64
	for _, id := range u.Deposits {
		o := s.orders[id]
		if o.Live() && o.IsBuy == inQuote {
			sum += s.borrowedFrom(id)
		}
	}
	return sum
}

// NeededCollateral sums, over the user's live borrowing positions whose
// collateral side is the given asset, the principal converted to collateral
// units at the source order's price.
func (s *State) NeededCollateral(user uint64, inQuote bool) uint64 {
	u := s.users[user]
	if u == nil {
		return 0
	}
	var sum uint64
	for _, oid := range u.Borrows {
		o := s.orders[oid]
		if o == nil {
			continue
		}
		// Collateral side is the opposite of the lent side.
		if o.IsBuy == inQuote {
			continue
		}
		pid, ok := s.findPosition(user, oid)
		if !ok {
			continue
		}
		sum += Convert(s.positions[pid].Borrowed, o.Price, o.IsBuy)
	}
	return sum
}

// ExcessCollateral returns deposits minus needed collateral minus assets
// lent out, in the given asset. Saturates at zero: the borrow precondition
// keeps admitted users non-negative, and the subtraction must never wrap.
func (s *State) ExcessCollateral(user uint64, inQuote bool) uint64 {
	total := s.TotalDeposits(user, inQuote)
	owed := s.NeededCollateral(user, inQuote) + s.TotalBorrowedFrom(user, inQuote)
	if owed >= total {
		return 0
	}
	return total - owed
}
