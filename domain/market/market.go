package market

import (
	"fmt"
	"sync"

	"forseti/infra/memory"
	"forseti/token"
)

/*
Market is the ONLY write entry point into the ledgers.

Every public operation is atomic and strictly serialized: it runs under one
mutex, against a snapshot-and-restore guard. Any failure, from a bad
argument to a liquidation shortfall to a refused transfer, restores the pre-call
state bit for bit. External token transfers always come last, after all
internal invariants are already satisfied, so a failing transfer rolls back
a fully consistent state rather than a half-mutated one.
*/

// Config carries the asset-specific minimum deposit floors. New orders below
// the floor are rejected as dust that could never be economically taken;
// top-ups of an existing order are exempt.
type Config struct {
	MinQuoteDeposit uint64
	MinBaseDeposit  uint64
}

// DefaultConfig is the demo wiring used by cmd/server.
func DefaultConfig() Config {
	return Config{MinQuoteDeposit: 100, MinBaseDeposit: 2}
}

type Market struct {
	mu    sync.Mutex
	state *State
	cfg   Config

	quote token.Token
	base  token.Token

	// Pools recycle the Order/Position copies churned by the per-call
	// snapshot guard.
	orderPool *memory.Pool[Order]
	posPool   *memory.Pool[Position]
}

// New wires a market over existing ledgers. No globals.
func New(state *State, cfg Config, quote, base token.Token) *Market {
	return &Market{
		state:     state,
		cfg:       cfg,
		quote:     quote,
		base:      base,
		orderPool: memory.NewPool(func() *Order { return &Order{} }),
		posPool:   memory.NewPool(func() *Position { return &Position{} }),
	}
}

func (m *Market) tokenFor(inQuote bool) token.Token {
	if inQuote {
		return m.quote
	}
	return m.base
}

func (m *Market) minDeposit(inQuote bool) uint64 {
	if inQuote {
		return m.cfg.MinQuoteDeposit
	}
	return m.cfg.MinBaseDeposit
}

// guard runs op under the mutex with snapshot-and-restore semantics.
func (m *Market) guard(op func(s *State) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.state.clone(m.orderPool, m.posPool)
	if err := op(m.state); err != nil {
		mutated := m.state
		m.state = prev
		mutated.release(m.orderPool, m.posPool)
		return err
	}
	prev.release(m.orderPool, m.posPool)
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Operations
// ──────────────────────────────────────────────────────────
//

// Deposit places quantity of the offered asset as a limit order at price.
// A live order at the same (maker, price, side) absorbs the deposit instead
// of minting a second id; created reports which path was taken.
func (m *Market) Deposit(user, quantity, price uint64, isBuy bool) (id OrderID, created bool, err error) {
	err = m.guard(func(s *State) error {
		if quantity == 0 || price == 0 {
			return fmt.Errorf("%w: quantity and price must be positive", ErrInvalidArgument)
		}

		if existing, ok := s.findDeposit(user, price, isBuy); ok {
			// Top-up: no floor check.
			s.orders[existing].Quantity += quantity
			id, created = existing, false
		} else {
			if quantity < m.minDeposit(isBuy) {
				return fmt.Errorf("%w: deposit %d below minimum %d",
					ErrInvalidArgument, quantity, m.minDeposit(isBuy))
			}
			u := s.user(user)
			slot := freeSlot(u.Deposits[:], s.orderLive)
			if slot < 0 {
				return fmt.Errorf("%w: user %d has %d live orders",
					ErrCapacityExceeded, user, MaxOrders)
			}
			id = s.mintOrder(Order{Maker: user, IsBuy: isBuy, Quantity: quantity, Price: price})
			u.Deposits[slot] = id
			created = true
		}

		if !m.tokenFor(isBuy).TransferFrom(user, quantity) {
			return fmt.Errorf("%w: pull %d from user %d", ErrTransferFailed, quantity, user)
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return id, created, nil
}

// Withdraw removes up to quantity from the caller's own order, bounded by
// the caller's excess collateral in the order's asset and by the floor rule.
func (m *Market) Withdraw(user uint64, oid OrderID, quantity uint64) (out uint64, err error) {
	err = m.guard(func(s *State) error {
		if quantity == 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
		}
		o := s.orders[oid]
		if !o.Live() {
			return fmt.Errorf("%w: order %d", ErrNotFound, oid)
		}
		if o.Maker != user {
			return fmt.Errorf("%w: order %d belongs to %d", ErrUnauthorized, oid, o.Maker)
		}

		req := quantity
		if ec := s.ExcessCollateral(user, o.IsBuy); ec < req {
			req = ec
		}
		out = m.outableLocked(oid, req)
		if out == 0 {
			return fmt.Errorf("%w: nothing withdrawable from order %d", ErrLimitExceeded, oid)
		}
		o.Quantity -= out

		if !m.tokenFor(o.IsBuy).Transfer(user, out) {
			return fmt.Errorf("%w: pay %d to user %d", ErrTransferFailed, out, user)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

// Take fills quantity of an order. Anyone may take, the maker included.
// Every position funded by the order is liquidated in full first, even for
// a partial take. The taker pays the price-converted counter asset (routed
// to the maker) and receives the taken asset.
func (m *Market) Take(taker uint64, oid OrderID, quantity uint64) (out, paid uint64, err error) {
	err = m.guard(func(s *State) error {
		if quantity == 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
		}
		o := s.orders[oid]
		if !o.Live() {
			return fmt.Errorf("%w: order %d", ErrNotFound, oid)
		}
		if avail := s.Available(oid); quantity > avail {
			return fmt.Errorf("%w: take %d exceeds non-borrowed %d",
				ErrLimitExceeded, quantity, avail)
		}

		// Liquidate before reducing the order. A shortfall aborts the
		// whole take; the guard restores the seized orders.
		if err := s.liquidateAll(oid); err != nil {
			return fmt.Errorf("take order %d: %w", oid, err)
		}

		out = m.outableLocked(oid, quantity)
		if out == 0 {
			return fmt.Errorf("%w: nothing takeable from order %d", ErrLimitExceeded, oid)
		}
		o.Quantity -= out

		paid = Convert(out, o.Price, o.IsBuy)
		counter := m.tokenFor(!o.IsBuy)
		if paid > 0 {
			if !counter.TransferFrom(taker, paid) {
				return fmt.Errorf("%w: pull %d counter from taker %d", ErrTransferFailed, paid, taker)
			}
			if !counter.Transfer(o.Maker, paid) {
				return fmt.Errorf("%w: pay %d counter to maker %d", ErrTransferFailed, paid, o.Maker)
			}
		}
		if !m.tokenFor(o.IsBuy).Transfer(taker, out) {
			return fmt.Errorf("%w: pay %d to taker %d", ErrTransferFailed, out, taker)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return out, paid, nil
}

// Borrow lends up to quantity out of an order against the borrower's excess
// collateral in the opposite asset. Repeat borrows from the same order merge
// into the existing position.
func (m *Market) Borrow(user uint64, oid OrderID, quantity uint64) (out uint64, err error) {
	err = m.guard(func(s *State) error {
		if quantity == 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
		}
		o := s.orders[oid]
		if !o.Live() {
			return fmt.Errorf("%w: order %d", ErrNotFound, oid)
		}

		// The maker cannot lend out assets that are pledged as the
		// maker's own collateral elsewhere.
		req := quantity
		if ec := s.ExcessCollateral(o.Maker, o.IsBuy); ec < req {
			req = ec
		}
		out = m.outableLocked(oid, req)
		if out == 0 {
			return fmt.Errorf("%w: nothing lendable from order %d", ErrLimitExceeded, oid)
		}

		// The borrower must be over-collateralized before the loan.
		need := Convert(out, o.Price, o.IsBuy)
		if s.ExcessCollateral(user, !o.IsBuy) < need {
			return fmt.Errorf("%w: borrower %d lacks %d collateral",
				ErrLimitExceeded, user, need)
		}

		u := s.user(user)
		borrowLive := func(id OrderID) bool {
			_, ok := s.findPosition(user, id)
			return ok
		}
		if findSlot(u.Borrows[:], oid, borrowLive) < 0 {
			slot := freeSlot(u.Borrows[:], borrowLive)
			if slot < 0 {
				return fmt.Errorf("%w: user %d has %d live borrowings",
					ErrCapacityExceeded, user, MaxBorrows)
			}
			u.Borrows[slot] = oid
		}

		if pid, ok := s.findPosition(user, oid); ok {
			s.positions[pid].Borrowed += out
		} else {
			pslot := freeSlot(o.Positions[:], s.positionLive)
			if pslot < 0 {
				return fmt.Errorf("%w: order %d has %d live positions",
					ErrCapacityExceeded, oid, MaxPositions)
			}
			pid = s.mintPosition(Position{Borrower: user, Order: oid, Borrowed: out})
			o.Positions[pslot] = pid
		}

		if !m.tokenFor(o.IsBuy).Transfer(user, out) {
			return fmt.Errorf("%w: pay %d to borrower %d", ErrTransferFailed, out, user)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

// Repay returns quantity of borrowed principal on the caller's position
// against an order.
func (m *Market) Repay(user uint64, oid OrderID, quantity uint64) error {
	return m.guard(func(s *State) error {
		if quantity == 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
		}
		o := s.orders[oid]
		if !o.Live() {
			return fmt.Errorf("%w: order %d", ErrNotFound, oid)
		}
		pid, ok := s.findPosition(user, oid)
		if !ok {
			return fmt.Errorf("%w: no position of user %d on order %d", ErrNotFound, user, oid)
		}
		p := s.positions[pid]
		if quantity > p.Borrowed {
			return fmt.Errorf("%w: repay %d exceeds borrowed %d",
				ErrLimitExceeded, quantity, p.Borrowed)
		}
		p.Borrowed -= quantity

		if !m.tokenFor(o.IsBuy).TransferFrom(user, quantity) {
			return fmt.Errorf("%w: pull %d from user %d", ErrTransferFailed, quantity, user)
		}
		return nil
	})
}

// outableLocked returns the portion of requested that may leave order oid
// without breaching the minimum-deposit floor. Removing the entire
// non-borrowed balance bypasses the floor. Caller holds the mutex.
func (m *Market) outableLocked(oid OrderID, requested uint64) uint64 {
	s := m.state
	o := s.orders[oid]
	if !o.Live() {
		return 0
	}
	avail := s.Available(oid)
	if requested >= avail {
		return avail
	}
	floor := m.minDeposit(o.IsBuy)
	if o.Quantity-requested >= floor {
		return requested
	}
	if o.Quantity <= floor {
		return 0
	}
	out := o.Quantity - floor
	if out > avail {
		out = avail
	}
	return out
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Queries are pure projections of the ledgers, recomputed from current
// state on every call. They run under the same mutex as operations.

// Maker returns the maker of a live order.
func (m *Market) Maker(oid OrderID) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.state.orders[oid]
	if !o.Live() {
		return 0, fmt.Errorf("%w: order %d", ErrNotFound, oid)
	}
	return o.Maker, nil
}

// TotalDeposits sums the user's live deposits in one asset.
func (m *Market) TotalDeposits(user uint64, inQuote bool) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.TotalDeposits(user, inQuote)
}

// TotalBorrowedFrom sums principal lent out of the user's orders in one asset.
func (m *Market) TotalBorrowedFrom(user uint64, inQuote bool) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.TotalBorrowedFrom(user, inQuote)
}

// NeededCollateral sums the collateral pledged for the user's borrowings.
func (m *Market) NeededCollateral(user uint64, inQuote bool) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.NeededCollateral(user, inQuote)
}

// ExcessCollateral nets deposits against pledges and lent-out assets.
func (m *Market) ExcessCollateral(user uint64, inQuote bool) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ExcessCollateral(user, inQuote)
}

// Available returns an order's non-borrowed balance.
func (m *Market) Available(oid OrderID) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Available(oid)
}

// Outable returns how much of requested could currently leave the order.
func (m *Market) Outable(oid OrderID, requested uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outableLocked(oid, requested)
}

// LiveOrders counts orders with positive quantity.
func (m *Market) LiveOrders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LiveOrders()
}

// LivePositions counts positions with positive principal.
func (m *Market) LivePositions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LivePositions()
}

// View runs fn against the ledgers under the operation mutex. fn must treat
// the state as read-only and must not retain it. Snapshot writing uses this.
func (m *Market) View(fn func(*State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}
