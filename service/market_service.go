package service

import (
	"context"
	"log"
	"sync"

	"forseti/domain/market"
	"forseti/infra/kafka"
	"forseti/infra/outbox"
	"forseti/infra/sequence"
	"forseti/infra/wal"
	"forseti/infra/wal/entry"
)

/*
MarketService is the ONLY write entry point into the system.

All coordination between:
- domain (market ledgers)
- infra (journal, outbox, sequencer)
- event publishing
happens here.

Ordering per command:

 1. execute the ledger operation (atomic, §-style all-or-nothing)
 2. on success: assign seq, append + sync the journal record
 3. write the event to the outbox (broadcaster delivers it)
 4. optionally push the fill onto the live feed (best effort)

A rejected operation touches none of 2–4: the journal only ever holds
operations that actually happened.
*/
type MarketService struct {
	mu sync.Mutex

	market  *market.Market
	seqGen  *sequence.Sequencer
	journal *entry.WAL
	outbox  *outbox.Outbox
	codec   wal.Serializer

	// feed is optional; nil disables the live execution feed.
	feed *kafka.Producer
}

// Payload is the journaled form of one committed operation. Replaying the
// payloads in seq order against empty ledgers rebuilds the exact state.
type Payload struct {
	User     uint64 `json:"user"`
	Order    uint64 `json:"order,omitempty"`
	Quantity uint64 `json:"qty"`
	Price    uint64 `json:"price,omitempty"`
	IsBuy    bool   `json:"is_buy,omitempty"`
}

// Event is the published record of one committed operation.
type Event struct {
	V        int    `json:"v"`
	Seq      uint64 `json:"seq"`
	Type     string `json:"type"`
	User     uint64 `json:"user"`
	Order    uint64 `json:"order"`
	Quantity uint64 `json:"qty"`
	Price    uint64 `json:"price,omitempty"`
	IsBuy    bool   `json:"is_buy,omitempty"`
}

// Event types, one per public operation.
const (
	EventDeposit         = "deposit"
	EventIncreaseDeposit = "increase_deposit"
	EventWithdraw        = "withdraw"
	EventTake            = "take"
	EventBorrow          = "borrow"
	EventRepay           = "repay"
)

// NewMarketService wires all dependencies. No globals.
func NewMarketService(
	m *market.Market,
	seqGen *sequence.Sequencer,
	journal *entry.WAL,
	ob *outbox.Outbox,
	feed *kafka.Producer,
) *MarketService {
	return &MarketService{
		market:  m,
		seqGen:  seqGen,
		journal: journal,
		outbox:  ob,
		codec:   wal.JSONSerializer{},
		feed:    feed,
	}
}

// Market exposes the ledger for read-only queries. Queries serialize on the
// market's own mutex and are always recomputed from current state.
func (s *MarketService) Market() *market.Market {
	return s.market
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Deposit places or tops up a limit order.
func (s *MarketService) Deposit(user, quantity, price uint64, isBuy bool) (market.OrderID, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, created, err := s.market.Deposit(user, quantity, price, isBuy)
	if err != nil {
		return 0, 0, err
	}

	typ := EventIncreaseDeposit
	if created {
		typ = EventDeposit
	}
	seq := s.commit(entry.RecordDeposit, Event{
		Type: typ, User: user, Order: uint64(id),
		Quantity: quantity, Price: price, IsBuy: isBuy,
	})
	return id, seq, nil
}

// Withdraw removes assets from the caller's own order.
func (s *MarketService) Withdraw(user uint64, oid market.OrderID, quantity uint64) (uint64, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.market.Withdraw(user, oid, quantity)
	if err != nil {
		return 0, 0, err
	}

	seq := s.commit(entry.RecordWithdraw, Event{
		Type: EventWithdraw, User: user, Order: uint64(oid), Quantity: quantity,
	})
	return out, seq, nil
}

// Take fills an order, liquidating its positions first.
func (s *MarketService) Take(taker uint64, oid market.OrderID, quantity uint64) (uint64, uint64, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, paid, err := s.market.Take(taker, oid, quantity)
	if err != nil {
		return 0, 0, 0, err
	}

	seq := s.commit(entry.RecordTake, Event{
		Type: EventTake, User: taker, Order: uint64(oid), Quantity: quantity,
	})

	// Live feed, best effort. The outbox already guarantees delivery.
	if s.feed != nil {
		if data, err := s.codec.Encode(Event{
			V: 1, Seq: seq, Type: EventTake, User: taker,
			Order: uint64(oid), Quantity: out,
		}); err == nil {
			_ = s.feed.Send(context.Background(), nil, data)
		}
	}
	return out, paid, seq, nil
}

// Borrow lends assets out of an order against the caller's collateral.
func (s *MarketService) Borrow(user uint64, oid market.OrderID, quantity uint64) (uint64, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.market.Borrow(user, oid, quantity)
	if err != nil {
		return 0, 0, err
	}

	seq := s.commit(entry.RecordBorrow, Event{
		Type: EventBorrow, User: user, Order: uint64(oid), Quantity: quantity,
	})
	return out, seq, nil
}

// Repay returns borrowed principal.
func (s *MarketService) Repay(user uint64, oid market.OrderID, quantity uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.market.Repay(user, oid, quantity); err != nil {
		return 0, err
	}

	seq := s.commit(entry.RecordRepay, Event{
		Type: EventRepay, User: user, Order: uint64(oid), Quantity: quantity,
	})
	return seq, nil
}

// commit journals a committed operation and queues its event. The ledger
// effects are already settled; failures here cost durability of the log,
// not consistency of the ledgers, so they are logged instead of unwound.
func (s *MarketService) commit(t entry.RecordType, ev Event) uint64 {
	seq := s.seqGen.Next()
	ev.V = 1
	ev.Seq = seq

	payload, err := s.codec.Encode(Payload{
		User:     ev.User,
		Order:    ev.Order,
		Quantity: ev.Quantity,
		Price:    ev.Price,
		IsBuy:    ev.IsBuy,
	})
	if err != nil {
		log.Printf("[service] encode seq=%d: %v", seq, err)
		return seq
	}

	if err := s.journal.Append(entry.NewRecord(t, seq, payload)); err != nil {
		log.Printf("[service] journal append seq=%d: %v", seq, err)
	} else if err := s.journal.Sync(); err != nil {
		log.Printf("[service] journal sync seq=%d: %v", seq, err)
	}

	data, err := s.codec.Encode(ev)
	if err != nil {
		log.Printf("[service] encode event seq=%d: %v", seq, err)
		return seq
	}
	if err := s.outbox.PutNew(seq, data); err != nil {
		log.Printf("[service] outbox put seq=%d: %v", seq, err)
	}
	return seq
}
