package service

import (
	"fmt"
	"log"

	"forseti/domain/market"
	"forseti/infra/sequence"
	"forseti/infra/wal"
	"forseti/infra/wal/entry"
)

/*
ReplayJournal rebuilds ledger state by re-executing journaled operations.

IMPORTANT:
- This MUST run before accepting traffic.
- m must be wired with sink tokens: every journaled operation settled its
  transfers when it first executed, so replay re-applies ledger effects only.
- startAfter is the seq of the loaded snapshot; records at or below it are
  already baked into the state and are skipped.
*/
func ReplayJournal(
	dir string,
	m *market.Market,
	seqGen *sequence.Sequencer,
	startAfter uint64,
) error {
	codec := wal.JSONSerializer{}

	lastSeq, err := entry.Replay(dir, func(rec *entry.Record) error {
		if rec.Seq <= startAfter {
			return nil
		}

		var p Payload
		if err := codec.Decode(rec.Data, &p); err != nil {
			return fmt.Errorf("seq %d: %w", rec.Seq, err)
		}

		var opErr error
		switch rec.Type {
		case entry.RecordDeposit:
			_, _, opErr = m.Deposit(p.User, p.Quantity, p.Price, p.IsBuy)
		case entry.RecordWithdraw:
			_, opErr = m.Withdraw(p.User, market.OrderID(p.Order), p.Quantity)
		case entry.RecordTake:
			_, _, opErr = m.Take(p.User, market.OrderID(p.Order), p.Quantity)
		case entry.RecordBorrow:
			_, opErr = m.Borrow(p.User, market.OrderID(p.Order), p.Quantity)
		case entry.RecordRepay:
			opErr = m.Repay(p.User, market.OrderID(p.Order), p.Quantity)
		default:
			return fmt.Errorf("seq %d: unknown record type %d", rec.Seq, rec.Type)
		}
		if opErr != nil {
			// Journaled operations committed once already; a rejection
			// on replay means the journal and state disagree.
			return fmt.Errorf("seq %d %s: %w", rec.Seq, rec.Type, opErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if lastSeq < startAfter {
		lastSeq = startAfter
	}

	// Resume sequencing AFTER replay.
	seqGen.Reset(lastSeq)

	log.Printf("[replay] journal replay complete (last seq = %d)", lastSeq)
	return nil
}
