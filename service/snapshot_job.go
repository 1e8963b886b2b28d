package service

import (
	"log"
	"time"

	"forseti/domain/market"
	"forseti/snapshot"
)

// StartSnapshotJob periodically persists the ledgers and reclaims journal
// segments and acked outbox rows the snapshot makes redundant.
//
// The service mutex is held across reading the seq and writing the state,
// so the snapshot's seq always matches the state it captures.
func (s *MarketService) StartSnapshotJob(dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			s.mu.Lock()
			seq := s.seqGen.Current()
			var err error
			s.market.View(func(st *market.State) {
				err = w.Write(seq, st)
			})
			s.mu.Unlock()

			if err != nil {
				log.Printf("[snapshot] write failed: %v", err)
				continue
			}

			_ = s.journal.TruncateBefore(seq)
			_ = s.outbox.TruncateAckedUpTo(seq)
		}
	}()
}
