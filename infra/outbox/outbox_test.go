package outbox

import (
	"bytes"
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { ob.Close() })
	return ob
}

func TestPutAndGet(t *testing.T) {
	ob := openTestOutbox(t)

	if err := ob.PutNew(1, []byte("deposit")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := ob.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Seq != 1 || rec.State != StateNew || !bytes.Equal(rec.Payload, []byte("deposit")) {
		t.Fatalf("got %+v", rec)
	}
}

func TestStateTransitions(t *testing.T) {
	ob := openTestOutbox(t)
	ob.PutNew(1, []byte("e"))

	if err := ob.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := ob.Get(1)
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("after sent: %+v", rec)
	}

	if err := ob.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = ob.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("after acked: %+v", rec)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		ob.PutNew(seq, []byte{byte(seq)})
	}
	ob.MarkSent(2)
	ob.MarkAcked(2)
	ob.MarkSent(3) // sent but unacked: still pending

	var seen []uint64
	err := ob.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []uint64{1, 3, 4}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen %v, want %v", seen, want)
		}
	}
}

func TestScanPendingOrdersBySeq(t *testing.T) {
	ob := openTestOutbox(t)

	// Insertion order must not matter; keys are zero-padded for this.
	for _, seq := range []uint64{100, 2, 30, 1} {
		ob.PutNew(seq, nil)
	}

	var seen []uint64
	ob.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	for i := 1; i < len(seen); i++ {
		if seen[i-1] >= seen[i] {
			t.Fatalf("out of order: %v", seen)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("seen %d rows, want 4", len(seen))
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		ob.PutNew(seq, nil)
		ob.MarkSent(seq)
	}
	ob.MarkAcked(1)
	ob.MarkAcked(2)
	ob.MarkAcked(4)

	// Only acked rows at or below the watermark go; seq 3 is unacked and
	// seq 4 is past the watermark.
	if err := ob.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := ob.Get(1); err == nil {
		t.Error("seq 1 should be deleted")
	}
	if _, err := ob.Get(2); err == nil {
		t.Error("seq 2 should be deleted")
	}
	if _, err := ob.Get(3); err != nil {
		t.Error("unacked seq 3 must survive")
	}
	if _, err := ob.Get(4); err != nil {
		t.Error("seq 4 is past the watermark and must survive")
	}
}
