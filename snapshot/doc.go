// Package snapshot persists and restores the full ledger state: live
// orders, live positions, user slot arrays and the id counters. A snapshot
// at seq makes every journal segment up to seq disposable.
//
// Snapshots are written under the operation mutex, so a snapshot is always
// a state that actually existed between two operations. Dead ledger entries
// are not persisted, except orders still referenced by a live position; the
// counters alone guarantee ids are never re-minted.
package snapshot
