// Package memory provides the typed object pool behind the market's
// per-operation snapshot guard. Every mutating call deep-copies the small
// ledgers; the pool recycles those copies instead of leaving the churn to
// the garbage collector.
package memory

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put returns an object that nothing references anymore. The ledgers index
// by id, never by pointer, so a released entry cannot be reached again.
func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
