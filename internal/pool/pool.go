// Package pool provides typed object pools for the scratch buffers used
// while rendering help text.
package pool

import (
	"bytes"
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called before an object is handed out again
	keep  func(*T) bool
}

// NewPool creates a pool backed by factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool that runs reset on every object it returns.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj for reuse. Objects rejected by the keep filter are dropped.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.keep != nil && !p.keep(obj) {
		return
	}
	p.pool.Put(obj)
}

// MaxBufferSize is the largest buffer capacity Buffers keeps.
const MaxBufferSize = 64 << 10

// Buffers pools bytes.Buffers. Buffers that grew past MaxBufferSize are
// left to the garbage collector.
var Buffers = newBufferPool()

func newBufferPool() *Pool[bytes.Buffer] {
	p := NewPoolWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) { b.Reset() },
	)
	p.keep = func(b *bytes.Buffer) bool { return b.Cap() <= MaxBufferSize }
	return p
}
